package webhooks

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/webhookservice"
	"github.com/GlebRadaev/gobounty/pkg/utils"
)

//go:generate mockgen -source=webhooks.go -destination=mock_webhooks.go -package=webhooks

type Service interface {
	Ingest(ctx context.Context, eventID, accountID string, payload []byte) (*webhookservice.Result, error)
}

const maxPayloadSize = 1 << 20

type WebhookHandler struct {
	pipeline Service
}

func New(pipeline Service) *WebhookHandler {
	return &WebhookHandler{
		pipeline: pipeline,
	}
}

// Stripe godoc
//
//	@Summary		Receive a payment provider event
//	@Description	The event is stored and then re-fetched from the provider before it is applied, so the body is only trusted for its ids.
//	@Tags			Webhooks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WebhookRequestDTO	true	"Provider event"
//	@Success		200		{object}	dto.WebhookResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid or unverifiable event"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/webhooks/stripe [post]
func (h *WebhookHandler) Stripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var req dto.WebhookRequestDTO
	if err := json.Unmarshal(payload, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.pipeline.Ingest(r.Context(), req.ID, req.UserID, payload)
	if err != nil {
		switch {
		case errors.Is(err, webhookservice.ErrUnverifiedEvent), errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WebhookResponseDTO{
		EventID:   result.EventID,
		Type:      result.Type,
		Duplicate: result.Duplicate,
		Processed: result.Processed,
	})
}
