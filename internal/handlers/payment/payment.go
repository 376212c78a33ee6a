package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/accountservice"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/utils"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

type Service interface {
	GetStatus(ctx context.Context, userID int) (*accountservice.Status, error)
	SetupPayment(ctx context.Context, userID int, cardToken, accountID string) (*accountservice.Status, error)
}

type PaymentHandler struct {
	accountService Service
}

func New(accountService Service) *PaymentHandler {
	return &PaymentHandler{
		accountService: accountService,
	}
}

// GetStatus godoc
//
//	@Summary		Get payment setup
//	@Description	Whether the user can make offers and receive payouts, and what the provider still needs for verification.
//	@Tags			Payment
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.PaymentStatusResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Payment account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payment [get]
func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	status, err := h.accountService.GetStatus(r.Context(), userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStatusDTO(status))
}

// Setup godoc
//
//	@Summary		Update payment setup
//	@Description	Save a card token as the payment method for offers and/or link the connected account that receives payouts.
//	@Tags			Payment
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentSetupRequestDTO	true	"Payment setup payload"
//	@Success		200		{object}	dto.PaymentStatusResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payment setup"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Card rejected"
//	@Failure		404		{object}	utils.Response	"Payment account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/user/payment [put]
func (h *PaymentHandler) Setup(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.PaymentSetupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	status, err := h.accountService.SetupPayment(r.Context(), userID, req.CardToken, req.AccountID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toStatusDTO(status))
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accountservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, accountservice.ErrCardRejected):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toStatusDTO(status *accountservice.Status) dto.PaymentStatusResponseDTO {
	return dto.PaymentStatusResponseDTO{
		AccountID:        status.Account.AccountID,
		AvailableBalance: status.Account.AvailableBalance,
		HasPaymentMethod: status.HasPaymentMethod,
		Payable:          status.Payable,
		FieldsNeeded:     status.FieldsNeeded,
	}
}
