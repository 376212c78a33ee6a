package bids

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/bidservice"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/utils"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=bids.go -destination=mock_bids.go -package=bids

type Service interface {
	RecordBidOrOffer(ctx context.Context, userID int, url string, ask, offer decimal.Decimal) (*domain.Bid, error)
	GetBid(ctx context.Context, userID int, url string) (*domain.Bid, error)
}

type BidHandler struct {
	bidService Service
}

func New(bidService Service) *BidHandler {
	return &BidHandler{
		bidService: bidService,
	}
}

// SaveBid godoc
//
//	@Summary		Place or update a bid
//	@Description	Set the ask and offer of the authenticated user on an issue url. A changed offer is authorized with the payment provider.
//	@Tags			Bids
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.BidRequestDTO	true	"Bid payload"
//	@Success		200		{object}	dto.BidResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid bid"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		402		{object}	utils.Response	"Offer could not be authorized"
//	@Failure		409		{object}	utils.Response	"Bid changed concurrently"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/bids [post]
func (h *BidHandler) SaveBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.BidRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	bid, err := h.bidService.RecordBidOrOffer(r.Context(), userID, req.URL, req.Ask, req.Offer)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, bidservice.ErrAuthorizationFailed):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, bidservice.ErrConcurrentBidUpdate):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBidDTO(bid))
}

// GetBid godoc
//
//	@Summary		Get own bid on an issue
//	@Tags			Bids
//	@Security		BearerAuth
//	@Produce		json
//	@Param			url	query		string	true	"Issue url"
//	@Success		200	{object}	dto.BidResponseDTO
//	@Success		204	{string}	string			"No bid on this url"
//	@Failure		400	{object}	utils.Response	"Missing url"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/bids [get]
func (h *BidHandler) GetBid(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	url := r.URL.Query().Get("url")
	if url == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "url is required")
		return
	}
	bid, err := h.bidService.GetBid(r.Context(), userID, url)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if bid == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBidDTO(bid))
}

func toBidDTO(bid *domain.Bid) dto.BidResponseDTO {
	return dto.BidResponseDTO{
		ID:           bid.ID,
		URL:          bid.URL,
		IssueID:      bid.IssueID,
		Ask:          bid.Ask,
		Offer:        bid.Offer,
		AskMatchSent: bid.AskMatchSent,
	}
}
