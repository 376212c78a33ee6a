package claims

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/claimservice"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/utils"
	"github.com/go-chi/chi/v5"
)

//go:generate mockgen -source=claims.go -destination=mock_claims.go -package=claims

type Service interface {
	CreateClaim(ctx context.Context, userID int, url, evidence string) (*domain.Claim, error)
	GetClaim(ctx context.Context, claimID int) (*claimservice.ClaimDetails, error)
	RecordVote(ctx context.Context, userID, claimID int, approved bool) (*claimservice.VoteResult, error)
	RequestPayout(ctx context.Context, userID, claimID int) (*domain.Claim, error)
	NeedsVoteFromUser(ctx context.Context, claim domain.Claim, userID int) (bool, error)
}

type ClaimHandler struct {
	claimService Service
}

func New(claimService Service) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// CreateClaim godoc
//
//	@Summary		Claim an issue
//	@Description	Submit evidence that the authenticated user resolved the issue. Offerers are asked to vote.
//	@Tags			Claims
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClaimRequestDTO	true	"Claim payload"
//	@Success		201		{object}	dto.ClaimResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid claim"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/claims [post]
func (h *ClaimHandler) CreateClaim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.ClaimRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	claim, err := h.claimService.CreateClaim(r.Context(), userID, req.URL, req.Evidence)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toClaimDTO(*claim))
}

// GetClaim godoc
//
//	@Summary		Get a claim
//	@Description	Claim with its vote tally, whether the caller still has to vote and, once settled, the payouts and their fees.
//	@Tags			Claims
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Claim id"
//	@Success		200	{object}	dto.ClaimDetailsResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid claim id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/claims/{id} [get]
func (h *ClaimHandler) GetClaim(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	claimID, ok := claimIDParam(w, r)
	if !ok {
		return
	}
	details, err := h.claimService.GetClaim(r.Context(), claimID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	needsVote, err := h.claimService.NeedsVoteFromUser(r.Context(), details.Claim, userID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	resp := dto.ClaimDetailsResponseDTO{
		ClaimResponseDTO: toClaimDTO(details.Claim),
		Approvals:        details.Tally.Approvals,
		Rejections:       details.Tally.Rejections,
		OffersNeeded:     details.OffersNeeded,
		NeedsVote:        needsVote,
		Payouts:          make([]dto.PayoutDTO, 0, len(details.Payouts)),
	}
	for _, p := range details.Payouts {
		payout := dto.PayoutDTO{
			ID:           p.Payout.ID,
			UserID:       p.Payout.UserID,
			Amount:       p.Payout.Amount,
			Discount:     p.Payout.Discount,
			ChargeAmount: p.Payout.ChargeAmount,
			APISuccess:   p.Payout.APISuccess,
			Fees:         make([]dto.FeeDTO, 0, len(p.Fees)),
		}
		for _, f := range p.Fees {
			payout.Fees = append(payout.Fees, dto.FeeDTO{Kind: string(f.Kind), FeeType: f.FeeType, Amount: f.Amount})
		}
		resp.Payouts = append(resp.Payouts, payout)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Vote godoc
//
//	@Summary		Vote on a claim
//	@Description	An offerer approves or rejects the claim. The vote that approves the claim starts its settlement.
//	@Tags			Claims
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Claim id"
//	@Param			request	body		dto.VoteRequestDTO	true	"Vote payload"
//	@Success		201		{object}	dto.VoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Vote not allowed"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Claim not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/claims/{id}/votes [post]
func (h *ClaimHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	claimID, ok := claimIDParam(w, r)
	if !ok {
		return
	}
	var req dto.VoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	result, err := h.claimService.RecordVote(r.Context(), userID, claimID, req.Approved)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	resp := dto.VoteResponseDTO{
		ID:          result.Vote.ID,
		ClaimID:     result.Vote.ClaimID,
		Approved:    result.Vote.Approved,
		ClaimStatus: result.Status,
	}
	if result.Settlement != nil {
		resp.SettlementError = result.Settlement.Error()
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// RequestPayout godoc
//
//	@Summary		Request the payout of an approved claim
//	@Tags			Claims
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Claim id"
//	@Success		200	{object}	dto.ClaimResponseDTO
//	@Failure		400	{object}	utils.Response	"Claim not approved or not owned"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Claim not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/claims/{id}/payout [post]
func (h *ClaimHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	claimID, ok := claimIDParam(w, r)
	if !ok {
		return
	}
	claim, err := h.claimService.RequestPayout(r.Context(), userID, claimID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toClaimDTO(*claim))
}

func claimIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid claim id")
		return 0, false
	}
	return id, true
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, claimservice.ErrClaimNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toClaimDTO(claim domain.Claim) dto.ClaimResponseDTO {
	return dto.ClaimResponseDTO{
		ID:               claim.ID,
		IssueID:          claim.IssueID,
		UserID:           claim.UserID,
		Evidence:         claim.Evidence,
		Status:           claim.Status,
		Created:          claim.Created,
		Expires:          claim.Expires,
		SettlementStatus: claim.SettlementStatus,
		SettlementError:  claim.SettlementError,
	}
}
