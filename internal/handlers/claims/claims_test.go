package claims

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/claimservice"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const (
	issueURL    = "https://github.com/codesy/codesy/issues/42"
	evidenceURL = "https://github.com/codesy/codesy/pull/43"
)

var created = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*ClaimHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, body, id string, userID int) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	rctx := chi.NewRouteContext()
	if id != "" {
		rctx.URLParams.Add("id", id)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, auth.UserIDKey, userID)
	return req.WithContext(ctx)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

func TestCreateClaimHandler(t *testing.T) {
	claim := &domain.Claim{
		ID:       5,
		IssueID:  3,
		UserID:   1,
		Evidence: evidenceURL,
		Status:   domain.ClaimSubmitted,
		Created:  created,
		Expires:  created.Add(domain.ClaimLifetime),
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Claim created",
			body: `{"url":"` + issueURL + `","evidence":"` + evidenceURL + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateClaim(gomock.Any(), 1, issueURL, evidenceURL).Return(claim, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Issue already claimed",
			body: `{"url":"` + issueURL + `","evidence":"` + evidenceURL + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateClaim(gomock.Any(), 1, issueURL, evidenceURL).Return(nil, claimservice.ErrNotClaimable)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: claimservice.ErrNotClaimable.Error(),
		},
		{
			name: "Internal error",
			body: `{"url":"` + issueURL + `","evidence":"` + evidenceURL + `"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().CreateClaim(gomock.Any(), 1, issueURL, evidenceURL).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateClaim(rr, newRequest(http.MethodPost, "/api/claims", tt.body, "", 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.ClaimResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 5, resp.ID)
			assert.Equal(t, domain.ClaimSubmitted, resp.Status)
			assert.True(t, created.Add(domain.ClaimLifetime).Equal(resp.Expires))
		})
	}
}

func TestGetClaimHandler(t *testing.T) {
	details := &claimservice.ClaimDetails{
		Claim:        domain.Claim{ID: 5, UserID: 1, Status: domain.ClaimPaid, SettlementStatus: domain.SettlementComplete},
		Tally:        domain.VoteTally{Approvals: 2},
		OffersNeeded: 2,
		Payouts: []claimservice.PayoutDetails{{
			Payout: domain.Payout{ID: 11, UserID: 2, Amount: decimal.RequireFromString("48.57"), APISuccess: true},
			Fees: []domain.Fee{
				{Kind: domain.KindFee, FeeType: domain.FeeTypeStripe, Amount: decimal.RequireFromString("1.71")},
			},
		}},
	}

	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Claim found",
			id:   "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetClaim(gomock.Any(), 5).Return(details, nil)
				service.EXPECT().NeedsVoteFromUser(gomock.Any(), details.Claim, 3).Return(true, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Claim not found",
			id:   "9",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetClaim(gomock.Any(), 9).Return(nil, claimservice.ErrClaimNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Vote lookup fails",
			id:   "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().GetClaim(gomock.Any(), 5).Return(details, nil)
				service.EXPECT().NeedsVoteFromUser(gomock.Any(), details.Claim, 3).Return(false, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.GetClaim(rr, newRequest(http.MethodGet, "/api/claims/"+tt.id, "", tt.id, 3))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode != http.StatusOK {
				return
			}
			var resp dto.ClaimDetailsResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 2, resp.Approvals)
			assert.True(t, resp.NeedsVote)
			assert.Equal(t, domain.SettlementComplete, resp.SettlementStatus)
			require.Len(t, resp.Payouts, 1)
			assert.True(t, decimal.RequireFromString("48.57").Equal(resp.Payouts[0].Amount))
			require.Len(t, resp.Payouts[0].Fees, 1)
			assert.Equal(t, domain.FeeTypeStripe, resp.Payouts[0].Fees[0].FeeType)
		})
	}
}

func TestVoteHandler(t *testing.T) {
	vote := domain.Vote{ID: 9, UserID: 2, ClaimID: 5, Approved: true}

	tests := []struct {
		name          string
		id            string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		check         func(t *testing.T, resp dto.VoteResponseDTO)
	}{
		{
			name: "Vote approves the claim",
			id:   "5",
			body: `{"approved":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordVote(gomock.Any(), 2, 5, true).
					Return(&claimservice.VoteResult{Vote: vote, Status: domain.ClaimApproved}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, resp dto.VoteResponseDTO) {
				assert.Equal(t, domain.ClaimApproved, resp.ClaimStatus)
				assert.Empty(t, resp.SettlementError)
			},
		},
		{
			name: "Settlement failure is reported with the vote",
			id:   "5",
			body: `{"approved":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordVote(gomock.Any(), 2, 5, true).
					Return(&claimservice.VoteResult{Vote: vote, Status: domain.ClaimApproved, Settlement: errors.New("payee not payable")}, nil)
			},
			expectedCode: http.StatusCreated,
			check: func(t *testing.T, resp dto.VoteResponseDTO) {
				assert.Equal(t, "payee not payable", resp.SettlementError)
			},
		},
		{
			name: "Second vote refused",
			id:   "5",
			body: `{"approved":false}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordVote(gomock.Any(), 2, 5, false).Return(nil, claimservice.ErrAlreadyVoted)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: claimservice.ErrAlreadyVoted.Error(),
		},
		{
			name:          "Invalid request body",
			id:            "5",
			body:          `nope`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Claim not found",
			id:   "6",
			body: `{"approved":true}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordVote(gomock.Any(), 2, 6, true).Return(nil, claimservice.ErrClaimNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: claimservice.ErrClaimNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.Vote(rr, newRequest(http.MethodPost, "/api/claims/"+tt.id+"/votes", tt.body, tt.id, 2))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, decodeError(t, rr))
				return
			}
			var resp dto.VoteResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 9, resp.ID)
			tt.check(t, resp)
		})
	}
}

func TestRequestPayoutHandler(t *testing.T) {
	tests := []struct {
		name         string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Payout requested",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, 5).
					Return(&domain.Claim{ID: 5, UserID: 1, Status: domain.ClaimRequested}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Claim not approved",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, 5).Return(nil, claimservice.ErrNotApproved)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			prepareMock: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, 5).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.RequestPayout(rr, newRequest(http.MethodPost, "/api/claims/5/payout", "", "5", 1))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
