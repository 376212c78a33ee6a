package bids

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/bidservice"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

const issueURL = "https://github.com/codesy/codesy/issues/42"

func NewMock(t *testing.T) (*BidHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withUser(r *http.Request, userID int) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, userID))
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSaveBidHandler(t *testing.T) {
	bid := &domain.Bid{ID: 7, UserID: 1, URL: issueURL, IssueID: 3, Ask: d("50"), Offer: d("25")}

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Bid saved",
			body: `{"url":"` + issueURL + `","ask":"50","offer":"25"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordBidOrOffer(gomock.Any(), 1, issueURL, d("50"), d("25")).Return(bid, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Validation error",
			body: `{"url":"` + issueURL + `","ask":"0.001","offer":"0"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordBidOrOffer(gomock.Any(), 1, issueURL, d("0.001"), d("0")).Return(nil, bidservice.ErrInvalidAmount)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: bidservice.ErrInvalidAmount.Error(),
		},
		{
			name: "Issue closed for bidding",
			body: `{"url":"` + issueURL + `","ask":"0","offer":"10"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordBidOrOffer(gomock.Any(), 1, issueURL, d("0"), d("10")).Return(nil, bidservice.ErrNotBiddable)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: bidservice.ErrNotBiddable.Error(),
		},
		{
			name: "Authorization declined",
			body: `{"url":"` + issueURL + `","ask":"0","offer":"10"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordBidOrOffer(gomock.Any(), 1, issueURL, d("0"), d("10")).
					Return(nil, errors.Join(bidservice.ErrAuthorizationFailed, errors.New("card declined")))
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "offer could not be authorized\ncard declined",
		},
		{
			name: "Concurrent bid update",
			body: `{"url":"` + issueURL + `","ask":"0","offer":"10"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordBidOrOffer(gomock.Any(), 1, issueURL, d("0"), d("10")).Return(nil, bidservice.ErrConcurrentBidUpdate)
			},
			expectedCode:  http.StatusConflict,
			expectedError: bidservice.ErrConcurrentBidUpdate.Error(),
		},
		{
			name: "Internal error",
			body: `{"url":"` + issueURL + `","ask":"0","offer":"10"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().RecordBidOrOffer(gomock.Any(), 1, issueURL, d("0"), d("10")).Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/bids", bytes.NewReader([]byte(tt.body))), 1)
			rr := httptest.NewRecorder()

			handler.SaveBid(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var resp dto.BidResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, 7, resp.ID)
			assert.True(t, d("50").Equal(resp.Ask))
			assert.True(t, d("25").Equal(resp.Offer))
		})
	}
}

func TestGetBidHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:  "Bid found",
			query: "?url=" + issueURL,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBid(gomock.Any(), 1, issueURL).
					Return(&domain.Bid{ID: 7, URL: issueURL, Ask: d("50"), Offer: d("0")}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "No bid",
			query: "?url=" + issueURL,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBid(gomock.Any(), 1, issueURL).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:         "Missing url",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal error",
			query: "?url=" + issueURL,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetBid(gomock.Any(), 1, issueURL).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withUser(httptest.NewRequest(http.MethodGet, "/api/bids"+tt.query, nil), 1)
			rr := httptest.NewRecorder()

			handler.GetBid(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
