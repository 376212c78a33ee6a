package webhooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/dto"
	"github.com/GlebRadaev/gobounty/internal/service/webhookservice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WebhookHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func TestStripeHandler(t *testing.T) {
	const body = `{"id":"evt_1","user_id":"acct_1"}`

	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody *dto.WebhookResponseDTO
	}{
		{
			name: "Event processed",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Ingest(gomock.Any(), "evt_1", "acct_1", []byte(body)).
					Return(&webhookservice.Result{EventID: "evt_1", Type: "account.updated", Verified: true, Processed: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.WebhookResponseDTO{EventID: "evt_1", Type: "account.updated", Processed: true},
		},
		{
			name: "Redelivered event",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Ingest(gomock.Any(), "evt_1", "acct_1", []byte(body)).
					Return(&webhookservice.Result{EventID: "evt_1", Type: "account.updated", Duplicate: true, Processed: true}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.WebhookResponseDTO{EventID: "evt_1", Type: "account.updated", Duplicate: true, Processed: true},
		},
		{
			name: "Unverified event",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Ingest(gomock.Any(), "evt_1", "acct_1", []byte(body)).
					Return(nil, fmt.Errorf("%w: evt_1", webhookservice.ErrUnverifiedEvent))
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Missing event id",
			body: `{}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Ingest(gomock.Any(), "", "", []byte(`{}`)).Return(nil, webhookservice.ErrMissingEventID)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			body:         `not json`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Storage failure",
			body: body,
			prepareMock: func(service *MockService) {
				service.EXPECT().Ingest(gomock.Any(), "evt_1", "acct_1", []byte(body)).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := httptest.NewRequest(http.MethodPost, "/api/webhooks/stripe", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Stripe(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var resp dto.WebhookResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}
