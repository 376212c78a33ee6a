package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/handlers/auth"
	"github.com/GlebRadaev/gobounty/internal/handlers/bids"
	"github.com/GlebRadaev/gobounty/internal/handlers/claims"
	"github.com/GlebRadaev/gobounty/internal/handlers/payment"
	"github.com/GlebRadaev/gobounty/internal/handlers/webhooks"
	"github.com/GlebRadaev/gobounty/internal/service"
	pkgauth "github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		BidService:     bids.NewMockService(ctrl),
		ClaimService:   claims.NewMockService(ctrl),
		PaymentService: payment.NewMockService(ctrl),
		WebhookService: webhooks.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockBidHandler := NewMockBidHandler(ctrl)
	mockClaimHandler := NewMockClaimHandler(ctrl)
	mockPaymentHandler := NewMockPaymentHandler(ctrl)
	mockWebhookHandler := NewMockWebhookHandler(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWebhookHandler.EXPECT().Stripe(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().SaveBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockBidHandler.EXPECT().GetBid(gomock.Any(), gomock.Any()).AnyTimes()
	mockClaimHandler.EXPECT().CreateClaim(gomock.Any(), gomock.Any()).AnyTimes()
	mockClaimHandler.EXPECT().GetClaim(gomock.Any(), gomock.Any()).AnyTimes()
	mockClaimHandler.EXPECT().Vote(gomock.Any(), gomock.Any()).AnyTimes()
	mockClaimHandler.EXPECT().RequestPayout(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().GetStatus(gomock.Any(), gomock.Any()).AnyTimes()
	mockPaymentHandler.EXPECT().Setup(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{UserID: 1}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("bad").Return(nil, errors.New("token expired")).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		BidHandler:     mockBidHandler,
		ClaimHandler:   mockClaimHandler,
		PaymentHandler: mockPaymentHandler,
		WebhookHandler: mockWebhookHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/user/register", "", http.StatusOK},
		{"POST", "/api/user/login", "", http.StatusOK},
		{"POST", "/api/webhooks/stripe", "", http.StatusOK},
		{"POST", "/api/bids", "", http.StatusUnauthorized},
		{"GET", "/api/bids", "bad", http.StatusUnauthorized},
		{"POST", "/api/bids", "good", http.StatusOK},
		{"GET", "/api/bids", "good", http.StatusOK},
		{"POST", "/api/claims", "", http.StatusUnauthorized},
		{"POST", "/api/claims", "good", http.StatusOK},
		{"GET", "/api/claims/5", "good", http.StatusOK},
		{"POST", "/api/claims/5/votes", "good", http.StatusOK},
		{"POST", "/api/claims/5/payout", "good", http.StatusOK},
		{"GET", "/api/user/payment", "", http.StatusUnauthorized},
		{"PUT", "/api/user/payment", "good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url+" "+tt.token, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
