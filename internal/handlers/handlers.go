package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/gobounty/docs"
	authhandlers "github.com/GlebRadaev/gobounty/internal/handlers/auth"
	bidhandlers "github.com/GlebRadaev/gobounty/internal/handlers/bids"
	claimhandlers "github.com/GlebRadaev/gobounty/internal/handlers/claims"
	paymenthandlers "github.com/GlebRadaev/gobounty/internal/handlers/payment"
	webhookhandlers "github.com/GlebRadaev/gobounty/internal/handlers/webhooks"
	"github.com/GlebRadaev/gobounty/internal/service"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type BidHandler interface {
	SaveBid(w http.ResponseWriter, r *http.Request)
	GetBid(w http.ResponseWriter, r *http.Request)
}

type ClaimHandler interface {
	CreateClaim(w http.ResponseWriter, r *http.Request)
	GetClaim(w http.ResponseWriter, r *http.Request)
	Vote(w http.ResponseWriter, r *http.Request)
	RequestPayout(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	GetStatus(w http.ResponseWriter, r *http.Request)
	Setup(w http.ResponseWriter, r *http.Request)
}

type WebhookHandler interface {
	Stripe(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	BidHandler     BidHandler
	ClaimHandler   ClaimHandler
	PaymentHandler PaymentHandler
	WebhookHandler WebhookHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		BidHandler:     bidhandlers.New(s.BidService),
		ClaimHandler:   claimhandlers.New(s.ClaimService),
		PaymentHandler: paymenthandlers.New(s.PaymentService),
		WebhookHandler: webhookhandlers.New(s.WebhookService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/user/register", h.AuthHandler.Register)
		r.Post("/user/login", h.AuthHandler.Login)
		r.Post("/webhooks/stripe", h.WebhookHandler.Stripe)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.jwtService))
			r.Get("/user/payment", h.PaymentHandler.GetStatus)
			r.Put("/user/payment", h.PaymentHandler.Setup)
			r.Route("/bids", func(r chi.Router) {
				r.Post("/", h.BidHandler.SaveBid)
				r.Get("/", h.BidHandler.GetBid)
			})
			r.Route("/claims", func(r chi.Router) {
				r.Post("/", h.ClaimHandler.CreateClaim)
				r.Get("/{id}", h.ClaimHandler.GetClaim)
				r.Post("/{id}/votes", h.ClaimHandler.Vote)
				r.Post("/{id}/payout", h.ClaimHandler.RequestPayout)
			})
		})
	})

	return r
}
