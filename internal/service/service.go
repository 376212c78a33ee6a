package service

import (
	"context"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/handlers/auth"
	"github.com/GlebRadaev/gobounty/internal/handlers/bids"
	"github.com/GlebRadaev/gobounty/internal/handlers/claims"
	"github.com/GlebRadaev/gobounty/internal/handlers/payment"
	"github.com/GlebRadaev/gobounty/internal/handlers/webhooks"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/GlebRadaev/gobounty/internal/repo"
	"github.com/GlebRadaev/gobounty/internal/retry"
	"github.com/GlebRadaev/gobounty/internal/service/accountservice"
	"github.com/GlebRadaev/gobounty/internal/service/authservice"
	"github.com/GlebRadaev/gobounty/internal/service/bidservice"
	"github.com/GlebRadaev/gobounty/internal/service/claimservice"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/GlebRadaev/gobounty/internal/service/settlementservice"
	"github.com/GlebRadaev/gobounty/internal/service/webhookservice"
	pkgauth "github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/shopspring/decimal"
)

// Gateway is everything the services need from the payment provider.
type Gateway interface {
	CreateCustomer(ctx context.Context, email, cardToken string) (string, error)
	Authorize(ctx context.Context, customerID string, amount decimal.Decimal, key string) (string, error)
	Refund(ctx context.Context, chargeID, key string) (string, error)
	Charge(ctx context.Context, req domain.ChargeRequest) (string, error)
	RetrieveEvent(ctx context.Context, eventID, accountID string) (*domain.VerifiedEvent, error)
	ComputeTransactionAmounts(gross decimal.Decimal) settlement.TransactionAmounts
}

type Notifier interface {
	Send(ctx context.Context, msg domain.Message) error
}

type Deps struct {
	Repos         *repo.Repositories
	TX            pg.TXManager
	Gateway       Gateway
	Notifier      Notifier
	Resolver      bidservice.TitleResolver
	Hash          pkgauth.HashServiceInterface
	JWT           pkgauth.JWTServiceInterface
	From          string
	RetryInterval time.Duration
}

type Services struct {
	AuthService    auth.Service
	BidService     bids.Service
	ClaimService   claims.Service
	PaymentService payment.Service
	WebhookService webhooks.Service
	Retry          *retry.Service
}

func New(deps Deps) *Services {
	r := deps.Repos
	offerFees := settlement.OfferFees{Schedule: deps.Gateway}
	payoutFees := settlement.PayoutFees{Schedule: deps.Gateway}

	accountService := accountservice.New(r.AccountRepo, r.UserRepo, deps.Gateway)
	authService := authservice.New(authservice.Deps{
		TX:       deps.TX,
		Users:    r.UserRepo,
		Accounts: accountService,
		Hash:     deps.Hash,
		JWT:      deps.JWT,
	})
	settlementService := settlementservice.New(settlementservice.Deps{
		Claims:     r.ClaimRepo,
		Bids:       r.BidRepo,
		Payments:   r.PaymentRepo,
		Accounts:   r.AccountRepo,
		Users:      r.UserRepo,
		Gateway:    deps.Gateway,
		Notifier:   deps.Notifier,
		OfferFees:  offerFees,
		PayoutFees: payoutFees,
		From:       deps.From,
	})
	bidService := bidservice.New(bidservice.Deps{
		TX:       deps.TX,
		Bids:     r.BidRepo,
		Claims:   r.ClaimRepo,
		Offers:   r.PaymentRepo,
		Users:    r.UserRepo,
		Gateway:  deps.Gateway,
		Notifier: deps.Notifier,
		Resolver: deps.Resolver,
		Fees:     offerFees,
		From:     deps.From,
	})
	claimService := claimservice.New(claimservice.Deps{
		TX:         deps.TX,
		Bids:       r.BidRepo,
		Claims:     r.ClaimRepo,
		Payments:   r.PaymentRepo,
		Users:      r.UserRepo,
		Settlement: settlementService,
		Notifier:   deps.Notifier,
		From:       deps.From,
	})
	pipeline := webhookservice.New(r.EventRepo, r.AccountRepo, r.PaymentRepo, deps.Gateway)

	return &Services{
		AuthService:    authService,
		BidService:     bidService,
		ClaimService:   claimService,
		PaymentService: accountService,
		WebhookService: pipeline,
		Retry:          retry.New(r.ClaimRepo, r.PaymentRepo, settlementService, bidService, deps.RetryInterval),
	}
}
