package repo

import (
	"github.com/GlebRadaev/gobounty/internal/pg"
	accountrepo "github.com/GlebRadaev/gobounty/internal/repo/account-repo"
	bidrepo "github.com/GlebRadaev/gobounty/internal/repo/bid-repo"
	claimrepo "github.com/GlebRadaev/gobounty/internal/repo/claim-repo"
	eventrepo "github.com/GlebRadaev/gobounty/internal/repo/event-repo"
	paymentrepo "github.com/GlebRadaev/gobounty/internal/repo/payment-repo"
	userrepo "github.com/GlebRadaev/gobounty/internal/repo/user-repo"
)

// Repositories are shared by several services, each seeing them through its own interfaces.
type Repositories struct {
	UserRepo    *userrepo.Repository
	AccountRepo *accountrepo.Repository
	BidRepo     *bidrepo.Repository
	ClaimRepo   *claimrepo.Repository
	PaymentRepo *paymentrepo.Repository
	EventRepo   *eventrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		AccountRepo: accountrepo.New(conn),
		BidRepo:     bidrepo.New(conn),
		ClaimRepo:   claimrepo.New(conn, txManager),
		PaymentRepo: paymentrepo.New(conn, txManager),
		EventRepo:   eventrepo.New(conn),
	}
}
