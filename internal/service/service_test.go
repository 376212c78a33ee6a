package service

import (
	"testing"
	"time"

	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/GlebRadaev/gobounty/internal/repo"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/clients"
	"github.com/GlebRadaev/gobounty/pkg/gateway"
	"github.com/GlebRadaev/gobounty/pkg/github"
	"github.com/GlebRadaev/gobounty/pkg/mailer"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockDB.Close()
	txManager := pg.NewMockTXManager(ctrl)

	services := New(Deps{
		Repos:         repo.New(mockDB, txManager),
		TX:            txManager,
		Gateway:       gateway.New("sk_test_123", "usd", settlement.DefaultFeeSchedule()),
		Notifier:      mailer.LogNotifier{},
		Resolver:      github.New(clients.NewMockHTTPClientI(ctrl), "https://api.github.com", ""),
		Hash:          auth.NewMockHashServiceInterface(ctrl),
		JWT:           auth.NewMockJWTServiceInterface(ctrl),
		From:          "codesy notifications <notifications@codesy.io>",
		RetryInterval: time.Minute,
	})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BidService)
	assert.NotNil(t, services.ClaimService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.WebhookService)
	assert.NotNil(t, services.Retry)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
