package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/config"
	"github.com/GlebRadaev/gobounty/pkg/mailer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestFeeSchedule() {
	cfg := &config.Config{
		GatewayPct:   decimal.RequireFromString("0.029"),
		GatewayFixed: decimal.RequireFromString("0.30"),
		PlatformPct:  decimal.RequireFromString("0.025"),
	}

	fees := feeSchedule(cfg)

	s.True(cfg.GatewayPct.Equal(fees.GatewayPct))
	s.True(cfg.GatewayFixed.Equal(fees.GatewayFixed))
	s.True(cfg.PlatformPct.Equal(fees.PlatformPct))
}

func (s *ApplicationSuite) TestNewNotifier() {
	notifier, err := newNotifier(&config.Config{})
	s.Require().NoError(err)
	s.IsType(mailer.LogNotifier{}, notifier)

	notifier, err = newNotifier(&config.Config{SMTPHost: "localhost", SMTPPort: 2525})
	s.Require().NoError(err)
	s.IsType(&mailer.Mailer{}, notifier)
}
