package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gobounty/internal/config"
	"github.com/GlebRadaev/gobounty/internal/handlers"
	"github.com/GlebRadaev/gobounty/internal/pg"
	"github.com/GlebRadaev/gobounty/internal/repo"
	"github.com/GlebRadaev/gobounty/internal/service"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/GlebRadaev/gobounty/pkg/auth"
	"github.com/GlebRadaev/gobounty/pkg/clients"
	"github.com/GlebRadaev/gobounty/pkg/gateway"
	"github.com/GlebRadaev/gobounty/pkg/github"
	"github.com/GlebRadaev/gobounty/pkg/logger"
	"github.com/GlebRadaev/gobounty/pkg/mailer"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	notifier, err := newNotifier(cfg)
	if err != nil {
		return fmt.Errorf("can't build notifier: %w", err)
	}
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(service.Deps{
		Repos:         a.repo,
		TX:            txManager,
		Gateway:       gateway.New(cfg.StripeSecretKey, cfg.StripeCurrency, feeSchedule(cfg)),
		Notifier:      notifier,
		Resolver:      github.New(clients.NewHTTPClient(clients.WithUserAgent("gobounty")), cfg.GitHubAPIURL, cfg.GitHubToken),
		Hash:          auth.NewHashService(bcryptCost),
		JWT:           jwtService,
		From:          cfg.FromEmail,
		RetryInterval: cfg.RetryInterval,
	})
	a.api = handlers.New(a.srv, jwtService)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startRetryJob(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

const bcryptCost = 10

func feeSchedule(cfg *config.Config) settlement.FeeSchedule {
	return settlement.FeeSchedule{
		GatewayPct:   cfg.GatewayPct,
		GatewayFixed: cfg.GatewayFixed,
		PlatformPct:  cfg.PlatformPct,
	}
}

// newNotifier falls back to logging messages when no SMTP host is configured.
func newNotifier(cfg *config.Config) (service.Notifier, error) {
	if cfg.SMTPHost == "" {
		zap.L().Warn("smtp host not set, notifications are only logged")
		return mailer.LogNotifier{}, nil
	}
	return mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startRetryJob(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.srv.Retry.Start(ctx)
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
