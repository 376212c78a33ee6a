// Package retry periodically resumes settlements and refunds whose gateway side did not finish.
package retry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=retry.go -destination=mock_retry.go -package=retry

type ClaimRepo interface {
	FindUnsettled(ctx context.Context, staleBefore time.Time, limit int) ([]domain.Claim, error)
}

type OfferRepo interface {
	FindPendingRefunds(ctx context.Context, limit int) ([]domain.Offer, error)
}

type Settler interface {
	Execute(ctx context.Context, claimID int) error
	StaleBefore() time.Time
}

type Refunder interface {
	CompleteRefund(ctx context.Context, offer domain.Offer) error
}

const (
	defaultLimit   = 100
	defaultWorkers = 4
)

type Service struct {
	claims     ClaimRepo
	offers     OfferRepo
	settler    Settler
	refunder   Refunder
	workerPool WorkerPoolI
	interval   time.Duration
	limit      int
	inFlight   sync.Map
}

func New(claims ClaimRepo, offers OfferRepo, settler Settler, refunder Refunder, interval time.Duration) *Service {
	return &Service{
		claims:     claims,
		offers:     offers,
		settler:    settler,
		refunder:   refunder,
		workerPool: NewWorkerPool(defaultWorkers),
		interval:   interval,
		limit:      defaultLimit,
	}
}

// Start runs the resume loop until ctx is done. A non-positive interval disables it.
func (s *Service) Start(ctx context.Context) {
	if s.interval <= 0 {
		zap.L().Info("resume job disabled")
		return
	}
	zap.L().Info("resume job started", zap.Duration("interval", s.interval))
	s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	defer s.workerPool.Close()

	sched, err := gocron.NewScheduler()
	if err != nil {
		zap.L().Error("can't create resume scheduler", zap.Error(err))
		return
	}
	_, err = sched.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.Resume, ctx),
		gocron.WithName("resume-settlements"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		zap.L().Error("can't schedule resume job", zap.Error(err))
		_ = sched.Shutdown()
		return
	}
	sched.Start()

	<-ctx.Done()
	zap.L().Info("context canceled, stopping resume job")
	if err := sched.Shutdown(); err != nil {
		zap.L().Error("can't stop resume scheduler", zap.Error(err))
	}
}

// Resume dispatches one round of unfinished settlements and refunds to the worker pool.
func (s *Service) Resume(ctx context.Context) {
	var g errgroup.Group

	claims, err := s.claims.FindUnsettled(ctx, s.settler.StaleBefore(), s.limit)
	if err != nil {
		zap.L().Error("failed to fetch unsettled claims", zap.Error(err))
	}
	for _, claim := range claims {
		claimID := claim.ID
		s.dispatch(ctx, &g, fmt.Sprintf("claim-%d", claimID), func() error {
			return s.settler.Execute(ctx, claimID)
		})
	}

	offers, err := s.offers.FindPendingRefunds(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch pending refunds", zap.Error(err))
	}
	for _, offer := range offers {
		offer := offer
		s.dispatch(ctx, &g, fmt.Sprintf("offer-%d", offer.ID), func() error {
			return s.refunder.CompleteRefund(ctx, offer)
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error dispatching resume tasks", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, g *errgroup.Group, key string, task Task) {
	if _, loaded := s.inFlight.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	g.Go(func() error {
		err := s.workerPool.AddTask(ctx, func() error {
			defer s.inFlight.Delete(key)
			return task()
		})
		if err != nil {
			s.inFlight.Delete(key)
			return err
		}
		return nil
	})
}
