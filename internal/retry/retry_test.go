package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	claims     *MockClaimRepo
	offers     *MockOfferRepo
	settler    *MockSettler
	refunder   *MockRefunder
	workerPool *MockWorkerPoolI
}

var staleBefore = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		claims:     NewMockClaimRepo(ctrl),
		offers:     NewMockOfferRepo(ctrl),
		settler:    NewMockSettler(ctrl),
		refunder:   NewMockRefunder(ctrl),
		workerPool: NewMockWorkerPoolI(ctrl),
	}
	s := &Service{
		claims:     m.claims,
		offers:     m.offers,
		settler:    m.settler,
		refunder:   m.refunder,
		workerPool: m.workerPool,
		limit:      10,
	}
	return s, m
}

func (m *mocks) runTasks() {
	m.workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task Task) error {
			_ = task()
			return nil
		}).AnyTimes()
}

func TestService_Start(t *testing.T) {
	t.Run("disabled with zero interval", func(t *testing.T) {
		s, _ := NewMock(t)
		s.Start(context.Background())
	})

	t.Run("stops on cancel", func(t *testing.T) {
		s, m := NewMock(t)
		s.interval = time.Hour
		closed := make(chan struct{})
		m.workerPool.EXPECT().Close().Do(func() { close(closed) })

		ctx, cancel := context.WithCancel(context.Background())
		go s.Start(ctx)
		cancel()

		select {
		case <-closed:
		case <-time.After(time.Second):
			t.Fatal("resume loop did not stop")
		}
	})
}

func TestService_StartRunsOnSchedule(t *testing.T) {
	s, m := NewMock(t)
	s.interval = 10 * time.Millisecond

	ran := make(chan struct{}, 1)
	closed := make(chan struct{})
	m.settler.EXPECT().StaleBefore().Return(staleBefore).MinTimes(1)
	m.claims.EXPECT().FindUnsettled(gomock.Any(), staleBefore, 10).Return(nil, nil).MinTimes(1)
	m.offers.EXPECT().FindPendingRefunds(gomock.Any(), 10).DoAndReturn(func(context.Context, int) ([]domain.Offer, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)
	m.workerPool.EXPECT().Close().Do(func() { close(closed) })

	ctx, cancel := context.WithCancel(context.Background())
	go s.Start(ctx)

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("resume job never ran")
	}
	cancel()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatal("resume loop did not stop")
	}
}

func TestService_Resume(t *testing.T) {
	tests := []struct {
		name        string
		prepareMock func(m *mocks)
	}{
		{
			name: "resumes settlements and refunds",
			prepareMock: func(m *mocks) {
				m.runTasks()
				m.settler.EXPECT().StaleBefore().Return(staleBefore)
				m.claims.EXPECT().FindUnsettled(gomock.Any(), staleBefore, 10).
					Return([]domain.Claim{{ID: 1}, {ID: 2}}, nil)
				m.settler.EXPECT().Execute(gomock.Any(), 1).Return(nil)
				m.settler.EXPECT().Execute(gomock.Any(), 2).Return(errors.New("gateway down"))
				m.offers.EXPECT().FindPendingRefunds(gomock.Any(), 10).
					Return([]domain.Offer{{ID: 7}}, nil)
				m.refunder.EXPECT().CompleteRefund(gomock.Any(), domain.Offer{ID: 7}).Return(nil)
			},
		},
		{
			name: "claim lookup failure still resumes refunds",
			prepareMock: func(m *mocks) {
				m.runTasks()
				m.settler.EXPECT().StaleBefore().Return(staleBefore)
				m.claims.EXPECT().FindUnsettled(gomock.Any(), staleBefore, 10).
					Return(nil, errors.New("db down"))
				m.offers.EXPECT().FindPendingRefunds(gomock.Any(), 10).
					Return([]domain.Offer{{ID: 7}}, nil)
				m.refunder.EXPECT().CompleteRefund(gomock.Any(), domain.Offer{ID: 7}).Return(nil)
			},
		},
		{
			name: "pool rejection is logged",
			prepareMock: func(m *mocks) {
				m.settler.EXPECT().StaleBefore().Return(staleBefore)
				m.claims.EXPECT().FindUnsettled(gomock.Any(), staleBefore, 10).
					Return([]domain.Claim{{ID: 1}}, nil)
				m.offers.EXPECT().FindPendingRefunds(gomock.Any(), 10).Return(nil, nil)
				m.workerPool.EXPECT().AddTask(gomock.Any(), gomock.Any()).Return(context.Canceled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := NewMock(t)
			tt.prepareMock(m)
			s.Resume(context.Background())

			_, busy := s.inFlight.Load("claim-1")
			assert.False(t, busy)
		})
	}
}

func TestService_ResumeSkipsInFlight(t *testing.T) {
	s, m := NewMock(t)
	s.inFlight.Store("claim-1", struct{}{})

	m.runTasks()
	m.settler.EXPECT().StaleBefore().Return(staleBefore)
	m.claims.EXPECT().FindUnsettled(gomock.Any(), staleBefore, 10).
		Return([]domain.Claim{{ID: 1}, {ID: 3}}, nil)
	m.settler.EXPECT().Execute(gomock.Any(), 3).Return(nil)
	m.offers.EXPECT().FindPendingRefunds(gomock.Any(), 10).Return(nil, nil)

	s.Resume(context.Background())

	_, busy := s.inFlight.Load("claim-1")
	assert.True(t, busy)
	_, busy = s.inFlight.Load("claim-3")
	assert.False(t, busy)
}
