// Package webhookservice ingests payment provider events: every event is stored, verified
// against the provider and dispatched to the processor registered for its type.
package webhookservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=webhookservice.go -destination=mock_webhookservice.go -package=webhookservice

type EventRepo interface {
	SaveRaw(ctx context.Context, event *domain.PaymentEvent) (*domain.PaymentEvent, bool, error)
	MarkVerified(ctx context.Context, eventID, eventType, message string) error
	MarkProcessed(ctx context.Context, eventID string) error
}

type AccountRepo interface {
	UpdateVerification(ctx context.Context, accountID, verification string) (bool, error)
	UpdateAvailableBalance(ctx context.Context, accountID string, amount decimal.Decimal) (bool, error)
}

type PaymentRepo interface {
	RecordRefundByCharge(ctx context.Context, chargeID, refundID string) (int64, error)
}

type Gateway interface {
	RetrieveEvent(ctx context.Context, eventID, accountID string) (*domain.VerifiedEvent, error)
}

// Processor applies one verified event to the ledger. Implementations must be idempotent.
type Processor interface {
	Process(ctx context.Context, event domain.VerifiedEvent) error
}

type ProcessorFunc func(ctx context.Context, event domain.VerifiedEvent) error

func (f ProcessorFunc) Process(ctx context.Context, event domain.VerifiedEvent) error {
	return f(ctx, event)
}

var (
	ErrUnverifiedEvent = errors.New("payment event could not be verified with the provider")
	ErrMissingEventID  = domain.NewValidationError("event id is required")
)

// Result describes what happened to an ingested event.
type Result struct {
	EventID   string
	Type      string
	Duplicate bool
	Verified  bool
	Processed bool
}

type Pipeline struct {
	events     EventRepo
	gateway    Gateway
	processors map[string]Processor
	now        func() time.Time
}

// New builds the pipeline with its fixed processor table.
func New(events EventRepo, accounts AccountRepo, payments PaymentRepo, gateway Gateway) *Pipeline {
	return &Pipeline{
		events:  events,
		gateway: gateway,
		processors: map[string]Processor{
			"account.updated":   accountUpdated{accounts: accounts},
			"balance.available": balanceAvailable{accounts: accounts},
			"charge.refunded":   chargeRefunded{payments: payments},
			"charge.updated":    unhandled("charge.updated"),
			"payment.created":   unhandled("payment.created"),
		},
		now: time.Now,
	}
}

// Handles reports whether a processor is registered for eventType.
func (p *Pipeline) Handles(eventType string) bool {
	_, ok := p.processors[eventType]
	return ok
}

// Ingest stores the event, re-fetches it from the provider and runs its processor. Redelivery
// of an already processed event is a no-op. Processor failures leave the event unprocessed and
// are not returned.
func (p *Pipeline) Ingest(ctx context.Context, eventID, accountID string, payload []byte) (*Result, error) {
	if eventID == "" {
		return nil, ErrMissingEventID
	}

	stored, created, err := p.events.SaveRaw(ctx, &domain.PaymentEvent{
		EventID:     eventID,
		UserID:      accountID,
		MessageText: string(payload),
		Created:     p.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	result := &Result{EventID: eventID, Type: stored.Type, Duplicate: !created, Verified: stored.Verified}
	if stored.Processed {
		result.Processed = true
		zap.L().Info("payment event already processed", zap.String("event_id", eventID))
		return result, nil
	}

	verified, err := p.gateway.RetrieveEvent(ctx, eventID, accountID)
	if err != nil {
		return nil, err
	}
	if verified == nil {
		zap.L().Warn("payment event not verified", zap.String("event_id", eventID), zap.String("account", accountID))
		return nil, fmt.Errorf("%w: %s", ErrUnverifiedEvent, eventID)
	}
	if err := p.events.MarkVerified(ctx, eventID, verified.Type, string(verified.Raw)); err != nil {
		return nil, err
	}
	result.Type = verified.Type
	result.Verified = true

	processor, ok := p.processors[verified.Type]
	if !ok {
		zap.L().Info("no processor for payment event", zap.String("event_id", eventID), zap.String("type", verified.Type))
		return result, nil
	}
	if err := processor.Process(ctx, *verified); err != nil {
		zap.L().Error("payment event processor failed", zap.String("event_id", eventID), zap.String("type", verified.Type), zap.Error(err))
		return result, nil
	}
	if err := p.events.MarkProcessed(ctx, eventID); err != nil {
		return nil, err
	}
	result.Processed = true
	zap.L().Info("payment event processed", zap.String("event_id", eventID), zap.String("type", verified.Type))
	return result, nil
}
