// Package event runs the named domain events raised by mutating operations
// through an ordered, synchronous list of handlers owned by the caller.
package event

import (
	"context"
	"errors"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"go.uber.org/zap"
)

type Handler[E any] func(ctx context.Context, e E) error

// Chain is immutable once built; Fire runs every handler in registration order.
type Chain[E any] struct {
	name     string
	handlers []Handler[E]
}

func NewChain[E any](name string, handlers ...Handler[E]) *Chain[E] {
	hs := make([]Handler[E], len(handlers))
	copy(hs, handlers)
	return &Chain[E]{name: name, handlers: hs}
}

// Fire does not stop on a failing handler; all failures are joined.
func (c *Chain[E]) Fire(ctx context.Context, e E) error {
	if c == nil {
		return nil
	}
	var errs []error
	for _, h := range c.handlers {
		if err := h(ctx, e); err != nil {
			zap.L().Error("event handler failed", zap.String("event", c.name), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type BidSaved struct {
	Bid   domain.Bid
	Issue domain.Issue
}

type ClaimCreated struct {
	Claim domain.Claim
	Issue domain.Issue
}

type ClaimStatusChanged struct {
	Claim     domain.Claim
	OldStatus string
}

const (
	NameBidSaved           = "bid.saved"
	NameClaimCreated       = "claim.created"
	NameClaimStatusChanged = "claim.status_changed"
)
