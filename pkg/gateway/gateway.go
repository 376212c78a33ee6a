// Package gateway moves money through Stripe: offer authorizations, refunds, payout charges
// and event verification.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"go.uber.org/zap"
)

var ErrMissingCustomer = errors.New("payer has no payment customer")

type chargeAPI interface {
	New(params *stripe.ChargeParams) (*stripe.Charge, error)
}

type refundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

type eventAPI interface {
	Get(id string, params *stripe.EventParams) (*stripe.Event, error)
}

type customerAPI interface {
	New(params *stripe.CustomerParams) (*stripe.Customer, error)
}

type Gateway struct {
	charges   chargeAPI
	refunds   refundAPI
	events    eventAPI
	customers customerAPI
	currency  string
	fees      settlement.FeeSchedule
}

func New(secretKey, currency string, fees settlement.FeeSchedule) *Gateway {
	sc := client.New(secretKey, nil)
	return &Gateway{
		charges:   sc.Charges,
		refunds:   sc.Refunds,
		events:    sc.Events,
		customers: sc.Customers,
		currency:  currency,
		fees:      fees,
	}
}

// ComputeTransactionAmounts splits gross into gateway fee, platform fee and net.
func (g *Gateway) ComputeTransactionAmounts(gross decimal.Decimal) settlement.TransactionAmounts {
	return g.fees.ComputeTransactionAmounts(gross)
}

// CreateCustomer registers a payer from a card token and returns the customer reference.
func (g *Gateway) CreateCustomer(ctx context.Context, email, cardToken string) (string, error) {
	params := &stripe.CustomerParams{
		Email:  stripe.String(email),
		Source: &stripe.SourceParams{Token: stripe.String(cardToken)},
	}
	params.Context = ctx
	cus, err := g.customers.New(params)
	if err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return cus.ID, nil
}

// Authorize places an uncaptured hold of amount on the customer's card.
func (g *Gateway) Authorize(ctx context.Context, customerID string, amount decimal.Decimal, key string) (string, error) {
	if customerID == "" {
		return "", ErrMissingCustomer
	}
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(domain.ToCents(amount)),
		Currency:    stripe.String(g.currency),
		Customer:    stripe.String(customerID),
		Capture:     stripe.Bool(false),
		Description: stripe.String("codesy offer"),
	}
	params.Context = ctx
	params.SetIdempotencyKey(key)

	ch, err := g.charges.New(params)
	if err != nil {
		return "", fmt.Errorf("authorize offer: %w", err)
	}
	zap.L().Info("offer authorized", zap.String("charge_id", ch.ID), zap.String("amount", amount.StringFixed(2)))
	return ch.ID, nil
}

// Refund releases or refunds the charge.
func (g *Gateway) Refund(ctx context.Context, chargeID, key string) (string, error) {
	params := &stripe.RefundParams{
		Charge: stripe.String(chargeID),
	}
	params.Context = ctx
	params.SetIdempotencyKey(key)

	re, err := g.refunds.New(params)
	if err != nil {
		return "", fmt.Errorf("refund charge %s: %w", chargeID, err)
	}
	return re.ID, nil
}

// Charge collects the adjusted offer from the payer and transfers it to the claimant's account,
// keeping the payout fees as the application fee.
func (g *Gateway) Charge(ctx context.Context, req domain.ChargeRequest) (string, error) {
	if req.CustomerID == "" {
		return "", ErrMissingCustomer
	}
	fee := req.Payout.Amount.Sub(req.Payout.ChargeAmount)
	params := &stripe.ChargeParams{
		Amount:               stripe.Int64(domain.ToCents(req.Payout.Amount)),
		Currency:             stripe.String(g.currency),
		Customer:             stripe.String(req.CustomerID),
		Description:          stripe.String(fmt.Sprintf("codesy payout for claim %d", req.Payout.ClaimID)),
		ApplicationFeeAmount: stripe.Int64(domain.ToCents(fee)),
		TransferData: &stripe.ChargeTransferDataParams{
			Destination: stripe.String(req.Destination),
		},
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	ch, err := g.charges.New(params)
	if err != nil {
		return "", fmt.Errorf("charge payout %d: %w", req.Payout.ID, err)
	}
	return ch.ID, nil
}

// RetrieveEvent re-fetches an event from the provider. A nil event with a nil error means the
// provider does not know the id.
func (g *Gateway) RetrieveEvent(ctx context.Context, eventID, accountID string) (*domain.VerifiedEvent, error) {
	params := &stripe.EventParams{}
	params.Context = ctx
	if accountID != "" {
		params.SetStripeAccount(accountID)
	}

	ev, err := g.events.Get(eventID, params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && (serr.HTTPStatusCode == http.StatusNotFound || serr.Code == stripe.ErrorCodeResourceMissing) {
			return nil, nil
		}
		return nil, fmt.Errorf("retrieve event %s: %w", eventID, err)
	}

	raw, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", eventID, err)
	}
	var object []byte
	if ev.Data != nil {
		object = ev.Data.Raw
	}
	return &domain.VerifiedEvent{
		ID:      ev.ID,
		Type:    ev.Type,
		Account: ev.Account,
		Object:  object,
		Raw:     raw,
	}, nil
}
