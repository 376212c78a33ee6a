package webhookservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/stripe/stripe-go/v72"
	"go.uber.org/zap"
)

var errMalformedEvent = errors.New("malformed event object")

type accountUpdated struct {
	accounts AccountRepo
}

// verification is the stored shape of an account's outstanding requirements.
type verification struct {
	DueBy        *int64   `json:"due_by"`
	FieldsNeeded []string `json:"fields_needed"`
}

func verificationOf(req *stripe.AccountRequirements) verification {
	v := verification{FieldsNeeded: []string{}}
	if req == nil {
		return v
	}
	if req.CurrentDeadline != 0 {
		deadline := req.CurrentDeadline
		v.DueBy = &deadline
	}
	if len(req.CurrentlyDue) > 0 {
		v.FieldsNeeded = req.CurrentlyDue
	}
	return v
}

// Process overwrites the stored verification requirements of the account.
func (a accountUpdated) Process(ctx context.Context, event domain.VerifiedEvent) error {
	var acct stripe.Account
	if err := json.Unmarshal(event.Object, &acct); err != nil {
		return fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if acct.ID == "" {
		return fmt.Errorf("%w: account id missing", errMalformedEvent)
	}
	raw, err := json.Marshal(verificationOf(acct.Requirements))
	if err != nil {
		return err
	}
	found, err := a.accounts.UpdateVerification(ctx, acct.ID, string(raw))
	if err != nil {
		return err
	}
	if !found {
		zap.L().Warn("account.updated for unknown account", zap.String("account_id", acct.ID))
	}
	return nil
}

type balanceAvailable struct {
	accounts AccountRepo
}

// Process overwrites the available balance snapshot of the connected account with its first
// available amount.
func (b balanceAvailable) Process(ctx context.Context, event domain.VerifiedEvent) error {
	if event.Account == "" {
		return fmt.Errorf("%w: account id missing", errMalformedEvent)
	}
	var balance stripe.Balance
	if err := json.Unmarshal(event.Object, &balance); err != nil {
		return fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if len(balance.Available) == 0 || balance.Available[0] == nil {
		return fmt.Errorf("%w: no available balance", errMalformedEvent)
	}
	amount := domain.FromCents(balance.Available[0].Value)
	found, err := b.accounts.UpdateAvailableBalance(ctx, event.Account, amount)
	if err != nil {
		return err
	}
	if !found {
		zap.L().Warn("balance.available for unknown account", zap.String("account_id", event.Account))
	}
	return nil
}

type chargeRefunded struct {
	payments PaymentRepo
}

// Process records the provider's refund against the offer that holds the charge, resolving a
// pending refund whose gateway response was lost.
func (c chargeRefunded) Process(ctx context.Context, event domain.VerifiedEvent) error {
	var ch stripe.Charge
	if err := json.Unmarshal(event.Object, &ch); err != nil {
		return fmt.Errorf("%w: %v", errMalformedEvent, err)
	}
	if ch.ID == "" {
		return fmt.Errorf("%w: charge id missing", errMalformedEvent)
	}
	if ch.Refunds == nil || len(ch.Refunds.Data) == 0 || ch.Refunds.Data[0] == nil {
		return fmt.Errorf("%w: charge %s has no refunds", errMalformedEvent, ch.ID)
	}
	refundID := ch.Refunds.Data[0].ID
	if refundID == "" {
		return fmt.Errorf("%w: refund id missing", errMalformedEvent)
	}
	n, err := c.payments.RecordRefundByCharge(ctx, ch.ID, refundID)
	if err != nil {
		return err
	}
	zap.L().Info("refund recorded from event", zap.String("charge_id", ch.ID), zap.Int64("offers", n))
	return nil
}

func unhandled(eventType string) ProcessorFunc {
	return func(ctx context.Context, event domain.VerifiedEvent) error {
		zap.L().Error("unhandled payment event", zap.String("type", eventType), zap.String("event_id", event.ID))
		return nil
	}
}
