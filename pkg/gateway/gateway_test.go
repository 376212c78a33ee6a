package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/GlebRadaev/gobounty/internal/service/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v72"
)

type fakeCharges struct {
	params []*stripe.ChargeParams
	err    error
}

func (f *fakeCharges) New(params *stripe.ChargeParams) (*stripe.Charge, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.Charge{ID: "ch_1"}, nil
}

type fakeRefunds struct {
	params []*stripe.RefundParams
	err    error
}

func (f *fakeRefunds) New(params *stripe.RefundParams) (*stripe.Refund, error) {
	f.params = append(f.params, params)
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.Refund{ID: "re_1"}, nil
}

type fakeEvents struct {
	account string
	event   *stripe.Event
	err     error
}

func (f *fakeEvents) Get(id string, params *stripe.EventParams) (*stripe.Event, error) {
	if params.StripeAccount != nil {
		f.account = *params.StripeAccount
	}
	return f.event, f.err
}

type fakeCustomers struct {
	params *stripe.CustomerParams
}

func (f *fakeCustomers) New(params *stripe.CustomerParams) (*stripe.Customer, error) {
	f.params = params
	return &stripe.Customer{ID: "cus_1"}, nil
}

func newGateway() (*Gateway, *fakeCharges, *fakeRefunds, *fakeEvents, *fakeCustomers) {
	charges, refunds, events, customers := &fakeCharges{}, &fakeRefunds{}, &fakeEvents{}, &fakeCustomers{}
	return &Gateway{
		charges:   charges,
		refunds:   refunds,
		events:    events,
		customers: customers,
		currency:  "usd",
		fees:      settlement.DefaultFeeSchedule(),
	}, charges, refunds, events, customers
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGateway_Authorize(t *testing.T) {
	g, charges, _, _, _ := newGateway()

	id, err := g.Authorize(context.Background(), "cus_1", d("64.76"), "authorize-1")
	require.NoError(t, err)
	assert.Equal(t, "ch_1", id)

	p := charges.params[0]
	assert.Equal(t, int64(6476), *p.Amount)
	assert.False(t, *p.Capture)
	assert.Equal(t, "cus_1", *p.Customer)
	assert.Equal(t, "authorize-1", *p.IdempotencyKey)

	_, err = g.Authorize(context.Background(), "", d("1"), "k")
	assert.ErrorIs(t, err, ErrMissingCustomer)

	charges.err = errors.New("card declined")
	_, err = g.Authorize(context.Background(), "cus_1", d("1"), "k")
	assert.ErrorContains(t, err, "card declined")
}

func TestGateway_Charge(t *testing.T) {
	g, charges, _, _, _ := newGateway()

	id, err := g.Charge(context.Background(), domain.ChargeRequest{
		Payout:         domain.Payout{ID: 3, ClaimID: 5, Amount: d("64.76"), ChargeAmount: d("60.96")},
		CustomerID:     "cus_1",
		Destination:    "acct_9",
		IdempotencyKey: domain.PayoutKey(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_1", id)

	p := charges.params[0]
	assert.Equal(t, int64(6476), *p.Amount)
	assert.Equal(t, int64(380), *p.ApplicationFeeAmount)
	assert.Equal(t, "acct_9", *p.TransferData.Destination)
	assert.Equal(t, "payout-3", *p.IdempotencyKey)
	assert.Nil(t, p.Capture)
}

func TestGateway_Refund(t *testing.T) {
	g, _, refunds, _, _ := newGateway()

	id, err := g.Refund(context.Background(), "ch_7", domain.RefundKey(7))
	require.NoError(t, err)
	assert.Equal(t, "re_1", id)
	assert.Equal(t, "ch_7", *refunds.params[0].Charge)
	assert.Equal(t, "refund-offer-7", *refunds.params[0].IdempotencyKey)

	refunds.err = errors.New("already refunded")
	_, err = g.Refund(context.Background(), "ch_7", domain.RefundKey(7))
	assert.Error(t, err)
}

func TestGateway_CreateCustomer(t *testing.T) {
	g, _, _, _, customers := newGateway()

	id, err := g.CreateCustomer(context.Background(), "payer@example.com", "tok_visa")
	require.NoError(t, err)
	assert.Equal(t, "cus_1", id)
	assert.Equal(t, "payer@example.com", *customers.params.Email)
	assert.Equal(t, "tok_visa", *customers.params.Source.Token)
}

func TestGateway_RetrieveEvent(t *testing.T) {
	tests := []struct {
		name    string
		account string
		event   *stripe.Event
		err     error
		wantNil bool
		wantErr bool
	}{
		{
			name:    "Event found on connected account",
			account: "acct_9",
			event: &stripe.Event{
				ID:      "evt_1",
				Type:    "account.updated",
				Account: "acct_9",
				Data:    &stripe.EventData{Raw: json.RawMessage(`{"id":"acct_9","object":"account"}`)},
			},
		},
		{
			name:    "Unknown event",
			err:     &stripe.Error{HTTPStatusCode: http.StatusNotFound, Code: stripe.ErrorCodeResourceMissing},
			wantNil: true,
		},
		{
			name:    "Provider unavailable",
			err:     &stripe.Error{HTTPStatusCode: http.StatusServiceUnavailable},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _, events, _ := newGateway()
			events.event, events.err = tt.event, tt.err

			ev, err := g.RetrieveEvent(context.Background(), "evt_1", tt.account)
			switch {
			case tt.wantErr:
				assert.Error(t, err)
			case tt.wantNil:
				assert.NoError(t, err)
				assert.Nil(t, ev)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.account, events.account)
				assert.Equal(t, "account.updated", ev.Type)
				assert.JSONEq(t, `{"id":"acct_9","object":"account"}`, string(ev.Object))
				var decoded map[string]any
				assert.NoError(t, json.Unmarshal(ev.Raw, &decoded))
				assert.Equal(t, "evt_1", decoded["id"])
			}
		})
	}
}

func TestGateway_ComputeTransactionAmounts(t *testing.T) {
	g, _, _, _, _ := newGateway()

	ta := g.ComputeTransactionAmounts(d("100"))
	assert.True(t, ta.GatewayFee.Equal(d("3.20")))
	assert.True(t, ta.PlatformFee.Equal(d("2.50")))
	assert.True(t, ta.Net.Equal(d("94.30")))
}
