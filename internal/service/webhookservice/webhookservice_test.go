package webhookservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type mocks struct {
	events   *MockEventRepo
	accounts *MockAccountRepo
	payments *MockPaymentRepo
	gateway  *MockGateway
}

func NewMock(t *testing.T) (*Pipeline, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		events:   NewMockEventRepo(ctrl),
		accounts: NewMockAccountRepo(ctrl),
		payments: NewMockPaymentRepo(ctrl),
		gateway:  NewMockGateway(ctrl),
	}
	p := New(m.events, m.accounts, m.payments, m.gateway)
	p.now = func() time.Time { return fixedNow }
	return p, m
}

func (m *mocks) saveNew(ctx context.Context, eventID, accountID string) {
	m.events.EXPECT().SaveRaw(ctx, &domain.PaymentEvent{
		EventID:     eventID,
		UserID:      accountID,
		MessageText: `{"id":"` + eventID + `"}`,
		Created:     fixedNow,
	}).DoAndReturn(func(ctx context.Context, e *domain.PaymentEvent) (*domain.PaymentEvent, bool, error) {
		return e, true, nil
	})
}

func TestIngest(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		eventID        string
		accountID      string
		prepareMock    func(m *mocks)
		expectedResult *Result
		expectedError  error
	}{
		{
			name:    "Account updated overwrites verification",
			eventID: "evt_1",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_1", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_1", "").Return(&domain.VerifiedEvent{
					ID:   "evt_1",
					Type: "account.updated",
					Object: []byte(`{"id":"acct_1","object":"account","requirements":{"currently_due":[]}}`),
					Raw:    []byte(`{"id":"evt_1","type":"account.updated"}`),
				}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_1", "account.updated", `{"id":"evt_1","type":"account.updated"}`).Return(nil)
				m.accounts.EXPECT().UpdateVerification(ctx, "acct_1", `{"due_by":null,"fields_needed":[]}`).Return(true, nil)
				m.events.EXPECT().MarkProcessed(ctx, "evt_1").Return(nil)
			},
			expectedResult: &Result{EventID: "evt_1", Type: "account.updated", Verified: true, Processed: true},
		},
		{
			name:      "Balance available is read from the connected account",
			eventID:   "evt_2",
			accountID: "acct_1",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_2", "acct_1")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_2", "acct_1").Return(&domain.VerifiedEvent{
					ID:      "evt_2",
					Type:    "balance.available",
					Account: "acct_1",
					Object:  []byte(`{"object":"balance","available":[{"amount":12345,"currency":"usd"}]}`),
					Raw:     []byte(`{}`),
				}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_2", "balance.available", `{}`).Return(nil)
				m.accounts.EXPECT().UpdateAvailableBalance(ctx, "acct_1", decimal.New(12345, -2)).Return(false, nil)
				m.events.EXPECT().MarkProcessed(ctx, "evt_2").Return(nil)
			},
			expectedResult: &Result{EventID: "evt_2", Type: "balance.available", Verified: true, Processed: true},
		},
		{
			name:    "Charge refunded resolves the offer refund",
			eventID: "evt_3",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_3", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_3", "").Return(&domain.VerifiedEvent{
					ID:   "evt_3",
					Type: "charge.refunded",
					Object: []byte(`{"id":"ch_1","object":"charge","refunds":{"object":"list","data":[{"id":"re_1","object":"refund"}]}}`),
					Raw:    []byte(`{}`),
				}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_3", "charge.refunded", `{}`).Return(nil)
				m.payments.EXPECT().RecordRefundByCharge(ctx, "ch_1", "re_1").Return(int64(1), nil)
				m.events.EXPECT().MarkProcessed(ctx, "evt_3").Return(nil)
			},
			expectedResult: &Result{EventID: "evt_3", Type: "charge.refunded", Verified: true, Processed: true},
		},
		{
			name:    "Account with outstanding requirements records the deadline",
			eventID: "evt_11",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_11", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_11", "").Return(&domain.VerifiedEvent{
					ID:     "evt_11",
					Type:   "account.updated",
					Object: []byte(`{"id":"acct_2","object":"account","requirements":{"current_deadline":1700000000,"currently_due":["external_account","tos_acceptance.date"]}}`),
					Raw:    []byte(`{}`),
				}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_11", "account.updated", `{}`).Return(nil)
				m.accounts.EXPECT().UpdateVerification(ctx, "acct_2", `{"due_by":1700000000,"fields_needed":["external_account","tos_acceptance.date"]}`).Return(true, nil)
				m.events.EXPECT().MarkProcessed(ctx, "evt_11").Return(nil)
			},
			expectedResult: &Result{EventID: "evt_11", Type: "account.updated", Verified: true, Processed: true},
		},
		{
			name:    "Charge without refunds leaves the event unprocessed",
			eventID: "evt_12",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_12", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_12", "").Return(&domain.VerifiedEvent{
					ID: "evt_12", Type: "charge.refunded", Object: []byte(`{"id":"ch_1","object":"charge","refunds":{"object":"list","data":[]}}`), Raw: []byte(`{}`),
				}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_12", "charge.refunded", `{}`).Return(nil)
			},
			expectedResult: &Result{EventID: "evt_12", Type: "charge.refunded", Verified: true},
		},
		{
			name:    "Known unhandled type is processed",
			eventID: "evt_4",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_4", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_4", "").Return(&domain.VerifiedEvent{ID: "evt_4", Type: "charge.updated", Raw: []byte(`{}`)}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_4", "charge.updated", `{}`).Return(nil)
				m.events.EXPECT().MarkProcessed(ctx, "evt_4").Return(nil)
			},
			expectedResult: &Result{EventID: "evt_4", Type: "charge.updated", Verified: true, Processed: true},
		},
		{
			name:    "Unknown type is stored unprocessed",
			eventID: "evt_5",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_5", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_5", "").Return(&domain.VerifiedEvent{ID: "evt_5", Type: "payout.paid", Raw: []byte(`{}`)}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_5", "payout.paid", `{}`).Return(nil)
			},
			expectedResult: &Result{EventID: "evt_5", Type: "payout.paid", Verified: true},
		},
		{
			name:    "Malformed object leaves the event unprocessed",
			eventID: "evt_6",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_6", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_6", "").Return(&domain.VerifiedEvent{
					ID: "evt_6", Type: "balance.available", Account: "acct_1", Object: []byte(`{"object":"balance","available":[]}`), Raw: []byte(`{}`),
				}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_6", "balance.available", `{}`).Return(nil)
			},
			expectedResult: &Result{EventID: "evt_6", Type: "balance.available", Verified: true},
		},
		{
			name:    "Redelivered processed event is a no-op",
			eventID: "evt_7",
			prepareMock: func(m *mocks) {
				m.events.EXPECT().SaveRaw(ctx, gomock.Any()).Return(&domain.PaymentEvent{
					EventID: "evt_7", Type: "account.updated", Verified: true, Processed: true,
				}, false, nil)
			},
			expectedResult: &Result{EventID: "evt_7", Type: "account.updated", Duplicate: true, Verified: true, Processed: true},
		},
		{
			name:    "Redelivered unverified event is verified again",
			eventID: "evt_8",
			prepareMock: func(m *mocks) {
				m.events.EXPECT().SaveRaw(ctx, gomock.Any()).Return(&domain.PaymentEvent{EventID: "evt_8"}, false, nil)
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_8", "").Return(&domain.VerifiedEvent{ID: "evt_8", Type: "payment.created", Raw: []byte(`{}`)}, nil)
				m.events.EXPECT().MarkVerified(ctx, "evt_8", "payment.created", `{}`).Return(nil)
				m.events.EXPECT().MarkProcessed(ctx, "evt_8").Return(nil)
			},
			expectedResult: &Result{EventID: "evt_8", Type: "payment.created", Duplicate: true, Verified: true, Processed: true},
		},
		{
			name:    "Unknown to the provider",
			eventID: "evt_9",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_9", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_9", "").Return(nil, nil)
			},
			expectedError: ErrUnverifiedEvent,
		},
		{
			name:    "Provider unreachable",
			eventID: "evt_10",
			prepareMock: func(m *mocks) {
				m.saveNew(ctx, "evt_10", "")
				m.gateway.EXPECT().RetrieveEvent(ctx, "evt_10", "").Return(nil, errors.New("timeout"))
			},
			expectedError: errors.New("timeout"),
		},
		{
			name:          "Missing event id",
			prepareMock:   func(m *mocks) {},
			expectedError: ErrMissingEventID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, m := NewMock(t)
			tt.prepareMock(m)
			result, err := p.Ingest(ctx, tt.eventID, tt.accountID, []byte(`{"id":"`+tt.eventID+`"}`))
			if tt.expectedError != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedError, ErrUnverifiedEvent) || errors.Is(tt.expectedError, ErrMissingEventID) {
					assert.ErrorIs(t, err, tt.expectedError)
				} else {
					assert.EqualError(t, err, tt.expectedError.Error())
				}
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedResult, result)
		})
	}
}

func TestIngest_ProcessorFailureIsContained(t *testing.T) {
	ctx := context.Background()
	p, m := NewMock(t)
	processor := NewMockProcessor(gomock.NewController(t))
	p.processors = map[string]Processor{"account.updated": processor}

	verified := &domain.VerifiedEvent{ID: "evt_1", Type: "account.updated", Raw: []byte(`{}`)}
	m.saveNew(ctx, "evt_1", "")
	m.gateway.EXPECT().RetrieveEvent(ctx, "evt_1", "").Return(verified, nil)
	m.events.EXPECT().MarkVerified(ctx, "evt_1", "account.updated", `{}`).Return(nil)
	processor.EXPECT().Process(ctx, *verified).Return(errors.New("database error"))

	result, err := p.Ingest(ctx, "evt_1", "", []byte(`{"id":"evt_1"}`))
	require.NoError(t, err)
	assert.False(t, result.Processed)
	assert.True(t, result.Verified)
}

func TestPipeline_Handles(t *testing.T) {
	p, _ := NewMock(t)
	for _, eventType := range []string{"account.updated", "balance.available", "charge.refunded", "charge.updated", "payment.created"} {
		assert.True(t, p.Handles(eventType), eventType)
	}
	assert.False(t, p.Handles("customer.created"))
}
