package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBiddableBy(t *testing.T) {
	tests := []struct {
		name     string
		claims   []Claim
		userID   int
		expected bool
	}{
		{
			name:     "No claims",
			claims:   nil,
			userID:   1,
			expected: true,
		},
		{
			name:     "Own submitted claim",
			claims:   []Claim{{UserID: 1, Status: ClaimSubmitted}},
			userID:   1,
			expected: false,
		},
		{
			name:     "Other user's pending claim",
			claims:   []Claim{{UserID: 2, Status: ClaimPending}},
			userID:   1,
			expected: false,
		},
		{
			name:     "Other user's paid claim",
			claims:   []Claim{{UserID: 2, Status: ClaimPaid}},
			userID:   1,
			expected: false,
		},
		{
			name:     "Other user's rejected claim",
			claims:   []Claim{{UserID: 2, Status: ClaimRejected}},
			userID:   1,
			expected: true,
		},
		{
			name: "Own rejected claim overrides other claims",
			claims: []Claim{
				{UserID: 1, Status: ClaimRejected},
				{UserID: 2, Status: ClaimApproved},
			},
			userID:   1,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BiddableBy(tt.claims, tt.userID))
		})
	}
}

func TestClaimable(t *testing.T) {
	tests := []struct {
		name     string
		claims   []Claim
		expected bool
	}{
		{name: "No claims", expected: true},
		{name: "Only rejected claims", claims: []Claim{{UserID: 1, Status: ClaimRejected}, {UserID: 2, Status: ClaimRejected}}, expected: true},
		{name: "Own submitted claim", claims: []Claim{{UserID: 1, Status: ClaimSubmitted}}, expected: false},
		{name: "Own rejected next to another approved claim", claims: []Claim{{UserID: 1, Status: ClaimRejected}, {UserID: 2, Status: ClaimApproved}}, expected: false},
		{name: "Paid claim", claims: []Claim{{UserID: 2, Status: ClaimPaid}}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Claimable(tt.claims))
		})
	}
}

func TestStripeAccount_IsPayable(t *testing.T) {
	tests := []struct {
		name     string
		account  StripeAccount
		expected bool
	}{
		{"No account id", StripeAccount{}, false},
		{"Blank verification", StripeAccount{AccountID: "acct_1"}, true},
		{"Verification without deadline", StripeAccount{AccountID: "acct_1", Verification: `{"due_by": null, "fields_needed": []}`}, true},
		{"Verification due", StripeAccount{AccountID: "acct_1", Verification: `{"due_by": 1700000000, "fields_needed": ["legal_entity.dob"]}`}, false},
		{"Broken verification", StripeAccount{AccountID: "acct_1", Verification: `{`}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.account.IsPayable())
		})
	}
}

func TestStripeAccount_FieldsNeeded(t *testing.T) {
	account := StripeAccount{Verification: `{"due_by": 1700000000, "fields_needed": ["legal_entity.dob"]}`}
	assert.Equal(t, []string{"legal_entity.dob"}, account.FieldsNeeded())
	assert.Nil(t, StripeAccount{}.FieldsNeeded())
}

func TestMoney(t *testing.T) {
	assert.Equal(t, int64(6476), ToCents(decimal.RequireFromString("64.76")))
	assert.True(t, FromCents(1250).Equal(decimal.RequireFromString("12.5")))
	assert.True(t, Round2(decimal.RequireFromString("13.335")).Equal(decimal.RequireFromString("13.34")))
	assert.True(t, ValidAmount(decimal.RequireFromString("10.25")))
	assert.False(t, ValidAmount(decimal.RequireFromString("10.255")))
	assert.False(t, ValidAmount(decimal.RequireFromString("-1")))
	assert.True(t, ValidAmount(MaxAmount))
	assert.False(t, ValidAmount(decimal.RequireFromString("1000000")))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("record bid: %w", NewValidationError("ask must not be negative"))
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "record bid: ask must not be negative", err.Error())
}

func TestOffer_Active(t *testing.T) {
	assert.True(t, Offer{ChargeID: "ch_1"}.Active())
	assert.False(t, Offer{ChargeID: "ch_1", RefundID: RefundPending}.Active())
	assert.False(t, Offer{}.Active())
}
