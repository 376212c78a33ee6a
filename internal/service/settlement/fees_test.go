package settlement

import (
	"testing"

	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeSchedule_ComputeTransactionAmounts(t *testing.T) {
	schedule := DefaultFeeSchedule()

	tests := []struct {
		name        string
		gross       string
		gatewayFee  string
		platformFee string
		net         string
	}{
		{"Hundred dollars", "100", "3.20", "2.50", "94.30"},
		{"Adjusted payout", "64.76", "2.18", "1.62", "60.96"},
		{"Zero gross", "0", "0", "0", "0"},
		{"Fees capped at gross", "0.20", "0.20", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := schedule.ComputeTransactionAmounts(d(tt.gross))
			assert.True(t, d(tt.gatewayFee).Equal(ta.GatewayFee), "gateway %s", ta.GatewayFee)
			assert.True(t, d(tt.platformFee).Equal(ta.PlatformFee), "platform %s", ta.PlatformFee)
			assert.True(t, d(tt.net).Equal(ta.Net), "net %s", ta.Net)
		})
	}
}

func TestFeeCalculators(t *testing.T) {
	schedule := DefaultFeeSchedule()

	tests := []struct {
		name       string
		calculator FeeCalculator
		owner      domain.FeeOwner
	}{
		{"Offer side", OfferFees{Schedule: schedule}, domain.OwnerOffer},
		{"Payout side", PayoutFees{Schedule: schedule}, domain.OwnerPayout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			att := tt.calculator.Attach(d("64.76"), d("15.24"))

			require.Len(t, att.Fees, 3)
			for _, f := range att.Fees {
				assert.Equal(t, tt.owner, f.Owner)
			}
			assert.Equal(t, domain.FeeTypeStripe, att.Fees[0].FeeType)
			assert.Equal(t, domain.FeeTypeCodesy, att.Fees[1].FeeType)
			assert.Equal(t, domain.KindCredit, att.Fees[2].Kind)
			assert.Equal(t, domain.FeeTypeSurplus, att.Fees[2].FeeType)
			assert.True(t, d("60.96").Equal(att.ChargeAmount))

			// charge amount + fees + credits gives back the original offer
			assert.True(t, d("80").Equal(att.ChargeAmount.Add(att.Total())))
		})
	}
}

func TestFeeCalculators_NoDiscount(t *testing.T) {
	att := PayoutFees{Schedule: DefaultFeeSchedule()}.Attach(d("25"), decimal.Zero)
	assert.Len(t, att.Fees, 2)
	assert.True(t, d("25").Equal(att.ChargeAmount.Add(att.Total())))
}

func TestSettlementConservation(t *testing.T) {
	calc := PayoutFees{Schedule: DefaultFeeSchedule()}
	original := offers("80", "60", "0.15", "999.99")
	plan := Compute(d("100"), original)

	total := decimal.Zero
	for _, item := range plan.Items {
		att := calc.Attach(item.Adjusted, item.Discount)
		total = total.Add(att.ChargeAmount).Add(att.Total())
	}

	sum := decimal.Zero
	for _, o := range original {
		sum = sum.Add(o.Amount)
	}
	assert.True(t, sum.Equal(total), "%s != %s", sum, total)
}
