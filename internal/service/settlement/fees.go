package settlement

import (
	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionAmounts struct {
	GatewayFee  decimal.Decimal
	PlatformFee decimal.Decimal
	Net         decimal.Decimal
}

// TransactionComputer prices a gross amount into gateway and platform fees.
type TransactionComputer interface {
	ComputeTransactionAmounts(gross decimal.Decimal) TransactionAmounts
}

type FeeSchedule struct {
	GatewayPct   decimal.Decimal
	GatewayFixed decimal.Decimal
	PlatformPct  decimal.Decimal
}

func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		GatewayPct:   decimal.RequireFromString("0.029"),
		GatewayFixed: decimal.RequireFromString("0.30"),
		PlatformPct:  decimal.RequireFromString("0.025"),
	}
}

// ComputeTransactionAmounts never returns fees larger than gross.
func (s FeeSchedule) ComputeTransactionAmounts(gross decimal.Decimal) TransactionAmounts {
	if !gross.IsPositive() {
		return TransactionAmounts{GatewayFee: decimal.Zero, PlatformFee: decimal.Zero, Net: decimal.Zero}
	}
	gateway := decimal.Min(domain.Round2(gross.Mul(s.GatewayPct).Add(s.GatewayFixed)), gross)
	platform := decimal.Min(domain.Round2(gross.Mul(s.PlatformPct)), gross.Sub(gateway))
	return TransactionAmounts{
		GatewayFee:  gateway,
		PlatformFee: platform,
		Net:         gross.Sub(gateway).Sub(platform),
	}
}

// Attachment is what a FeeCalculator produces for a freshly created record.
// OwnerID of every fee is filled in once the record is stored.
type Attachment struct {
	Fees         []domain.Fee
	ChargeAmount decimal.Decimal
}

// Total is the sum of all fee and credit rows.
func (a Attachment) Total() decimal.Decimal {
	total := decimal.Zero
	for _, f := range a.Fees {
		total = total.Add(f.Amount)
	}
	return total
}

type FeeCalculator interface {
	Attach(amount, discount decimal.Decimal) Attachment
}

// OfferFees prices offers: charge amount is the gross minus fees.
type OfferFees struct {
	Schedule TransactionComputer
}

func (c OfferFees) Attach(amount, discount decimal.Decimal) Attachment {
	ta := c.Schedule.ComputeTransactionAmounts(amount)
	return Attachment{
		Fees:         rows(domain.OwnerOffer, ta, discount),
		ChargeAmount: amount.Sub(ta.GatewayFee).Sub(ta.PlatformFee),
	}
}

// PayoutFees prices payouts: charge amount is the net payable to the claimant.
type PayoutFees struct {
	Schedule TransactionComputer
}

func (c PayoutFees) Attach(amount, discount decimal.Decimal) Attachment {
	ta := c.Schedule.ComputeTransactionAmounts(amount)
	return Attachment{
		Fees:         rows(domain.OwnerPayout, ta, discount),
		ChargeAmount: ta.Net,
	}
}

func rows(owner domain.FeeOwner, ta TransactionAmounts, discount decimal.Decimal) []domain.Fee {
	fees := []domain.Fee{
		{Owner: owner, Kind: domain.KindFee, FeeType: domain.FeeTypeStripe, Amount: ta.GatewayFee},
		{Owner: owner, Kind: domain.KindFee, FeeType: domain.FeeTypeCodesy, Amount: ta.PlatformFee},
	}
	if discount.IsPositive() {
		fees = append(fees, domain.Fee{Owner: owner, Kind: domain.KindCredit, FeeType: domain.FeeTypeSurplus, Amount: discount})
	}
	return fees
}
