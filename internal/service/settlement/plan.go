// Package settlement computes how an approved claim redistributes the
// authorized offers on an issue between the claimant and the offerers.
package settlement

import (
	"github.com/GlebRadaev/gobounty/internal/domain"
	"github.com/shopspring/decimal"
)

// Item is the settlement of a single offer.
type Item struct {
	Offer    domain.Offer
	Adjusted decimal.Decimal
	Discount decimal.Decimal
}

type Plan struct {
	Ask             decimal.Decimal
	SumOffers       decimal.Decimal
	Surplus         decimal.Decimal
	ClaimBonus      decimal.Decimal
	OfferGiveback   decimal.Decimal
	OfferAdjustment decimal.Decimal
	Items           []Item
}

// Payable is the total the claimant receives before fees.
func (p Plan) Payable() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Items {
		total = total.Add(it.Adjusted)
	}
	return total
}

// Compute splits any surplus of offers over ask so that the claimant takes an
// equal share, sized as if they were one more participant, and every offer is
// scaled by the same adjustment factor. A zero ask means no ask was set and
// offers pass through unchanged.
func Compute(ask decimal.Decimal, offers []domain.Offer) Plan {
	plan := Plan{
		Ask:             ask,
		SumOffers:       decimal.Zero,
		Surplus:         decimal.Zero,
		ClaimBonus:      decimal.Zero,
		OfferGiveback:   decimal.Zero,
		OfferAdjustment: decimal.NewFromInt(1),
	}
	for _, o := range offers {
		plan.SumOffers = plan.SumOffers.Add(o.Amount)
	}

	if ask.IsPositive() && plan.SumOffers.GreaterThan(ask) {
		participants := decimal.NewFromInt(int64(len(offers) + 1))
		plan.Surplus = plan.SumOffers.Sub(ask)
		plan.ClaimBonus = plan.Surplus.Div(participants)
		plan.OfferGiveback = plan.Surplus.Sub(plan.ClaimBonus)
		plan.OfferAdjustment = decimal.NewFromInt(1).Sub(plan.OfferGiveback.Div(plan.SumOffers))
	}

	plan.Items = make([]Item, 0, len(offers))
	for _, o := range offers {
		adjusted := domain.Round2(o.Amount.Mul(plan.OfferAdjustment))
		plan.Items = append(plan.Items, Item{
			Offer:    o,
			Adjusted: adjusted,
			Discount: o.Amount.Sub(adjusted),
		})
	}
	return plan
}
