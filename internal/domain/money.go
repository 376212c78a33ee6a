package domain

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of fraction digits every stored amount carries.
const MoneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)

	// MaxAmount is the largest amount a numeric(8,2) column holds.
	MaxAmount = decimal.RequireFromString("999999.99")
)

// Round2 rounds an amount to cents, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// ToCents converts an amount to the smallest currency unit.
func ToCents(d decimal.Decimal) int64 {
	return d.Mul(hundred).Round(0).IntPart()
}

// FromCents converts a smallest-unit amount back to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -MoneyPlaces)
}

// ValidAmount reports whether d is a non-negative storable amount with at most two fraction digits.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(MaxAmount) && d.Equal(Round2(d))
}
