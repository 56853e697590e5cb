package payments

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a decimal amount in major units to integer minor
// units, rounding half away from zero (5.005 -> 501).
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// ParseDisplayPrice turns a pricing-page display string like "$5" or
// "$29.99" into a decimal amount.
func ParseDisplayPrice(price string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(price), "$"))
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("empty price %q", price)
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", price, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %q", price)
	}
	return amount, nil
}
