package moneyutil

import (
	"github.com/shopspring/decimal"
)

// Money renders a decimal dollar amount for human-readable output. The
// engine computes on raw decimal.Decimal; Money exists only at the
// formatting boundary.
type Money struct {
	decimal.Decimal
}

// FromDecimal wraps an existing decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to cents, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the amount fixed to cents.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a dollar sign, e.g. "$1234.56".
func (m Money) Format() string {
	if m.IsNegative() {
		return "-$" + m.Decimal.Neg().StringFixed(2)
	}
	return "$" + m.String()
}
