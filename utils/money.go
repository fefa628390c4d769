package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAUD formats an amount as dollars and cents, e.g. "$1234.50".
// Rounds half away from zero to the cent. No thousands separator.
func FormatAUD(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	neg := rounded.IsNegative()
	if neg {
		rounded = rounded.Neg()
	}

	s := rounded.StringFixed(2)

	var b strings.Builder
	b.Grow(len(s) + 2)
	if neg {
		b.WriteString("-$")
	} else {
		b.WriteString("$")
	}
	b.WriteString(s)
	return b.String()
}

// FormatDiscount formats a discount as a deduction, e.g. "-$25.50".
// A zero discount is still shown with the sign.
func FormatDiscount(amount decimal.Decimal) string {
	return "-" + FormatAUD(amount.Abs())
}

// YesNo maps a flag to its display label
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
