package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount as Brazilian reais, e.g. "R$ 1.234,50".
// Uses dot as thousands separator and comma for the two decimal places.
func FormatBRL(amount decimal.Decimal) string {
	return "R$ " + FormatDecimalBR(amount)
}

// FormatDecimalBR formats an amount with two decimal places in the Brazilian
// convention, without currency symbol: "1.234,50"
func FormatDecimalBR(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	if neg {
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	// Pre-allocate: digits + separators + sign + comma + cents
	b.Grow(len(intPart) + len(intPart)/3 + 4)
	if neg {
		b.WriteByte('-')
	}

	// Insert separators from the left.
	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(intPart[:rem])
	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte('.')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
