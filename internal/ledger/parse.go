package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal reads a number typed into a form field. Empty or
// non-numeric input is zero; it never fails.
func ParseDecimal(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

var (
	maxCount = decimal.NewFromInt(math.MaxInt64)
	minCount = decimal.NewFromInt(math.MinInt64)
)

// ParseCount reads a note/item count. Fractions are truncated toward zero,
// anything unparsable or outside int64 is zero.
func ParseCount(raw string) int64 {
	d := ParseDecimal(raw).Truncate(0)
	if d.GreaterThan(maxCount) || d.LessThan(minCount) {
		return 0
	}
	return d.IntPart()
}

// RoundCurrency rounds half away from zero to paise.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RoundLitres keeps meter precision (3 places).
func RoundLitres(d decimal.Decimal) decimal.Decimal {
	return d.Round(3)
}
