// Package money parses user-typed amounts and renders localized
// currency strings.
package money

import (
	"strings"

	"github.com/shopspring/decimal"

	"finbot/internal/entity"
)

// ParseAmount converts an amount string to a decimal. Both comma and dot
// are accepted as the decimal separator. The value must be one or more
// digits, optionally followed by a separator and one or two fractional
// digits. No sign, no thousands separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero, entity.ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return decimal.Zero, entity.ErrInvalidAmount
	}
	if !allDigits(parts[0]) {
		return decimal.Zero, entity.ErrInvalidAmount
	}
	if len(parts) == 2 {
		frac := parts[1]
		if len(frac) < 1 || len(frac) > 2 || !allDigits(frac) {
			return decimal.Zero, entity.ErrInvalidAmount
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, entity.ErrInvalidAmount
	}
	return d, nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Formatter renders amounts with two fractional digits, dot-grouped
// thousands and a comma decimal separator ("R$ 1.500,00").
type Formatter struct {
	Symbol string
}

func (f Formatter) Format(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	grouped := groupThousands(intPart)
	if neg {
		grouped = "-" + grouped
	}
	return f.Symbol + " " + grouped + "," + fracPart
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
