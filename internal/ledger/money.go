package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseMoney parses free-text currency input ("$1,234.56", "1200") by
// stripping every rune that is not a digit, '.', or '-' and reading what
// remains as a decimal. ok is false when nothing parseable remains. A
// parseable zero is ok=true; whether zero amounts count is the normalizer's
// call, not this function's.
func ParseMoney(s string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
