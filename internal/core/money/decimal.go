// Package money parses prices and quantities coming from receipts into exact decimals.
package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reCurrency        = regexp.MustCompile(`[$€£¥]|(?i)\b(usd|eur|gbp)\b`)
	reThousandsComma  = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+(?:\.\d+)?$`)
	reThousandsPeriod = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+(?:,\d+)?$`)
)

// ParseAmount converts a numeric value into a decimal.
// Strings may carry a currency symbol or code and either "," or "." as the
// decimal separator. ok is false for missing, empty or unparseable input.
// JSON numbers arrive as float64 and are converted with NewFromFloat, which
// keeps the shortest exact representation.
func ParseAmount(v interface{}) (d decimal.Decimal, ok bool) {
	switch val := v.(type) {
	case nil:
		return decimal.Zero, false
	case decimal.Decimal:
		return val, true
	case float64:
		return decimal.NewFromFloat(val), true
	case float32:
		return decimal.NewFromFloat32(val), true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case int32:
		return decimal.NewFromInt(int64(val)), true
	case string:
		return parseString(val)
	}
	return decimal.Zero, false
}

func parseString(s string) (decimal.Decimal, bool) {
	s = reCurrency.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return decimal.Zero, false
	}

	switch {
	case reThousandsComma.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case reThousandsPeriod.MatchString(s):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case strings.Contains(s, ",") && !strings.Contains(s, "."):
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
