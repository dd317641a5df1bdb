package pricing

import (
	"fmt"
	"strconv"
	"strings"
)

// currencySymbols covers the currencies the rate feed serves.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// Symbol returns the display symbol for a currency code, falling back to
// the code itself.
func Symbol(code string) string {
	if s, ok := currencySymbols[strings.ToUpper(code)]; ok {
		return s
	}
	return code
}

// FormatUSD renders a USD amount as "$1,234.56". Negative amounts keep the
// sign ahead of the symbol.
func FormatUSD(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatFloat(RoundCents(amount), 'f', 2, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + frac
}

// RangeLabel renders a traveler range for display ("10-14 travelers").
func RangeLabel(r Range) string {
	return fmt.Sprintf("%d-%d travelers", r.Min, r.Max)
}

// RangeCostLabel renders a per-range cost band ("10-14 travelers: $250.00 - $350.00").
func RangeCostLabel(rc RangeCost) string {
	return fmt.Sprintf("%d-%d travelers: %s - %s",
		rc.Min, rc.Max, FormatUSD(rc.CostMin), FormatUSD(rc.CostMax))
}
