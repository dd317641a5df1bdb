package pricing

import "math"

// USD is the settlement currency every line item is normalised into.
const USD = "USD"

// RoundCents rounds a dollar amount to two decimal places.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// NormalizeUSD converts an amount in the given currency to USD using the
// supplied rate (units of USD per one unit of the currency). Amounts already
// in USD, or with a missing rate, pass through unchanged.
func NormalizeUSD(amount float64, currency string, rate float64) float64 {
	if currency == USD || currency == "" {
		return amount
	}
	if rate <= 0 {
		return amount
	}
	return RoundCents(amount * rate)
}
