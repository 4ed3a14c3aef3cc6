package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 rounds a money value to 2 decimal places.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round2Float rounds a float money value to 2 decimal places. Used where
// request DTOs carry plain JSON numbers before conversion to decimal.
func Round2Float(x float64) float64 {
	return math.Round(x*100) / 100
}

// Dec converts a request-level float into the decimal used everywhere past
// the validation boundary.
func Dec(x float64) decimal.Decimal {
	return decimal.NewFromFloat(x)
}
