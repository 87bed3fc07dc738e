// Package mathutil provides currency-oriented math helpers.
package mathutil

import (
	"math"

	"github.com/onestop-insurance/onestop/pkg/constants"
)

// RoundCents rounds a value to two decimals, i.e. to represent real currency.
// Calculations stay unrounded until display; this exists for comparisons.
func RoundCents(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// WithinCents reports whether two amounts differ by at most one cent.
func WithinCents(a, b float64) bool {
	return math.Abs(a-b) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance.
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}
