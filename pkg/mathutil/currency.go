// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/compound-forecast/pkg/constants"
)

// PercentToDecimal converts a percentage (7 for 7%) into a decimal rate (0.07).
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// DecimalToPercent converts a decimal rate (0.07) into a percentage (7).
func DecimalToPercent(rate float64) float64 {
	return rate * constants.PercentageMultiplier
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}
