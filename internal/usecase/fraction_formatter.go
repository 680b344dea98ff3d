package usecase

import (
	"math"
	"strconv"
)

// kitchenFraction pairs a numeric value with its conventional recipe notation
type kitchenFraction struct {
	value   float64
	display string
}

// kitchenFractions are the fractions conventionally used in recipes,
// in ascending order
var kitchenFractions = []kitchenFraction{
	{0.125, "1/8"},
	{0.25, "1/4"},
	{1.0 / 3.0, "1/3"},
	{0.5, "1/2"},
	{2.0 / 3.0, "2/3"},
	{0.75, "3/4"},
	{0.875, "7/8"},
}

// fractionTolerance absorbs rounding error introduced by the scale
// multiplication (0.33 should still read as 1/3)
const fractionTolerance = 0.05

// FormatQuantity renders a scaled quantity in cooking notation: a kitchen
// fraction ("1/2"), a mixed number ("2 1/2"), an integer, or a decimal with
// trailing zeros stripped (never more than 2 decimal places).
func FormatQuantity(value float64) string {
	// Round to 2 decimal places first to absorb floating-point noise
	rounded := math.Round(value*100) / 100

	whole := math.Floor(rounded)
	frac := rounded - whole

	for _, kf := range kitchenFractions {
		if math.Abs(frac-kf.value) <= fractionTolerance {
			if whole == 0 {
				return kf.display
			}
			return strconv.FormatFloat(whole, 'f', -1, 64) + " " + kf.display
		}
	}

	if frac == 0 {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
