package kernel

import "math"

// RoundMoney rounds a monetary amount to two decimal places.
//
// Display surfaces round totals before rendering, but stored totals keep the
// unrounded sum so rounding error does not compound across successive edits.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
