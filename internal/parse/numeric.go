package parse

import "math"

// toIntSafe rounds v to the nearest integer, ties away from zero, and reports
// whether the result fits in an int. NaN, infinities and out-of-range values
// count as no match rather than an error.
func toIntSafe(v float64) (int, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	r := math.Round(v)
	if r >= float64(math.MaxInt64) || r < float64(math.MinInt64) {
		return 0, false
	}
	return int(r), true
}
