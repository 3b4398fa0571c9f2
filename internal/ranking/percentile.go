package ranking

import (
	"math"
	"sort"
)

// DefaultPercentiles are the points the review surface displays.
var DefaultPercentiles = []float64{50, 90, 99}

// Percentiles computes the requested percentiles over values using linear
// interpolation between closest ranks. The input is not mutated. Empty
// input yields zeros.
func Percentiles(values []float64, pcts []float64) []float64 {
	out := make([]float64, len(pcts))
	if len(values) == 0 {
		return out
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	for i, p := range pcts {
		out[i] = percentile(sorted, p)
	}
	return out
}

// percentile interpolates at the fractional index (p/100)*(n-1), clamping
// the ceiling to the last element.
func percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}

	idx := p / 100 * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo < 0 {
		lo = 0
	}
	if hi >= n {
		return sorted[n-1]
	}
	if lo == hi {
		return sorted[lo]
	}

	weight := idx - float64(lo)
	return sorted[lo]*(1-weight) + sorted[hi]*weight
}
