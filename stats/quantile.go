package stats

import (
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
)

// ErrEmptySample is returned when a statistic is requested over no values.
var ErrEmptySample = goerr.New("sample is empty")

// Quantile returns the q-th quantile of values using linear interpolation
// between the closest order statistics at position (n-1)*q. This is the
// estimator used by R's default (type 7), NumPy and pandas.
//
// values is not modified.
func Quantile(values []float64, q float64) (float64, error) {
	if len(values) == 0 {
		return math.NaN(), ErrEmptySample
	}
	if math.IsNaN(q) || q < 0 || q > 1 {
		return math.NaN(), goerr.New("quantile must be within [0, 1]", goerr.V("q", q))
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return sortedQuantile(sorted, q), nil
}

// sortedQuantile expects a non-empty ascending slice.
func sortedQuantile(sorted []float64, q float64) float64 {
	h := float64(len(sorted)-1) * q
	lo := math.Floor(h)
	hi := math.Ceil(h)

	low := sorted[int(lo)]
	if lo == hi {
		return low
	}
	return low + (h-lo)*(sorted[int(hi)]-low)
}
