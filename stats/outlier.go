package stats

import (
	"math"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/timeseries"
)

// Default quantiles for trimming: the central 95% of observations is kept.
const (
	DefaultLowQuantile  = 0.025
	DefaultHighQuantile = 0.975
)

// Bounds is an inclusive value range derived from two quantiles.
type Bounds struct {
	LowQ  float64
	HighQ float64
	Low   float64
	High  float64
}

// Contains reports whether v lies within [Low, High].
func (b Bounds) Contains(v float64) bool {
	return v >= b.Low && v <= b.High
}

// QuantileBounds computes the lowQ and highQ quantiles of values.
func QuantileBounds(values []float64, lowQ, highQ float64) (Bounds, error) {
	if len(values) == 0 {
		return Bounds{}, ErrEmptySample
	}
	if math.IsNaN(lowQ) || math.IsNaN(highQ) || lowQ < 0 || highQ > 1 || lowQ >= highQ {
		return Bounds{}, goerr.New("invalid quantile range",
			goerr.V("low", lowQ), goerr.V("high", highQ))
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Bounds{
		LowQ:  lowQ,
		HighQ: highQ,
		Low:   sortedQuantile(sorted, lowQ),
		High:  sortedQuantile(sorted, highQ),
	}, nil
}

// TrimQuantiles drops records whose value falls outside the [lowQ, highQ]
// quantile range of the whole series. Bounds are computed once over the
// full input, boundary values are kept, and the input is not modified.
func TrimQuantiles(series *timeseries.Series, lowQ, highQ float64) (*timeseries.Series, Bounds, error) {
	bounds, err := QuantileBounds(series.Values, lowQ, highQ)
	if err != nil {
		return nil, Bounds{}, goerr.Wrap(err, "failed to compute trimming bounds")
	}

	trimmed := series.Filter(func(r timeseries.Record) bool {
		return bounds.Contains(r.Value)
	})
	return trimmed, bounds, nil
}
