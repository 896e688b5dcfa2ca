package stats

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics of a sample.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64 // sample standard deviation, NaN for a single value
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe computes count, mean, standard deviation and the five-number
// summary of values.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Std:    stat.StdDev(sorted, nil),
		Min:    sorted[0],
		Q1:     sortedQuantile(sorted, 0.25),
		Median: sortedQuantile(sorted, 0.5),
		Q3:     sortedQuantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}, nil
}

// IQR returns the interquartile range.
func (s Summary) IQR() float64 {
	return s.Q3 - s.Q1
}

// LogValue returns structured log value
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("count", s.Count),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("min", s.Min),
		slog.Float64("q1", s.Q1),
		slog.Float64("median", s.Median),
		slog.Float64("q3", s.Q3),
		slog.Float64("max", s.Max),
	)
}
