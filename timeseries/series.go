// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"math"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Record is a single dated observation.
type Record struct {
	Date  time.Time
	Value float64
}

// Series represents a time series with timestamps and values.
// Timestamps[i] and Values[i] together form one Record.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, goerr.New("timestamps and values must have the same length",
			goerr.V("timestamps", len(timestamps)),
			goerr.V("values", len(values)))
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// FromRecords builds a series from records, keeping their order.
func FromRecords(records []Record) *Series {
	s := &Series{
		Timestamps: make([]time.Time, len(records)),
		Values:     make([]float64, len(records)),
	}
	for i, r := range records {
		s.Timestamps[i] = r.Date
		s.Values[i] = r.Value
	}
	return s
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// At returns the i-th record.
func (s *Series) At(i int) Record {
	return Record{Date: s.Timestamps[i], Value: s.Values[i]}
}

// Span returns the first and last timestamp of the series.
func (s *Series) Span() (time.Time, time.Time) {
	if len(s.Timestamps) == 0 {
		return time.Time{}, time.Time{}
	}
	return s.Timestamps[0], s.Timestamps[len(s.Timestamps)-1]
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Median returns the median value of the series.
func (s *Series) Median() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Filter returns a new series holding the records for which keep returns
// true. Order is preserved and s is left untouched.
func (s *Series) Filter(keep func(r Record) bool) *Series {
	out := &Series{
		Timestamps: make([]time.Time, 0, s.Len()),
		Values:     make([]float64, 0, s.Len()),
		Name:       s.Name,
	}
	for i := range s.Values {
		if keep(s.At(i)) {
			out.Timestamps = append(out.Timestamps, s.Timestamps[i])
			out.Values = append(out.Values, s.Values[i])
		}
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
