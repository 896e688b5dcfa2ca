package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/sartorproj/pageviews/timeseries"
	"gonum.org/v1/gonum/stat"
)

// MonthlyAggregate is the mean daily value of one calendar month.
type MonthlyAggregate struct {
	Year      int
	Month     time.Month
	MonthName string
	Count     int
	Mean      float64
	Value     float64 // Mean rounded half to even
}

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlyMeans groups the series by (year, month) and averages each group.
// Results are ordered by year, then month.
func MonthlyMeans(series *timeseries.Series) []MonthlyAggregate {
	groups := make(map[yearMonth][]float64)
	for i, ts := range series.Timestamps {
		key := yearMonth{year: ts.Year(), month: ts.Month()}
		groups[key] = append(groups[key], series.Values[i])
	}

	out := make([]MonthlyAggregate, 0, len(groups))
	for key, values := range groups {
		mean := stat.Mean(values, nil)
		out = append(out, MonthlyAggregate{
			Year:      key.year,
			Month:     key.month,
			MonthName: MonthName(key.month),
			Count:     len(values),
			Mean:      mean,
			Value:     math.RoundToEven(mean),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// Grid arranges monthly aggregates for a grouped bar chart: one group per
// year, one series per calendar month.
type Grid struct {
	Years  []int
	Months []time.Month // always January..December
	values map[yearMonth]float64
}

// BarGrid builds a Grid from monthly aggregates.
func BarGrid(aggs []MonthlyAggregate) *Grid {
	g := &Grid{
		Months: CalendarMonths(),
		values: make(map[yearMonth]float64, len(aggs)),
	}

	seen := make(map[int]bool)
	for _, a := range aggs {
		g.values[yearMonth{year: a.Year, month: a.Month}] = a.Value
		if !seen[a.Year] {
			seen[a.Year] = true
			g.Years = append(g.Years, a.Year)
		}
	}
	sort.Ints(g.Years)
	return g
}

// Value returns the rounded monthly mean for year and month, and whether
// the month is present in the data.
func (g *Grid) Value(year int, month time.Month) (float64, bool) {
	v, ok := g.values[yearMonth{year: year, month: month}]
	return v, ok
}

// Row returns the values of month for every year in g.Years. Missing
// months are reported as zero.
func (g *Grid) Row(month time.Month) []float64 {
	row := make([]float64, len(g.Years))
	for i, y := range g.Years {
		row[i], _ = g.Value(y, month)
	}
	return row
}
