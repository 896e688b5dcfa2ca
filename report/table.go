package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/aggregate"
	"github.com/sartorproj/pageviews/stats"
)

// WriteMonthly writes the monthly aggregates as CSV with columns
// year,month,month_name,count,mean,value.
func WriteMonthly(w io.Writer, aggs []aggregate.MonthlyAggregate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"year", "month", "month_name", "count", "mean", "value"}); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}

	for _, a := range aggs {
		row := []string{
			strconv.Itoa(a.Year),
			strconv.Itoa(int(a.Month)),
			a.MonthName,
			strconv.Itoa(a.Count),
			strconv.FormatFloat(a.Mean, 'f', 2, 64),
			strconv.FormatFloat(a.Value, 'f', 0, 64),
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("year", a.Year), goerr.V("month", a.Month))
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummary writes describe statistics for the raw and cleaned data as
// CSV with one row per dataset.
func WriteSummary(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"dataset", "count", "mean", "std", "min", "q1", "median", "q3", "max"}); err != nil {
		return goerr.Wrap(err, "failed to write header")
	}

	for _, ds := range []struct {
		name   string
		values []float64
	}{
		{"raw", r.Raw.Values},
		{"cleaned", r.Cleaned.Values},
	} {
		s, err := stats.Describe(ds.values)
		if err != nil {
			return goerr.Wrap(err, "failed to describe dataset", goerr.V("dataset", ds.name))
		}

		row := []string{ds.name, strconv.Itoa(s.Count)}
		for _, v := range []float64{s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max} {
			row = append(row, strconv.FormatFloat(v, 'f', 2, 64))
		}
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write row", goerr.V("dataset", ds.name))
		}
	}

	cw.Flush()
	return cw.Error()
}
