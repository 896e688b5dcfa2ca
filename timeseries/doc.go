// Package timeseries provides time series data structures and utilities.
//
// A Series is an ordered sequence of dated observations. For the page view
// data each observation is one day and its value is the count for that day.
//
// # Loading from CSV
//
// Load a dataset with the default date and value columns:
//
//	series, err := timeseries.LoadCSV("fcc-forum-pageviews.csv", nil)
//
// Loading fails fast: a missing file, an unparseable date or a non-numeric
// value returns an error naming the offending row.
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "day",
//	    ValueColumn: "views",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
//
// # Filtering
//
// Filter keeps records in their original order:
//
//	busy := series.Filter(func(r timeseries.Record) bool { return r.Value > 1000 })
package timeseries
