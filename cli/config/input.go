package config

import (
	"log/slog"

	"github.com/sartorproj/pageviews/timeseries"
	"github.com/urfave/cli/v3"
)

// DefaultInputPath is the dataset read when no input is given.
const DefaultInputPath = "fcc-forum-pageviews.csv"

// Input holds dataset loading configuration
type Input struct {
	Path        string
	DateColumn  string
	ValueColumn string
	DateFormat  string
}

// Flags returns CLI flags for Input configuration
func (x *Input) Flags() []cli.Flag {
	defaults := timeseries.DefaultCSVOptions()
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "CSV file with one row per day",
			Category:    "Input",
			Value:       DefaultInputPath,
			Sources:     cli.EnvVars("PAGEVIEWS_INPUT"),
			Destination: &x.Path,
		},
		&cli.StringFlag{
			Name:        "date-column",
			Usage:       "Name of the date column",
			Category:    "Input",
			Value:       defaults.DateColumn,
			Sources:     cli.EnvVars("PAGEVIEWS_DATE_COLUMN"),
			Destination: &x.DateColumn,
		},
		&cli.StringFlag{
			Name:        "value-column",
			Usage:       "Name of the page view column",
			Category:    "Input",
			Value:       defaults.ValueColumn,
			Sources:     cli.EnvVars("PAGEVIEWS_VALUE_COLUMN"),
			Destination: &x.ValueColumn,
		},
		&cli.StringFlag{
			Name:        "date-format",
			Usage:       "Go reference layout of the date column",
			Category:    "Input",
			Value:       defaults.DateFormat,
			Sources:     cli.EnvVars("PAGEVIEWS_DATE_FORMAT"),
			Destination: &x.DateFormat,
		},
	}
}

// Load reads the configured dataset.
func (x *Input) Load() (*timeseries.Series, error) {
	opts := timeseries.DefaultCSVOptions()
	if x.DateColumn != "" {
		opts.DateColumn = x.DateColumn
	}
	if x.ValueColumn != "" {
		opts.ValueColumn = x.ValueColumn
	}
	if x.DateFormat != "" {
		opts.DateFormat = x.DateFormat
	}
	return timeseries.LoadCSV(x.Path, opts)
}

// LogValue returns structured log value
func (x Input) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", x.Path),
		slog.String("date_column", x.DateColumn),
		slog.String("value_column", x.ValueColumn),
		slog.String("date_format", x.DateFormat),
	)
}
