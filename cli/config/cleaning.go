package config

import (
	"log/slog"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/stats"
	"github.com/urfave/cli/v3"
)

// Cleaning holds outlier trimming configuration
type Cleaning struct {
	LowQuantile  float64
	HighQuantile float64
}

// Flags returns CLI flags for Cleaning configuration
func (x *Cleaning) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{
			Name:        "low-quantile",
			Usage:       "Values below this quantile are dropped",
			Category:    "Cleaning",
			Value:       stats.DefaultLowQuantile,
			Sources:     cli.EnvVars("PAGEVIEWS_LOW_QUANTILE"),
			Destination: &x.LowQuantile,
		},
		&cli.FloatFlag{
			Name:        "high-quantile",
			Usage:       "Values above this quantile are dropped",
			Category:    "Cleaning",
			Value:       stats.DefaultHighQuantile,
			Sources:     cli.EnvVars("PAGEVIEWS_HIGH_QUANTILE"),
			Destination: &x.HighQuantile,
		},
	}
}

// Validate checks that 0 <= low < high <= 1.
func (x *Cleaning) Validate() error {
	if math.IsNaN(x.LowQuantile) || math.IsNaN(x.HighQuantile) ||
		x.LowQuantile < 0 || x.HighQuantile > 1 || x.LowQuantile >= x.HighQuantile {
		return goerr.New("quantiles must satisfy 0 <= low < high <= 1",
			goerr.V("low", x.LowQuantile), goerr.V("high", x.HighQuantile))
	}
	return nil
}

// LogValue returns structured log value
func (x Cleaning) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("low_quantile", x.LowQuantile),
		slog.Float64("high_quantile", x.HighQuantile),
	)
}
