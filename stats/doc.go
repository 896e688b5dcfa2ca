// Package stats provides the statistics used to clean and describe a
// page view series.
//
// # Quantiles
//
// Quantile uses linear interpolation between order statistics:
//
//	q975, err := stats.Quantile(series.Values, 0.975)
//
// # Outlier Trimming
//
// TrimQuantiles keeps the records whose value lies inside an inclusive
// quantile range computed over the whole series:
//
//	cleaned, bounds, err := stats.TrimQuantiles(series,
//	    stats.DefaultLowQuantile, stats.DefaultHighQuantile)
//
// # Descriptive Statistics
//
//	summary, err := stats.Describe(cleaned.Values)
//	// summary.Count, summary.Mean, summary.Median, summary.IQR()
package stats
