// Package pageviews cleans and charts a daily page view time series.
//
// The pipeline loads a CSV of (date, value) rows, drops values outside the
// central 95% of the data, and draws three images from the single cleaned
// dataset: a line chart of every day, a grouped bar chart of monthly means
// per year, and year-wise and month-wise box plots side by side.
//
// # Quick Start
//
// Run the command in a directory holding fcc-forum-pageviews.csv:
//
//	go run ./cmd/pageviews
//
// which writes line_plot.png, bar_plot.png and box_plot.png. Use the
// library directly:
//
//	raw, _ := timeseries.LoadCSV("fcc-forum-pageviews.csv", nil)
//	rep, _ := report.Build(raw, stats.DefaultLowQuantile, stats.DefaultHighQuantile)
//	r, _ := render.New(render.DefaultOptions())
//	paths, _ := rep.Draw(ctx, r, report.DefaultOutputs(), render.DefaultChartLabels())
//
// # Packages
//
//   - timeseries: Series type, CSV loading and saving
//   - stats: quantiles, outlier trimming, descriptive statistics
//   - aggregate: monthly means and box plot groups in calendar order
//   - render: gonum/plot charts and image encoding
//   - report: the cleaned dataset and the charts drawn from it
//   - cli: the pageviews command
package pageviews
