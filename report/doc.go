// Package report ties loading, cleaning, aggregation and rendering together.
//
// Build computes the cleaning bounds once over the raw series and derives
// every chart input from the single cleaned result:
//
//	rep, err := report.Build(raw, stats.DefaultLowQuantile, stats.DefaultHighQuantile)
//	paths, err := rep.Draw(ctx, renderer, report.DefaultOutputs(), render.DefaultChartLabels())
package report
