// Package render draws the page view charts with gonum.org/v1/plot.
//
// Chart builders return a *plot.Plot:
//
//	line, err := render.LineChart(cleaned, labels.Line)
//	bars, err := render.BarChart(aggregate.BarGrid(monthly), labels.Bar)
//	year, month, err := render.BoxCharts(yearly, monthly, labels.YearBox, labels.MonthBox)
//
// A Renderer encodes one or more plots into a raster image. Several plots
// passed together are tiled left to right:
//
//	r, err := render.New(render.DefaultOptions())
//	err = r.Save("box_plot.png", year, month)
package render
