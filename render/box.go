package render

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/aggregate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxChart draws one box per group at x = group index. Groups without
// values keep their tick label but get no box.
func BoxChart(groups []aggregate.Group, labels Labels) (*plot.Plot, error) {
	if len(groups) == 0 {
		return nil, goerr.New("box chart needs at least one group")
	}

	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y

	colors := seriesColors(len(groups))
	width := vg.Points(18)

	for i, g := range groups {
		if len(g.Values) == 0 {
			continue
		}
		box, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build box", goerr.V("group", g.Label))
		}
		box.FillColor = colors[i]
		p.Add(box)
	}

	p.NominalX(aggregate.Labels(groups)...)
	return p, nil
}

// BoxCharts builds the year-wise and month-wise box plots drawn side by side.
func BoxCharts(yearly, monthly []aggregate.Group, yearLabels, monthLabels Labels) (*plot.Plot, *plot.Plot, error) {
	year, err := BoxChart(yearly, yearLabels)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to build year-wise box plot")
	}
	month, err := BoxChart(monthly, monthLabels)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to build month-wise box plot")
	}
	return year, month, nil
}
