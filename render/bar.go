package render

import (
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/aggregate"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// MonthBars is one legend entry of the grouped bar chart: the values of a
// single month for every year.
type MonthBars struct {
	Name   string
	Values plotter.Values
}

// BarSeries returns one entry per calendar month, January first.
func BarSeries(grid *aggregate.Grid) []MonthBars {
	out := make([]MonthBars, len(grid.Months))
	for i, m := range grid.Months {
		out[i] = MonthBars{
			Name:   aggregate.MonthName(m),
			Values: plotter.Values(grid.Row(m)),
		}
	}
	return out
}

// BarChart draws one group of bars per year with one bar per month.
func BarChart(grid *aggregate.Grid, labels Labels) (*plot.Plot, error) {
	if len(grid.Years) == 0 {
		return nil, goerr.New("bar chart needs at least one year")
	}

	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y
	p.Legend.Top = true
	p.Legend.Left = true

	series := BarSeries(grid)
	colors := seriesColors(len(series))
	width := vg.Points(5)
	center := float64(len(series)-1) / 2

	for i, s := range series {
		bars, err := plotter.NewBarChart(s.Values, width)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build bars", goerr.V("month", s.Name))
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = colors[i]
		bars.Offset = width * vg.Length(float64(i)-center)

		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}

	years := make([]string, len(grid.Years))
	for i, y := range grid.Years {
		years[i] = strconv.Itoa(y)
	}
	p.NominalX(years...)
	p.Add(plotter.NewGrid())

	return p, nil
}
