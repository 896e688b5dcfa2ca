package render

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/timeseries"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LinePoints maps each record to a point with x in Unix seconds.
func LinePoints(series *timeseries.Series) plotter.XYs {
	pts := make(plotter.XYs, series.Len())
	for i := range pts {
		pts[i].X = float64(series.Timestamps[i].Unix())
		pts[i].Y = series.Values[i]
	}
	return pts
}

// LineChart plots the series as a connected line with small point markers.
func LineChart(series *timeseries.Series, labels Labels) (*plot.Plot, error) {
	if series.Len() == 0 {
		return nil, goerr.New("line chart needs at least one record")
	}

	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}

	line, points, err := plotter.NewLinePoints(LinePoints(series))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build line")
	}
	line.Color = seriesColors(1)[0]
	line.Width = vg.Points(1)
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(0.5)
	points.Color = line.Color

	p.Add(plotter.NewGrid(), line, points)
	return p, nil
}
