package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/sartorproj/pageviews/aggregate"
	"github.com/sartorproj/pageviews/render"
	"github.com/sartorproj/pageviews/timeseries"
	"gonum.org/v1/plot/vg"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func fixture(days int) *timeseries.Series {
	start := time.Date(2016, 5, 9, 0, 0, 0, 0, time.UTC)
	records := make([]timeseries.Record, days)
	for i := range records {
		records[i] = timeseries.Record{Date: start.AddDate(0, 0, i), Value: float64(1000 + (i*53)%400)}
	}
	return timeseries.FromRecords(records)
}

func smallRenderer(t *testing.T, format string) *render.Renderer {
	t.Helper()
	r, err := render.New(render.Options{Width: 2 * vg.Inch, Height: 2 * vg.Inch, DPI: 48, Format: format})
	gt.NoError(t, err).Required()
	return r
}

func TestLinePoints(t *testing.T) {
	series := fixture(30)
	pts := render.LinePoints(series)

	gt.Equal(t, len(pts), series.Len())
	gt.Equal(t, pts[0].X, float64(series.Timestamps[0].Unix()))
	gt.Equal(t, pts[29].Y, series.Values[29])
}

func TestBarSeriesOrder(t *testing.T) {
	// Data starting in May must still list months from January.
	grid := aggregate.BarGrid(aggregate.MonthlyMeans(fixture(300)))
	series := render.BarSeries(grid)

	gt.Equal(t, len(series), 12)
	for i, s := range series {
		gt.Equal(t, s.Name, aggregate.Months[i])
		gt.Equal(t, len(s.Values), len(grid.Years))
	}
}

func TestCharts(t *testing.T) {
	series := fixture(400)
	labels := render.DefaultChartLabels()
	r := smallRenderer(t, "png")

	t.Run("line", func(t *testing.T) {
		p, err := render.LineChart(series, labels.Line)
		gt.NoError(t, err).Required()
		gt.Equal(t, p.Title.Text, labels.Line.Title)

		var buf bytes.Buffer
		gt.NoError(t, r.Write(&buf, p)).Required()
		gt.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})

	t.Run("bar", func(t *testing.T) {
		p, err := render.BarChart(aggregate.BarGrid(aggregate.MonthlyMeans(series)), labels.Bar)
		gt.NoError(t, err).Required()
		gt.Equal(t, p.X.Label.Text, "Years")

		var buf bytes.Buffer
		gt.NoError(t, r.Write(&buf, p)).Required()
		gt.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})

	t.Run("box", func(t *testing.T) {
		year, month, err := render.BoxCharts(
			aggregate.YearlyGroups(series), aggregate.MonthlyGroups(series),
			labels.YearBox, labels.MonthBox,
		)
		gt.NoError(t, err).Required()
		gt.Equal(t, year.Title.Text, "Year-wise Box Plot (Trend)")
		gt.Equal(t, month.Title.Text, "Month-wise Box Plot (Seasonality)")

		var buf bytes.Buffer
		gt.NoError(t, r.Write(&buf, year, month)).Required()
		gt.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
	})
}

func TestChartErrors(t *testing.T) {
	empty := timeseries.FromRecords(nil)

	_, err := render.LineChart(empty, render.Labels{})
	gt.Error(t, err)

	_, err = render.BarChart(aggregate.BarGrid(nil), render.Labels{})
	gt.Error(t, err)

	_, err = render.BoxChart(nil, render.Labels{})
	gt.Error(t, err)
}

func TestBoxChartSkipsEmptyGroups(t *testing.T) {
	// Only May and June have data.
	groups := aggregate.MonthlyGroups(fixture(45))
	p, err := render.BoxChart(groups, render.Labels{})
	gt.NoError(t, err).Required()

	var buf bytes.Buffer
	gt.NoError(t, smallRenderer(t, "png").Write(&buf, p))
}

func TestRendererSave(t *testing.T) {
	p, err := render.LineChart(fixture(10), render.Labels{Title: "t"})
	gt.NoError(t, err).Required()

	for _, format := range []string{"png", "jpg", "tiff"} {
		t.Run(format, func(t *testing.T) {
			r := smallRenderer(t, format)
			gt.Equal(t, r.Format(), format)

			path := filepath.Join(t.TempDir(), "line_plot."+format)
			gt.NoError(t, r.Save(path, p)).Required()

			info, err := os.Stat(path)
			gt.NoError(t, err).Required()
			gt.True(t, info.Size() > 0)
		})
	}

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope", "line_plot.png")
		gt.Error(t, smallRenderer(t, "png").Save(path, p))
	})
}

func TestNewRenderer(t *testing.T) {
	_, err := render.New(render.Options{Width: vg.Inch, Height: vg.Inch, Format: "gif"})
	gt.Error(t, err)

	_, err = render.New(render.Options{Width: 0, Height: vg.Inch, Format: "png"})
	gt.Error(t, err)

	r, err := render.New(render.Options{Width: vg.Inch, Height: vg.Inch, Format: ".PNG"})
	gt.NoError(t, err).Required()
	gt.Equal(t, r.Format(), "png")

	p, err := render.LineChart(fixture(3), render.Labels{})
	gt.NoError(t, err).Required()
	gt.NoError(t, r.Write(&bytes.Buffer{}, p))
	gt.Error(t, r.Write(&bytes.Buffer{}))
}

func TestLabelsMerge(t *testing.T) {
	def := render.DefaultChartLabels()
	merged := render.ChartLabels{Line: render.Labels{Title: "Views"}}.Merge(def)

	gt.Equal(t, merged.Line.Title, "Views")
	gt.Equal(t, merged.Line.X, "Date")
	gt.Equal(t, merged.Bar, def.Bar)
	gt.Equal(t, merged.YearBox.Title, "Year-wise Box Plot (Trend)")
}
