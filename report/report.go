package report

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/aggregate"
	"github.com/sartorproj/pageviews/render"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
	"gonum.org/v1/plot"
)

// Report holds the cleaned dataset and every view derived from it. All
// charts are drawn from the same Report so they agree with each other.
// A Report must not be modified after Build.
type Report struct {
	Raw     *timeseries.Series
	Cleaned *timeseries.Series
	Bounds  stats.Bounds
	Monthly []aggregate.MonthlyAggregate
	Grid    *aggregate.Grid
	Years   []aggregate.Group
	Months  []aggregate.Group
}

// Build trims raw to the [lowQ, highQ] quantile range and derives the
// monthly means and box plot groups. The report keeps its own copy of raw.
func Build(raw *timeseries.Series, lowQ, highQ float64) (*Report, error) {
	cleaned, bounds, err := stats.TrimQuantiles(raw, lowQ, highQ)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to clean dataset")
	}

	monthly := aggregate.MonthlyMeans(cleaned)
	return &Report{
		Raw:     raw.Copy(),
		Cleaned: cleaned,
		Bounds:  bounds,
		Monthly: monthly,
		Grid:    aggregate.BarGrid(monthly),
		Years:   aggregate.YearlyGroups(cleaned),
		Months:  aggregate.MonthlyGroups(cleaned),
	}, nil
}

// Removed returns how many records cleaning dropped.
func (r *Report) Removed() int {
	return r.Raw.Len() - r.Cleaned.Len()
}

// LogValue returns structured log value
func (r *Report) LogValue() slog.Value {
	first, last := r.Raw.Span()
	return slog.GroupValue(
		slog.Int("records", r.Raw.Len()),
		slog.Int("kept", r.Cleaned.Len()),
		slog.Int("removed", r.Removed()),
		slog.Float64("low", r.Bounds.Low),
		slog.Float64("high", r.Bounds.High),
		slog.Float64("min", r.Cleaned.Min()),
		slog.Float64("max", r.Cleaned.Max()),
		slog.Float64("mean", r.Cleaned.Mean()),
		slog.Float64("median", r.Cleaned.Median()),
		slog.String("from", first.Format("2006-01-02")),
		slog.String("to", last.Format("2006-01-02")),
	)
}

// Chart identifies one of the images a Report can produce.
type Chart string

const (
	ChartLine Chart = "line"
	ChartBar  Chart = "bar"
	ChartBox  Chart = "box"
)

// AllCharts lists every chart in drawing order.
var AllCharts = []Chart{ChartLine, ChartBar, ChartBox}

// ParseChart converts a chart name.
func ParseChart(s string) (Chart, error) {
	for _, c := range AllCharts {
		if string(c) == s {
			return c, nil
		}
	}
	return "", goerr.New("unknown chart", goerr.V("chart", s))
}

// Outputs names the image files, without extension, inside Dir.
type Outputs struct {
	Dir  string `yaml:"dir"`
	Line string `yaml:"line"`
	Bar  string `yaml:"bar"`
	Box  string `yaml:"box"`
}

// DefaultOutputs writes line_plot, bar_plot and box_plot to the working directory.
func DefaultOutputs() Outputs {
	return Outputs{Dir: ".", Line: "line_plot", Bar: "bar_plot", Box: "box_plot"}
}

// Path returns the file path for chart c with extension ext.
func (o Outputs) Path(c Chart, ext string) string {
	var name string
	switch c {
	case ChartLine:
		name = o.Line
	case ChartBar:
		name = o.Bar
	case ChartBox:
		name = o.Box
	}
	return filepath.Join(o.Dir, name+"."+ext)
}

// Plots builds the plots for chart c. The box chart yields two plots that
// are drawn side by side.
func (r *Report) Plots(c Chart, labels render.ChartLabels) ([]*plot.Plot, error) {
	switch c {
	case ChartLine:
		p, err := render.LineChart(r.Cleaned, labels.Line)
		if err != nil {
			return nil, err
		}
		return []*plot.Plot{p}, nil
	case ChartBar:
		p, err := render.BarChart(r.Grid, labels.Bar)
		if err != nil {
			return nil, err
		}
		return []*plot.Plot{p}, nil
	case ChartBox:
		year, month, err := render.BoxCharts(r.Years, r.Months, labels.YearBox, labels.MonthBox)
		if err != nil {
			return nil, err
		}
		return []*plot.Plot{year, month}, nil
	}
	return nil, goerr.New("unknown chart", goerr.V("chart", c))
}

// Draw renders the requested charts, all of them when none are given, one
// after another. It returns the paths written.
func (r *Report) Draw(ctx context.Context, renderer *render.Renderer, out Outputs, labels render.ChartLabels, charts ...Chart) ([]string, error) {
	logger := ctxlog.From(ctx)
	if len(charts) == 0 {
		charts = AllCharts
	}

	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		plots, err := r.Plots(c, labels)
		if err != nil {
			return paths, goerr.Wrap(err, "failed to build chart", goerr.V("chart", c))
		}

		path := out.Path(c, renderer.Format())
		if err := renderer.Save(path, plots...); err != nil {
			return paths, goerr.Wrap(err, "failed to save chart", goerr.V("chart", c))
		}

		logger.Info("chart written", slog.String("chart", string(c)), slog.String("path", path))
		paths = append(paths, path)
	}
	return paths, nil
}
