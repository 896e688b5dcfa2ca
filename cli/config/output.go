package config

import (
	"log/slog"

	"github.com/sartorproj/pageviews/render"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/plot/vg"
)

// Output holds image output configuration
type Output struct {
	Dir        string
	Format     string
	Width      float64 // inches
	Height     float64 // inches
	DPI        int
	ChartsFile string
}

// Flags returns CLI flags for Output configuration
func (x *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory the images are written to (default: working directory)",
			Category:    "Output",
			Sources:     cli.EnvVars("PAGEVIEWS_OUTPUT_DIR"),
			Destination: &x.Dir,
		},
		&cli.StringFlag{
			Name:        "format",
			Usage:       "Image format (png, jpg, tiff)",
			Category:    "Output",
			Value:       "png",
			Sources:     cli.EnvVars("PAGEVIEWS_FORMAT"),
			Destination: &x.Format,
		},
		&cli.FloatFlag{
			Name:        "width",
			Usage:       "Width of one chart in inches",
			Category:    "Output",
			Value:       6,
			Sources:     cli.EnvVars("PAGEVIEWS_WIDTH"),
			Destination: &x.Width,
		},
		&cli.FloatFlag{
			Name:        "height",
			Usage:       "Height of one chart in inches",
			Category:    "Output",
			Value:       6,
			Sources:     cli.EnvVars("PAGEVIEWS_HEIGHT"),
			Destination: &x.Height,
		},
		&cli.IntFlag{
			Name:        "dpi",
			Usage:       "Image resolution",
			Category:    "Output",
			Value:       96,
			Sources:     cli.EnvVars("PAGEVIEWS_DPI"),
			Destination: &x.DPI,
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "YAML file overriding chart labels and file names",
			Category:    "Output",
			Sources:     cli.EnvVars("PAGEVIEWS_CONFIG"),
			Destination: &x.ChartsFile,
		},
	}
}

// Renderer builds an image renderer from the configuration.
func (x *Output) Renderer() (*render.Renderer, error) {
	return render.New(render.Options{
		Width:  vg.Length(x.Width) * vg.Inch,
		Height: vg.Length(x.Height) * vg.Inch,
		DPI:    x.DPI,
		Format: x.Format,
	})
}

// Charts resolves labels and file names, applying the YAML file when one
// is configured. A non-empty output directory flag wins over the file.
func (x *Output) Charts() (*Charts, error) {
	charts := DefaultCharts()
	if x.ChartsFile != "" {
		loaded, err := LoadChartsFromFile(x.ChartsFile)
		if err != nil {
			return nil, err
		}
		charts = loaded
	}
	if x.Dir != "" {
		charts.Outputs.Dir = x.Dir
	}
	return charts, nil
}

// LogValue returns structured log value
func (x Output) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", x.Dir),
		slog.String("format", x.Format),
		slog.Float64("width", x.Width),
		slog.Float64("height", x.Height),
		slog.Int("dpi", x.DPI),
		slog.String("config", x.ChartsFile),
	)
}
