package render

import (
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls image encoding. Width and Height size a single chart;
// charts written together are tiled left to right.
type Options struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	Format string // png, jpg, jpeg, tif or tiff
}

// DefaultOptions returns 6x6 inch PNG output at 96 DPI.
func DefaultOptions() Options {
	return Options{
		Width:  6 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    vgimg.DefaultDPI,
		Format: "png",
	}
}

// Renderer draws plots onto raster images.
type Renderer struct {
	opts Options
}

// New creates a Renderer, validating opts.
func New(opts Options) (*Renderer, error) {
	opts.Format = strings.ToLower(strings.TrimPrefix(opts.Format, "."))
	if opts.Format == "" {
		opts.Format = "png"
	}
	if _, err := encoder(nil, opts.Format); err != nil {
		return nil, err
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, goerr.New("image size must be positive",
			goerr.V("width", opts.Width), goerr.V("height", opts.Height))
	}
	if opts.DPI <= 0 {
		opts.DPI = vgimg.DefaultDPI
	}
	return &Renderer{opts: opts}, nil
}

// Format returns the image format, which is also the file extension.
func (r *Renderer) Format() string {
	return r.opts.Format
}

// Write draws plots side by side on one canvas and encodes it to w.
func (r *Renderer) Write(w io.Writer, plots ...*plot.Plot) error {
	if len(plots) == 0 {
		return goerr.New("no plots to draw")
	}

	c := vgimg.NewWith(
		vgimg.UseWH(r.opts.Width*vg.Length(len(plots)), r.opts.Height),
		vgimg.UseDPI(r.opts.DPI),
	)
	dc := draw.New(c)

	if len(plots) == 1 {
		plots[0].Draw(dc)
	} else {
		tiles := draw.Tiles{
			Rows:      1,
			Cols:      len(plots),
			PadX:      vg.Millimeter * 4,
			PadTop:    vg.Millimeter * 2,
			PadBottom: vg.Millimeter * 2,
			PadLeft:   vg.Millimeter * 2,
			PadRight:  vg.Millimeter * 2,
		}
		canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
		for i, p := range plots {
			p.Draw(canvases[0][i])
		}
	}

	enc, err := encoder(c, r.opts.Format)
	if err != nil {
		return err
	}
	if _, err := enc.WriteTo(w); err != nil {
		return goerr.Wrap(err, "failed to encode image", goerr.V("format", r.opts.Format))
	}
	return nil
}

// Save writes plots to the file at path, creating or truncating it.
func (r *Renderer) Save(path string, plots ...*plot.Plot) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create image file", goerr.V("path", path))
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = goerr.Wrap(cerr, "failed to close image file", goerr.V("path", path))
		}
	}()

	if err := r.Write(f, plots...); err != nil {
		return goerr.Wrap(err, "failed to write image file", goerr.V("path", path))
	}
	return nil
}

func encoder(c *vgimg.Canvas, format string) (io.WriterTo, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: c}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: c}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: c}, nil
	}
	return nil, goerr.New("unsupported image format", goerr.V("format", format))
}

var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// seriesColors returns n distinct colors spread around the hue circle.
func seriesColors(n int) []color.Color {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []color.Color{lineColor}
	}
	return palette.Rainbow(n, palette.Red, palette.Magenta, 0.7, 0.85, 1).Colors()
}
