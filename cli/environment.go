package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/cli/config"
	"github.com/sartorproj/pageviews/report"
)

// environment holds the configuration shared by every command.
type environment struct {
	input    config.Input
	cleaning config.Cleaning
	output   config.Output
	stdout   io.Writer
}

// build loads the dataset and derives the report every command works on.
func (e *environment) build(ctx context.Context) (*report.Report, error) {
	logger := ctxlog.From(ctx)

	if err := e.cleaning.Validate(); err != nil {
		return nil, err
	}

	raw, err := e.input.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded", slog.Any("input", e.input), slog.Int("records", raw.Len()))

	rep, err := report.Build(raw, e.cleaning.LowQuantile, e.cleaning.HighQuantile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build report", goerr.V("input", e.input.Path))
	}
	logger.Info("dataset cleaned", slog.Any("cleaning", e.cleaning), slog.Any("report", rep))

	return rep, nil
}

// draw renders the named charts, or all of them when names is empty.
func (e *environment) draw(ctx context.Context, names []string) error {
	charts := make([]report.Chart, 0, len(names))
	for _, name := range names {
		c, err := report.ParseChart(name)
		if err != nil {
			return err
		}
		charts = append(charts, c)
	}

	renderer, err := e.output.Renderer()
	if err != nil {
		return err
	}
	settings, err := e.output.Charts()
	if err != nil {
		return err
	}

	rep, err := e.build(ctx)
	if err != nil {
		return err
	}

	paths, err := rep.Draw(ctx, renderer, settings.Outputs, settings.Labels, charts...)
	if err != nil {
		return err
	}

	ctxlog.From(ctx).Info("charts drawn", slog.Any("output", e.output), slog.Any("paths", paths))
	return nil
}
