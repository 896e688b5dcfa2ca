// Package cli implements the pageviews command line tool.
package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/sartorproj/pageviews/cli/config"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var loggerCfg config.Logger
	env := &environment{stdout: stdout}

	app := &cli.Command{
		Name:      "pageviews",
		Usage:     "Trim outliers from a daily page view series and chart it",
		Version:   "0.1.0",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: joinFlags(
			loggerCfg.Flags(),
			env.input.Flags(),
			env.cleaning.Flags(),
			env.output.Flags(),
		),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure(stderr)
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return env.draw(ctx, nil)
		},
		Commands: []*cli.Command{
			cmdDraw(env),
			cmdClean(env),
			cmdSummary(env),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		err = goerr.Wrap(err, "CLI execution failed")
		handleError(err)
		return err
	}

	return nil
}

func handleError(err error) {
	slog.Default().Error("pageviews failed", "error", err)
}
