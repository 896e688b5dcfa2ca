package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/sartorproj/pageviews/timeseries"
	"github.com/urfave/cli/v3"
)

func cmdClean(env *environment) *cli.Command {
	var out string

	return &cli.Command{
		Name:  "clean",
		Usage: "Write the dataset with outliers removed as CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "out",
				Usage:       "Destination CSV file; - writes to stdout",
				Value:       "-",
				Destination: &out,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			rep, err := env.build(ctx)
			if err != nil {
				return err
			}

			if out == "-" || out == "" {
				return timeseries.WriteCSV(rep.Cleaned, env.stdout)
			}
			if err := timeseries.SaveCSV(rep.Cleaned, out); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("cleaned dataset written",
				slog.String("path", out),
				slog.Int("records", rep.Cleaned.Len()),
			)
			return nil
		},
	}
}
