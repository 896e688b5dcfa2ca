package cli

import (
	"context"
	"fmt"

	"github.com/sartorproj/pageviews/report"
	"github.com/urfave/cli/v3"
)

func cmdSummary(env *environment) *cli.Command {
	return &cli.Command{
		Name:  "summary",
		Usage: "Print descriptive statistics and monthly averages as CSV",
		Action: func(ctx context.Context, c *cli.Command) error {
			rep, err := env.build(ctx)
			if err != nil {
				return err
			}

			if err := report.WriteSummary(env.stdout, rep); err != nil {
				return err
			}
			fmt.Fprintln(env.stdout)
			return report.WriteMonthly(env.stdout, rep.Monthly)
		},
	}
}
