package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func cmdDraw(env *environment) *cli.Command {
	var charts []string

	return &cli.Command{
		Name:  "draw",
		Usage: "Draw the line, bar and box charts (default command)",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:        "chart",
				Aliases:     []string{"c"},
				Usage:       "Chart to draw (line, bar, box); repeat to draw several",
				Destination: &charts,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return env.draw(ctx, charts)
		},
	}
}
