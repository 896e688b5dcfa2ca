package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sartorproj/pageviews/cli"
)

func main() {
	// PAGEVIEWS_* variables may come from a .env file in the working directory.
	_ = godotenv.Load()

	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
