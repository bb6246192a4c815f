package main

import (
	"context"
	"os"

	"github.com/indaco/relver/internal/cli"
	"github.com/indaco/relver/internal/config"
	"github.com/indaco/relver/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.FprintError(os.Stderr, err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	app := cli.New(cfg, cli.DefaultDeps())
	return app.Run(context.Background(), args)
}
