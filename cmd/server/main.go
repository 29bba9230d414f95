package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/iudanet/licauth/internal/config"
	"github.com/iudanet/licauth/internal/logging"
	"github.com/iudanet/licauth/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	args := os.Args[1:]

	// Show version and exit if requested
	if slices.Contains(args, "-version") || slices.Contains(args, "--version") {
		printVersion()
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, _, err := config.Load("licauth-server", args, nil)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger, Version)
	if err != nil {
		return err
	}

	return app.Run(ctx)
}

func printVersion() {
	fmt.Printf("LicAuth Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
