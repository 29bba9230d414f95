package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/iudanet/licauth/internal/client/api"
	"github.com/iudanet/licauth/internal/client/auth"
	"github.com/iudanet/licauth/internal/client/cli"
	"github.com/iudanet/licauth/internal/client/storage/boltdb"
	"github.com/iudanet/licauth/internal/config"
	"github.com/iudanet/licauth/internal/iocli"
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
		if errors.Is(err, cli.ErrUsage) {
			cli.PrintUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.LoadClient("licauth", args, nil)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: command required", cli.ErrUsage)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	console := iocli.NewStdio()
	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.CachePath)
	if err != nil {
		return fmt.Errorf("failed to open session cache: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close session cache", "error", err)
		}
	}()

	passphrase := cfg.CachePassphrase
	if passphrase == "" {
		if passphrase, err = console.ReadPassword("Cache passphrase: "); err != nil {
			return fmt.Errorf("failed to read cache passphrase: %w", err)
		}
	}

	store, err := auth.OpenStore(ctx, boltStorage, passphrase)
	if err != nil {
		return err
	}

	service := auth.NewService(api.NewClient(cfg.ServerURL, cfg.Timeout), store, logger)

	return cli.New(console, service).Run(ctx, rest[0], rest[1:])
}

func printVersion() {
	fmt.Printf("LicAuth Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
