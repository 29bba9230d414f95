package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/iudanet/licauth/internal/admin"
	"github.com/iudanet/licauth/internal/config"
	"github.com/iudanet/licauth/internal/crypto"
	"github.com/iudanet/licauth/internal/iocli"
	"github.com/iudanet/licauth/internal/logging"
	"github.com/iudanet/licauth/internal/server/storage/driver"
	"github.com/iudanet/licauth/internal/server/storage/memory"
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
		if errors.Is(err, admin.ErrUsage) {
			admin.PrintUsage(os.Stderr)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, rest, err := config.Load("licauth-admin", args, nil)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("%w: command required", admin.ErrUsage)
	}

	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return err
	}

	ctx := context.Background()

	persister, err := driver.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	store, err := memory.New(ctx, persister, crypto.NewBcryptHasher(cfg.Auth.BcryptCost), logger)
	if err != nil {
		_ = persister.Close()
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	return admin.New(iocli.NewStdio(), store).Run(ctx, rest[0], rest[1:])
}

func printVersion() {
	fmt.Printf("LicAuth Admin\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
