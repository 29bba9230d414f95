// Package server wires the credential store, token service and HTTP API together
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/licauth/internal/config"
	"github.com/iudanet/licauth/internal/crypto"
	"github.com/iudanet/licauth/internal/server/auth"
	"github.com/iudanet/licauth/internal/server/entitlement"
	"github.com/iudanet/licauth/internal/server/handlers"
	"github.com/iudanet/licauth/internal/server/jwt"
	"github.com/iudanet/licauth/internal/server/metrics"
	"github.com/iudanet/licauth/internal/server/storage/driver"
	"github.com/iudanet/licauth/internal/server/storage/memory"
)

// App is a configured server ready to run
type App struct {
	config  *config.Config
	logger  *slog.Logger
	store   *memory.Store
	metrics *metrics.Metrics
	server  *http.Server
}

// NewApp opens the configured storage and builds the HTTP handler
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*App, error) {
	if cfg.UsesDefaultSecret() {
		logger.WarnContext(ctx, "using the default secret key; set SECRET_KEY in production")
	}

	persister, err := driver.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)

	store, err := memory.New(ctx, persister, hasher, logger)
	if err != nil {
		_ = persister.Close()
		return nil, err
	}

	tokens := jwt.NewService(cfg.Auth.SecretKey, cfg.Auth.AccessTokenTTL)
	resolver := entitlement.NewResolver(store, store, tokens, logger)
	service := auth.NewService(store, store, hasher, tokens, resolver, logger)

	m := metrics.New()
	router := NewRouter(logger,
		handlers.NewAuthHandler(logger, service, m),
		handlers.NewHealthHandler(logger, version),
		m,
	)

	return &App{
		config:  cfg,
		logger:  logger,
		store:   store,
		metrics: m,
		server: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
		},
	}, nil
}

// Handler returns the HTTP handler of the app
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves on the configured address until ctx is cancelled or SIGINT/SIGTERM arrives.
// SIGHUP reloads the store from storage
func (a *App) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", a.config.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Server.Addr, err)
	}

	return a.Serve(ctx, listener)
}

// Serve is Run on an existing listener
func (a *App) Serve(ctx context.Context, listener net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.InfoContext(gctx, "server started", slog.String("addr", listener.Addr().String()))
		if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-hup:
				a.Reload(gctx)
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()

		// Контекст уже отменен, для graceful shutdown нужен новый
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), a.config.Server.ShutdownTimeout)
		defer cancel()

		a.logger.InfoContext(shutdownCtx, "shutting down server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	if closeErr := a.store.Close(); closeErr != nil {
		a.logger.Error("failed to close storage", slog.Any("error", closeErr))
	}

	return err
}

// Reload re-reads the store from storage; on failure the current state is kept
func (a *App) Reload(ctx context.Context) {
	err := a.store.Reload(ctx)
	a.metrics.StoreReload(err)
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to reload store", slog.Any("error", err))
		return
	}
	a.logger.InfoContext(ctx, "store reloaded")
}
