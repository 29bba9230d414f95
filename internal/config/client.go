package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// ClientConfig holds settings of the command-line client
type ClientConfig struct {
	ServerURL string `env:"SERVER_URL" validate:"required,url"`
	CachePath string `env:"CACHE_PATH" validate:"required"`
	// CachePassphrase encrypts cached tokens; without it the cache is not used
	CachePassphrase string        `env:"CACHE_PASSPHRASE"`
	Timeout         time.Duration `env:"CLIENT_TIMEOUT" validate:"gt=0"`
}

// DefaultClient returns the built-in client configuration
func DefaultClient() *ClientConfig {
	return &ClientConfig{
		ServerURL: "http://127.0.0.1:8000",
		CachePath: "licauth-client.db",
		Timeout:   10 * time.Second,
	}
}

// LoadClient builds the client configuration: defaults, LICAUTH_* environment, flags.
// It returns the remaining positional arguments
func LoadClient(name string, args []string, environ map[string]string) (*ClientConfig, []string, error) {
	cfg := DefaultClient()

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return nil, nil, fmt.Errorf("failed to parse env: %w", err)
	}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "server URL")
	flags.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "path to local session cache")
	flags.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "HTTP request timeout")

	if err := flags.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags.Args(), nil
}
