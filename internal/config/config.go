// Package config loads server and admin settings.
//
// Sources are applied in order: defaults, optional YAML file, environment, command-line flags.
// The YAML path comes from -config or LICAUTH_CONFIG.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable except SECRET_KEY
const EnvPrefix = "LICAUTH_"

// DefaultSecretKey is the development signing key; a warning is logged when it is used
const DefaultSecretKey = "your_secret_key"

// Storage drivers
const (
	DriverJSON   = "json"
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
)

// Config holds runtime settings
type Config struct {
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`
	Logging LoggingConfig `yaml:"logging" envPrefix:"LOG_"`
	Auth    AuthConfig    `yaml:"auth" envPrefix:"AUTH_"`
	Server  ServerConfig  `yaml:"server" envPrefix:"SERVER_"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string        `yaml:"addr" env:"ADDR" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// StorageConfig selects the persistence backend
type StorageConfig struct {
	Driver string `yaml:"driver" env:"DRIVER" validate:"oneof=json bolt sqlite"`
	Path   string `yaml:"path" env:"PATH" validate:"required"`
}

// AuthConfig holds token and password hashing settings
type AuthConfig struct {
	SecretKey      string        `yaml:"secret_key" env:"SECRET_KEY" validate:"required"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" validate:"gt=0"`
	BcryptCost     int           `yaml:"bcrypt_cost" env:"BCRYPT_COST" validate:"gte=4,lte=31"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" env:"FORMAT" validate:"oneof=json text"`
}

// legacyEnv is read without EnvPrefix
type legacyEnv struct {
	SecretKey string `env:"SECRET_KEY"`
	Config    string `env:"LICAUTH_CONFIG"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            "127.0.0.1:8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Driver: DriverJSON,
			Path:   "server_data.json",
		},
		Auth: AuthConfig{
			SecretKey:      DefaultSecretKey,
			AccessTokenTTL: time.Hour,
			BcryptCost:     10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// UsesDefaultSecret reports whether tokens are signed with DefaultSecretKey
func (c *Config) UsesDefaultSecret() bool {
	return c.Auth.SecretKey == DefaultSecretKey
}

// Validate checks field constraints
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// flagValues collects command-line overrides
type flagValues struct {
	configPath string
	addr       string
	driver     string
	path       string
	secretKey  string
	logLevel   string
	logFormat  string
	tokenTTL   time.Duration
}

// Load builds the configuration for the program name from args (without the program name).
// environ replaces the process environment when non-nil.
// It returns the remaining positional arguments
func Load(name string, args []string, environ map[string]string) (*Config, []string, error) {
	var fv flagValues

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.StringVar(&fv.configPath, "config", "", "path to YAML config file")
	flags.StringVar(&fv.addr, "addr", "", "HTTP listen address")
	flags.StringVar(&fv.driver, "storage-driver", "", "storage driver: json, bolt or sqlite")
	flags.StringVar(&fv.path, "storage-path", "", "storage file path")
	flags.StringVar(&fv.secretKey, "secret-key", "", "token signing key")
	flags.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&fv.logFormat, "log-format", "", "log format: json or text")
	flags.DurationVar(&fv.tokenTTL, "access-token-ttl", 0, "access token lifetime")

	if err := flags.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	cfg := Default()

	var legacy legacyEnv
	if err := env.ParseWithOptions(&legacy, env.Options{Environment: environ}); err != nil {
		return nil, nil, fmt.Errorf("failed to parse env: %w", err)
	}

	configPath := fv.configPath
	if configPath == "" {
		configPath = legacy.Config
	}
	if configPath != "" {
		if err := loadYAML(configPath, cfg); err != nil {
			return nil, nil, err
		}
	}

	if legacy.SecretKey != "" {
		cfg.Auth.SecretKey = legacy.SecretKey
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environ}); err != nil {
		return nil, nil, fmt.Errorf("failed to parse env: %w", err)
	}

	// Флаги имеют наивысший приоритет, применяются только явно заданные
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Server.Addr = fv.addr
		case "storage-driver":
			cfg.Storage.Driver = fv.driver
		case "storage-path":
			cfg.Storage.Path = fv.path
		case "secret-key":
			cfg.Auth.SecretKey = fv.secretKey
		case "log-level":
			cfg.Logging.Level = fv.logLevel
		case "log-format":
			cfg.Logging.Format = fv.logFormat
		case "access-token-ttl":
			cfg.Auth.AccessTokenTTL = fv.tokenTTL
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return cfg, flags.Args(), nil
}

func loadYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}
