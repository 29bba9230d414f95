// Package cli implements the commands of the licauth client
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iudanet/licauth/internal/client/auth"
	"github.com/iudanet/licauth/internal/client/storage"
	"github.com/iudanet/licauth/internal/iocli"
)

// ErrUsage is returned for an unknown command or wrong arguments
var ErrUsage = errors.New("invalid usage")

//go:generate moq -out service_mock.go . Service

// Service is the session service used by the commands
type Service interface {
	Login(ctx context.Context, email, password string) (*storage.Session, error)
	ExchangeProductKey(ctx context.Context, productKey string) (*storage.Session, error)
	Refresh(ctx context.Context) (*storage.Session, error)
	Validate(ctx context.Context, explicit string) (*auth.ValidateResult, error)
	Status(ctx context.Context) (*storage.Session, error)
	Logout(ctx context.Context) error
}

type Cli struct {
	io      iocli.IO
	service Service
}

func New(io iocli.IO, service Service) *Cli {
	return &Cli{
		io:      io,
		service: service,
	}
}

// Run executes command with its arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return c.runLogin(ctx, args)
	case "product-key":
		return c.runProductKey(ctx, args)
	case "refresh":
		return c.runRefresh(ctx)
	case "validate":
		return c.runValidate(ctx, args)
	case "status":
		return c.runStatus(ctx)
	case "logout":
		return c.runLogout(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func PrintUsage(out io.Writer) {
	_, _ = fmt.Fprint(out, `LicAuth Client

Usage:
  licauth [OPTIONS] COMMAND

Options:
  -version         Show version information
  -server URL      Server URL (default: http://127.0.0.1:8000, env LICAUTH_SERVER_URL)
  -cache PATH      Path to local session cache (default: licauth-client.db)
  -timeout DUR     HTTP timeout (default: 10s)

The session cache is encrypted with LICAUTH_CACHE_PASSPHRASE (prompted when unset).

Commands:
  login [-email E] [-password P]   Login with email and password
  product-key [KEY]                Exchange a product key for tokens
  refresh                          Get a new access token
  validate [-key KEY]              Resolve the entitlement (rec_token)
  status                           Show the cached session
  logout                           Remove the cached session
`)
}
