package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/iudanet/licauth/internal/client/auth"
)

func (c *Cli) runRefresh(ctx context.Context) error {
	session, err := c.service.Refresh(ctx)
	if err != nil {
		return err
	}

	c.io.Println("✓ Access token refreshed")
	if session.ExpiresAt > 0 {
		c.io.Printf("Token expires: %s\n", time.Unix(session.ExpiresAt, 0).Format(time.RFC3339))
	}
	return nil
}

func (c *Cli) runValidate(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("validate", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	key := flags.String("key", "", "explicit entitlement token to check")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	result, err := c.service.Validate(ctx, *key)
	if err != nil {
		return err
	}

	if result.Offline {
		c.io.Println("⚠️  Server unreachable, showing cached entitlement")
	}
	c.printEntitlement(result.RecToken)
	return nil
}

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")

	session, err := c.service.Status(ctx)
	if errors.Is(err, auth.ErrNotLoggedIn) {
		c.io.Println("Status: Not logged in")
		c.io.Println("Run 'licauth login' or 'licauth product-key' to start a session.")
		return nil
	}
	if err != nil {
		return err
	}

	c.io.Printf("Status: Logged in via %s\n", session.Source)
	if session.Email != "" {
		c.io.Printf("Email: %s\n", session.Email)
	}
	if session.ExpiresAt > 0 {
		expiresAt := time.Unix(session.ExpiresAt, 0)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if time.Until(expiresAt) <= 0 {
			c.io.Println("⚠️  Token has expired. Run 'licauth refresh'.")
		}
	}
	c.printEntitlement(session.RecToken)
	if session.ValidatedAt > 0 {
		c.io.Printf("Last validated: %s\n", time.Unix(session.ValidatedAt, 0).Format(time.RFC3339))
	}

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	if err := c.service.Logout(ctx); err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			c.io.Println("Not logged in")
			return nil
		}
		return err
	}

	c.io.Println("✓ Logged out")
	return nil
}
