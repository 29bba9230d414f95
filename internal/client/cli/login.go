package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

func (c *Cli) runLogin(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password (prompted when omitted)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	c.io.Println("=== Login ===")

	var err error
	if *email == "" {
		if *email, err = c.io.ReadInput("Email: "); err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}
	if *password == "" {
		if *password, err = c.io.ReadPassword("Password: "); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}

	session, err := c.service.Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	c.io.Println("✓ Login successful!")
	c.printEntitlement(session.RecToken)
	return nil
}

func (c *Cli) runProductKey(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: product-key [KEY]", ErrUsage)
	}

	var key string
	if len(args) == 1 {
		key = args[0]
	} else {
		var err error
		if key, err = c.io.ReadInput("Product key: "); err != nil {
			return fmt.Errorf("failed to read product key: %w", err)
		}
	}

	session, err := c.service.ExchangeProductKey(ctx, key)
	if err != nil {
		return err
	}

	c.io.Println("✓ Product key accepted")
	c.printEntitlement(session.RecToken)
	return nil
}

func (c *Cli) printEntitlement(recToken string) {
	if recToken == "" {
		c.io.Println("Entitlement: none")
		return
	}
	c.io.Printf("Entitlement: %s\n", recToken)
}
