// Package admin implements the administrative commands that manage users and license keys
package admin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/iudanet/licauth/internal/iocli"
	"github.com/iudanet/licauth/internal/server/storage"
	"github.com/iudanet/licauth/internal/server/storage/jsonfile"
	"github.com/iudanet/licauth/internal/validation"
)

// ErrUsage is returned for an unknown command or wrong arguments
var ErrUsage = errors.New("invalid usage")

// Store is the part of the credential store used by admin commands
type Store interface {
	storage.UserAdmin
	storage.LicenseAdmin
	Snapshot(ctx context.Context) *storage.Snapshot
	Replace(ctx context.Context, snapshot *storage.Snapshot) error
}

// Cli runs admin commands against the store and reports through io
type Cli struct {
	io    iocli.IO
	store Store
}

// New creates admin commands bound to store
func New(io iocli.IO, store Store) *Cli {
	return &Cli{
		io:    io,
		store: store,
	}
}

// Run executes command with its arguments
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "add-user":
		return c.runAddUser(ctx, args)
	case "add-key":
		return c.runAddKey(ctx, args)
	case "list":
		return c.runList(ctx)
	case "export":
		return c.runExport(ctx, args)
	case "import":
		return c.runImport(ctx, args)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
}

func (c *Cli) runAddUser(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("add-user", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	password := flags.String("password", "", "user password (prompted when omitted)")
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: add-user <email>", ErrUsage)
	}
	email := flags.Arg(0)

	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	pw := *password
	if pw == "" {
		var err error
		pw, err = c.io.ReadPassword("Password: ")
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	}
	if err := validation.ValidatePassword(pw); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	user, err := c.store.CreateUser(ctx, email, pw)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			return fmt.Errorf("user %s already exists", email)
		}
		if errors.Is(err, storage.ErrPersist) {
			return fmt.Errorf("user %s was not saved: %w", email, err)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	c.io.Printf("✓ User %s created with id %d\n", user.Email, user.ID)
	return nil
}

func (c *Cli) runAddKey(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: add-key <key> <email>", ErrUsage)
	}
	key, email := args[0], args[1]

	if err := validation.ValidateLicenseKey(key); err != nil {
		return fmt.Errorf("invalid license key: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	if err := c.store.CreateLicense(ctx, key, email); err != nil {
		if errors.Is(err, storage.ErrPersist) {
			return fmt.Errorf("license %s was not saved: %w", key, err)
		}
		return fmt.Errorf("failed to create license: %w", err)
	}

	// Владелец может быть еще не зарегистрирован, это допустимо
	if _, err := c.store.GetUserByEmail(ctx, email); errors.Is(err, storage.ErrUserNotFound) {
		c.io.Printf("⚠️  Owner %s is not a registered user\n", email)
	}

	c.io.Printf("✓ License %s assigned to %s\n", key, email)
	return nil
}

func (c *Cli) runList(ctx context.Context) error {
	users, err := c.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	licenses, err := c.store.ListLicenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to list licenses: %w", err)
	}

	c.io.Println("=== Users ===")
	if len(users) == 0 {
		c.io.Println("No users found.")
	}
	for _, u := range users {
		c.io.Printf("%-6d %s\n", u.ID, u.Email)
	}

	c.io.Println()
	c.io.Println("=== Licenses ===")
	if len(licenses) == 0 {
		c.io.Println("No licenses found.")
	}
	for _, l := range licenses {
		c.io.Printf("%s -> %s\n", l.Key, l.OwnerEmail)
	}

	return nil
}

func (c *Cli) runExport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: export <file>", ErrUsage)
	}

	snapshot := c.store.Snapshot(ctx)
	if err := jsonfile.New(args[0]).Save(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to export store: %w", err)
	}

	c.io.Printf("✓ Exported %d user(s) and %d license(s) to %s\n",
		len(snapshot.Users), len(snapshot.Licenses), args[0])
	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: import <file>", ErrUsage)
	}

	// Отсутствующий файл не должен молча очищать хранилище
	if _, err := os.Stat(args[0]); err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}

	snapshot, err := jsonfile.New(args[0]).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to import store: %w", err)
	}

	if err := c.store.Replace(ctx, snapshot); err != nil {
		return fmt.Errorf("failed to replace store: %w", err)
	}

	c.io.Printf("✓ Imported %d user(s) and %d license(s) from %s\n",
		len(snapshot.Users), len(snapshot.Licenses), args[0])
	return nil
}

// PrintUsage writes the command reference to out
func PrintUsage(out io.Writer) {
	_, _ = fmt.Fprint(out, `LicAuth Admin

Usage:
  licauth-admin [OPTIONS] COMMAND

Options:
  -config PATH            YAML config file (same as the server)
  -storage-driver NAME    json, bolt or sqlite
  -storage-path PATH      storage file path

Commands:
  add-user [-password PW] <email>   Create a user (password prompted when omitted)
  add-key <key> <email>             Assign a license key to an owner email
  list                              List users and licenses
  export <file>                     Save the store as a JSON document
  import <file>                     Replace the store with a JSON document

Stop the server or send it SIGHUP after changes so it reloads the store.
Every backend, bolt included, can be changed while the server is running.
`)
}
