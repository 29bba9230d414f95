package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/licauth/internal/server/storage"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// busyTimeoutMillis limits waiting for a write lock held by another process
const busyTimeoutMillis = 5000

// Storage persists the snapshot in SQLite tables.
// Use ":memory:" as dbPath for a throwaway database in tests
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements storage.Persister
var _ storage.Persister = (*Storage)(nil)

// New opens dbPath and applies pending schema migrations
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Одно соединение: снимок пишется целиком в одной транзакции,
	// а ":memory:" живет только внутри своего соединения
	db.SetMaxOpenConns(1)

	// Админка и сервер могут писать в файл одновременно
	if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeoutMillis)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Storage{db: db}, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

func migrate(ctx context.Context, db *sql.DB) error {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}
