package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/licauth/internal/models"
	"github.com/iudanet/licauth/internal/server/storage"
)

const metaNextUserID = "next_user_id"

// Load reads the snapshot; rows are returned in the order they were saved
func (s *Storage) Load(ctx context.Context) (*storage.Snapshot, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	snapshot := storage.NewSnapshot()

	userRows, err := tx.QueryContext(ctx, `SELECT email, password_hash, id FROM users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer userRows.Close()

	for userRows.Next() {
		var user models.User
		if err := userRows.Scan(&user.Email, &user.PasswordHash, &user.ID); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		snapshot.Users = append(snapshot.Users, user)
	}
	if err := userRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	licenseRows, err := tx.QueryContext(ctx, `SELECT key, email FROM licenses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query licenses: %w", err)
	}
	defer licenseRows.Close()

	for licenseRows.Next() {
		var license models.License
		if err := licenseRows.Scan(&license.Key, &license.OwnerEmail); err != nil {
			return nil, fmt.Errorf("failed to scan license: %w", err)
		}
		snapshot.Licenses = append(snapshot.Licenses, license)
	}
	if err := licenseRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating licenses: %w", err)
	}

	var next int64
	err = tx.QueryRowContext(ctx, `SELECT value FROM meta WHERE name = ?`, metaNextUserID).Scan(&next)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// Пустая база, значение по умолчанию
	case err != nil:
		return nil, fmt.Errorf("failed to query next user id: %w", err)
	default:
		snapshot.NextUserID = next
	}

	extraRows, err := tx.QueryContext(ctx, `SELECT name, value FROM extra ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query extra fields: %w", err)
	}
	defer extraRows.Close()

	for extraRows.Next() {
		var (
			name  string
			value string
		)
		if err := extraRows.Scan(&name, &value); err != nil {
			return nil, fmt.Errorf("failed to scan extra field: %w", err)
		}
		if !json.Valid([]byte(value)) {
			return nil, fmt.Errorf("%w: extra field %q is not valid JSON", storage.ErrCorruptSnapshot, name)
		}
		if snapshot.Extra == nil {
			snapshot.Extra = make(map[string]json.RawMessage)
		}
		snapshot.Extra[name] = json.RawMessage(value)
	}
	if err := extraRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra fields: %w", err)
	}

	return snapshot, nil
}

// Save replaces all tables with snapshot in a single transaction
func (s *Storage) Save(ctx context.Context, snapshot *storage.Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, table := range []string{"users", "licenses", "extra"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, user := range snapshot.Users {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO users (position, email, password_hash, id) VALUES (?, ?, ?, ?)`,
			i, user.Email, user.PasswordHash, user.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user %q: %w", user.Email, err)
		}
	}

	for i, license := range snapshot.Licenses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO licenses (position, key, email) VALUES (?, ?, ?)`,
			i, license.Key, license.OwnerEmail,
		)
		if err != nil {
			return fmt.Errorf("failed to insert license %q: %w", license.Key, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO meta (name, value) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value`,
		metaNextUserID, snapshot.NextUserID,
	)
	if err != nil {
		return fmt.Errorf("failed to store next user id: %w", err)
	}

	position := 0
	for name, value := range snapshot.Extra {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO extra (position, name, value) VALUES (?, ?, ?)`,
			position, name, string(value),
		)
		if err != nil {
			return fmt.Errorf("failed to insert extra field %q: %w", name, err)
		}
		position++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
