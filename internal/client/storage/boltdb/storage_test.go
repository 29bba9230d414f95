package boltdb

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/licauth/internal/client/storage"
)

func setupTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "licauth-client.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, dbPath
}

func TestNew_Success(t *testing.T) {
	store, dbPath := setupTestStorage(t)

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketSession, bucketMeta} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "client.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать и должен просто ничего не делать
	assert.NoError(t, store.Close())
}

func TestSession_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	session := &storage.Session{
		Email:        "a@x.com",
		Source:       storage.SourceLogin,
		AccessToken:  "sealed-access",
		RefreshToken: "sealed-refresh",
		RecToken:     "sealed-rec",
		ExpiresAt:    1700000000,
		ValidatedAt:  1699990000,
	}
	require.NoError(t, store.SaveSession(ctx, session))

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	// Повторное сохранение заменяет сессию
	session.RecToken = "sealed-rec-2"
	require.NoError(t, store.SaveSession(ctx, session))
	got, err = store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sealed-rec-2", got.RecToken)

	require.NoError(t, store.DeleteSession(ctx))
	_, err = store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	assert.ErrorIs(t, store.DeleteSession(ctx), storage.ErrSessionNotFound)
}

func TestSession_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	store, _ := setupTestStorage(t)

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSession).Put(sessionKey, []byte("{oops"))
	}))

	_, err := store.GetSession(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal session")
}

func TestSalt(t *testing.T) {
	ctx := context.Background()
	store, dbPath := setupTestStorage(t)

	_, err := store.GetSalt(ctx)
	assert.ErrorIs(t, err, storage.ErrCacheKeyNotFound)

	salt := []byte("0123456789abcdef")
	require.NoError(t, store.SaveSalt(ctx, salt))

	got, err := store.GetSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, salt, got)

	// Соль переживает переоткрытие файла, сессия удаляется независимо
	require.NoError(t, store.Close())
	reopened, err := New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err = reopened.GetSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, salt, got)
}
