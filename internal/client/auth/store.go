package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/licauth/internal/client/storage"
	"github.com/iudanet/licauth/internal/crypto"
)

// Associated data binds each sealed token to its field
const (
	aadAccess  = "access_token"
	aadRefresh = "refresh_token"
	aadRec     = "rec_token"
)

// Store provides the encryption layer between the session service and storage.
// It seals tokens before saving and opens them when retrieving.
type Store struct {
	storage storage.SessionStorage
	key     []byte
}

// Compile-time check that Store implements SessionStore
var _ SessionStore = (*Store)(nil)

// NewStore creates a Store with an already derived 32-byte key
func NewStore(st storage.SessionStorage, key []byte) *Store {
	return &Store{
		storage: st,
		key:     key,
	}
}

// OpenStore derives the cache key from passphrase. The salt is created
// and saved on first use
func OpenStore(ctx context.Context, st storage.SessionStorage, passphrase string) (*Store, error) {
	salt, err := st.GetSalt(ctx)
	if errors.Is(err, storage.ErrCacheKeyNotFound) {
		salt, err = crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		if err := st.SaveSalt(ctx, salt); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to read cache salt: %w", err)
	}

	key, err := crypto.DeriveCacheKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	return NewStore(st, key), nil
}

// SaveSession seals the tokens of session and passes it to storage
func (s *Store) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	sealed := *session // копируем структуру, чтобы не менять входящую

	var err error
	if sealed.AccessToken, err = crypto.SealString(session.AccessToken, s.key, aadAccess); err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	if sealed.RefreshToken, err = crypto.SealString(session.RefreshToken, s.key, aadRefresh); err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}
	if sealed.RecToken, err = crypto.SealString(session.RecToken, s.key, aadRec); err != nil {
		return fmt.Errorf("failed to encrypt rec token: %w", err)
	}

	return s.storage.SaveSession(ctx, &sealed)
}

// GetSession loads the session from storage and opens its tokens
func (s *Store) GetSession(ctx context.Context) (*storage.Session, error) {
	stored, err := s.storage.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	session := *stored
	if session.AccessToken, err = crypto.OpenString(stored.AccessToken, s.key, aadAccess); err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}
	if session.RefreshToken, err = crypto.OpenString(stored.RefreshToken, s.key, aadRefresh); err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}
	if session.RecToken, err = crypto.OpenString(stored.RecToken, s.key, aadRec); err != nil {
		return nil, fmt.Errorf("failed to decrypt rec token: %w", err)
	}

	return &session, nil
}

// DeleteSession удаляет сессию
func (s *Store) DeleteSession(ctx context.Context) error {
	return s.storage.DeleteSession(ctx)
}
