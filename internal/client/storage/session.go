package storage

import (
	"context"
)

// SessionStorage defines interface for storing the cached session on client.
// This is the lowest storage layer: it stores sealed tokens as-is
// and doesn't perform any encryption/decryption itself.
type SessionStorage interface {
	// SaveSession stores session data as-is (tokens should already be sealed)
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves stored session data as-is
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session data (logout)
	// Returns ErrSessionNotFound if no session exists
	DeleteSession(ctx context.Context) error

	// GetSalt returns the salt of the cache key
	// Returns ErrCacheKeyNotFound if the cache has not been initialized
	GetSalt(ctx context.Context) ([]byte, error)

	// SaveSalt stores the salt of the cache key
	SaveSalt(ctx context.Context, salt []byte) error
}

// Session sources
const (
	SourceLogin      = "login"
	SourceProductKey = "product_key"
)

// Session represents the cached server session.
// In memory the tokens are plaintext; in storage they are sealed (base64 ciphertext).
// The sealing happens in the auth.Store layer.
type Session struct {
	Email        string `json:"email,omitempty"`
	Source       string `json:"source"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	RecToken     string `json:"rec_token"`
	ExpiresAt    int64  `json:"expires_at"`
	ValidatedAt  int64  `json:"validated_at"`
}
