// Package entitlement maps requests to the rec_token owed to a user
package entitlement

import (
	"context"
	"log/slog"

	"github.com/iudanet/licauth/internal/models"
	"github.com/iudanet/licauth/internal/server/storage"
)

// TokenParser extracts claims from an access token checking only its signature
type TokenParser interface {
	ParseIgnoringExpiry(token string) (*models.AccessClaims, error)
}

// Resolver finds the entitlement token for an explicit rec_token or a bearer token
type Resolver struct {
	users    storage.UserStorage
	licenses storage.LicenseStorage
	tokens   TokenParser
	logger   *slog.Logger
}

// NewResolver creates a new entitlement resolver
func NewResolver(users storage.UserStorage, licenses storage.LicenseStorage, tokens TokenParser, logger *slog.Logger) *Resolver {
	return &Resolver{
		users:    users,
		licenses: licenses,
		tokens:   tokens,
		logger:   logger,
	}
}

// Resolve returns the entitlement token, first match wins:
//  1. explicit, if it is a known license key;
//  2. the first license owned by the user of bearer (expiry not checked);
//  3. "".
//
// Resolve never fails; unknown or invalid input yields an empty token
func (r *Resolver) Resolve(ctx context.Context, explicit, bearer string) string {
	if explicit != "" {
		if _, err := r.licenses.GetLicenseByKey(ctx, explicit); err == nil {
			return explicit
		}
	}

	if bearer == "" {
		return ""
	}

	claims, err := r.tokens.ParseIgnoringExpiry(bearer)
	if err != nil {
		r.logger.DebugContext(ctx, "bearer token rejected", slog.Any("error", err))
		return ""
	}

	user, err := r.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		r.logger.DebugContext(ctx, "no user for bearer token", slog.Int64("user_id", claims.UserID))
		return ""
	}

	return r.ForOwner(ctx, user.Email)
}

// ForOwner returns the key of the first license owned by email, or ""
func (r *Resolver) ForOwner(ctx context.Context, email string) string {
	license, err := r.licenses.GetLicenseByOwnerEmail(ctx, email)
	if err != nil {
		return ""
	}
	return license.Key
}
