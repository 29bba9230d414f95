// Package auth implements the four credential operations: login,
// product key exchange, session refresh and entitlement validation
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/licauth/internal/crypto"
	"github.com/iudanet/licauth/internal/server/storage"
)

// UnknownOwnerID is put into tokens issued for a license whose owner is not a registered user
const UnknownOwnerID int64 = 0

// TokenIssuer issues access and refresh tokens
type TokenIssuer interface {
	IssueAccessToken(userID int64) (string, error)
	IssueRefreshToken(userID int64) string
	Refresh(oldToken string) (string, error)
}

// EntitlementResolver finds rec_tokens; it never fails
type EntitlementResolver interface {
	Resolve(ctx context.Context, explicit, bearer string) string
	ForOwner(ctx context.Context, email string) string
}

// TokenSet is the result of a successful login or product key exchange
type TokenSet struct {
	AccessToken      string
	RefreshToken     string
	EntitlementToken string
}

// Service orchestrates the credential store, the token service and the resolver
type Service struct {
	users        storage.UserStorage
	licenses     storage.LicenseStorage
	hasher       crypto.PasswordHasher
	tokens       TokenIssuer
	entitlements EntitlementResolver
	logger       *slog.Logger
}

// NewService creates a new auth service
func NewService(
	users storage.UserStorage,
	licenses storage.LicenseStorage,
	hasher crypto.PasswordHasher,
	tokens TokenIssuer,
	entitlements EntitlementResolver,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:        users,
		licenses:     licenses,
		hasher:       hasher,
		tokens:       tokens,
		entitlements: entitlements,
		logger:       logger,
	}
}

// Login authenticates by email and password.
// The rec_token is the first license owned by the user, or ""
func (s *Service) Login(ctx context.Context, email, password string) (*TokenSet, error) {
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", email))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		s.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", email))
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.issue(user.ID)
	if err != nil {
		return nil, err
	}
	tokens.EntitlementToken = s.entitlements.ForOwner(ctx, email)

	s.logger.InfoContext(ctx, "user logged in",
		slog.String("email", email),
		slog.Int64("user_id", user.ID))

	return tokens, nil
}

// ExchangeProductKey authenticates by license key; the key itself is the rec_token.
// A license whose owner is not registered yields tokens for UnknownOwnerID
func (s *Service) ExchangeProductKey(ctx context.Context, productKey string) (*TokenSet, error) {
	if productKey == "" {
		return nil, ErrMissingKey
	}

	license, err := s.licenses.GetLicenseByKey(ctx, productKey)
	if err != nil {
		if errors.Is(err, storage.ErrLicenseNotFound) {
			s.logger.WarnContext(ctx, "product key rejected")
			return nil, ErrInvalidKey
		}
		return nil, fmt.Errorf("failed to get license: %w", err)
	}

	ownerID := UnknownOwnerID
	owner, err := s.users.GetUserByEmail(ctx, license.OwnerEmail)
	switch {
	case err == nil:
		ownerID = owner.ID
	case errors.Is(err, storage.ErrUserNotFound):
		s.logger.WarnContext(ctx, "license owner is not a registered user",
			slog.String("email", license.OwnerEmail))
	default:
		return nil, fmt.Errorf("failed to get license owner: %w", err)
	}

	tokens, err := s.issue(ownerID)
	if err != nil {
		return nil, err
	}
	tokens.EntitlementToken = license.Key

	s.logger.InfoContext(ctx, "product key exchanged",
		slog.String("email", license.OwnerEmail),
		slog.Int64("user_id", ownerID))

	return tokens, nil
}

// RefreshSession issues a new access token for the user of bearer, ignoring its expiry
func (s *Service) RefreshSession(ctx context.Context, bearer string) (string, error) {
	if bearer == "" {
		return "", ErrMissingToken
	}

	token, err := s.tokens.Refresh(bearer)
	if err != nil {
		s.logger.WarnContext(ctx, "refresh rejected", slog.Any("error", err))
		return "", ErrInvalidToken
	}

	return token, nil
}

// ValidateEntitlement returns the rec_token for explicit or bearer; "" if none matches
func (s *Service) ValidateEntitlement(ctx context.Context, bearer, explicit string) string {
	return s.entitlements.Resolve(ctx, explicit, bearer)
}

func (s *Service) issue(userID int64) (*TokenSet, error) {
	access, err := s.tokens.IssueAccessToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	return &TokenSet{
		AccessToken:  access,
		RefreshToken: s.tokens.IssueRefreshToken(userID),
	}, nil
}
