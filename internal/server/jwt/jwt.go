package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/licauth/internal/models"
)

// Token verification errors
var (
	// ErrMalformed indicates a token that cannot be decoded or lacks the user_id claim
	ErrMalformed = errors.New("malformed token")

	// ErrBadSignature indicates a token signed with another key or algorithm
	ErrBadSignature = errors.New("bad token signature")

	// ErrExpired indicates a correctly signed token past its exp claim
	ErrExpired = errors.New("token expired")

	// ErrInvalidToken is returned by Refresh for any token it cannot renew
	ErrInvalidToken = errors.New("invalid token")
)

// DefaultAccessTokenTTL is the access token lifetime
const DefaultAccessTokenTTL = time.Hour

// refreshTokenPrefix prefixes the user id in refresh tokens
const refreshTokenPrefix = "refresh-"

// signingMethod is shared by issue and verify
var signingMethod = gojwt.SigningMethodHS256

// Claims is the access token payload: {"user_id": n, "exp": t}
type Claims struct {
	UserID *int64 `json:"user_id"`
	gojwt.RegisteredClaims
}

// Service issues and verifies HS256 access tokens
type Service struct {
	now            func() time.Time
	secret         []byte
	accessTokenTTL time.Duration
}

// Option configures Service
type Option func(*Service)

// WithClock overrides the time source used for exp claims and expiry checks
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a new JWT service.
// A non-positive accessTokenTTL falls back to DefaultAccessTokenTTL
func NewService(secret string, accessTokenTTL time.Duration, opts ...Option) *Service {
	if accessTokenTTL <= 0 {
		accessTokenTTL = DefaultAccessTokenTTL
	}

	s := &Service{
		secret:         []byte(secret),
		accessTokenTTL: accessTokenTTL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IssueAccessToken creates a signed access token for userID expiring after the TTL
func (s *Service) IssueAccessToken(userID int64) (string, error) {
	claims := Claims{
		UserID: &userID,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(s.now().Add(s.accessTokenTTL)),
		},
	}

	token, err := gojwt.NewWithClaims(signingMethod, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return token, nil
}

// IssueRefreshToken returns the refresh token for userID.
// It is derived from the id only and is not verifiable on its own
func (s *Service) IssueRefreshToken(userID int64) string {
	return refreshTokenPrefix + strconv.FormatInt(userID, 10)
}

// VerifyAccessToken checks signature and expiry and returns the claims.
// Errors are ErrMalformed, ErrBadSignature or ErrExpired
func (s *Service) VerifyAccessToken(token string) (*models.AccessClaims, error) {
	return s.parse(token, gojwt.WithTimeFunc(s.now))
}

// ParseIgnoringExpiry checks only the signature; an expired token is accepted
func (s *Service) ParseIgnoringExpiry(token string) (*models.AccessClaims, error) {
	return s.parse(token, gojwt.WithoutClaimsValidation())
}

// Refresh issues a new access token for the user of oldToken.
// Expiry of oldToken is ignored; a bad signature or missing user_id yields ErrInvalidToken
func (s *Service) Refresh(oldToken string) (string, error) {
	claims, err := s.ParseIgnoringExpiry(oldToken)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return s.IssueAccessToken(claims.UserID)
}

func (s *Service) parse(token string, opts ...gojwt.ParserOption) (*models.AccessClaims, error) {
	opts = append(opts, gojwt.WithValidMethods([]string{signingMethod.Alg()}))

	claims := &Claims{}
	_, err := gojwt.ParseWithClaims(token, claims, func(t *gojwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, classify(err)
	}

	if claims.UserID == nil {
		return nil, fmt.Errorf("%w: user_id claim is missing", ErrMalformed)
	}

	result := &models.AccessClaims{UserID: *claims.UserID}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

// classify maps jwt library errors to the package sentinels
func classify(err error) error {
	switch {
	case errors.Is(err, gojwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	case errors.Is(err, gojwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
