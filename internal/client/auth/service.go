package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/licauth/internal/client/api"
	"github.com/iudanet/licauth/internal/client/storage"
	"github.com/iudanet/licauth/internal/validation"
	pkgapi "github.com/iudanet/licauth/pkg/api"
)

// ErrNotLoggedIn is returned when an operation needs a cached session and there is none
var ErrNotLoggedIn = errors.New("not logged in")

//go:generate moq -out service_mock.go . APIClient SessionStore

// APIClient is the server API used by the session service
type APIClient interface {
	Login(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	ExchangeProductKey(ctx context.Context, productKey string) (*pkgapi.TokenResponse, error)
	Refresh(ctx context.Context, accessToken string) (*pkgapi.RefreshResponse, error)
	Validate(ctx context.Context, accessToken, recToken string) (*pkgapi.EntitlementResponse, error)
}

// SessionStore stores the session with tokens in plaintext form
type SessionStore interface {
	SaveSession(ctx context.Context, session *storage.Session) error
	GetSession(ctx context.Context) (*storage.Session, error)
	DeleteSession(ctx context.Context) error
}

// ValidateResult is the outcome of Service.Validate
type ValidateResult struct {
	RecToken string
	// Offline is set when the server was unreachable and the cached rec_token was used
	Offline bool
}

// Service manages the client session: obtains tokens from the server
// and keeps them in the encrypted local cache
type Service struct {
	apiClient APIClient
	store     SessionStore
	logger    *slog.Logger
	now       func() time.Time
}

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, store SessionStore, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		store:     store,
		logger:    logger,
		now:       time.Now,
	}
}

// Login выполняет аутентификацию по email и паролю и сохраняет сессию
func (s *Service) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	resp, err := s.apiClient.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return s.saveTokens(ctx, storage.SourceLogin, email, resp)
}

// ExchangeProductKey обменивает ключ продукта на токены и сохраняет сессию
func (s *Service) ExchangeProductKey(ctx context.Context, productKey string) (*storage.Session, error) {
	if err := validation.ValidateLicenseKey(productKey); err != nil {
		return nil, fmt.Errorf("invalid product key: %w", err)
	}

	resp, err := s.apiClient.ExchangeProductKey(ctx, productKey)
	if err != nil {
		return nil, fmt.Errorf("product key exchange failed: %w", err)
	}

	return s.saveTokens(ctx, storage.SourceProductKey, "", resp)
}

// Refresh получает новый access token по сохраненному и обновляет сессию
func (s *Service) Refresh(ctx context.Context) (*storage.Session, error) {
	session, err := s.session(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Refresh(ctx, session.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("refresh failed: %w", err)
	}

	session.AccessToken = resp.AccessToken
	session.ExpiresAt = tokenExpiry(resp.AccessToken)

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// Validate запрашивает entitlement у сервера по явному ключу и/или сохраненному access token.
// Если сервер недоступен, возвращается rec_token из кэша
func (s *Service) Validate(ctx context.Context, explicit string) (*ValidateResult, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if session == nil && explicit == "" {
		return nil, ErrNotLoggedIn
	}

	var accessToken string
	if session != nil {
		accessToken = session.AccessToken
	}

	resp, err := s.apiClient.Validate(ctx, accessToken, explicit)
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) || session == nil {
			return nil, fmt.Errorf("validate failed: %w", err)
		}

		// Сервер недоступен, используем последний известный rec_token
		s.logger.WarnContext(ctx, "server unreachable, using cached rec_token", slog.Any("error", err))
		return &ValidateResult{RecToken: session.RecToken, Offline: true}, nil
	}

	if session != nil && explicit == "" {
		session.RecToken = resp.RecToken
		session.ValidatedAt = s.now().Unix()
		if err := s.store.SaveSession(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}

	return &ValidateResult{RecToken: resp.RecToken}, nil
}

// Status returns the cached session
func (s *Service) Status(ctx context.Context) (*storage.Session, error) {
	return s.session(ctx)
}

// Logout удаляет сохраненную сессию; сервер не хранит сессий
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

func (s *Service) session(ctx context.Context) (*storage.Session, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return session, nil
}

func (s *Service) saveTokens(ctx context.Context, source, email string, resp *pkgapi.TokenResponse) (*storage.Session, error) {
	session := &storage.Session{
		Email:        email,
		Source:       source,
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		RecToken:     resp.RecToken,
		ExpiresAt:    tokenExpiry(resp.AccessToken),
		ValidatedAt:  s.now().Unix(),
	}

	if err := s.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}

// tokenExpiry reads exp from the access token without verifying it; 0 if absent.
// The client has no signing secret, the server verifies tokens
func tokenExpiry(token string) int64 {
	var claims gojwt.RegisteredClaims
	if _, _, err := gojwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return 0
	}
	if claims.ExpiresAt == nil {
		return 0
	}
	return claims.ExpiresAt.Unix()
}
