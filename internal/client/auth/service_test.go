package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/licauth/internal/client/api"
	"github.com/iudanet/licauth/internal/client/storage"
	pkgapi "github.com/iudanet/licauth/pkg/api"
)

// memoryStore хранит сессию в памяти
type memoryStore struct {
	session *storage.Session
}

func (m *memoryStore) mock() *SessionStoreMock {
	return &SessionStoreMock{
		SaveSessionFunc: func(ctx context.Context, session *storage.Session) error {
			copied := *session
			m.session = &copied
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			if m.session == nil {
				return nil, storage.ErrSessionNotFound
			}
			copied := *m.session
			return &copied, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			if m.session == nil {
				return storage.ErrSessionNotFound
			}
			m.session = nil
			return nil
		},
	}
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"user_id": 1,
		"exp":     exp.Unix(),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return token
}

func newTestService(apiClient APIClient, store SessionStore) *Service {
	s := NewService(apiClient, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	exp := time.Unix(1700003600, 0)
	access := signedToken(t, exp)

	mem := &memoryStore{}
	apiMock := &APIClientMock{
		LoginFunc: func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: access, RefreshToken: "refresh-1", RecToken: "KEY-1"}, nil
		},
	}
	svc := newTestService(apiMock, mem.mock())

	session, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)
	assert.Equal(t, storage.SourceLogin, session.Source)
	assert.Equal(t, exp.Unix(), session.ExpiresAt)
	assert.Equal(t, int64(1700000000), session.ValidatedAt)
	assert.Equal(t, session, mem.session)

	require.Len(t, apiMock.LoginCalls(), 1)
	assert.Equal(t, "pw1", apiMock.LoginCalls()[0].Password)
}

func TestService_Login_Errors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		apiErr   error
		wantErr  string
	}{
		{name: "empty email", email: "", password: "pw", wantErr: "required"},
		{name: "empty password", email: "a@x.com", password: "", wantErr: "required"},
		{
			name:     "rejected",
			email:    "a@x.com",
			password: "bad",
			apiErr:   &api.StatusError{StatusCode: http.StatusUnauthorized, Message: "invalid"},
			wantErr:  "login failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := &memoryStore{}
			apiMock := &APIClientMock{
				LoginFunc: func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
					return nil, tt.apiErr
				},
			}

			_, err := newTestService(apiMock, mem.mock()).Login(context.Background(), tt.email, tt.password)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, mem.session)
		})
	}
}

func TestService_ExchangeProductKey(t *testing.T) {
	ctx := context.Background()
	mem := &memoryStore{}
	apiMock := &APIClientMock{
		ExchangeProductKeyFunc: func(ctx context.Context, productKey string) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: "not-a-jwt", RefreshToken: "refresh-0", RecToken: productKey}, nil
		},
	}
	svc := newTestService(apiMock, mem.mock())

	session, err := svc.ExchangeProductKey(ctx, "KEY-1")
	require.NoError(t, err)
	assert.Equal(t, storage.SourceProductKey, session.Source)
	assert.Empty(t, session.Email)
	assert.Equal(t, "KEY-1", session.RecToken)
	// Неразбираемый токен не мешает сохранению, срок неизвестен
	assert.Zero(t, session.ExpiresAt)

	_, err = svc.ExchangeProductKey(ctx, "bad key")
	require.Error(t, err)
	assert.Len(t, apiMock.ExchangeProductKeyCalls(), 1)
}

func TestService_Refresh(t *testing.T) {
	ctx := context.Background()
	newExp := time.Unix(1700007200, 0)
	newAccess := signedToken(t, newExp)

	mem := &memoryStore{session: &storage.Session{
		Email:        "a@x.com",
		Source:       storage.SourceLogin,
		AccessToken:  "old-access",
		RefreshToken: "refresh-1",
		RecToken:     "KEY-1",
		ExpiresAt:    1,
	}}
	apiMock := &APIClientMock{
		RefreshFunc: func(ctx context.Context, accessToken string) (*pkgapi.RefreshResponse, error) {
			assert.Equal(t, "old-access", accessToken)
			return &pkgapi.RefreshResponse{AccessToken: newAccess}, nil
		},
	}

	session, err := newTestService(apiMock, mem.mock()).Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, newAccess, session.AccessToken)
	assert.Equal(t, newExp.Unix(), session.ExpiresAt)
	assert.Equal(t, "KEY-1", mem.session.RecToken)
	assert.Equal(t, newAccess, mem.session.AccessToken)
}

func TestService_Refresh_NotLoggedIn(t *testing.T) {
	mem := &memoryStore{}

	_, err := newTestService(&APIClientMock{}, mem.mock()).Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestService_Validate(t *testing.T) {
	cached := &storage.Session{AccessToken: "access", RecToken: "OLD-KEY"}
	networkErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name        string
		session     *storage.Session
		explicit    string
		apiResp     *pkgapi.EntitlementResponse
		apiErr      error
		want        *ValidateResult
		wantErr     error
		wantStatus  bool
		wantCached  string
		wantBearer  string
		wantNoCalls bool
	}{
		{
			name:       "online by session",
			session:    cached,
			apiResp:    &pkgapi.EntitlementResponse{RecToken: "KEY-1"},
			want:       &ValidateResult{RecToken: "KEY-1"},
			wantCached: "KEY-1",
			wantBearer: "access",
		},
		{
			name:       "online not entitled clears cache",
			session:    cached,
			apiResp:    &pkgapi.EntitlementResponse{RecToken: ""},
			want:       &ValidateResult{RecToken: ""},
			wantCached: "",
			wantBearer: "access",
		},
		{
			name:       "explicit key does not touch cache",
			session:    cached,
			explicit:   "KEY-2",
			apiResp:    &pkgapi.EntitlementResponse{RecToken: "KEY-2"},
			want:       &ValidateResult{RecToken: "KEY-2"},
			wantCached: "OLD-KEY",
			wantBearer: "access",
		},
		{
			name:     "explicit key without session",
			explicit: "KEY-2",
			apiResp:  &pkgapi.EntitlementResponse{RecToken: "KEY-2"},
			want:     &ValidateResult{RecToken: "KEY-2"},
		},
		{
			name:       "offline falls back to cache",
			session:    cached,
			apiErr:     networkErr,
			want:       &ValidateResult{RecToken: "OLD-KEY", Offline: true},
			wantCached: "OLD-KEY",
			wantBearer: "access",
		},
		{
			name:       "server error is not offline",
			session:    cached,
			apiErr:     &api.StatusError{StatusCode: http.StatusInternalServerError, Message: "internal server error"},
			wantStatus: true,
			wantCached: "OLD-KEY",
			wantBearer: "access",
		},
		{
			name:        "nothing to validate",
			wantErr:     ErrNotLoggedIn,
			wantNoCalls: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := &memoryStore{}
			if tt.session != nil {
				copied := *tt.session
				mem.session = &copied
			}
			apiMock := &APIClientMock{
				ValidateFunc: func(ctx context.Context, accessToken, recToken string) (*pkgapi.EntitlementResponse, error) {
					assert.Equal(t, tt.wantBearer, accessToken)
					assert.Equal(t, tt.explicit, recToken)
					return tt.apiResp, tt.apiErr
				},
			}

			got, err := newTestService(apiMock, mem.mock()).Validate(context.Background(), tt.explicit)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantStatus:
				var statusErr *api.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			if tt.wantNoCalls {
				assert.Empty(t, apiMock.ValidateCalls())
			}
			if mem.session != nil {
				assert.Equal(t, tt.wantCached, mem.session.RecToken)
			}
		})
	}
}

func TestService_StatusAndLogout(t *testing.T) {
	ctx := context.Background()
	mem := &memoryStore{session: &storage.Session{Email: "a@x.com", Source: storage.SourceLogin}}
	svc := newTestService(&APIClientMock{}, mem.mock())

	session, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", session.Email)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, mem.session)

	_, err = svc.Status(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, svc.Logout(ctx), ErrNotLoggedIn)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Unix(1700003600, 0)

	assert.Equal(t, exp.Unix(), tokenExpiry(signedToken(t, exp)))
	assert.Zero(t, tokenExpiry("garbage"))
	assert.Zero(t, tokenExpiry(""))
}
