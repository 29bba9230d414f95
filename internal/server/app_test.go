package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/licauth/internal/config"
	"github.com/iudanet/licauth/pkg/api"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = filepath.Join(t.TempDir(), "server_data.json")
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.BcryptCost = 4
	cfg.Server.Addr = "127.0.0.1:0"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := NewApp(context.Background(), cfg, logger, "test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.store.Close() })

	return app
}

func doJSON(t *testing.T, h http.Handler, path, bearer, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestApp_EndToEnd(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()
	h := app.Handler()

	_, err := app.store.CreateUser(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, app.store.CreateLicense(ctx, "KEY-1", "a@x.com"))

	// Login
	w := doJSON(t, h, "/v1/auth/login", "", `{"email":"a@x.com","password":"pw1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.NotEmpty(t, login.AccessToken)
	assert.Equal(t, "refresh-1", login.RefreshToken)
	assert.Equal(t, "KEY-1", login.RecToken)

	// Неверный пароль
	w = doJSON(t, h, "/v1/auth/login", "", `{"email":"a@x.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid"}`, w.Body.String())

	// Обмен ключа продукта
	w = doJSON(t, h, "/v1/auth/product_key", "", `{"product_key":"KEY-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var exchange api.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exchange))
	assert.Equal(t, "KEY-1", exchange.RecToken)

	// Refresh
	w = doJSON(t, h, "/v1/auth/refresh", login.AccessToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	var refreshed api.RefreshResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &refreshed))
	assert.NotEmpty(t, refreshed.AccessToken)

	w = doJSON(t, h, "/v1/auth/refresh", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Validate: явный ключ, затем по токену, затем ничего
	w = doJSON(t, h, "/v1/entitlement/validate", "", `{"rec_token":"KEY-1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"rec_token":"KEY-1"}`, w.Body.String())

	w = doJSON(t, h, "/v1/entitlement/validate", refreshed.AccessToken, "")
	assert.JSONEq(t, `{"rec_token":"KEY-1"}`, w.Body.String())

	w = doJSON(t, h, "/v1/entitlement/validate", "", `{"rec_token":"UNKNOWN"}`)
	assert.JSONEq(t, `{"rec_token":""}`, w.Body.String())
}

func TestApp_ResponsesCarryRequestID(t *testing.T) {
	app := newTestApp(t)

	w := doJSON(t, app.Handler(), "/v1/auth/login", "", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestApp_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/auth/login", nil)
	w := httptest.NewRecorder()
	app.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestApp_HealthAndMetrics(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	doJSON(t, h, "/v1/auth/login", "", `{"email":"a@x.com","password":"pw"}`)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "licauth_http_requests_total")
	assert.Contains(t, body, `route="POST /v1/auth/login"`)
	assert.Contains(t, body, "licauth_auth_outcomes_total")
}

func TestApp_ReloadPicksUpExternalChanges(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	// Другой процесс записал новое состояние в тот же файл
	other := newTestAppAt(t, app.config.Storage.Path)
	require.NoError(t, other.store.CreateLicense(ctx, "KEY-EXT", "ext@x.com"))

	w := doJSON(t, app.Handler(), "/v1/auth/product_key", "", `{"product_key":"KEY-EXT"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	app.Reload(ctx)

	w = doJSON(t, app.Handler(), "/v1/auth/product_key", "", `{"product_key":"KEY-EXT"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func newTestAppAt(t *testing.T, path string) *App {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Path = path
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.BcryptCost = 4

	app, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), "test")
	require.NoError(t, err)
	return app
}

func TestApp_ServeAndShutdown(t *testing.T) {
	app := newTestApp(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, listener) }()

	url := "http://" + listener.Addr().String() + "/v1/auth/product_key"
	require.Eventually(t, func() bool {
		resp, err := http.Post(url, "application/json", bytes.NewBufferString(`{}`))
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusBadRequest
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewApp_CorruptStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

	cfg := config.Default()
	cfg.Storage.Path = path

	_, err := NewApp(context.Background(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), "test")
	assert.Error(t, err)
}
