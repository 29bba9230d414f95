package server

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/licauth/internal/server/handlers"
	"github.com/iudanet/licauth/internal/server/metrics"
	"github.com/iudanet/licauth/internal/server/middleware"
)

// NewRouter registers the API routes and wraps them in the middleware chain:
// recovery, request id, access log, metrics
func NewRouter(logger *slog.Logger, authHandler *handlers.AuthHandler, healthHandler *handlers.HealthHandler, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.HandleFunc("POST /v1/auth/product_key", authHandler.ProductKey)
	mux.HandleFunc("POST /v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("POST /v1/entitlement/validate", authHandler.Validate)

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", m.Handler())

	var handler http.Handler = mux
	handler = middleware.Metrics(m)(handler)
	handler = middleware.LoggingWithSkip(logger, []string{"/health", "/metrics"})(handler)
	handler = middleware.RequestID()(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
