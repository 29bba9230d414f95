package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/licauth/internal/server/auth"
	"github.com/iudanet/licauth/internal/server/metrics"
	"github.com/iudanet/licauth/pkg/api"
)

//go:generate moq -out service_mock.go . AuthService OutcomeRecorder

// AuthService is the credential facade used by the handlers
type AuthService interface {
	Login(ctx context.Context, email, password string) (*auth.TokenSet, error)
	ExchangeProductKey(ctx context.Context, productKey string) (*auth.TokenSet, error)
	RefreshSession(ctx context.Context, bearer string) (string, error)
	ValidateEntitlement(ctx context.Context, bearer, explicit string) string
}

// OutcomeRecorder counts auth operation results
type OutcomeRecorder interface {
	AuthOutcome(operation, outcome string)
}

// AuthHandler обрабатывает запросы авторизации и проверки entitlement
type AuthHandler struct {
	logger   *slog.Logger
	service  AuthService
	outcomes OutcomeRecorder
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, service AuthService, outcomes OutcomeRecorder) *AuthHandler {
	return &AuthHandler{
		logger:   logger,
		service:  service,
		outcomes: outcomes,
	}
}

// Login обрабатывает POST /v1/auth/login
// Аутентификация по email (или username/user) и паролю
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		h.outcomes.AuthOutcome(metrics.OperationLogin, metrics.OutcomeMissing)
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	tokens, err := h.service.Login(ctx, req.Identity(), req.Password)
	if err != nil {
		h.sendAuthError(ctx, w, metrics.OperationLogin, err)
		return
	}

	h.outcomes.AuthOutcome(metrics.OperationLogin, metrics.OutcomeSuccess)
	sendJSON(h.logger, w, tokenResponse(tokens), http.StatusOK)
}

// ProductKey обрабатывает POST /v1/auth/product_key
// Обмен ключа продукта (product_key или key) на токены
func (h *AuthHandler) ProductKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ProductKeyRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode product key request", slog.Any("error", err))
		h.outcomes.AuthOutcome(metrics.OperationProductKey, metrics.OutcomeMissing)
		sendError(h.logger, w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	tokens, err := h.service.ExchangeProductKey(ctx, req.ProductKeyValue())
	if err != nil {
		h.sendAuthError(ctx, w, metrics.OperationProductKey, err)
		return
	}

	h.outcomes.AuthOutcome(metrics.OperationProductKey, metrics.OutcomeSuccess)
	sendJSON(h.logger, w, tokenResponse(tokens), http.StatusOK)
}

// Refresh обрабатывает POST /v1/auth/refresh
// Выдает новый access token по токену из заголовка Authorization, срок действия которого не проверяется
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token, err := h.service.RefreshSession(ctx, bearerToken(r))
	if err != nil {
		h.sendAuthError(ctx, w, metrics.OperationRefresh, err)
		return
	}

	h.outcomes.AuthOutcome(metrics.OperationRefresh, metrics.OutcomeSuccess)
	sendJSON(h.logger, w, api.RefreshResponse{AccessToken: token}, http.StatusOK)
}

// Validate обрабатывает POST /v1/entitlement/validate
// Всегда отвечает 200; rec_token пустой, если entitlement не найден
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.ValidateRequest
	if err := decodeBody(w, r, &req); err != nil {
		// Тело необязательно, некорректное тело игнорируется
		h.logger.DebugContext(ctx, "ignoring invalid validate request body", slog.Any("error", err))
		req = api.ValidateRequest{}
	}

	recToken := h.service.ValidateEntitlement(ctx, bearerToken(r), req.RecToken)

	outcome := metrics.OutcomeEntitled
	if recToken == "" {
		outcome = metrics.OutcomeNotEntitled
	}
	h.outcomes.AuthOutcome(metrics.OperationValidate, outcome)

	sendJSON(h.logger, w, api.EntitlementResponse{RecToken: recToken}, http.StatusOK)
}

// sendAuthError maps facade errors to 400, 401 or 500
func (h *AuthHandler) sendAuthError(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	switch {
	case errors.Is(err, auth.ErrMissingInput):
		h.outcomes.AuthOutcome(operation, metrics.OutcomeMissing)
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, auth.ErrUnauthorized):
		h.outcomes.AuthOutcome(operation, metrics.OutcomeInvalid)
		sendError(h.logger, w, msgInvalid, http.StatusUnauthorized)
	default:
		h.logger.ErrorContext(ctx, "auth operation failed",
			slog.String("operation", operation),
			slog.Any("error", err))
		h.outcomes.AuthOutcome(operation, metrics.OutcomeError)
		sendError(h.logger, w, msgInternalError, http.StatusInternalServerError)
	}
}

func tokenResponse(tokens *auth.TokenSet) api.TokenResponse {
	return api.TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		RecToken:     tokens.EntitlementToken,
	}
}
