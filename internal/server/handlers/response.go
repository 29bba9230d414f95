package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/licauth/pkg/api"
)

// maxBodyBytes limits request bodies of the auth endpoints
const maxBodyBytes = 1 << 20

const bearerPrefix = "Bearer "

// Сообщения об ошибках в формате исходного API
const (
	msgInvalid       = "invalid"
	msgInvalidBody   = "invalid request body"
	msgInternalError = "internal server error"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой вида {"error": message}
func sendError(logger *slog.Logger, w http.ResponseWriter, message string, statusCode int) {
	sendJSON(logger, w, api.ErrorResponse{Error: message}, statusCode)
}

// decodeBody декодирует JSON тело запроса в v. Пустое тело не является ошибкой
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// bearerToken извлекает токен из заголовка "Authorization: Bearer <token>".
// Префикс чувствителен к регистру; пустой токен считается отсутствующим
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}

	fields := strings.Fields(header[len(bearerPrefix):])
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
