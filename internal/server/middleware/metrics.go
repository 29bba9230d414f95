package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records served requests
type RequestObserver interface {
	ObserveRequest(route, method string, code int, duration time.Duration)
}

// unmatchedRoute labels requests that matched no ServeMux pattern
const unmatchedRoute = "unmatched"

// Metrics создает middleware, передающий статус и длительность запроса в observer.
// Маршрут берется из r.Pattern, поэтому middleware должен оборачивать ServeMux
func Metrics(observer RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrapResponseWriter(w)

			// ServeMux заполняет Pattern у этого же *http.Request
			next.ServeHTTP(wrapped, r)

			route := r.Pattern
			if route == "" {
				route = unmatchedRoute
			}
			observer.ObserveRequest(route, r.Method, wrapped.statusCode, time.Since(start))
		})
	}
}
