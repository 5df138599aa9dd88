package middleware

import (
	"context"
	"net/http"
	"time"
)

// DefaultRequestTimeout bounds a request when no explicit budget is given.
// LLM-backed routes get a larger budget from the server setup; this floor
// exists so a zero value never means unbounded.
const DefaultRequestTimeout = 30 * time.Second

const timeoutResponseBody = "Request Timeout"

// Timeout bounds the handler both ways: the request context is cancelled
// so downstream API calls stop, and http.TimeoutHandler closes out the
// response if the handler has not written by the deadline.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return func(next http.Handler) http.Handler {
		inner := http.TimeoutHandler(next, timeout, timeoutResponseBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			inner.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
