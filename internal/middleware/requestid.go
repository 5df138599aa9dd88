package middleware

import (
	"net/http"

	"github.com/bybysker/goal-tracker/internal/request"
)

// RequestID assigns each request a unique identifier, honoring an
// X-Request-ID header supplied by an upstream proxy.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = request.NewID()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(request.WithID(r.Context(), id)))
	})
}
