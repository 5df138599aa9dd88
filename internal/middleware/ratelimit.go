package middleware

import (
	"net/http"

	"github.com/ulule/limiter/v3"
	stdlibmw "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/bybysker/goal-tracker/internal/request"
)

const defaultRateLimit = "5-S"

// RateLimit returns middleware that throttles requests per client IP using
// an in-process store. The rate uses limiter's formatted notation, e.g.
// "5-S" for five requests per second or "100-M" for a hundred per minute.
func RateLimit(formatted string) (func(http.Handler) http.Handler, error) {
	if formatted == "" {
		formatted = defaultRateLimit
	}

	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}

	instance := limiter.New(memory.NewStore(), rate)
	keyGetter := func(r *http.Request) string {
		return request.ClientIP(r)
	}
	mw := stdlibmw.NewMiddleware(instance, stdlibmw.WithKeyGetter(keyGetter))
	return mw.Handler, nil
}
