package middleware

import (
	"golang.org/x/time/rate"

	"voice-calendar-assistant/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. rps/burst configure the shared token
// bucket used by RateLimit.
func New(l log.Logger, rps float64, burst int) Middleware {
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = int(rps)
	}
	return Middleware{
		l:       l,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}
