package middleware

import (
	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/pkg/response"
)

// RateLimit rejects requests once the shared token bucket is drained.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s %s", c.Request.Method, c.Request.URL.Path)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
