package http

import (
	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The voice route gets its own rate limit since transcription is expensive.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.POST("/extract", mw.RateLimit(), h.Extract)
		events.POST("/utterance", mw.RateLimit(), h.Handle)
		events.POST("/voice", mw.RateLimit(), h.HandleVoice)
	}
}
