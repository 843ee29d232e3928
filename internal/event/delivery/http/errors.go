package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/pkg/response"
)

// respondError translates domain errors into HTTP responses. Unknown errors
// become an opaque 500 so internals never leak to the caller.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, event.ErrEmptyUtterance),
		errors.Is(err, event.ErrEmptyAudio),
		errors.Is(err, event.ErrMissingStart),
		errors.Is(err, event.ErrMissingTitle),
		errors.Is(err, event.ErrUnsupportedIntent):
		response.Error(c, err, nil)

	case errors.Is(err, event.ErrEventNotFound):
		response.NotFound(c, err)

	default:
		response.InternalError(c, err)
	}
}
