package http

import (
	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/response"
)

// Extract godoc
// @Summary     Extract an event draft
// @Description Parses a natural-language utterance into a resolved event draft without touching the calendar.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Utterance to parse"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, scopeFromContext(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Handle godoc
// @Summary     Execute an utterance
// @Description Parses the utterance and executes the detected intent: create, move or cancel a calendar event.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       body body handleReq true "Utterance to execute"
// @Success     200 {object} handleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Event Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/utterance [POST]
func (h *handler) Handle(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processHandleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Handle(ctx, scopeFromContext(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHandleResp(output))
}

// HandleVoice godoc
// @Summary     Execute a voice recording
// @Description Transcribes the uploaded audio and executes the detected intent like the utterance endpoint.
// @Tags        Events
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio         formData file   true  "Recorded audio (wav/webm/ogg)"
// @Param       language      formData string false "BCP-47 language hint"
// @Param       calendar_id    formData string false "Target calendar, defaults to primary"
// @Param       reference_time formData string false "RFC3339 anchor for relative phrases"
// @Success     200 {object} handleResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/voice [POST]
func (h *handler) HandleVoice(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processVoiceReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleVoice(ctx, scopeFromContext(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleVoice: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHandleResp(output))
}

func scopeFromContext(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:   c.GetString("user_id"),
		Username: c.GetString("username"),
	}
}
