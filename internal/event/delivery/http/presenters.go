package http

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/internal/model"
)

const maxAudioBytes = 25 << 20 // 25 MB

type extractReq struct {
	Utterance string `json:"utterance" binding:"required"`
	// ReferenceTime anchors relative phrases ("tomorrow"); RFC3339,
	// defaults to the server clock.
	ReferenceTime string `json:"reference_time"`
}

type handleReq struct {
	Utterance     string `json:"utterance" binding:"required"`
	CalendarID    string `json:"calendar_id"`
	ReferenceTime string `json:"reference_time"`
}

type draftResp struct {
	Intent          string       `json:"intent"`
	Title           string       `json:"title"`
	Start           *model.Stamp `json:"start,omitempty"`
	End             *model.Stamp `json:"end,omitempty"`
	DurationMinutes int          `json:"duration_minutes"`
	Attendees       []string     `json:"attendees,omitempty"`
	Timezone        string       `json:"timezone"`
	AllDay          bool         `json:"all_day"`
}

type extractResp struct {
	Draft        draftResp `json:"draft"`
	UsedFallback bool      `json:"used_fallback"`
}

type handleResp struct {
	Action       string           `json:"action"`
	EventID      string           `json:"event_id,omitempty"`
	HtmlLink     string           `json:"html_link,omitempty"`
	Utterance    string           `json:"utterance"`
	Draft        draftResp        `json:"draft"`
	UsedFallback bool             `json:"used_fallback"`
	Conflicts    []event.Conflict `json:"conflicts,omitempty"`
	Warnings     []string         `json:"warnings,omitempty"`
}

var errBadReferenceTime = errors.New("reference_time must be RFC3339")

func parseReferenceTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errBadReferenceTime
	}
	return t, nil
}

func (h *handler) processExtractReq(c *gin.Context) (event.ExtractInput, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.ExtractInput{}, errors.New("utterance is required")
	}

	now, err := parseReferenceTime(req.ReferenceTime)
	if err != nil {
		return event.ExtractInput{}, err
	}

	return event.ExtractInput{
		Utterance: req.Utterance,
		Now:       now,
	}, nil
}

func (h *handler) processHandleReq(c *gin.Context) (event.HandleInput, error) {
	var req handleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.HandleInput{}, errors.New("utterance is required")
	}

	now, err := parseReferenceTime(req.ReferenceTime)
	if err != nil {
		return event.HandleInput{}, err
	}

	return event.HandleInput{
		Utterance:  req.Utterance,
		CalendarID: req.CalendarID,
		Now:        now,
	}, nil
}

func (h *handler) processVoiceReq(c *gin.Context) (event.VoiceInput, error) {
	file, _, err := c.Request.FormFile("audio")
	if err != nil {
		return event.VoiceInput{}, errors.New("audio file is required")
	}
	defer file.Close()

	audio, err := readAll(file, maxAudioBytes)
	if err != nil {
		return event.VoiceInput{}, err
	}

	now, err := parseReferenceTime(c.PostForm("reference_time"))
	if err != nil {
		return event.VoiceInput{}, err
	}

	return event.VoiceInput{
		Audio:      audio,
		Language:   c.PostForm("language"),
		CalendarID: c.PostForm("calendar_id"),
		Now:        now,
	}, nil
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, errors.New("failed to read audio")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("audio exceeds the size limit")
	}
	return data, nil
}

func newDraftResp(d *model.EventDraft) draftResp {
	if d == nil {
		return draftResp{}
	}
	return draftResp{
		Intent:          string(d.Intent),
		Title:           d.Title,
		Start:           d.Start,
		End:             d.End,
		DurationMinutes: d.DurationMinutes,
		Attendees:       d.Attendees,
		Timezone:        d.Timezone,
		AllDay:          d.AllDay(),
	}
}

func (h *handler) newExtractResp(out event.ExtractOutput) extractResp {
	return extractResp{
		Draft:        newDraftResp(out.Draft),
		UsedFallback: out.UsedFallback,
	}
}

func (h *handler) newHandleResp(out event.HandleOutput) handleResp {
	return handleResp{
		Action:       out.Action,
		EventID:      out.EventID,
		HtmlLink:     out.HtmlLink,
		Utterance:    out.Utterance,
		Draft:        newDraftResp(out.Draft),
		UsedFallback: out.UsedFallback,
		Conflicts:    out.Conflicts,
		Warnings:     out.Warnings,
	}
}
