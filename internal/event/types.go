package event

import (
	"time"

	"voice-calendar-assistant/internal/model"
)

// Actions reported in HandleOutput.
const (
	ActionCreated   = "created"
	ActionMoved     = "moved"
	ActionCancelled = "cancelled"
)

// ExtractInput is the input for draft extraction.
// Now anchors relative phrases; the zero value means "current time".
type ExtractInput struct {
	Utterance string
	Now       time.Time
}

// ExtractOutput is the result of draft extraction.
type ExtractOutput struct {
	Draft        *model.EventDraft
	UsedFallback bool // deterministic parser was used instead of the LLM
}

// HandleInput is the input for executing an utterance end to end.
type HandleInput struct {
	Utterance  string
	CalendarID string // empty means the primary calendar
	Now        time.Time
}

// VoiceInput is the input for the audio entry point.
type VoiceInput struct {
	Audio      []byte
	Language   string // BCP-47 hint, empty means auto-detect
	CalendarID string
	Now        time.Time
}

// Conflict is an existing event overlapping the requested slot.
type Conflict struct {
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// HandleOutput is the result of executing an utterance.
type HandleOutput struct {
	Action       string
	Draft        *model.EventDraft
	EventID      string
	HtmlLink     string
	Utterance    string // the text that was acted on (transcript for voice)
	UsedFallback bool
	Conflicts    []Conflict
	Warnings     []string
}
