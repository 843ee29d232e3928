package model

import "strings"

// Intent is the calendar action extracted from an utterance.
type Intent string

const (
	IntentCreateEvent Intent = "CreateEvent"
	IntentMoveEvent   Intent = "MoveEvent"
	IntentCancelEvent Intent = "CancelEvent"
	IntentUnknown     Intent = "Unknown"
)

// ParseIntent maps a raw intent string to a known Intent, case-insensitively.
// Anything unrecognized becomes IntentUnknown.
func ParseIntent(s string) Intent {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "createevent", "create_event", "create":
		return IntentCreateEvent
	case "moveevent", "move_event", "move":
		return IntentMoveEvent
	case "cancelevent", "cancel_event", "cancel":
		return IntentCancelEvent
	default:
		return IntentUnknown
	}
}

// EventDraft is the in-progress calendar action. It is built per utterance
// (from LLM output or the rule-based fallback), mutated by the resolver, and
// then handed frozen to the calendar client. Never persisted.
type EventDraft struct {
	Intent          Intent   `json:"intent"`
	Title           string   `json:"title,omitempty"`
	Start           *Stamp   `json:"start,omitempty"`
	End             *Stamp   `json:"end,omitempty"`
	DurationMinutes int      `json:"duration_minutes,omitempty"`
	Attendees       []string `json:"attendees,omitempty"`
	Timezone        string   `json:"timezone,omitempty"`
}

// AllDay reports whether the draft describes an all-day event: a start with
// no time component (and, when present, an end with no time component).
func (d *EventDraft) AllDay() bool {
	if d.Start == nil || d.Start.HasTime {
		return false
	}
	return d.End == nil || !d.End.HasTime
}

// Clone returns a deep copy of the draft.
func (d *EventDraft) Clone() *EventDraft {
	if d == nil {
		return nil
	}
	out := *d
	out.Start = d.Start.Clone()
	out.End = d.End.Clone()
	out.Attendees = append([]string(nil), d.Attendees...)
	return &out
}
