package event

import (
	"context"

	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/gcalendar"
)

// UseCase defines the business logic interface for the event domain.
type UseCase interface {
	// Extract parses an utterance into a resolved event draft without
	// touching the calendar.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Handle parses an utterance and executes the detected intent
	// against the calendar (create, move or cancel).
	Handle(ctx context.Context, sc model.Scope, input HandleInput) (HandleOutput, error)

	// HandleVoice transcribes recorded audio and then behaves like Handle.
	HandleVoice(ctx context.Context, sc model.Scope, input VoiceInput) (HandleOutput, error)
}

// Calendar is the calendar surface the use case depends on.
// *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	QueryConflicts(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	MoveEvent(ctx context.Context, req gcalendar.MoveEventRequest) (*gcalendar.Event, error)
	CancelEvent(ctx context.Context, req gcalendar.CancelEventRequest) (*gcalendar.CancelResult, error)
}
