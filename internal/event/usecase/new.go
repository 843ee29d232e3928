package usecase

import (
	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/internal/nlu"
	"voice-calendar-assistant/internal/resolver"
	pkgLog "voice-calendar-assistant/pkg/log"
	"voice-calendar-assistant/pkg/speech"
)

type implUseCase struct {
	l               pkgLog.Logger
	extractor       nlu.Extractor
	resolver        *resolver.Resolver
	calendar        event.Calendar
	defaultCalendar string
	transcriber     speech.Transcriber
}

// New creates a new event UseCase instance. defaultCalendar is used when a
// request does not name a calendar; transcriber may be nil when the voice
// entry point is not configured.
func New(
	l pkgLog.Logger,
	extractor nlu.Extractor,
	res *resolver.Resolver,
	calendar event.Calendar,
	defaultCalendar string,
	transcriber speech.Transcriber,
) *implUseCase {
	return &implUseCase{
		l:               l,
		extractor:       extractor,
		resolver:        res,
		calendar:        calendar,
		defaultCalendar: defaultCalendar,
		transcriber:     transcriber,
	}
}
