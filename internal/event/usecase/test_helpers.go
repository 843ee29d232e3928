package usecase

import (
	"context"
	"time"

	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/gcalendar"
	"voice-calendar-assistant/pkg/speech"
)

// mockLogger implements pkg/log.Logger for tests
type mockLogger struct {
	warnMessages []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any) {
	if len(arg) > 0 {
		if msg, ok := arg[0].(string); ok {
			m.warnMessages = append(m.warnMessages, msg)
		}
	}
}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnMessages = append(m.warnMessages, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

// mockExtractor implements nlu.Extractor
type mockExtractor struct {
	draft     *model.EventDraft
	err       error
	callCount int
}

func (m *mockExtractor) Extract(ctx context.Context, utterance string, now time.Time) (*model.EventDraft, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return m.draft.Clone(), nil
}

// mockCalendar implements event.Calendar and records calls
type mockCalendar struct {
	createReq *gcalendar.CreateEventRequest
	moveReq   *gcalendar.MoveEventRequest
	cancelReq *gcalendar.CancelEventRequest
	listReq   *gcalendar.ListEventsRequest

	createErr error
	moveErr   error
	cancelErr error
	listErr   error

	existing []gcalendar.Event
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.createReq = &req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &gcalendar.Event{ID: "created-1", HtmlLink: "https://calendar.google.com/created-1"}, nil
}

func (m *mockCalendar) QueryConflicts(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	m.listReq = &req
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.existing, nil
}

func (m *mockCalendar) MoveEvent(ctx context.Context, req gcalendar.MoveEventRequest) (*gcalendar.Event, error) {
	m.moveReq = &req
	if m.moveErr != nil {
		return nil, m.moveErr
	}
	return &gcalendar.Event{ID: "moved-1", HtmlLink: "https://calendar.google.com/moved-1"}, nil
}

func (m *mockCalendar) CancelEvent(ctx context.Context, req gcalendar.CancelEventRequest) (*gcalendar.CancelResult, error) {
	m.cancelReq = &req
	if m.cancelErr != nil {
		return nil, m.cancelErr
	}
	return &gcalendar.CancelResult{ID: "cancelled-1", Status: "cancelled"}, nil
}

// mockTranscriber implements speech.Transcriber
type mockTranscriber struct {
	text string
	err  error
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audio []byte, lang string) (*speech.Transcript, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &speech.Transcript{Text: m.text, Language: "en"}, nil
}

func (m *mockTranscriber) Name() string { return "mock" }
