package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/internal/nlu"
	"voice-calendar-assistant/internal/resolver"
	"voice-calendar-assistant/pkg/gcalendar"
)

// Wednesday
var wednesday = time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, ex *mockExtractor, cal *mockCalendar, tr *mockTranscriber) *implUseCase {
	t.Helper()
	r, err := resolver.New(resolver.Options{HomeZone: "UTC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc := New(&mockLogger{}, ex, r, cal, "", nil)
	if tr != nil {
		uc.transcriber = tr
	}
	return uc
}

func mustStamp(t *testing.T, s string) *model.Stamp {
	t.Helper()
	stamp, err := model.ParseStamp(s)
	if err != nil {
		t.Fatalf("bad stamp %q: %v", s, err)
	}
	return stamp
}

func TestHandleCreateEvent(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent:    model.IntentCreateEvent,
		Title:     "Quarterly Review",
		Start:     mustStamp(t, "2025-03-14T15:00:00"),
		Attendees: []string{"bob@example.com"},
	}}
	cal := &mockCalendar{existing: []gcalendar.Event{
		{Summary: "Existing Sync", Start: "2025-03-14T15:30:00Z", End: "2025-03-14T16:00:00Z"},
	}}
	uc := newTestUseCase(t, ex, cal, nil)

	out, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "schedule quarterly review next friday at 3pm for 2 hours with bob@example.com",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Action != event.ActionCreated {
		t.Errorf("action = %q", out.Action)
	}
	if out.HtmlLink != "https://calendar.google.com/created-1" {
		t.Errorf("link = %q", out.HtmlLink)
	}
	if out.UsedFallback {
		t.Errorf("expected LLM path")
	}

	if cal.createReq == nil {
		t.Fatal("CreateEvent was not called")
	}
	if cal.createReq.Summary != "Quarterly Review" {
		t.Errorf("summary = %q", cal.createReq.Summary)
	}
	wantStart := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	if !cal.createReq.StartTime.Equal(wantStart) {
		t.Errorf("start = %v, want %v", cal.createReq.StartTime, wantStart)
	}
	if !cal.createReq.EndTime.Equal(wantStart.Add(2 * time.Hour)) {
		t.Errorf("end = %v", cal.createReq.EndTime)
	}
	if cal.createReq.Timezone != "UTC" {
		t.Errorf("timezone = %q", cal.createReq.Timezone)
	}
	if len(cal.createReq.Attendees) != 1 || cal.createReq.Attendees[0] != "bob@example.com" {
		t.Errorf("attendees = %v", cal.createReq.Attendees)
	}

	if len(out.Conflicts) != 1 || out.Conflicts[0].Summary != "Existing Sync" {
		t.Errorf("conflicts = %v", out.Conflicts)
	}
}

func TestHandleFallbackWhenExtractionFails(t *testing.T) {
	ex := &mockExtractor{err: nlu.ErrExtractionFailed}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, ex, cal, nil)

	out, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "book dentist appointment tomorrow at 9am",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !out.UsedFallback {
		t.Errorf("expected fallback path")
	}
	if out.Action != event.ActionCreated {
		t.Errorf("action = %q", out.Action)
	}
	if cal.createReq == nil {
		t.Fatal("CreateEvent was not called")
	}
	if cal.createReq.Summary != "book dentist appointment" {
		t.Errorf("summary = %q", cal.createReq.Summary)
	}
	wantStart := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	if !cal.createReq.StartTime.Equal(wantStart) {
		t.Errorf("start = %v", cal.createReq.StartTime)
	}
	if !cal.createReq.EndTime.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("end = %v", cal.createReq.EndTime)
	}
}

func TestHandleAllDayCreate(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentCreateEvent,
		Title:  "Conference",
		Start:  mustStamp(t, "2025-04-01"),
	}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, ex, cal, nil)

	out, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "block april 1 for the conference",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cal.createReq == nil {
		t.Fatal("CreateEvent was not called")
	}
	if !cal.createReq.AllDay {
		t.Errorf("expected all-day request")
	}
	if cal.createReq.StartDate != "2025-04-01" || cal.createReq.EndDate != "2025-04-02" {
		t.Errorf("dates = %q..%q", cal.createReq.StartDate, cal.createReq.EndDate)
	}

	// All-day requests skip the conflict window query
	if cal.listReq != nil {
		t.Errorf("unexpected conflict query: %+v", cal.listReq)
	}
	if len(out.Conflicts) != 0 {
		t.Errorf("conflicts = %v", out.Conflicts)
	}
}

func TestHandleConflictCheckFailureIsWarning(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentCreateEvent,
		Title:  "Standup",
		Start:  mustStamp(t, "2025-03-14T15:00:00"),
	}}
	cal := &mockCalendar{listErr: errors.New("calendar unavailable")}
	uc := newTestUseCase(t, ex, cal, nil)

	out, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "schedule standup next friday at 3pm",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Action != event.ActionCreated {
		t.Errorf("action = %q", out.Action)
	}
	if len(out.Warnings) != 1 {
		t.Errorf("warnings = %v", out.Warnings)
	}
}

func TestHandleMissingStart(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentCreateEvent,
		Title:  "Something",
	}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, ex, cal, nil)

	_, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "schedule something nice",
		Now:       wednesday,
	})
	if !errors.Is(err, event.ErrMissingStart) {
		t.Fatalf("expected ErrMissingStart, got %v", err)
	}
	if cal.createReq != nil {
		t.Errorf("CreateEvent must not be called")
	}
}

func TestHandleMoveEvent(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentMoveEvent,
		Title:  "Standup",
		Start:  mustStamp(t, "2025-03-14T15:00:00"),
	}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, ex, cal, nil)

	out, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "move standup to next friday at 3pm",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Action != event.ActionMoved {
		t.Errorf("action = %q", out.Action)
	}
	if cal.moveReq == nil {
		t.Fatal("MoveEvent was not called")
	}
	if cal.moveReq.Title != "Standup" {
		t.Errorf("title = %q", cal.moveReq.Title)
	}
	wantStart := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
	if !cal.moveReq.NewStart.Equal(wantStart) {
		t.Errorf("new start = %v", cal.moveReq.NewStart)
	}
	if !cal.moveReq.NewEnd.Equal(wantStart.Add(time.Hour)) {
		t.Errorf("new end = %v", cal.moveReq.NewEnd)
	}
}

func TestHandleMoveEventNotFound(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentMoveEvent,
		Title:  "Ghost Meeting",
		Start:  mustStamp(t, "2025-03-14T15:00:00"),
	}}
	cal := &mockCalendar{moveErr: gcalendar.ErrEventNotFound}
	uc := newTestUseCase(t, ex, cal, nil)

	_, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "move ghost meeting to next friday at 3pm",
		Now:       wednesday,
	})
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestHandleMoveMissingTitle(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentMoveEvent,
		Start:  mustStamp(t, "2025-03-14T15:00:00"),
	}}
	uc := newTestUseCase(t, ex, &mockCalendar{}, nil)

	_, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "move it to next friday at 3pm",
		Now:       wednesday,
	})
	if !errors.Is(err, event.ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
}

func TestHandleCancelEvent(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentCancelEvent,
		Title:  "Standup",
	}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, ex, cal, nil)

	out, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "cancel standup",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Action != event.ActionCancelled {
		t.Errorf("action = %q", out.Action)
	}
	if out.EventID != "cancelled-1" {
		t.Errorf("event id = %q", out.EventID)
	}
	if cal.cancelReq == nil || cal.cancelReq.Title != "Standup" {
		t.Errorf("cancel request = %+v", cal.cancelReq)
	}
}

func TestHandleUnknownIntent(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{Intent: model.IntentUnknown}}
	uc := newTestUseCase(t, ex, &mockCalendar{}, nil)

	_, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "what is the weather like",
		Now:       wednesday,
	})
	if !errors.Is(err, event.ErrUnsupportedIntent) {
		t.Fatalf("expected ErrUnsupportedIntent, got %v", err)
	}
}

func TestHandleDefaultCalendar(t *testing.T) {
	ex := &mockExtractor{draft: &model.EventDraft{
		Intent: model.IntentCreateEvent,
		Title:  "Standup",
		Start:  mustStamp(t, "2025-03-14T15:00:00"),
	}}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, ex, cal, nil)
	uc.defaultCalendar = "team@example.com"

	_, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance: "schedule standup next friday at 3pm",
		Now:       wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cal.createReq == nil || cal.createReq.CalendarID != "team@example.com" {
		t.Errorf("create request = %+v, want default calendar", cal.createReq)
	}

	// An explicit calendar in the request wins over the default.
	cal.createReq = nil
	_, err = uc.Handle(context.Background(), model.Scope{}, event.HandleInput{
		Utterance:  "schedule standup next friday at 3pm",
		CalendarID: "personal@example.com",
		Now:        wednesday,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.createReq == nil || cal.createReq.CalendarID != "personal@example.com" {
		t.Errorf("create request = %+v, want explicit calendar", cal.createReq)
	}
}

func TestHandleEmptyUtterance(t *testing.T) {
	ex := &mockExtractor{}
	uc := newTestUseCase(t, ex, &mockCalendar{}, nil)

	_, err := uc.Handle(context.Background(), model.Scope{}, event.HandleInput{Utterance: "  "})
	if !errors.Is(err, event.ErrEmptyUtterance) {
		t.Fatalf("expected ErrEmptyUtterance, got %v", err)
	}
	if ex.callCount != 0 {
		t.Errorf("extractor must not be called")
	}
}
