package usecase

import (
	"context"
	"errors"

	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/gcalendar"
)

// Handle extracts a draft from the utterance and executes the detected intent
// against the calendar.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input event.HandleInput) (event.HandleOutput, error) {
	extracted, err := uc.Extract(ctx, sc, event.ExtractInput{
		Utterance: input.Utterance,
		Now:       input.Now,
	})
	if err != nil {
		return event.HandleOutput{}, err
	}

	if uc.calendar == nil {
		return event.HandleOutput{}, event.ErrCalendarFailed
	}

	calendarID := input.CalendarID
	if calendarID == "" {
		calendarID = uc.defaultCalendar
	}

	out := event.HandleOutput{
		Draft:        extracted.Draft,
		Utterance:    input.Utterance,
		UsedFallback: extracted.UsedFallback,
	}

	switch extracted.Draft.Intent {
	case model.IntentCreateEvent:
		err = uc.createEvent(ctx, calendarID, &out)
	case model.IntentMoveEvent:
		err = uc.moveEvent(ctx, calendarID, &out)
	case model.IntentCancelEvent:
		err = uc.cancelEvent(ctx, calendarID, &out)
	default:
		err = event.ErrUnsupportedIntent
	}
	if err != nil {
		return event.HandleOutput{}, err
	}

	return out, nil
}

func (uc *implUseCase) createEvent(ctx context.Context, calendarID string, out *event.HandleOutput) error {
	draft := out.Draft
	if draft.Start == nil {
		return event.ErrMissingStart
	}

	req := gcalendar.CreateEventRequest{
		CalendarID: calendarID,
		Summary:    draft.Title,
		Attendees:  draft.Attendees,
	}

	if draft.AllDay() {
		req.AllDay = true
		req.StartDate = draft.Start.DateString()
		req.EndDate = draft.End.DateString()
	} else {
		loc := uc.location(ctx, draft.Timezone)
		req.StartTime = draft.Start.Time(loc)
		req.EndTime = draft.End.Time(loc)
		req.Timezone = draft.Timezone

		// A busy slot is reported, not enforced.
		uc.checkConflicts(ctx, calendarID, out, req)
	}

	created, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.CreateEvent: %v", err)
		return event.ErrCalendarFailed
	}

	out.Action = event.ActionCreated
	out.EventID = created.ID
	out.HtmlLink = created.HtmlLink
	return nil
}

func (uc *implUseCase) moveEvent(ctx context.Context, calendarID string, out *event.HandleOutput) error {
	draft := out.Draft
	if draft.Title == "" {
		return event.ErrMissingTitle
	}
	if draft.Start == nil || !draft.Start.HasTime {
		return event.ErrMissingStart
	}

	loc := uc.location(ctx, draft.Timezone)
	moved, err := uc.calendar.MoveEvent(ctx, gcalendar.MoveEventRequest{
		CalendarID: calendarID,
		Title:      draft.Title,
		NewStart:   draft.Start.Time(loc),
		NewEnd:     draft.End.Time(loc),
		Timezone:   draft.Timezone,
	})
	if err != nil {
		if errors.Is(err, gcalendar.ErrEventNotFound) {
			return event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "calendar.MoveEvent: %v", err)
		return event.ErrCalendarFailed
	}

	out.Action = event.ActionMoved
	out.EventID = moved.ID
	out.HtmlLink = moved.HtmlLink
	return nil
}

func (uc *implUseCase) cancelEvent(ctx context.Context, calendarID string, out *event.HandleOutput) error {
	draft := out.Draft
	if draft.Title == "" {
		return event.ErrMissingTitle
	}

	result, err := uc.calendar.CancelEvent(ctx, gcalendar.CancelEventRequest{
		CalendarID: calendarID,
		Title:      draft.Title,
	})
	if err != nil {
		if errors.Is(err, gcalendar.ErrEventNotFound) {
			return event.ErrEventNotFound
		}
		uc.l.Errorf(ctx, "calendar.CancelEvent: %v", err)
		return event.ErrCalendarFailed
	}

	out.Action = event.ActionCancelled
	out.EventID = result.ID
	return nil
}

func (uc *implUseCase) checkConflicts(ctx context.Context, calendarID string, out *event.HandleOutput, req gcalendar.CreateEventRequest) {
	existing, err := uc.calendar.QueryConflicts(ctx, gcalendar.ListEventsRequest{
		CalendarID: calendarID,
		TimeMin:    req.StartTime,
		TimeMax:    req.EndTime,
	})
	if err != nil {
		uc.l.Warnf(ctx, "conflict check failed: %v", err)
		out.Warnings = append(out.Warnings, "could not check for conflicting events")
		return
	}

	for _, e := range existing {
		out.Conflicts = append(out.Conflicts, event.Conflict{
			Summary: e.Summary,
			Start:   e.Start,
			End:     e.End,
		})
	}
}
