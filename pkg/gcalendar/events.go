package gcalendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"
)

// CreateEvent creates a new calendar event and notifies attendees.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	summary := req.Summary
	if summary == "" {
		summary = "(No title)"
	}

	event := &calendar.Event{
		Summary:     summary,
		Description: req.Description,
	}

	if req.AllDay {
		event.Start = &calendar.EventDateTime{Date: req.StartDate}
		event.End = &calendar.EventDateTime{Date: req.EndDate}
	} else {
		event.Start = &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
	}

	for _, email := range req.Attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := c.service.Events.Insert(calendarID(req.CalendarID), event).
		SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return fromAPIEvent(created), nil
}

// QueryConflicts lists events overlapping the given time range.
func (c *Client) QueryConflicts(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	call := c.service.Events.List(calendarID(req.CalendarID)).
		TimeMin(req.TimeMin.Format(time.RFC3339)).
		TimeMax(req.TimeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query conflicts: %w", err)
	}

	events := make([]Event, 0, len(resp.Items))
	for _, item := range resp.Items {
		events = append(events, *fromAPIEvent(item))
	}
	return events, nil
}

// MoveEvent patches the start/end of the event matching the given title.
func (c *Client) MoveEvent(ctx context.Context, req MoveEventRequest) (*Event, error) {
	found, err := c.findEventByTitle(ctx, calendarID(req.CalendarID), req.Title)
	if err != nil {
		return nil, err
	}

	patch := &calendar.Event{
		Start: &calendar.EventDateTime{
			DateTime: req.NewStart.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.NewEnd.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	patched, err := c.service.Events.Patch(calendarID(req.CalendarID), found.Id, patch).
		SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to move event %q: %w", req.Title, err)
	}

	return fromAPIEvent(patched), nil
}

// CancelEvent deletes the event matching the given title.
func (c *Client) CancelEvent(ctx context.Context, req CancelEventRequest) (*CancelResult, error) {
	found, err := c.findEventByTitle(ctx, calendarID(req.CalendarID), req.Title)
	if err != nil {
		return nil, err
	}

	if err := c.service.Events.Delete(calendarID(req.CalendarID), found.Id).
		SendUpdates("all").Context(ctx).Do(); err != nil {
		return nil, fmt.Errorf("failed to cancel event %q: %w", req.Title, err)
	}

	return &CancelResult{ID: found.Id, Status: "cancelled"}, nil
}

// findEventByTitle searches the calendar and returns the first event whose
// summary equals title case-insensitively.
func (c *Client) findEventByTitle(ctx context.Context, calID, title string) (*calendar.Event, error) {
	resp, err := c.service.Events.List(calID).Q(title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	for _, item := range resp.Items {
		if strings.EqualFold(item.Summary, title) {
			return item, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrEventNotFound, title)
}

func calendarID(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

func fromAPIEvent(e *calendar.Event) *Event {
	out := &Event{
		ID:          e.Id,
		Summary:     e.Summary,
		Description: e.Description,
		HtmlLink:    e.HtmlLink,
		Location:    e.Location,
	}
	if e.Start != nil {
		out.Start = eventTime(e.Start)
	}
	if e.End != nil {
		out.End = eventTime(e.End)
	}
	return out
}

func eventTime(dt *calendar.EventDateTime) string {
	if dt.DateTime != "" {
		return dt.DateTime
	}
	return dt.Date
}
