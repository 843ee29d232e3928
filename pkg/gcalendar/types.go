package gcalendar

import "time"

// CreateEventRequest is the input for creating a calendar event.
// Timed events use StartTime/EndTime with Timezone; all-day events set
// AllDay and use the bare StartDate/EndDate ("2006-01-02").
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string

	StartTime time.Time
	EndTime   time.Time
	Timezone  string // IANA id, e.g. "America/New_York"

	AllDay    bool
	StartDate string
	EndDate   string

	Attendees []string
}

// MoveEventRequest moves an existing event, located by title, to a new slot.
type MoveEventRequest struct {
	CalendarID string
	Title      string
	NewStart   time.Time
	NewEnd     time.Time
	Timezone   string
}

// CancelEventRequest cancels an existing event located by title.
type CancelEventRequest struct {
	CalendarID string
	Title      string
}

// CancelResult reports a completed cancellation.
type CancelResult struct {
	ID     string
	Status string
}

// ListEventsRequest is the input for querying events in a time range.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}

// Event is a simplified representation of a Google Calendar event.
// Start and End are the raw API values: an RFC3339 dateTime for timed
// events, a bare date for all-day events.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Location    string
	Start       string
	End         string
}
