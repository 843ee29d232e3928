package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"voice-calendar-assistant/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app with token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "no-such-file-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Timed event with attendees", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if got := r.URL.Query().Get("sendUpdates"); got != "all" {
				t.Errorf("sendUpdates = %q, want all", got)
			}
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri"}`))
		})

		start := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Friday Meeting",
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
			Timezone:  "America/New_York",
			Attendees: []string{"bob@example.com"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}

		startBody := body["start"].(map[string]any)
		if startBody["dateTime"] != "2025-03-14T15:00:00Z" || startBody["timeZone"] != "America/New_York" {
			t.Errorf("unexpected start body: %v", startBody)
		}
		attendees := body["attendees"].([]any)
		if len(attendees) != 1 || attendees[0].(map[string]any)["email"] != "bob@example.com" {
			t.Errorf("unexpected attendees: %v", attendees)
		}
	})

	t.Run("All-day event uses bare dates", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewDecoder(r.Body).Decode(&body)
			w.Write([]byte(`{"id": "event-456"}`))
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Offsite",
			AllDay:    true,
			StartDate: "2025-04-01",
			EndDate:   "2025-04-02",
		})
		if err != nil {
			t.Fatalf("failed to create all-day event: %v", err)
		}

		startBody := body["start"].(map[string]any)
		if startBody["date"] != "2025-04-01" {
			t.Errorf("unexpected start body: %v", startBody)
		}
		if _, hasDateTime := startBody["dateTime"]; hasDateTime {
			t.Errorf("all-day event must not carry dateTime: %v", startBody)
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{}); err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestQueryConflicts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("singleEvents") != "true" || r.URL.Query().Get("orderBy") != "startTime" {
			t.Errorf("unexpected query: %v", r.URL.Query())
		}
		w.Write([]byte(`{
			"items": [
				{"id": "e1", "summary": "Existing Event", "start": {"dateTime": "2025-03-14T15:30:00-04:00"}},
				{"id": "e2", "summary": "Holiday", "start": {"date": "2025-03-14"}}
			]
		}`))
	})

	events, err := client.QueryConflicts(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Now(),
		TimeMax: time.Now().Add(2 * time.Hour),
	})
	if err != nil {
		t.Fatalf("failed to query conflicts: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Start != "2025-03-14T15:30:00-04:00" {
		t.Errorf("timed event start = %q", events[0].Start)
	}
	if events[1].Start != "2025-03-14" {
		t.Errorf("all-day event start = %q", events[1].Start)
	}
}

func TestMoveEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			if got := r.URL.Query().Get("q"); got != "Friday Meeting" {
				t.Errorf("search q = %q", got)
			}
			w.Write([]byte(`{"items": [
				{"id": "other", "summary": "friday meeting prep"},
				{"id": "target", "summary": "friday meeting"}
			]}`))
		case r.Method == http.MethodPatch:
			if !strings.HasSuffix(r.URL.Path, "/events/target") {
				t.Errorf("patched wrong event: %s", r.URL.Path)
			}
			w.Write([]byte(`{"id": "target", "htmlLink": "https://calendar.google.com/moved"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	start := time.Date(2025, 3, 21, 15, 0, 0, 0, time.UTC)
	event, err := client.MoveEvent(context.Background(), gcalendar.MoveEventRequest{
		Title:    "Friday Meeting",
		NewStart: start,
		NewEnd:   start.Add(time.Hour),
		Timezone: "America/New_York",
	})
	if err != nil {
		t.Fatalf("failed to move event: %v", err)
	}
	if event.HtmlLink != "https://calendar.google.com/moved" {
		t.Errorf("unexpected link: %s", event.HtmlLink)
	}
}

func TestCancelEvent(t *testing.T) {
	t.Run("Found and deleted", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				w.Write([]byte(`{"items": [{"id": "target", "summary": "Standup"}]}`))
			case http.MethodDelete:
				w.WriteHeader(http.StatusNoContent)
			}
		})

		result, err := client.CancelEvent(context.Background(), gcalendar.CancelEventRequest{Title: "standup"})
		if err != nil {
			t.Fatalf("failed to cancel event: %v", err)
		}
		if result.ID != "target" || result.Status != "cancelled" {
			t.Errorf("unexpected result: %+v", result)
		}
	})

	t.Run("Not found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": []}`))
		})

		_, err := client.CancelEvent(context.Background(), gcalendar.CancelEventRequest{Title: "ghost"})
		if !errors.Is(err, gcalendar.ErrEventNotFound) {
			t.Fatalf("expected ErrEventNotFound, got %v", err)
		}
	})
}
