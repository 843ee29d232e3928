package speech_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"voice-calendar-assistant/pkg/speech"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *speech.WhisperClient {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	client, err := speech.NewWhisperClient(speech.Config{
		BaseURL:    ts.URL,
		HTTPClient: ts.Client(),
	})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestTranscribe(t *testing.T) {
	t.Run("Multipart request shape", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/inference" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				t.Fatalf("not a multipart request: %v", err)
			}
			if got := r.FormValue("language"); got != "en" {
				t.Errorf("language = %q, want en", got)
			}
			file, _, err := r.FormFile("file")
			if err != nil {
				t.Fatalf("missing file part: %v", err)
			}
			defer file.Close()
			data, _ := io.ReadAll(file)
			if string(data) != "fake-wav-bytes" {
				t.Errorf("unexpected audio payload: %q", data)
			}
			w.Write([]byte(`{"text": " Schedule a meeting next Friday at 3pm. "}`))
		})

		result, err := client.Transcribe(context.Background(), []byte("fake-wav-bytes"), "en")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(result.Text, "next Friday") {
			t.Errorf("unexpected text: %q", result.Text)
		}
		if result.Language != "en" {
			t.Errorf("language = %q, want en", result.Language)
		}
	})

	t.Run("Empty audio rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("server must not be called")
		})
		if _, err := client.Transcribe(context.Background(), nil, "en"); err == nil {
			t.Fatalf("expected empty audio error")
		}
	})

	t.Run("Server error surfaces", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error": "model not loaded"}`))
		})
		_, err := client.Transcribe(context.Background(), []byte("x"), "en")
		if err == nil || !strings.Contains(err.Error(), "model not loaded") {
			t.Fatalf("expected server error, got %v", err)
		}
	})
}
