package openaichat_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"voice-calendar-assistant/pkg/openaichat"
)

func TestNew(t *testing.T) {
	if _, err := openaichat.New(openaichat.Config{}); err == nil {
		t.Errorf("expected error for missing API key")
	}
	if _, err := openaichat.New(openaichat.Config{APIKey: "sk-test"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerateContent(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-4o-mini",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"create_event\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 90, "completion_tokens": 12, "total_tokens": 102}
		}`))
	}))
	defer ts.Close()

	client, err := openaichat.New(openaichat.Config{APIKey: "sk-test", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &openaichat.Request{
		System:    "You extract calendar events.",
		Prompt:    "move my standup to friday",
		ForceJSON: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text != `{"intent":"create_event"}` {
		t.Errorf("unexpected text: %s", resp.Text)
	}
	if resp.Usage.TotalTokens != 102 {
		t.Errorf("total tokens = %d, want 102", resp.Usage.TotalTokens)
	}

	messages := body["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(messages))
	}
	if messages[0].(map[string]any)["role"] != "system" {
		t.Errorf("first message role = %v", messages[0].(map[string]any)["role"])
	}
	format := body["response_format"].(map[string]any)
	if format["type"] != "json_object" {
		t.Errorf("response_format = %v", format)
	}
}
