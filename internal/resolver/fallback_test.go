package resolver_test

import (
	"testing"

	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/internal/resolver"
)

func TestFallbackBuildsCreateDraft(t *testing.T) {
	r := mustResolver(t, resolver.Options{})

	draft := r.Fallback("Schedule a meeting with bob@example.com next friday at 3pm for 2 hours", wednesday)

	if draft.Intent != model.IntentCreateEvent {
		t.Errorf("intent = %s, want CreateEvent", draft.Intent)
	}
	if got, want := draft.Start.String(), "2025-03-14T15:00:00"; got != want {
		t.Errorf("start = %s, want %s", got, want)
	}
	if draft.Timezone != "UTC" {
		t.Errorf("timezone = %q, want home zone", draft.Timezone)
	}
}

func TestFallbackTitleDerivation(t *testing.T) {
	r := mustResolver(t, resolver.Options{})

	tests := []struct {
		name      string
		utterance string
		want      string
	}{
		{
			name:      "Leftover tokens win",
			utterance: "Schedule a meeting with bob@example.com next friday at 3pm for 2 hours",
			want:      "bob@example.com",
		},
		{
			name:      "First four tokens only",
			utterance: "quarterly budget review planning session tomorrow",
			want:      "quarterly budget review planning",
		},
		{
			name:      "Weekday rule default",
			utterance: "schedule a meeting next friday at 3pm",
			want:      "Friday Meeting",
		},
		{
			name:      "Absolute rule default",
			utterance: "schedule a meeting on september 6th at 9am",
			want:      "Meeting on September 6",
		},
		{
			name:      "Plain default",
			utterance: "schedule a meeting at 3pm",
			want:      "Meeting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := r.Fallback(tt.utterance, wednesday)
			if draft.Title != tt.want {
				t.Errorf("title = %q, want %q", draft.Title, tt.want)
			}
		})
	}
}
