package nlu

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/llmprovider"
	"voice-calendar-assistant/pkg/log"
)

const defaultCacheSize = 256

type implExtractor struct {
	l     log.Logger
	gen   ContentGenerator
	cache *lru.Cache[string, model.EventDraft]
}

// New creates an LLM-backed extractor. Identical utterances on the same day
// are served from an LRU cache instead of hitting the provider again.
func New(l log.Logger, gen ContentGenerator, cacheSize int) (Extractor, error) {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, model.EventDraft](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction cache: %w", err)
	}

	return &implExtractor{
		l:     l,
		gen:   gen,
		cache: cache,
	}, nil
}

func (e *implExtractor) Extract(ctx context.Context, utterance string, now time.Time) (*model.EventDraft, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil, ErrEmptyUtterance
	}

	cacheKey := utterance + "|" + now.Format(dateFormatISO)
	if cached, ok := e.cache.Get(cacheKey); ok {
		e.l.Debug(ctx, "extraction cache hit", "utterance", utterance)
		return cached.Clone(), nil
	}

	prompt := fmt.Sprintf("%s\n\nUser request: %s", buildTimeContext(now), utterance)

	resp, err := e.gen.GenerateContent(ctx, &llmprovider.Request{
		System:    extractionSystemPrompt,
		Prompt:    prompt,
		ForceJSON: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	draft, err := e.parseDraft(ctx, resp.Text)
	if err != nil {
		e.l.Warn(ctx, "unparseable extraction output",
			"provider", resp.ProviderName,
			"error", err.Error(),
		)
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	e.cache.Add(cacheKey, *draft.Clone())
	return draft, nil
}

// draftWire is the JSON shape the model is asked to produce.
type draftWire struct {
	Intent          string   `json:"intent"`
	Title           string   `json:"title"`
	Start           string   `json:"start"`
	End             string   `json:"end"`
	DurationMinutes int      `json:"duration_minutes"`
	Attendees       []string `json:"attendees"`
	Timezone        string   `json:"timezone"`
}

func (e *implExtractor) parseDraft(ctx context.Context, text string) (*model.EventDraft, error) {
	payload := extractJSONObject(text)
	if payload == "" {
		return nil, fmt.Errorf("no JSON object in model output")
	}

	var wire draftWire
	if err := json.Unmarshal([]byte(payload), &wire); err != nil {
		return nil, fmt.Errorf("failed to decode model output: %w", err)
	}

	draft := &model.EventDraft{
		Intent:          model.ParseIntent(wire.Intent),
		Title:           strings.TrimSpace(wire.Title),
		DurationMinutes: wire.DurationMinutes,
		Attendees:       wire.Attendees,
		Timezone:        wire.Timezone,
	}

	// Bad stamps are dropped rather than failing the whole draft; the
	// deterministic resolver fills the gap afterwards.
	if wire.Start != "" {
		if start, err := model.ParseStamp(wire.Start); err == nil {
			draft.Start = start
		} else {
			e.l.Warn(ctx, "discarding unparseable start", "value", wire.Start)
		}
	}
	if wire.End != "" {
		if end, err := model.ParseStamp(wire.End); err == nil {
			draft.End = end
		} else {
			e.l.Warn(ctx, "discarding unparseable end", "value", wire.End)
		}
	}

	return draft, nil
}

// extractJSONObject pulls the outermost {...} out of the model output,
// tolerating markdown code fences and prose around it.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}

// buildTimeContext creates a temporal context string for the LLM
func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1)) // Monday
	weekEnd := weekStart.AddDate(0, 0, 6)          // Sunday
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		timeContextTemplate,
		now.Format(dateFormatISO),
		now.Weekday().String(),
		weekStart.Format(dateFormatISO),
		weekEnd.Format(dateFormatISO),
		tomorrow.Format(dateFormatISO),
		tomorrow.Format(dateFormatISO),
	)
}
