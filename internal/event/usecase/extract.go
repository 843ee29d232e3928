package usecase

import (
	"context"
	"strings"
	"time"

	"voice-calendar-assistant/internal/event"
	"voice-calendar-assistant/internal/model"
)

// Extract runs the LLM extractor and the deterministic resolver over the
// utterance. When the LLM is unavailable or returns garbage, the resolver's
// pattern-based fallback builds the draft instead.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input event.ExtractInput) (event.ExtractOutput, error) {
	utterance := strings.TrimSpace(input.Utterance)
	if utterance == "" {
		return event.ExtractOutput{}, event.ErrEmptyUtterance
	}

	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	draft, err := uc.extractor.Extract(ctx, utterance, now)
	if err != nil {
		uc.l.Warnf(ctx, "extraction failed, using pattern fallback: %v", err)
		return event.ExtractOutput{
			Draft:        uc.resolver.Fallback(utterance, now),
			UsedFallback: true,
		}, nil
	}

	return event.ExtractOutput{
		Draft: uc.resolver.Resolve(draft, utterance, now),
	}, nil
}
