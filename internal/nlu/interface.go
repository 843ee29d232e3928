package nlu

import (
	"context"
	"time"

	"voice-calendar-assistant/internal/model"
	"voice-calendar-assistant/pkg/llmprovider"
)

// Extractor turns a natural-language utterance into a structured event draft.
type Extractor interface {
	Extract(ctx context.Context, utterance string, now time.Time) (*model.EventDraft, error)
}

// ContentGenerator is the LLM surface the extractor depends on.
// *llmprovider.Manager satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
