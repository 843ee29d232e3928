// Package speech abstracts speech-to-text engines behind a small interface.
package speech

import "context"

// Transcriber converts recorded audio into text.
type Transcriber interface {
	// Transcribe recognizes speech from encoded audio bytes (wav/webm/ogg).
	// lang is a BCP-47 language hint, or "auto" for detection.
	Transcribe(ctx context.Context, audio []byte, lang string) (*Transcript, error)

	// Name returns the engine name (for logging).
	Name() string
}

// Transcript is a completed recognition result.
type Transcript struct {
	Text     string
	Language string
}
