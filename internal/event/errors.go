package event

import "errors"

// Domain-specific errors for the event package.
var (
	ErrEmptyUtterance    = errors.New("utterance is empty")
	ErrEmptyAudio        = errors.New("audio is empty")
	ErrMissingStart      = errors.New("could not determine a start time")
	ErrMissingTitle      = errors.New("could not determine the event title")
	ErrUnsupportedIntent = errors.New("unsupported intent")
	ErrEventNotFound     = errors.New("calendar event not found")
	ErrCalendarFailed    = errors.New("calendar operation failed")
	ErrTranscription     = errors.New("transcription failed")
)
