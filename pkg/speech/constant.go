package speech

import "time"

const (
	// DefaultBaseURL is the default local whisper-server endpoint
	DefaultBaseURL = "http://localhost:8178"

	// DefaultLanguage is used when no language hint is given
	DefaultLanguage = "auto"

	// DefaultTimeout bounds a single transcription call
	DefaultTimeout = 120 * time.Second
)
