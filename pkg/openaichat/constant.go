package openaichat

const (
	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"
)
