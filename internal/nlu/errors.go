package nlu

import "errors"

var (
	// ErrExtractionFailed indicates the LLM did not produce a usable draft
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrEmptyUtterance indicates there was no text to extract from
	ErrEmptyUtterance = errors.New("utterance is empty")
)
