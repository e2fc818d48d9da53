package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrAIDisabled is returned by AI search when no model is configured.
	ErrAIDisabled = errors.New("ai search disabled")
	// ErrNoToolCall means the model answered without exactly one search
	// tool call, so no filters could be derived.
	ErrNoToolCall = errors.New("model did not call the search tool")
)
