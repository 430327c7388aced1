package llm

import (
	"context"
	"errors"
)

var (
	// ErrModelUnavailable wraps transport or provider failures from the
	// external model API.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrEmptyResponse is returned when the provider answers without any
	// text content.
	ErrEmptyResponse = errors.New("empty model response")
)

// TextModel is an opaque text-completion service. Implementations are
// stateless HTTP clients, constructed once at startup and safe for
// concurrent use.
type TextModel interface {
	// Generate sends prompt to the model and returns the raw response
	// text. No retries: a failed call surfaces immediately.
	Generate(ctx context.Context, prompt string) (string, error)
}
