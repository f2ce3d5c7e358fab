package assistant

import (
	"context"
	"errors"
)

// Backend readiness errors
var (
	ErrNoAPIKey        = errors.New("no API key configured")
	ErrInvalidAPIKey   = errors.New("API key is malformed")
	ErrInvalidResponse = errors.New("invalid response format from API")
)

// Request is one generation call.
type Request struct {
	Prompt          string
	Temperature     float64
	MaxOutputTokens int

	// Probe marks a connectivity check: sampling options are minimal and the
	// reply body is not inspected.
	Probe bool
}

// Backend produces text for a prompt.
type Backend interface {
	// Ready reports, without any I/O beyond local lookups, whether the backend
	// is configured well enough to try a request.
	Ready() error

	// Generate runs one request and returns the generated text.
	Generate(ctx context.Context, req Request) (string, error)
}
