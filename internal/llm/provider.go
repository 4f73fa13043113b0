package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the advisory model behind a single-turn completion
// call. The compiler makes exactly one bounded attempt per request; there
// is no retry layer, because every caller has a deterministic fallback that
// is strictly cheaper and safer than retrying a non-deterministic call.
type Provider interface {
	// Complete sends one prompt and returns the structured response. When
	// the request carries a Schema, the provider uses its native structured
	// output mechanism and the returned Content is schema-validated JSON.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request is a single-turn advisory prompt.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Advisory calls are always single-turn.
	Prompt string

	// Schema, when set, constrains the response to a JSON structure and
	// enables post-hoc validation of the returned content.
	Schema *Schema

	// MaxTokens bounds the response size.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON when a Schema was provided, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
