package llm

import (
	"encoding/json"
	"fmt"
)

// ErrRateLimited indicates the provider returned a rate limit error (429).
type ErrRateLimited struct {
	Err error
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("advisory provider rate limited: %v", e.Err)
}

func (e *ErrRateLimited) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid advisory response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrUnavailable indicates the provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("advisory provider unavailable: %v", e.Err)
	}
	return "advisory provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }
