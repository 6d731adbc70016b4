package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The error types here are the whole failure vocabulary of the package.
// Middleware and callers branch on them with errors.As; everything a
// vendor SDK reports is folded into one of these before it escapes.

// ErrRateLimit reports a 429 from the provider. RetryAfter is the
// provider's hint when it gave one, zero otherwise.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("provider rate limit, retry after %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("provider rate limit: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse reports output that failed schema validation or
// could not be parsed. Content keeps the offending payload for the
// journal.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("response failed validation: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable reports that the provider could not serve the
// request: network failure, 5xx, or an unclassified SDK error.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "provider unavailable"
	}
	return fmt.Sprintf("provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded reports a response cut off at the token ceiling.
// For schema-constrained requests the partial Content is unusable by
// definition, so providers surface this instead of the fragment.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "response truncated at the token limit"
}
