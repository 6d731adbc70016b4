package llm

import (
	"context"
	"encoding/json"
	"net/http"
)

// Provider generates structured content from a prompt. Implementations
// wrap one vendor SDK each; middleware (retry, logging) wraps a
// Provider in turn, so callers always program against this interface.
type Provider interface {
	// Generate runs a single completion. When req.Schema is set the
	// provider asks for native structured output and the returned
	// Content is schema-validated JSON; otherwise Content carries the
	// raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model this provider targets.
	ModelID() string
}

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Request is a provider-neutral completion request.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Generation here is almost
	// always single-turn: one user message.
	Messages []Message

	// Schema, when non-nil, constrains the output to a JSON shape.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Schema names and defines an expected JSON output shape. Name doubles
// as the vendor-side identifier (tool name, response-format name) and
// the cache key for the compiled validator.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is a provider-neutral completion result.
type Response struct {
	Content json.RawMessage
	Usage   Usage

	// Model is the model that actually served the request, which may be
	// more specific than the one asked for.
	Model string

	// StopReason is normalized across vendors to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// classifyStatus folds an HTTP status carried by a vendor SDK error
// into the package taxonomy. Anything that is not a rate limit or a
// server fault still means the provider could not serve us.
func classifyStatus(status int, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

// normalizeStop collapses each vendor's finish-reason vocabulary into
// the two values callers distinguish.
func normalizeStop(reason string) string {
	switch reason {
	case "max_tokens", "length", "MAX_TOKENS":
		return "max_tokens"
	}
	return "end"
}

// checkStructured applies the post-processing every provider shares for
// schema-constrained requests: a truncated response can never be valid
// JSON of the right shape, and a complete one must validate.
func checkStructured(req Request, content json.RawMessage, stop string) error {
	if req.Schema == nil {
		return nil
	}
	if stop == "max_tokens" {
		return &ErrMaxTokensExceeded{Content: content}
	}
	return validateResponse(req.Schema, content)
}
