package llm

import "context"

// The purpose label rides the context from the call site (quiz-gen,
// lesson-gen) down to the logging middleware, so intermediate layers
// never thread it explicitly.

type purposeKey struct{}

// WithPurpose labels the context with what this LLM call is for.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom reads the label back, "unknown" when none was set.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}
