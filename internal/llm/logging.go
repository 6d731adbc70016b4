package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/learnloop/internal/store"
)

// LoggingProvider wraps a Provider and journals every request to the
// event store. Journal failures are reported to stderr but never fail
// the request itself.
type LoggingProvider struct {
	inner Provider
	repo  store.EventRepo
	name  string
}

// WithLogging wraps a provider with event journaling middleware.
func WithLogging(inner Provider, repo store.EventRepo) *LoggingProvider {
	return &LoggingProvider{
		inner: inner,
		repo:  repo,
		name:  providerName(inner),
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:  l.name,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: latency.Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if l.repo != nil {
		if jerr := l.repo.AppendLLMRequest(ctx, data); jerr != nil {
			fmt.Fprintf(os.Stderr, "learnloop: failed to journal LLM request: %v\n", jerr)
		}
	}

	if os.Getenv("LEARNLOOP_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, "learnloop: llm %s %s %dms req=%s\n",
			l.name, PurposeFrom(ctx), latency.Milliseconds(), serializeRequest(req))
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func providerName(p Provider) string {
	switch p.(type) {
	case *AnthropicProvider:
		return "anthropic"
	case *OpenAIProvider:
		return "openai"
	case *GeminiProvider:
		return "gemini"
	case *MockProvider:
		return "mock"
	default:
		return "unknown"
	}
}

// serializeRequest renders a Request as compact JSON for debug output.
func serializeRequest(req Request) string {
	summary := map[string]any{
		"system_len": len(req.System),
		"messages":   len(req.Messages),
		"max_tokens": req.MaxTokens,
	}
	if req.Schema != nil {
		summary["schema"] = req.Schema.Name
	}
	b, err := json.Marshal(summary)
	if err != nil {
		return "{}"
	}
	return string(b)
}
