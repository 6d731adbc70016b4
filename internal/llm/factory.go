package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/learnloop/internal/store"
)

// NewProvider builds the configured provider and wraps it in the
// standard middleware chain. Retry sits outermost so that every
// individual attempt passes through logging and lands in the journal.
// The mock provider is returned bare; it never fails and journaling
// its canned responses only adds noise to tests.
func NewProvider(ctx context.Context, cfg Config, repo store.EventRepo) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return WithRetry(WithLogging(base, repo), cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	var p Provider
	var err error
	switch cfg.Provider {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}

// NewProviderFromEnv is NewProvider with configuration read from the
// environment. This is the path the CLI takes.
func NewProviderFromEnv(ctx context.Context, repo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, repo)
}
