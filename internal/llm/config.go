package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and parameterizes an LLM provider.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds a single request including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig shapes the exponential backoff applied to transient
// provider failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. LEARNLOOP_* variables take precedence;
// when no provider is selected explicitly, the standard API key variables
// are probed in priority order (Anthropic → OpenAI → Gemini).
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("LEARNLOOP_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("LEARNLOOP_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	} else if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("LEARNLOOP_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("LEARNLOOP_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("LEARNLOOP_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("LEARNLOOP_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	if k := os.Getenv("LEARNLOOP_GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	} else if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("LEARNLOOP_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	// No explicit provider: pick the first one with a key available.
	if os.Getenv("LEARNLOOP_LLM_PROVIDER") == "" {
		switch {
		case cfg.Anthropic.APIKey != "":
			cfg.Provider = "anthropic"
		case cfg.OpenAI.APIKey != "":
			cfg.Provider = "openai"
		case cfg.Gemini.APIKey != "":
			cfg.Provider = "gemini"
		}
	}

	return cfg
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
