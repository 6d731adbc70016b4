package content

// Config holds generation limits and defaults.
type Config struct {
	// MaxTokens caps the LLM response size per request.
	MaxTokens int

	// Temperature controls generation randomness.
	Temperature float64

	// DefaultQuestionCount is used when GenerateInput does not specify
	// a count.
	DefaultQuestionCount int

	// MinQuestions is the smallest usable quiz after normalization.
	// Fewer surviving questions than this fails the generation.
	MinQuestions int
}

// DefaultConfig returns the generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:            4096,
		Temperature:          0.7,
		DefaultQuestionCount: 5,
		MinQuestions:         1,
	}
}
