package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/learnloop/internal/llm"
)

// Generator produces quiz and lesson content via the LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput is the raw LLM quiz response before normalization.
type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    float64  `json:"difficulty"`
}

// lessonOutput is the raw LLM lesson response before normalization.
type lessonOutput struct {
	Title        string `json:"title"`
	Introduction string `json:"introduction"`
	KeyConcepts  []struct {
		Name        string `json:"name"`
		Explanation string `json:"explanation"`
	} `json:"key_concepts"`
	Examples         []string `json:"examples"`
	Summary          string   `json:"summary"`
	EstimatedMinutes int      `json:"estimated_minutes"`
}

// GenerateQuiz produces a full question set for the given input.
// Malformed questions in the LLM output are dropped at the boundary;
// the returned *DataIntegrityError (possibly nil) reports what was
// dropped. When too few questions survive, a *GenerationError is
// returned and the quiz is nil.
func (g *Generator) GenerateQuiz(ctx context.Context, input GenerateInput) (*Quiz, *DataIntegrityError, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	count := input.QuestionCount
	if count <= 0 {
		count = g.config.DefaultQuestionCount
	}

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizMessage(input, count)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, nil, &GenerationError{Kind: "quiz", Err: err}
	}

	var raw quizOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, nil, &GenerationError{
			Kind: "quiz",
			Err:  fmt.Errorf("parse response: %w", err),
		}
	}

	questions, integrity := normalizeQuestions(raw.Questions)
	if len(questions) < g.config.MinQuestions {
		return nil, nil, &GenerationError{
			Kind: "quiz",
			Err:  fmt.Errorf("no usable questions in response (%d generated, %d dropped)", len(raw.Questions), len(raw.Questions)-len(questions)),
		}
	}

	return &Quiz{
		Subject:   input.Subject,
		Topic:     input.Topic,
		Questions: questions,
	}, integrity, nil
}

// GenerateLesson produces lesson content for the given input.
func (g *Generator) GenerateLesson(ctx context.Context, input GenerateInput) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson-gen")

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Kind: "lesson", Err: err}
	}

	var raw lessonOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &GenerationError{
			Kind: "lesson",
			Err:  fmt.Errorf("parse response: %w", err),
		}
	}

	lesson, err := normalizeLesson(raw)
	if err != nil {
		return nil, &GenerationError{Kind: "lesson", Err: err}
	}

	return lesson, nil
}
