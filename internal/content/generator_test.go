package content

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/learnloop/internal/llm"
)

func testInput() GenerateInput {
	return GenerateInput{
		Subject:       "mathematics",
		Topic:         "fractions",
		Difficulty:    0.5,
		QuestionCount: 2,
	}
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"prompt": "What is 1/2 + 1/4?",
				"options": [],
				"correct_answer": "3/4",
				"explanation": "Convert to quarters: 2/4 + 1/4 = 3/4.",
				"difficulty": 0.4
			},
			{
				"prompt": "Which fraction is larger?",
				"options": ["1/3", "1/2", "1/4", "1/5"],
				"correct_answer": "1/2",
				"explanation": "1/2 is the largest of the four.",
				"difficulty": 0.3
			}
		]
	}`)
}

func TestGenerateQuiz(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(validQuizJSON())

	g := New(mock, DefaultConfig())

	quiz, integrity, err := g.GenerateQuiz(context.Background(), testInput())
	if err != nil {
		t.Fatalf("GenerateQuiz failed: %v", err)
	}
	if integrity != nil {
		t.Errorf("unexpected integrity error: %v", integrity)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(quiz.Questions))
	}
	if quiz.Questions[0].ID != "q1" || quiz.Questions[1].ID != "q2" {
		t.Errorf("question IDs not assigned in order: %q, %q", quiz.Questions[0].ID, quiz.Questions[1].ID)
	}
	if quiz.Questions[0].IsMultipleChoice() {
		t.Error("first question should be free-form")
	}
	if !quiz.Questions[1].IsMultipleChoice() {
		t.Error("second question should be multiple choice")
	}
	if quiz.Subject != "mathematics" || quiz.Topic != "fractions" {
		t.Errorf("quiz metadata not carried: %q/%q", quiz.Subject, quiz.Topic)
	}
}

func TestGenerateQuizUsesSchema(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(validQuizJSON())

	g := New(mock, DefaultConfig())
	if _, _, err := g.GenerateQuiz(context.Background(), testInput()); err != nil {
		t.Fatalf("GenerateQuiz failed: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 LLM call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-content" {
		t.Errorf("expected quiz-content schema, got %v", req.Schema)
	}
	if req.System != quizSystemPrompt {
		t.Error("system prompt not set")
	}
}

func TestGenerateQuizDropsMalformed(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(json.RawMessage(`{
		"questions": [
			{"prompt": "", "options": [], "correct_answer": "x", "explanation": "", "difficulty": 0.5},
			{"prompt": "Good question?", "options": [], "correct_answer": "yes", "explanation": "ok", "difficulty": 0.5},
			{"prompt": "Bad MC", "options": ["a", "b"], "correct_answer": "a", "explanation": "", "difficulty": 0.5}
		]
	}`))

	g := New(mock, DefaultConfig())

	quiz, integrity, err := g.GenerateQuiz(context.Background(), testInput())
	if err != nil {
		t.Fatalf("GenerateQuiz failed: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(quiz.Questions))
	}
	if integrity == nil {
		t.Fatal("expected an integrity error for dropped questions")
	}
	if integrity.Dropped != 2 {
		t.Errorf("expected 2 dropped, got %d", integrity.Dropped)
	}
	// Surviving question gets a fresh sequential ID.
	if quiz.Questions[0].ID != "q1" {
		t.Errorf("expected q1, got %q", quiz.Questions[0].ID)
	}
}

func TestGenerateQuizAllMalformed(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(json.RawMessage(`{
		"questions": [
			{"prompt": "", "options": [], "correct_answer": "", "explanation": "", "difficulty": 0}
		]
	}`))

	g := New(mock, DefaultConfig())

	_, _, err := g.GenerateQuiz(context.Background(), testInput())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerateQuizProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueError(&llm.ErrProviderUnavailable{Err: errors.New("down")})

	g := New(mock, DefaultConfig())

	_, _, err := g.GenerateQuiz(context.Background(), testInput())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Error("GenerationError should wrap the provider error")
	}
}

func TestGenerateLesson(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(json.RawMessage(`{
		"title": "Understanding Fractions",
		"introduction": "Fractions describe parts of a whole.",
		"key_concepts": [
			{"name": "Numerator", "explanation": "The top number counts parts."},
			{"name": "Denominator", "explanation": "The bottom number sizes parts."}
		],
		"examples": ["1/2 of a pizza is one of two equal slices."],
		"summary": "Fractions are parts of a whole.",
		"estimated_minutes": 4
	}`))

	g := New(mock, DefaultConfig())

	lesson, err := g.GenerateLesson(context.Background(), testInput())
	if err != nil {
		t.Fatalf("GenerateLesson failed: %v", err)
	}
	if lesson.Title != "Understanding Fractions" {
		t.Errorf("unexpected title: %q", lesson.Title)
	}
	if len(lesson.KeyConcepts) != 2 {
		t.Errorf("expected 2 concepts, got %d", len(lesson.KeyConcepts))
	}
	if lesson.EstimatedMinutes != 4 {
		t.Errorf("expected 4 minutes, got %d", lesson.EstimatedMinutes)
	}
}

func TestGenerateLessonRejectsEmpty(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(json.RawMessage(`{
		"title": "",
		"introduction": "x",
		"key_concepts": [],
		"examples": [],
		"summary": "",
		"estimated_minutes": 1
	}`))

	g := New(mock, DefaultConfig())

	_, err := g.GenerateLesson(context.Background(), testInput())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}
