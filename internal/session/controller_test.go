package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/llm"
)

func quizResponse() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{"prompt": "2+2?", "options": [], "correct_answer": "4", "explanation": "add", "difficulty": 0.2},
			{"prompt": "3*3?", "options": [], "correct_answer": "9", "explanation": "multiply", "difficulty": 0.3}
		]
	}`)
}

func newTestController(mock *llm.MockProvider) *Controller {
	gen := content.New(mock, content.DefaultConfig())
	return NewController(NewStore(), gen, nil, nil)
}

func createQuiz(t *testing.T, c *Controller) *LearningSession {
	t.Helper()
	s, _, err := c.CreateSession(context.Background(), CreateParams{
		Kind:       KindQuiz,
		Subject:    "mathematics",
		Topic:      "arithmetic",
		Difficulty: 0.3,
	})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	return s
}

func TestControllerCreateQuizSession(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(quizResponse())
	c := newTestController(mock)

	s := createQuiz(t, c)

	if s.Status != StatusActive || s.Phase != PhaseAwaitingAnswer {
		t.Errorf("unexpected state: %s/%s", s.Status, s.Phase)
	}
	if len(s.Questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(s.Questions))
	}
	if s.ID == "" {
		t.Error("session has no ID")
	}
	if active := c.Active(); active == nil || active.ID != s.ID {
		t.Error("new session is not active")
	}
}

func TestControllerGenerationFailureCreatesNoSession(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueError(&llm.ErrProviderUnavailable{Err: errors.New("down")})
	c := newTestController(mock)

	_, _, err := c.CreateSession(context.Background(), CreateParams{
		Kind:       KindQuiz,
		Subject:    "mathematics",
		Topic:      "arithmetic",
		Difficulty: 0.3,
	})

	var genErr *content.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if len(c.Sessions()) != 0 {
		t.Error("failed generation must not create a session")
	}
	if c.Active() != nil {
		t.Error("failed generation must not set an active session")
	}
}

func TestControllerRejectsBadParams(t *testing.T) {
	c := newTestController(llm.NewMockProvider())

	tests := []struct {
		name   string
		params CreateParams
	}{
		{"missing subject", CreateParams{Kind: KindQuiz, Topic: "t", Difficulty: 0.5}},
		{"missing topic", CreateParams{Kind: KindQuiz, Subject: "s", Difficulty: 0.5}},
		{"difficulty too high", CreateParams{Kind: KindQuiz, Subject: "s", Topic: "t", Difficulty: 1.5}},
		{"difficulty negative", CreateParams{Kind: KindQuiz, Subject: "s", Topic: "t", Difficulty: -0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := c.CreateSession(context.Background(), tt.params)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestControllerFullQuizFlow(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(quizResponse())
	c := newTestController(mock)
	ctx := context.Background()

	s := createQuiz(t, c)

	result, err := c.SubmitAnswer(ctx, "4", time.Second)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct")
	}
	if err := c.Advance(ctx); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	result, err = c.SubmitAnswer(ctx, "8", time.Second)
	if err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect")
	}
	if err := c.Advance(ctx); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	if s.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", s.Status)
	}
	if s.AccuracyRate() != 50 {
		t.Errorf("expected 50%% accuracy, got %v", s.AccuracyRate())
	}
	if c.Active() != nil {
		t.Error("completed session should no longer be active")
	}
}

func TestControllerPauseResume(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(quizResponse())
	c := newTestController(mock)
	ctx := context.Background()

	s := createQuiz(t, c)

	if _, err := c.SubmitAnswer(ctx, "4", time.Second); err != nil {
		t.Fatalf("SubmitAnswer failed: %v", err)
	}
	if err := c.Advance(ctx); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	if err := c.Pause(ctx); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	resumed, err := c.Resume(ctx, s.ID)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if resumed.CurrentIndex != 1 || resumed.QuestionsAttempted != 1 {
		t.Errorf("progress not preserved: index=%d attempted=%d", resumed.CurrentIndex, resumed.QuestionsAttempted)
	}
	if c.Active() == nil || c.Active().ID != s.ID {
		t.Error("resumed session should be active")
	}
}

func TestControllerSubmitWithoutActiveSession(t *testing.T) {
	c := newTestController(llm.NewMockProvider())

	_, err := c.SubmitAnswer(context.Background(), "4", time.Second)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestControllerLessonSession(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(json.RawMessage(`{
		"title": "Intro",
		"introduction": "Welcome.",
		"key_concepts": [{"name": "a", "explanation": "b"}],
		"examples": ["e"],
		"summary": "done",
		"estimated_minutes": 3
	}`))
	c := newTestController(mock)
	ctx := context.Background()

	s, _, err := c.CreateSession(ctx, CreateParams{
		Kind:       KindLesson,
		Subject:    "spanish",
		Topic:      "greetings",
		Difficulty: 0.2,
	})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if s.Lesson == nil || s.Lesson.Title != "Intro" {
		t.Error("lesson content missing")
	}

	if err := c.CompleteLesson(ctx); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", s.Status)
	}
}

func TestControllerReportsDroppedQuestions(t *testing.T) {
	mock := llm.NewMockProvider()
	mock.EnqueueResponse(json.RawMessage(`{
		"questions": [
			{"prompt": "ok?", "options": [], "correct_answer": "yes", "explanation": "", "difficulty": 0.5},
			{"prompt": "", "options": [], "correct_answer": "x", "explanation": "", "difficulty": 0.5}
		]
	}`))
	c := newTestController(mock)

	s, integrity, err := c.CreateSession(context.Background(), CreateParams{
		Kind:       KindQuiz,
		Subject:    "s",
		Topic:      "t",
		Difficulty: 0.5,
	})
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if integrity == nil || integrity.Dropped != 1 {
		t.Errorf("expected 1 dropped question reported, got %v", integrity)
	}
	// The session is still created with the usable remainder.
	if len(s.Questions) != 1 {
		t.Errorf("expected 1 question, got %d", len(s.Questions))
	}
}
