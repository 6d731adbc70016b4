package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/content"
)

func newQuizSession(questions ...content.Question) *LearningSession {
	now := time.Now()
	return &LearningSession{
		ID:        "s1",
		Kind:      KindQuiz,
		Subject:   "mathematics",
		Topic:     "fractions",
		Status:    StatusActive,
		Phase:     PhaseAwaitingAnswer,
		Questions: questions,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func twoQuestions() []content.Question {
	return []content.Question{
		{ID: "q1", Prompt: "2+2?", CorrectAnswer: "4", Explanation: "arithmetic"},
		{ID: "q2", Prompt: "3+3?", CorrectAnswer: "6", Explanation: "arithmetic"},
	}
}

func TestQuizRunThrough(t *testing.T) {
	s := newQuizSession(twoQuestions()...)

	// First question answered correctly.
	result, err := s.Submit("4", time.Second)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct")
	}
	if s.Phase != PhaseShowingResult {
		t.Errorf("expected showing_result, got %s", s.Phase)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if s.CurrentIndex != 1 || s.Phase != PhaseAwaitingAnswer {
		t.Errorf("expected question 2 awaiting answer, got index %d phase %s", s.CurrentIndex, s.Phase)
	}

	// Second question answered incorrectly.
	result, err = s.Submit("7", time.Second)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect")
	}
	if result.CorrectAnswer != "6" {
		t.Errorf("expected correct answer in result, got %q", result.CorrectAnswer)
	}

	// Advancing past the last question completes the session.
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}
	if s.Status != StatusCompleted || s.Phase != PhaseCompleted {
		t.Errorf("expected completed, got status %s phase %s", s.Status, s.Phase)
	}
	if s.QuestionsAttempted != 2 || s.QuestionsCorrect != 1 {
		t.Errorf("counters: attempted=%d correct=%d", s.QuestionsAttempted, s.QuestionsCorrect)
	}
	if s.AccuracyRate() != 50 {
		t.Errorf("expected 50%% accuracy, got %v", s.AccuracyRate())
	}
}

func TestDoubleSubmitRejected(t *testing.T) {
	s := newQuizSession(twoQuestions()...)

	if _, err := s.Submit("4", time.Second); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}

	_, err := s.Submit("4", time.Second)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// Counters unchanged by the rejected submission.
	if s.QuestionsAttempted != 1 || s.QuestionsCorrect != 1 {
		t.Errorf("counters moved: attempted=%d correct=%d", s.QuestionsAttempted, s.QuestionsCorrect)
	}
}

func TestEmptyAnswerRejected(t *testing.T) {
	s := newQuizSession(twoQuestions()...)

	for _, answer := range []string{"", "   ", "\t"} {
		_, err := s.Submit(answer, time.Second)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("Submit(%q): expected ValidationError, got %v", answer, err)
		}
	}
	if s.QuestionsAttempted != 0 || s.Phase != PhaseAwaitingAnswer {
		t.Errorf("rejected submissions mutated state: attempted=%d phase=%s", s.QuestionsAttempted, s.Phase)
	}
}

func TestSubmitAfterCompletionRejected(t *testing.T) {
	s := newQuizSession(twoQuestions()[0])

	if _, err := s.Submit("4", time.Second); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := s.Advance(); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	if _, err := s.Submit("4", time.Second); err == nil {
		t.Error("expected submission after completion to be rejected")
	}
	if err := s.Advance(); err == nil {
		t.Error("expected advance after completion to be rejected")
	}
}

func TestAdvanceWithoutResultRejected(t *testing.T) {
	s := newQuizSession(twoQuestions()...)
	if err := s.Advance(); err == nil {
		t.Error("expected advance without a pending result to be rejected")
	}
	if s.CurrentIndex != 0 {
		t.Errorf("index moved to %d", s.CurrentIndex)
	}
}

func TestPauseResumePreservesProgress(t *testing.T) {
	qs := []content.Question{
		{ID: "q1", Prompt: "a?", CorrectAnswer: "a"},
		{ID: "q2", Prompt: "b?", CorrectAnswer: "b"},
		{ID: "q3", Prompt: "c?", CorrectAnswer: "c"},
	}
	s := newQuizSession(qs...)

	// Answer two questions, then pause mid-session.
	s.Submit("a", time.Second)
	s.Advance()
	s.Submit("x", time.Second)
	s.Advance()

	if err := s.Pause(); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}
	if s.Status != StatusPaused {
		t.Errorf("expected paused, got %s", s.Status)
	}

	// Submissions are rejected while paused.
	if _, err := s.Submit("c", time.Second); err == nil {
		t.Error("expected submit while paused to be rejected")
	}

	if err := s.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	// Exactly where the learner left off: question 3, same counters,
	// same question set.
	if s.CurrentIndex != 2 {
		t.Errorf("expected index 2 after resume, got %d", s.CurrentIndex)
	}
	if s.QuestionsAttempted != 2 || s.QuestionsCorrect != 1 {
		t.Errorf("counters changed: attempted=%d correct=%d", s.QuestionsAttempted, s.QuestionsCorrect)
	}
	if len(s.Questions) != 3 {
		t.Errorf("question set changed: %d questions", len(s.Questions))
	}
	if s.CurrentQuestion().ID != "q3" {
		t.Errorf("expected q3, got %s", s.CurrentQuestion().ID)
	}
}

func TestPauseTransitions(t *testing.T) {
	s := newQuizSession(twoQuestions()...)

	if err := s.Resume(); err == nil {
		t.Error("resume of an active session should be rejected")
	}

	s.Pause()
	if err := s.Pause(); err == nil {
		t.Error("pause of a paused session should be rejected")
	}

	s.Resume()
	s.Submit("4", time.Second)
	s.Advance()
	s.Submit("6", time.Second)
	s.Advance()

	if err := s.Pause(); err == nil {
		t.Error("pause of a completed session should be rejected")
	}
	if err := s.Resume(); err == nil {
		t.Error("resume of a completed session should be rejected")
	}
}

func TestLessonLifecycle(t *testing.T) {
	s := &LearningSession{
		ID:     "l1",
		Kind:   KindLesson,
		Status: StatusActive,
		Lesson: &content.Lesson{Title: "t"},
	}

	if _, err := s.Submit("x", time.Second); err == nil {
		t.Error("lessons should reject submissions")
	}
	if err := s.Advance(); err == nil {
		t.Error("lessons should reject advance")
	}

	if err := s.CompleteLesson(); err != nil {
		t.Fatalf("CompleteLesson failed: %v", err)
	}
	if s.Status != StatusCompleted {
		t.Errorf("expected completed, got %s", s.Status)
	}
	if err := s.CompleteLesson(); err == nil {
		t.Error("double completion should be rejected")
	}
}

func TestAccuracyRateDerived(t *testing.T) {
	s := newQuizSession(twoQuestions()...)
	if s.AccuracyRate() != 0 {
		t.Errorf("expected 0 accuracy before attempts, got %v", s.AccuracyRate())
	}

	s.Submit("4", time.Second)
	if s.AccuracyRate() != 100 {
		t.Errorf("expected 100, got %v", s.AccuracyRate())
	}

	s.Advance()
	s.Submit("wrong", time.Second)
	if s.AccuracyRate() != 50 {
		t.Errorf("expected 50, got %v", s.AccuracyRate())
	}
}

func TestCounterInvariant(t *testing.T) {
	s := newQuizSession(twoQuestions()...)

	check := func() {
		if s.QuestionsCorrect < 0 || s.QuestionsCorrect > s.QuestionsAttempted || s.QuestionsAttempted > len(s.Questions) {
			t.Fatalf("invariant violated: correct=%d attempted=%d total=%d",
				s.QuestionsCorrect, s.QuestionsAttempted, len(s.Questions))
		}
	}

	check()
	s.Submit("4", time.Second)
	check()
	s.Submit("4", time.Second) // rejected
	check()
	s.Advance()
	check()
	s.Submit("wrong", time.Second)
	check()
	s.Advance()
	check()
}

func TestAnswerRecords(t *testing.T) {
	s := newQuizSession(twoQuestions()...)

	s.Submit("  4 ", 1500*time.Millisecond)

	if len(s.Answers) != 1 {
		t.Fatalf("expected 1 answer record, got %d", len(s.Answers))
	}
	rec := s.Answers[0]
	if rec.QuestionID != "q1" || !rec.Correct {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Latency != 1500*time.Millisecond {
		t.Errorf("latency not recorded: %v", rec.Latency)
	}
}
