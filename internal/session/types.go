package session

import (
	"time"

	"github.com/abhisek/learnloop/internal/content"
)

// Kind identifies what a session contains.
type Kind string

const (
	KindLesson   Kind = "lesson"
	KindQuiz     Kind = "quiz"
	KindPractice Kind = "practice"
)

// Status is the lifecycle state of a session.
type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
)

// Phase is the progression state within an active quiz or practice
// session. A session at question i is either waiting for the learner's
// answer or showing the result of the answer just given.
type Phase string

const (
	PhaseAwaitingAnswer Phase = "awaiting_answer"
	PhaseShowingResult  Phase = "showing_result"
	PhaseCompleted      Phase = "completed"
)

// LearningSession holds the full state of one learning session.
// All mutation goes through the methods in engine.go, which maintain
// the counter invariant: 0 <= correct <= attempted <= len(Questions).
type LearningSession struct {
	ID         string
	Kind       Kind
	Subject    string
	Topic      string
	Difficulty float64

	Status Status
	Phase  Phase

	// Questions is populated for quiz and practice sessions.
	Questions []content.Question

	// Lesson is populated for lesson sessions.
	Lesson *content.Lesson

	// CurrentIndex is the index of the question in play. Meaningful
	// only while Phase is not PhaseCompleted.
	CurrentIndex int

	QuestionsAttempted int
	QuestionsCorrect   int

	// Answers records every submission in order.
	Answers []AnswerRecord

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AnswerRecord captures one answer submission.
type AnswerRecord struct {
	QuestionID string
	Submitted  string
	Correct    bool
	Latency    time.Duration
	At         time.Time
}

// AnswerResult is returned from Submit for immediate feedback.
type AnswerResult struct {
	Correct       bool
	CorrectAnswer string
	Explanation   string
}

// AccuracyRate returns the percentage of attempted questions answered
// correctly. Always derived from the counters, never stored. Zero when
// nothing has been attempted yet.
func (s *LearningSession) AccuracyRate() float64 {
	if s.QuestionsAttempted == 0 {
		return 0
	}
	return float64(s.QuestionsCorrect) / float64(s.QuestionsAttempted) * 100
}

// CurrentQuestion returns the question in play, or nil when the
// session has no questions or is completed.
func (s *LearningSession) CurrentQuestion() *content.Question {
	if s.Phase == PhaseCompleted {
		return nil
	}
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.CurrentIndex]
}

// HasQuestions reports whether this session kind carries a question set.
func (s *LearningSession) HasQuestions() bool {
	return s.Kind == KindQuiz || s.Kind == KindPractice
}
