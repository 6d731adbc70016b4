package session

import (
	"strings"
	"time"

	"github.com/abhisek/learnloop/internal/content"
)

// The methods in this file are the only mutation path for a
// LearningSession. Each validates the transition first and leaves the
// session untouched on rejection.

// Submit records the learner's answer to the current question and
// moves the session to PhaseShowingResult. A second submission for the
// same question is rejected until Advance is called.
func (s *LearningSession) Submit(answer string, latency time.Duration) (*AnswerResult, error) {
	if strings.TrimSpace(answer) == "" {
		return nil, rejected("submit", "answer is empty")
	}
	if !s.HasQuestions() {
		return nil, rejected("submit", "%s sessions have no questions", s.Kind)
	}
	if s.Status != StatusActive {
		return nil, rejected("submit", "session is %s", s.Status)
	}
	if s.Phase == PhaseCompleted {
		return nil, rejected("submit", "session is already completed")
	}
	if s.Phase == PhaseShowingResult {
		return nil, rejected("submit", "question %d already answered, advance first", s.CurrentIndex+1)
	}

	q := s.CurrentQuestion()
	if q == nil {
		return nil, rejected("submit", "no question at index %d", s.CurrentIndex)
	}

	correct := content.CheckAnswer(answer, *q)

	s.QuestionsAttempted++
	if correct {
		s.QuestionsCorrect++
	}
	s.Answers = append(s.Answers, AnswerRecord{
		QuestionID: q.ID,
		Submitted:  answer,
		Correct:    correct,
		Latency:    latency,
		At:         time.Now(),
	})
	s.Phase = PhaseShowingResult
	s.UpdatedAt = time.Now()

	return &AnswerResult{
		Correct:       correct,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
	}, nil
}

// Advance moves past the result of the current question. On the last
// question it completes the session; otherwise the next question
// becomes current and awaits an answer.
func (s *LearningSession) Advance() error {
	if !s.HasQuestions() {
		return rejected("advance", "%s sessions have no questions", s.Kind)
	}
	if s.Status != StatusActive {
		return rejected("advance", "session is %s", s.Status)
	}
	if s.Phase != PhaseShowingResult {
		return rejected("advance", "no result to advance past")
	}

	if s.CurrentIndex+1 >= len(s.Questions) {
		s.Phase = PhaseCompleted
		s.Status = StatusCompleted
	} else {
		s.CurrentIndex++
		s.Phase = PhaseAwaitingAnswer
	}
	s.UpdatedAt = time.Now()
	return nil
}

// Pause suspends an active session. The question set, current index,
// and counters are preserved exactly; Resume picks up where the
// learner left off.
func (s *LearningSession) Pause() error {
	if s.Status != StatusActive {
		return rejected("pause", "session is %s", s.Status)
	}
	s.Status = StatusPaused
	s.UpdatedAt = time.Now()
	return nil
}

// Resume reactivates a paused session without touching its progress.
func (s *LearningSession) Resume() error {
	if s.Status != StatusPaused {
		return rejected("resume", "session is %s", s.Status)
	}
	s.Status = StatusActive
	s.UpdatedAt = time.Now()
	return nil
}

// CompleteLesson marks a lesson session finished. Lessons have no
// question progression; reading to the end completes them.
func (s *LearningSession) CompleteLesson() error {
	if s.Kind != KindLesson {
		return rejected("complete", "not a lesson session")
	}
	if s.Status == StatusCompleted {
		return rejected("complete", "session is already completed")
	}
	if s.Status != StatusActive {
		return rejected("complete", "session is %s", s.Status)
	}
	s.Status = StatusCompleted
	s.Phase = PhaseCompleted
	s.UpdatedAt = time.Now()
	return nil
}
