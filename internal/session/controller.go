package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/learnloop/internal/content"
	"github.com/abhisek/learnloop/internal/store"
	"github.com/abhisek/learnloop/internal/sync"
)

// Controller is the single entry point for session operations. It owns
// the in-memory store, drives content generation, journals events to
// the local database, and hands completed work to the sync adapter.
//
// Local state is the source of truth. Journal and sync failures are
// reported but never roll back a session mutation.
type Controller struct {
	store   *Store
	gen     *content.Generator
	events  store.EventRepo
	sync    *sync.Adapter
	timeout time.Duration
}

// CreateParams describes the session the learner asked for.
type CreateParams struct {
	Kind          Kind
	Subject       string
	Topic         string
	Difficulty    float64
	QuestionCount int
}

// NewController wires a Controller. events and syncAdapter may be nil
// in tests.
func NewController(st *Store, gen *content.Generator, events store.EventRepo, syncAdapter *sync.Adapter) *Controller {
	return &Controller{
		store:   st,
		gen:     gen,
		events:  events,
		sync:    syncAdapter,
		timeout: 60 * time.Second,
	}
}

// CreateSession generates content for the requested session, stores
// the new session, and makes it active. Generation is synchronous and
// bounded by the controller timeout; when it fails, no session is
// created. The returned *content.DataIntegrityError (possibly nil)
// reports questions dropped during normalization.
func (c *Controller) CreateSession(ctx context.Context, params CreateParams) (*LearningSession, *content.DataIntegrityError, error) {
	if err := validateParams(params); err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	input := content.GenerateInput{
		Subject:       params.Subject,
		Topic:         params.Topic,
		Difficulty:    params.Difficulty,
		QuestionCount: params.QuestionCount,
	}

	now := time.Now()
	s := &LearningSession{
		ID:         uuid.NewString(),
		Kind:       params.Kind,
		Subject:    params.Subject,
		Topic:      params.Topic,
		Difficulty: params.Difficulty,
		Status:     StatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var integrity *content.DataIntegrityError
	switch params.Kind {
	case KindQuiz, KindPractice:
		quiz, dropped, err := c.gen.GenerateQuiz(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		integrity = dropped
		s.Questions = quiz.Questions
		s.Phase = PhaseAwaitingAnswer
	case KindLesson:
		lesson, err := c.gen.GenerateLesson(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		s.Lesson = lesson
	default:
		return nil, nil, rejected("create", "unknown session kind %q", params.Kind)
	}

	if err := c.store.Add(s); err != nil {
		return nil, nil, err
	}
	if err := c.store.SetActive(s.ID); err != nil {
		return nil, nil, err
	}

	c.journalSession(ctx, s, "start")
	c.sync.SessionCreated(sync.SessionPayload{
		SessionID:   s.ID,
		SessionType: string(s.Kind),
		Subject:     s.Subject,
		Topic:       s.Topic,
		Difficulty:  s.Difficulty,
	})

	return s, integrity, nil
}

// SubmitAnswer submits the learner's answer for the active session.
// Scoring is local and immediate; the remote push happens in the
// background and cannot affect the result.
func (c *Controller) SubmitAnswer(ctx context.Context, answer string, latency time.Duration) (*AnswerResult, error) {
	s := c.store.Active()
	if s == nil {
		return nil, rejected("submit", "no active session")
	}

	q := s.CurrentQuestion()
	result, err := s.Submit(answer, latency)
	if err != nil {
		return nil, err
	}

	if c.events != nil {
		jerr := c.events.AppendAnswerEvent(ctx, store.AnswerEventData{
			SessionID:      s.ID,
			QuestionID:     q.ID,
			QuestionText:   q.Prompt,
			CorrectAnswer:  q.CorrectAnswer,
			SelectedAnswer: answer,
			Correct:        result.Correct,
			LatencyMs:      int(latency.Milliseconds()),
		})
		if jerr != nil {
			fmt.Fprintf(os.Stderr, "learnloop: failed to journal answer: %v\n", jerr)
		}
	}

	c.sync.InteractionLogged(s.ID, sync.InteractionPayload{
		QuestionID:          q.ID,
		StudentAnswer:       answer,
		Correct:             result.Correct,
		ResponseTimeSeconds: latency.Seconds(),
	})

	return result, nil
}

// Advance moves the active session past the current result. When this
// completes the session, final results are journaled and pushed.
func (c *Controller) Advance(ctx context.Context) error {
	s := c.store.Active()
	if s == nil {
		return rejected("advance", "no active session")
	}

	if err := s.Advance(); err != nil {
		return err
	}

	if s.Status == StatusCompleted {
		c.finishSession(ctx, s)
	}
	return nil
}

// Pause suspends the active session, preserving its progress.
func (c *Controller) Pause(ctx context.Context) error {
	s := c.store.Active()
	if s == nil {
		return rejected("pause", "no active session")
	}
	if err := s.Pause(); err != nil {
		return err
	}
	c.journalSession(ctx, s, "pause")
	return nil
}

// Resume reactivates a paused session and makes it active. The
// question set, position, and counters continue exactly where the
// learner left off.
func (c *Controller) Resume(ctx context.Context, id string) (*LearningSession, error) {
	s := c.store.Get(id)
	if s == nil {
		return nil, rejected("resume", "unknown session id %s", id)
	}
	if err := s.Resume(); err != nil {
		return nil, err
	}
	if err := c.store.SetActive(s.ID); err != nil {
		return nil, err
	}
	c.journalSession(ctx, s, "resume")
	return s, nil
}

// CompleteLesson finishes the active lesson session.
func (c *Controller) CompleteLesson(ctx context.Context) error {
	s := c.store.Active()
	if s == nil {
		return rejected("complete", "no active session")
	}
	if err := s.CompleteLesson(); err != nil {
		return err
	}
	c.finishSession(ctx, s)
	return nil
}

// Active returns the session currently in play, or nil.
func (c *Controller) Active() *LearningSession {
	return c.store.Active()
}

// Sessions returns all in-memory sessions, newest first.
func (c *Controller) Sessions() []*LearningSession {
	return c.store.List()
}

// History returns past sessions from the journal, newest first.
func (c *Controller) History(ctx context.Context, limit int) ([]store.SessionSummary, error) {
	if c.events == nil {
		return nil, nil
	}
	return c.events.SessionSummaries(ctx, limit)
}

// Shutdown flushes in-flight sync calls.
func (c *Controller) Shutdown() {
	c.sync.Wait()
}

func (c *Controller) finishSession(ctx context.Context, s *LearningSession) {
	c.store.ClearActive()
	c.journalSession(ctx, s, "end")
	c.sync.SessionCompleted(s.ID, sync.CompletionPayload{
		QuestionsAttempted: s.QuestionsAttempted,
		QuestionsCorrect:   s.QuestionsCorrect,
		AccuracyRate:       s.AccuracyRate(),
		DurationSecs:       int(time.Since(s.CreatedAt).Seconds()),
	})
}

func (c *Controller) journalSession(ctx context.Context, s *LearningSession, action string) {
	if c.events == nil {
		return
	}
	err := c.events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:          s.ID,
		Action:             action,
		Kind:               string(s.Kind),
		Subject:            s.Subject,
		Topic:              s.Topic,
		Difficulty:         s.Difficulty,
		QuestionsAttempted: s.QuestionsAttempted,
		QuestionsCorrect:   s.QuestionsCorrect,
		DurationSecs:       int(time.Since(s.CreatedAt).Seconds()),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "learnloop: failed to journal session %s: %v\n", action, err)
	}
}

func validateParams(params CreateParams) error {
	if params.Subject == "" {
		return rejected("create", "subject is required")
	}
	if params.Topic == "" {
		return rejected("create", "topic is required")
	}
	if params.Difficulty < 0 || params.Difficulty > 1 {
		return rejected("create", "difficulty %v out of range [0, 1]", params.Difficulty)
	}
	return nil
}
