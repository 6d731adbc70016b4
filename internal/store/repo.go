package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	After   int64     // sequence > After
	Before  int64     // sequence < Before
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
	Purpose string    // exact purpose match, "" = all
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID          string
	Action             string // start, pause, resume, end
	Kind               string // lesson, quiz, practice
	Subject            string
	Topic              string
	Difficulty         float64
	QuestionsAttempted int
	QuestionsCorrect   int
	DurationSecs       int
}

// AnswerEventData captures a single answer submission.
type AnswerEventData struct {
	SessionID      string
	QuestionID     string
	QuestionText   string
	CorrectAnswer  string
	SelectedAnswer string
	Correct        bool
	LatencyMs      int
}

// SyncEventData captures the outcome of a best-effort remote call.
type SyncEventData struct {
	SessionID    string
	Operation    string // create-session, log-interaction, complete-session
	Success      bool
	ErrorMessage string
	LatencyMs    int64
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a journaled LLM request, as read back from the store.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// SessionSummary is a read model over the session journal: the start
// metadata of a session plus the counters from its most recent
// pause/end event.
type SessionSummary struct {
	SessionID          string
	Kind               string
	Subject            string
	Topic              string
	Difficulty         float64
	StartedAt          time.Time
	LastAction         string
	QuestionsAttempted int
	QuestionsCorrect   int
	DurationSecs       int
}

// AccuracyRate returns percentage correct, 0 when nothing was attempted.
func (s SessionSummary) AccuracyRate() float64 {
	if s.QuestionsAttempted == 0 {
		return 0
	}
	return float64(s.QuestionsCorrect) / float64(s.QuestionsAttempted) * 100
}

// EventRepo provides append and query access to the event journal.
type EventRepo interface {
	// AppendSessionEvent records a session lifecycle event.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records an answer submission.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendSyncEvent records the outcome of a remote sync call.
	AppendSyncEvent(ctx context.Context, data SyncEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// SessionSummaries returns past sessions, newest-first.
	SessionSummaries(ctx context.Context, limit int) ([]SessionSummary, error)

	// QueryLLMEvents returns journaled LLM requests, newest-first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
