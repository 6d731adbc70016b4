package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence not increasing: got %d after %d", seq, prev)
		}
		prev = seq
	}
}

func TestSessionSummaries(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:  "s1",
		Action:     "start",
		Kind:       "quiz",
		Subject:    "Mathematics",
		Topic:      "Fractions",
		Difficulty: 0.5,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:          "s1",
		Action:             "end",
		Kind:               "quiz",
		QuestionsAttempted: 4,
		QuestionsCorrect:   3,
		DurationSecs:       120,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	summaries, err := repo.SessionSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}

	got := summaries[0]
	if got.SessionID != "s1" {
		t.Errorf("session id = %q, want s1", got.SessionID)
	}
	if got.LastAction != "end" {
		t.Errorf("last action = %q, want end", got.LastAction)
	}
	if got.QuestionsAttempted != 4 || got.QuestionsCorrect != 3 {
		t.Errorf("counters = %d/%d, want 4/3", got.QuestionsCorrect, got.QuestionsAttempted)
	}
	if got.AccuracyRate() != 75 {
		t.Errorf("accuracy = %v, want 75", got.AccuracyRate())
	}
	if got.Subject != "Mathematics" || got.Topic != "Fractions" {
		t.Errorf("metadata = %q/%q, want Mathematics/Fractions", got.Subject, got.Topic)
	}
}

func TestSessionSummariesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		err := repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id,
			Action:    "start",
			Kind:      "practice",
		})
		if err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	summaries, err := repo.SessionSummaries(ctx, 2)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].SessionID != "c" || summaries[1].SessionID != "b" {
		t.Errorf("order = %s, %s; want c, b", summaries[0].SessionID, summaries[1].SessionID)
	}
}

func TestSessionSummariesAfterResume(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: "start", Kind: "quiz"},
		{SessionID: "s1", Action: "pause", Kind: "quiz", QuestionsAttempted: 2, QuestionsCorrect: 1},
		{SessionID: "s1", Action: "resume", Kind: "quiz", QuestionsAttempted: 2, QuestionsCorrect: 1},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.Action, err)
		}
	}

	summaries, err := repo.SessionSummaries(ctx, 10)
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}
	got := summaries[0]
	if got.LastAction != "resume" {
		t.Errorf("last action = %q, want resume", got.LastAction)
	}
	if got.QuestionsAttempted != 2 || got.QuestionsCorrect != 1 {
		t.Errorf("counters = %d/%d, want 2/1", got.QuestionsCorrect, got.QuestionsAttempted)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "quiz-gen",
		InputTokens:  120,
		OutputTokens: 350,
		LatencyMs:    900,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 5})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("len(events) = %d, want 1", len(events))
	}
	if events[0].Purpose != "quiz-gen" || !events[0].Success {
		t.Errorf("event = %+v", events[0])
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Model != "claude-haiku" {
		t.Errorf("get = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestQueryLLMEventsByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, purpose := range []string{"quiz-gen", "lesson-gen", "quiz-gen"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock",
			Model:    "mock",
			Purpose:  purpose,
			Success:  true,
		})
		if err != nil {
			t.Fatalf("append %s: %v", purpose, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "quiz-gen"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	for _, e := range events {
		if e.Purpose != "quiz-gen" {
			t.Errorf("purpose = %q, want quiz-gen", e.Purpose)
		}
	}
}

func TestSyncEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSyncEvent(ctx, SyncEventData{
		SessionID:    "s1",
		Operation:    "log-interaction",
		Success:      false,
		ErrorMessage: "connection refused",
		LatencyMs:    42,
	})
	if err != nil {
		t.Fatalf("append sync event: %v", err)
	}

	n, err := s.Client().SyncEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}
