package sync

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	stdsync "sync"
	"testing"
	"time"

	"github.com/abhisek/learnloop/internal/store"
)

// recordingRepo captures appended sync events for assertions.
type recordingRepo struct {
	mu     stdsync.Mutex
	events []store.SyncEventData
}

func (r *recordingRepo) AppendSyncEvent(_ context.Context, data store.SyncEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) synced() []store.SyncEventData {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]store.SyncEventData, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingRepo) AppendSessionEvent(context.Context, store.SessionEventData) error { return nil }
func (r *recordingRepo) AppendAnswerEvent(context.Context, store.AnswerEventData) error   { return nil }
func (r *recordingRepo) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}
func (r *recordingRepo) SessionSummaries(context.Context, int) ([]store.SessionSummary, error) {
	return nil, nil
}
func (r *recordingRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}
func (r *recordingRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) { return nil, nil }

func TestAdapterPushesSessionCreate(t *testing.T) {
	var gotPath string
	var gotPayload SessionPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	repo := &recordingRepo{}
	a := NewAdapter(NewClient(srv.URL, time.Second), repo)

	a.SessionCreated(SessionPayload{
		SessionID:   "s1",
		SessionType: "quiz",
		Subject:     "mathematics",
		Topic:       "fractions",
		Difficulty:  0.5,
	})
	a.Wait()

	if gotPath != "/api/v1/sessions" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotPayload.SessionID != "s1" || gotPayload.SessionType != "quiz" {
		t.Errorf("unexpected payload: %+v", gotPayload)
	}

	events := repo.synced()
	if len(events) != 1 {
		t.Fatalf("expected 1 journaled sync event, got %d", len(events))
	}
	if !events[0].Success || events[0].Operation != "create-session" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestAdapterJournalsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	repo := &recordingRepo{}
	a := NewAdapter(NewClient(srv.URL, time.Second), repo)

	a.InteractionLogged("s1", InteractionPayload{
		QuestionID:          "q1",
		StudentAnswer:       "4",
		Correct:             true,
		ResponseTimeSeconds: 1.5,
	})
	a.Wait()

	events := repo.synced()
	if len(events) != 1 {
		t.Fatalf("expected 1 journaled sync event, got %d", len(events))
	}
	e := events[0]
	if e.Success {
		t.Error("expected failure to be recorded")
	}
	if e.Operation != "log-interaction" || e.SessionID != "s1" {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.ErrorMessage == "" {
		t.Error("expected an error message in the journal")
	}
}

func TestAdapterOfflineMode(t *testing.T) {
	repo := &recordingRepo{}
	a := NewAdapter(nil, repo)

	if a.Online() {
		t.Error("adapter with no client should be offline")
	}

	// Dispatches are silently dropped, never journaled.
	a.SessionCreated(SessionPayload{SessionID: "s1"})
	a.SessionCompleted("s1", CompletionPayload{})
	a.Wait()

	if len(repo.synced()) != 0 {
		t.Error("offline adapter should not journal anything")
	}
}

func TestAdapterNilSafe(t *testing.T) {
	var a *Adapter
	if a.Online() {
		t.Error("nil adapter should be offline")
	}
	a.SessionCreated(SessionPayload{SessionID: "s1"})
	a.Wait()
}

func TestAdapterCompleteSessionPath(t *testing.T) {
	var gotPath string
	var gotPayload CompletionPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewAdapter(NewClient(srv.URL, time.Second), &recordingRepo{})

	a.SessionCompleted("abc", CompletionPayload{
		QuestionsAttempted: 4,
		QuestionsCorrect:   3,
		AccuracyRate:       75,
		DurationSecs:       120,
	})
	a.Wait()

	if gotPath != "/api/v1/sessions/abc/complete" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if gotPayload.AccuracyRate != 75 {
		t.Errorf("unexpected payload: %+v", gotPayload)
	}
}

func TestClientUnreachableHost(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 200*time.Millisecond)

	err := c.CreateSession(context.Background(), SessionPayload{SessionID: "s1"})
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	var syncErr *SyncError
	if !errors.As(err, &syncErr) {
		t.Errorf("expected SyncError, got %T", err)
	}
}
