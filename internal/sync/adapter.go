package sync

import (
	"context"
	"fmt"
	"os"
	stdsync "sync"
	"time"

	"github.com/abhisek/learnloop/internal/store"
)

// Adapter dispatches remote sync calls in the background. Each call is
// fire and forget: failures are journaled and reported to stderr, and
// the caller never sees them. A nil *Adapter or an Adapter with no
// client (offline mode) silently drops every dispatch.
type Adapter struct {
	client *Client
	events store.EventRepo
	wg     stdsync.WaitGroup

	// timeout bounds each background call independently of the
	// caller's context, which may be cancelled as soon as the local
	// operation returns.
	timeout time.Duration
}

// NewAdapter creates an Adapter. A nil client means offline mode.
func NewAdapter(client *Client, events store.EventRepo) *Adapter {
	return &Adapter{
		client:  client,
		events:  events,
		timeout: 10 * time.Second,
	}
}

// Online reports whether a remote endpoint is configured.
func (a *Adapter) Online() bool {
	return a != nil && a.client != nil
}

// SessionCreated pushes a new session to the remote API in the
// background.
func (a *Adapter) SessionCreated(p SessionPayload) {
	a.dispatch(p.SessionID, "create-session", func(ctx context.Context) error {
		return a.client.CreateSession(ctx, p)
	})
}

// InteractionLogged pushes one answer submission in the background.
func (a *Adapter) InteractionLogged(sessionID string, p InteractionPayload) {
	a.dispatch(sessionID, "log-interaction", func(ctx context.Context) error {
		return a.client.LogInteraction(ctx, sessionID, p)
	})
}

// SessionCompleted pushes final session results in the background.
func (a *Adapter) SessionCompleted(sessionID string, p CompletionPayload) {
	a.dispatch(sessionID, "complete-session", func(ctx context.Context) error {
		return a.client.CompleteSession(ctx, sessionID, p)
	})
}

// Wait blocks until all in-flight dispatches have finished. Called on
// shutdown so a quick exit does not abandon the last few pushes.
func (a *Adapter) Wait() {
	if a == nil {
		return
	}
	a.wg.Wait()
}

func (a *Adapter) dispatch(sessionID, operation string, call func(context.Context) error) {
	if !a.Online() {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		start := time.Now()
		err := call(ctx)
		latency := time.Since(start)

		data := store.SyncEventData{
			SessionID: sessionID,
			Operation: operation,
			Success:   err == nil,
			LatencyMs: latency.Milliseconds(),
		}
		if err != nil {
			data.ErrorMessage = err.Error()
			fmt.Fprintf(os.Stderr, "learnloop: %v\n", err)
		}

		if a.events != nil {
			if jerr := a.events.AppendSyncEvent(ctx, data); jerr != nil {
				fmt.Fprintf(os.Stderr, "learnloop: failed to journal sync event: %v\n", jerr)
			}
		}
	}()
}
