// Package sync pushes session activity to a remote learning API on a
// best-effort basis. The app is fully functional offline; nothing in
// this package ever blocks or fails a local operation.
package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// SyncError indicates a remote call failed. Callers treat it as
// advisory: the local session state is already committed.
type SyncError struct {
	Operation string
	Err       error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync %s failed: %v", e.Operation, e.Err)
}

func (e *SyncError) Unwrap() error { return e.Err }

// SessionPayload mirrors the remote API's session representation.
type SessionPayload struct {
	SessionID   string  `json:"session_id"`
	SessionType string  `json:"session_type"`
	Subject     string  `json:"subject"`
	Topic       string  `json:"topic"`
	Difficulty  float64 `json:"difficulty"`
}

// InteractionPayload mirrors the remote API's interaction record.
type InteractionPayload struct {
	QuestionID          string  `json:"question_id"`
	StudentAnswer       string  `json:"student_answer"`
	Correct             bool    `json:"correct"`
	ResponseTimeSeconds float64 `json:"response_time_seconds"`
}

// CompletionPayload carries final counters for a finished session.
type CompletionPayload struct {
	QuestionsAttempted int     `json:"questions_attempted"`
	QuestionsCorrect   int     `json:"questions_correct"`
	AccuracyRate       float64 `json:"accuracy_rate"`
	DurationSecs       int     `json:"duration_secs"`
}

// Client talks to the remote learning API over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the given base URL. The timeout
// bounds each individual request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ClientFromEnv creates a Client from LEARNLOOP_API_URL, or nil when
// the variable is unset (offline mode).
func ClientFromEnv() *Client {
	url := os.Getenv("LEARNLOOP_API_URL")
	if url == "" {
		return nil
	}
	timeout := 5 * time.Second
	if t := os.Getenv("LEARNLOOP_API_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil && d > 0 {
			timeout = d
		}
	}
	return NewClient(url, timeout)
}

// CreateSession registers a new session with the remote API.
func (c *Client) CreateSession(ctx context.Context, p SessionPayload) error {
	return c.post(ctx, "create-session", "/api/v1/sessions", p)
}

// LogInteraction pushes one answer submission for a session.
func (c *Client) LogInteraction(ctx context.Context, sessionID string, p InteractionPayload) error {
	path := fmt.Sprintf("/api/v1/sessions/%s/interactions", sessionID)
	return c.post(ctx, "log-interaction", path, p)
}

// CompleteSession reports final results for a finished session.
func (c *Client) CompleteSession(ctx context.Context, sessionID string, p CompletionPayload) error {
	path := fmt.Sprintf("/api/v1/sessions/%s/complete", sessionID)
	return c.post(ctx, "complete-session", path, p)
}

func (c *Client) post(ctx context.Context, op, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &SyncError{Operation: op, Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &SyncError{Operation: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &SyncError{Operation: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read a little of the body for the journal; ignore read errors.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &SyncError{
			Operation: op,
			Err:       fmt.Errorf("remote returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet))),
		}
	}
	return nil
}
