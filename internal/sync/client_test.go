package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLogInteraction(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody InteractionPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	err := c.LogInteraction(context.Background(), "sess-1", InteractionPayload{
		QuestionID:          "q2",
		StudentAnswer:       "3/4",
		Correct:             true,
		ResponseTimeSeconds: 2.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/sessions/sess-1/interactions", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "q2", gotBody.QuestionID)
	assert.True(t, gotBody.Correct)
	assert.InDelta(t, 2.5, gotBody.ResponseTimeSeconds, 0.001)
}

func TestClientErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"bad request", http.StatusBadRequest},
		{"not found", http.StatusNotFound},
		{"server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			err := c.CreateSession(context.Background(), SessionPayload{SessionID: "s1"})

			require.Error(t, err)
			var syncErr *SyncError
			require.ErrorAs(t, err, &syncErr)
			assert.Equal(t, "create-session", syncErr.Operation)
			assert.Contains(t, syncErr.Error(), "create-session")
		})
	}
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond)
	err := c.CompleteSession(context.Background(), "s1", CompletionPayload{})

	require.Error(t, err)
	var syncErr *SyncError
	assert.ErrorAs(t, err, &syncErr)
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	require.NoError(t, c.CreateSession(context.Background(), SessionPayload{SessionID: "s1"}))
	assert.Equal(t, "/api/v1/sessions", gotPath)
}
