package session

import (
	"fmt"
	"os"
	"sync"
)

// Store holds sessions for the running app, newest first, with a
// single active-session pointer. All methods are safe for concurrent
// use.
type Store struct {
	mu       sync.RWMutex
	sessions []*LearningSession
	activeID string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Add inserts a session at the front of the collection. A duplicate ID
// is rejected and the collection is unchanged.
func (st *Store) Add(s *LearningSession) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	for _, existing := range st.sessions {
		if existing.ID == s.ID {
			return rejected("add", "duplicate session id %s", s.ID)
		}
	}
	st.sessions = append([]*LearningSession{s}, st.sessions...)
	return nil
}

// Get returns the session with the given ID, or nil.
func (st *Store) Get(id string) *LearningSession {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.find(id)
}

// List returns all sessions, newest first.
func (st *Store) List() []*LearningSession {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*LearningSession, len(st.sessions))
	copy(out, st.sessions)
	return out
}

// SetActive marks the given session as the one in play.
func (st *Store) SetActive(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.find(id) == nil {
		return rejected("activate", "unknown session id %s", id)
	}
	st.activeID = id
	return nil
}

// ClearActive drops the active-session pointer.
func (st *Store) ClearActive() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.activeID = ""
}

// Active returns the active session, or nil when none is set.
func (st *Store) Active() *LearningSession {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.activeID == "" {
		return nil
	}
	return st.find(st.activeID)
}

// Update replaces the stored session with the same ID. An unknown ID
// is logged and ignored rather than failing the caller.
func (st *Store) Update(s *LearningSession) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for i, existing := range st.sessions {
		if existing.ID == s.ID {
			st.sessions[i] = s
			return
		}
	}
	fmt.Fprintf(os.Stderr, "learnloop: update for unknown session %s ignored\n", s.ID)
}

// Len returns the number of stored sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) find(id string) *LearningSession {
	for _, s := range st.sessions {
		if s.ID == id {
			return s
		}
	}
	return nil
}
