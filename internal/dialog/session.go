package dialog

import (
	"sync"

	"github.com/ayakimenko/route-weather-bot/internal/forecast"
)

// State is the position in the route-collection dialogue.
type State int

const (
	// StateIdle means no active session; it never appears in the store.
	StateIdle State = iota
	StateAwaitingStart
	StateAwaitingEnd
	StateAwaitingIntermediateOrFinish
	StateAwaitingIntermediate
	StateAwaitingInterval
)

// Session holds one chat's in-progress route. Created on /weather, cleared
// after the report is delivered. No expiry: an abandoned session stays
// until the same chat starts over.
type Session struct {
	State State
	Route forecast.Route
}

// SessionStore keys sessions by chat ID. Each chat only ever acts on its
// own entry, so the lock is just for the map itself.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Get returns the chat's session, or nil when the chat is idle.
func (s *SessionStore) Get(chatID int64) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Begin starts a fresh session, replacing any abandoned one.
func (s *SessionStore) Begin(chatID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{State: StateAwaitingStart}
	s.sessions[chatID] = session
	return session
}

// Clear returns the chat to idle.
func (s *SessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len reports the number of active sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
