package auth

import (
	"context"
	"sync"
	"time"
)

// Session is an authenticated session: an opaque token bound to a principal
// with an expiry instant. Operations against an expired session behave
// exactly like anonymous ones.
type Session struct {
	Token       string    `json:"token"`
	PrincipalID string    `json:"principal_id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at the given
// instant.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionStore persists sessions. MemoryStore backs tests and single-process
// deployments; RedisStore is the production-backed variant.
type SessionStore interface {
	Put(ctx context.Context, sess Session) error
	Get(ctx context.Context, token string) (Session, bool, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// MemoryStore keeps sessions in process memory.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

// Put stores the session.
func (s *MemoryStore) Put(ctx context.Context, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
	return nil
}

// Get fetches a session by token.
func (s *MemoryStore) Get(ctx context.Context, token string) (Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[token]
	return sess, ok, nil
}

// Delete removes a session. Removing an absent token is not an error.
func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// DeleteExpired removes sessions past their expiry and reports how many.
func (s *MemoryStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for token, sess := range s.sessions {
		if sess.Expired(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}
