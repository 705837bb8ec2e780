package store

import (
	"context"
	"sync"
	"time"

	"github.com/mbastos/acervo/models"
)

// memorySessionStore is an in-process [SessionStore] for tests and
// single-node development runs. Expiry is checked lazily on Get.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySessionEntry
}

type memorySessionEntry struct {
	session   models.Session
	expiresAt time.Time
}

// NewMemorySessionStore constructs an empty in-memory [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]memorySessionEntry),
	}
}

// Create implements [SessionStore].
func (s *memorySessionStore) Create(ctx context.Context, session models.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = memorySessionEntry{
		session:   session,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Get implements [SessionStore].
func (s *memorySessionStore) Get(ctx context.Context, id string) (models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return models.Session{}, ErrSessionNotFound
	}

	return entry.session, nil
}

// Delete implements [SessionStore].
func (s *memorySessionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}
