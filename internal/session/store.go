package session

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNoSession is returned when a key is absent or the session expired.
// Callers treat it as "no active session".
var ErrNoSession = errors.New("no active session")

// Store is the pluggable persistence behind the identity state. Reads are
// synchronous; the only failure mode besides backend errors is ErrNoSession.
type Store interface {
	Put(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	// Delete clears the whole session, the logout semantics.
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process memory. Default backend; also the
// one the tests use.
type MemoryStore struct {
	ttl      time.Duration
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
}

func (m *MemoryStore) Put(ctx context.Context, s *Session) error {
	if s.ExpiresAt.IsZero() {
		s.ExpiresAt = time.Now().Add(m.ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNoSession
	}
	if s.Expired(time.Now()) {
		m.mu.Lock()
		delete(m.sessions, id)
		m.mu.Unlock()
		return nil, ErrNoSession
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
