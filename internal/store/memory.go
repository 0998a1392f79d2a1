// internal/store/memory.go
//
// In-memory store for solver sessions held across HTTP requests.
//
// Characteristics:
//   - Stores *session.Session keyed by a server-assigned ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts, which is fine for an
//     interactive solving aid.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/wordlebot/internal/session"
)

// ErrNotFound reports a missing session ID.
var ErrNotFound = errors.New("store: session not found")

// Store defines the persistence interface for solver sessions.
type Store interface {
	// Save persists or updates a session under id.
	Save(ctx context.Context, id string, s *session.Session) error

	// Get retrieves a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*session.Session, error)
}

// memory is a map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*session.Session)}
}

func (m *memory) Save(ctx context.Context, id string, s *session.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = s
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
