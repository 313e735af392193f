// Package session keeps one conversation memory per session id.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"finance-assistant/internal/memory"
)

const DefaultMaxSessions = 1024

type entry struct {
	mu  sync.Mutex
	mem *memory.Memory
}

// Store is a bounded set of conversations. The least recently used session
// is dropped once MaxSessions is exceeded; a dropped id starts over with an
// empty memory.
type Store struct {
	mu             sync.Mutex
	sessions       *lru.Cache[string, *entry]
	memoryCapacity int
	logger         *slog.Logger
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStore(maxSessions, memoryCapacity int, opts ...Option) (*Store, error) {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	s := &Store{memoryCapacity: memoryCapacity, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	cache, err := lru.NewWithEvict(maxSessions, func(id string, _ *entry) {
		s.logger.Debug("session evicted", "session_id", id)
	})
	if err != nil {
		return nil, err
	}
	s.sessions = cache
	return s, nil
}

// Do runs fn with exclusive access to the session's memory, creating the
// session on first use. Calls for the same id are serialized; calls for
// different ids run concurrently.
func (s *Store) Do(ctx context.Context, id string, fn func(*memory.Memory) error) error {
	if id == "" {
		return errors.New("session: id must not be empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	e := s.entry(id)
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.mem)
}

func (s *Store) entry(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.sessions.Get(id); ok {
		return e
	}
	e := &entry{mem: memory.New(s.memoryCapacity)}
	s.sessions.Add(id, e)
	return e
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
