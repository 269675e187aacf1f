package memstore

import (
	"context"
	"sync"
)

// Store owns the process-wide State behind a single RWMutex.
// Writers get a private clone that replaces the live state only on success.
type Store struct {
	mu    sync.RWMutex
	state *State
}

func New() *Store {
	return &Store{state: NewState()}
}

// Update runs fn against a clone of the state while holding the write lock.
// The clone is published only when fn returns nil.
func (s *Store) Update(ctx context.Context, fn func(st *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	s.state = draft
	return nil
}

// View runs fn against the live state under the read lock. fn must not mutate st.
func (s *Store) View(ctx context.Context, fn func(st *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}
