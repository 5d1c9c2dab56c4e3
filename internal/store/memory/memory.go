package memory

import (
	"fmt"
	"sync"

	"sakura/internal/core"
)

// Store is an ordered, session-lifetime entry container. It never persists.
type Store[E core.Entry] struct {
	mu    sync.Mutex
	items []E
}

func New[E core.Entry](seed ...E) *Store[E] {
	s := &Store[E]{}
	s.items = append(s.items, seed...)
	return s
}

// Append stores the entry at the end of the sequence.
func (s *Store[E]) Append(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(e.EntryID()) >= 0 {
		return fmt.Errorf("duplicate entry id %q", e.EntryID())
	}
	s.items = append(s.items, e)
	return nil
}

// Prepend stores the entry at the front of the sequence.
func (s *Store[E]) Prepend(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexOf(e.EntryID()) >= 0 {
		return fmt.Errorf("duplicate entry id %q", e.EntryID())
	}
	items := make([]E, 0, len(s.items)+1)
	items = append(items, e)
	s.items = append(items, s.items...)
	return nil
}

func (s *Store[E]) Delete(id core.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	// Copy so previously returned snapshots stay intact.
	items := make([]E, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	s.items = append(items, s.items[i+1:]...)
	return true
}

// List returns a copy of the entries in order.
func (s *Store[E]) List() []E {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]E(nil), s.items...)
}

func (s *Store[E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store[E]) indexOf(id core.ID) int {
	for i, e := range s.items {
		if e.EntryID() == id {
			return i
		}
	}
	return -1
}
