// Package view holds the table currently shown to clients and decides
// which load result is allowed to replace it.
package view

import (
	"slices"
	"sync"
	"time"

	"github.com/vrsandeep/mango-marks/internal/models"
)

// State is a published table. It is never mutated once published.
type State struct {
	Token     uint64               `json:"token"`
	Source    string               `json:"source"`
	Items     []models.DisplayItem `json:"items"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// Store sequences concurrent loads. Every load takes a token from Begin;
// its result is applied only if no later load has been applied already.
type Store struct {
	mu      sync.RWMutex
	issued  uint64
	applied uint64
	pending map[uint64]struct{}
	state   State
}

func NewStore() *Store {
	return &Store{
		pending: make(map[uint64]struct{}),
		state:   State{Items: []models.DisplayItem{}},
	}
}

// Begin issues the next token and marks its load as in flight.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	s.pending[s.issued] = struct{}{}
	return s.issued
}

// Apply publishes items as the current state when token is newer than the
// last applied one. It reports whether the state was replaced.
func (s *Store) Apply(token uint64, source string, items []models.DisplayItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, token)
	if token <= s.applied || token > s.issued {
		return false
	}
	if items == nil {
		items = []models.DisplayItem{}
	}
	s.applied = token
	s.state = State{
		Token:     token,
		Source:    source,
		Items:     slices.Clone(items),
		UpdatedAt: time.Now(),
	}
	return true
}

// Discard releases a token whose load produced nothing.
func (s *Store) Discard(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, token)
}

// Current returns the last published state.
func (s *Store) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Pending returns the number of loads still in flight.
func (s *Store) Pending() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}

// Loading reports whether a load newer than the current state is running.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for token := range s.pending {
		if token > s.applied {
			return true
		}
	}
	return false
}
