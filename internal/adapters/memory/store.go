// Package memory provides an in-process SolutionStore, the default cache
// when no Redis backend is configured. Also handy in tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/decant/pkg/domain"
	"github.com/aretw0/decant/pkg/ports"
)

type key struct {
	caps   domain.Capacities
	target int
}

// Store is a map-backed SolutionStore, safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	solutions map[key]*domain.Solution
}

var _ ports.SolutionStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		solutions: make(map[key]*domain.Solution),
	}
}

// Put records a solved puzzle.
func (s *Store) Put(_ context.Context, sol *domain.Solution) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.solutions[key{caps: sol.Capacities, target: sol.Target}] = sol
	return nil
}

// Get retrieves a cached solution.
func (s *Store) Get(_ context.Context, caps domain.Capacities, target int) (*domain.Solution, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sol, ok := s.solutions[key{caps: caps, target: target}]
	return sol, ok, nil
}

// Delete evicts a cached solution.
func (s *Store) Delete(_ context.Context, caps domain.Capacities, target int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.solutions, key{caps: caps, target: target})
	return nil
}

// Len returns the number of cached solutions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.solutions)
}
