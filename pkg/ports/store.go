package ports

import (
	"context"

	"github.com/aretw0/decant/pkg/domain"
)

// SolutionStore caches finished solve results keyed by capacities and target.
// Only positive results are stored; a cache miss simply means the search runs.
type SolutionStore interface {
	// Put records a solved puzzle.
	Put(ctx context.Context, sol *domain.Solution) error

	// Get retrieves a cached solution, reporting whether one was found.
	Get(ctx context.Context, caps domain.Capacities, target int) (*domain.Solution, bool, error)

	// Delete evicts a cached solution. Evicting a missing entry is not an error.
	Delete(ctx context.Context, caps domain.Capacities, target int) error
}
