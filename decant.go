package decant

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/decant/internal/logging"
	"github.com/aretw0/decant/internal/search"
	"github.com/aretw0/decant/pkg/domain"
	"github.com/aretw0/decant/pkg/observability"
	"github.com/aretw0/decant/pkg/ports"
)

// Version is the release version of decant.
var Version = "0.4.0"

// Service is the high-level entry point for the decant library.
// It wraps the internal search engine and adds the optional side concerns:
// a solution cache, metrics and logging.
//
// Unlike a single search engine, a Service is safe for concurrent use: each
// Solve call runs on its own fresh engine.
type Service struct {
	store   ports.SolutionStore
	metrics *observability.Metrics
	hooks   domain.SearchHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Service.
type Option func(*Service)

// WithStore attaches a solution cache consulted before and fed after each solve.
func WithStore(store ports.SolutionStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithMetrics attaches Prometheus collectors fed by every solve.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithSearchHooks registers caller-supplied search observability hooks.
func WithSearchHooks(h domain.SearchHooks) Option {
	return func(s *Service) {
		s.hooks = h
	}
}

// WithLogger sets the service logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a solver service.
func NewService(opts ...Option) *Service {
	s := &Service{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve finds a shortest move sequence measuring exactly target units under
// the given capacities. It returns the solution and true, or nil and false
// when no solution exists. Cache failures are logged and ignored; the search
// itself is always authoritative.
func (s *Service) Solve(ctx context.Context, caps domain.Capacities, target int) (*domain.Solution, bool, error) {
	if s.store != nil {
		if sol, ok, err := s.store.Get(ctx, caps, target); err != nil {
			s.logger.Warn("solution cache read failed", "error", err)
		} else if ok {
			s.logger.Debug("solution cache hit", "capacities", caps, "target", target)
			return sol, true, nil
		}
	}

	hooks := s.hooks
	if s.metrics != nil {
		hooks = hooks.Merge(s.metrics.Hooks())
	}

	engine := search.NewEngine(caps, search.WithHooks(hooks), search.WithLogger(s.logger))

	begin := time.Now()
	sol, found, err := engine.Solve(ctx, target)
	if s.metrics != nil {
		s.metrics.ObserveDuration(time.Since(begin))
	}
	if err != nil || !found {
		return nil, false, err
	}

	if s.store != nil {
		if err := s.store.Put(ctx, sol); err != nil {
			s.logger.Warn("solution cache write failed", "error", err)
		}
	}
	return sol, true, nil
}

// Feasible reports the divisibility pre-check for the given puzzle.
// It is an informational hint only; Solve does not depend on it.
func (s *Service) Feasible(caps domain.Capacities, target int) bool {
	return caps.Feasible(target)
}
