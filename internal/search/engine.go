// Package search implements the breadth-first exhaustive traversal of the
// vessel state space.
//
// The engine owns two structures for the duration of one solve: a visited
// set deduplicating discovered states, and an append-only history arena
// whose entries point back at the index of the entry that discovered them.
// Paths are reconstructed by index-chasing through the arena, so no
// predecessor map or pointer graph is needed.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/decant/internal/logging"
	"github.com/aretw0/decant/pkg/domain"
)

// sentinel marks the root of the history chain (the start state has no parent).
const sentinel = -1

// step pairs a discovered state with the history index it was reached from.
type step struct {
	state domain.State
	prev  int
}

// Engine runs breadth-first searches over one fixed set of capacities.
//
// An Engine may be reused for sequential solves; it clears and rebuilds its
// visited set and history at the start of each call to keep allocations
// down. It is NOT safe for concurrent use: overlapping solves on one
// instance would race on both structures.
type Engine struct {
	caps   domain.Capacities
	hooks  domain.SearchHooks
	logger *slog.Logger

	visited map[domain.State]struct{}
	history []step
}

// Option configures an Engine.
type Option func(*Engine)

// WithHooks registers search observability callbacks.
func WithHooks(h domain.SearchHooks) Option {
	return func(e *Engine) {
		e.hooks = h
	}
}

// WithLogger sets the engine logger. Defaults to a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an engine bound to the given capacities.
func NewEngine(caps domain.Capacities, opts ...Option) *Engine {
	e := &Engine{
		caps:   caps,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Capacities returns the vessel limits this engine searches under.
func (e *Engine) Capacities() domain.Capacities {
	return e.caps
}

// Solve searches for a shortest move sequence that leaves exactly target
// units in some vessel, starting from all vessels empty.
//
// It returns the solution and true on success, or nil and false when the
// reachable space is exhausted without a hit; "no solution" is a normal
// outcome, not an error. Errors are reserved for an invalid target and for
// context cancellation, which is checked once per BFS layer.
func (e *Engine) Solve(ctx context.Context, target int) (*domain.Solution, bool, error) {
	if target < 0 {
		return nil, false, fmt.Errorf("%w: %d", domain.ErrNegativeTarget, target)
	}

	start := domain.State{}
	if target == 0 {
		// All vessels already hold 0; the start state is the whole path.
		return &domain.Solution{
			Capacities: e.caps,
			Target:     target,
			Path:       []domain.State{start},
		}, true, nil
	}

	e.reset()

	// Pre-mark the trivial loop targets: draining everything back to the
	// start, and filling every vessel to the brim. Both stay valid as move
	// sources but are never treated as newly discovered.
	e.visited[start] = struct{}{}
	e.visited[e.caps.Full()] = struct{}{}

	e.history = append(e.history, step{state: start, prev: sentinel})

	steps := 0
	oldPtr := 0
	for oldPtr != len(e.history) {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		steps++
		nextPtr := len(e.history)
		if e.hooks.OnLayer != nil {
			e.hooks.OnLayer(steps, nextPtr-oldPtr)
		}

		for ptr := oldPtr; ptr < nextPtr; ptr++ {
			for _, cand := range domain.NextStates(e.caps, e.history[ptr].state) {
				if _, seen := e.visited[cand]; seen {
					continue
				}
				e.visited[cand] = struct{}{}
				e.history = append(e.history, step{state: cand, prev: ptr})

				if cand.Contains(target) {
					sol := e.reconstruct(target, steps)
					if e.hooks.OnSolved != nil {
						e.hooks.OnSolved(steps, len(e.history))
					}
					e.logger.Debug("target found",
						"target", target, "steps", steps, "discovered", len(e.history))
					return sol, true, nil
				}
			}
		}

		oldPtr = nextPtr
	}

	if e.hooks.OnExhausted != nil {
		e.hooks.OnExhausted(len(e.history))
	}
	e.logger.Debug("state space exhausted",
		"target", target, "discovered", len(e.history), "bound", e.caps.SpaceSize())
	return nil, false, nil
}

// reset clears the visited set and history so the engine can be reused
// across sequential solves without fresh allocations.
func (e *Engine) reset() {
	if e.visited == nil {
		e.visited = make(map[domain.State]struct{})
	} else {
		clear(e.visited)
	}
	e.history = e.history[:0]
}

// reconstruct walks backward from the last appended history entry (the goal)
// exactly steps hops to the root, building the start-to-goal path.
//
// The walk must land on the sentinel parent precisely when the path position
// reaches zero. Anything else means the history or visited set was corrupted
// mid-search; that is a defect in the engine, so it panics rather than
// return a silently wrong answer.
func (e *Engine) reconstruct(target, steps int) *domain.Solution {
	path := make([]domain.State, steps+1)
	idx := len(e.history) - 1
	for pos := steps; pos >= 0; pos-- {
		if idx == sentinel {
			panic(fmt.Sprintf("search: history chain hit the root at position %d, want 0", pos))
		}
		path[pos] = e.history[idx].state
		idx = e.history[idx].prev
	}
	if idx != sentinel {
		panic(fmt.Sprintf("search: history chain did not terminate at the root (idx=%d)", idx))
	}

	return &domain.Solution{
		Capacities: e.caps,
		Target:     target,
		Path:       path,
	}
}
