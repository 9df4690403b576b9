package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/decant/pkg/domain"
)

// refDepth is an independent layer-counting BFS used to cross-check step
// counts. It mirrors the engine's rules, including the pre-seeded visited
// states, but shares none of its code paths.
func refDepth(caps domain.Capacities, target int) (int, bool) {
	visited := map[domain.State]struct{}{
		{}:          {},
		caps.Full(): {},
	}
	frontier := []domain.State{{}}

	for depth := 1; len(frontier) > 0; depth++ {
		var next []domain.State
		for _, s := range frontier {
			for _, cand := range domain.NextStates(caps, s) {
				if _, seen := visited[cand]; seen {
					continue
				}
				visited[cand] = struct{}{}
				if cand.Contains(target) {
					return depth, true
				}
				next = append(next, cand)
			}
		}
		frontier = next
	}
	return 0, false
}

func TestEngine_TargetZero(t *testing.T) {
	engine := NewEngine(domain.MustCapacities(3, 5, 8))

	sol, found, err := engine.Solve(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, 0, sol.Steps(), "target 0 is satisfied before any move")
	assert.Equal(t, []domain.State{{}}, sol.Path)
}

func TestEngine_ClassicPuzzle(t *testing.T) {
	caps := domain.MustCapacities(3, 5, 8)
	engine := NewEngine(caps)

	sol, found, err := engine.Solve(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, found, "gcd(3,5,8)=1 divides 4, a solution must exist")

	assert.Equal(t, domain.State{}, sol.Path[0], "path must start all-empty")
	assert.True(t, sol.Goal().Contains(4), "goal must hold the target")
	assert.NoError(t, sol.Verify(), "every consecutive pair must be one legal move")

	wantDepth, ok := refDepth(caps, 4)
	require.True(t, ok)
	assert.Equal(t, wantDepth, sol.Steps(), "step count must be the BFS depth of the first hit")
}

func TestEngine_SingleStep(t *testing.T) {
	engine := NewEngine(domain.MustCapacities(1, 2, 3))

	sol, found, err := engine.Solve(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, 1, sol.Steps(), "filling the size-1 vessel solves it in one move")
}

func TestEngine_Exhausted(t *testing.T) {
	// gcd(2,4,6) = 2 does not divide 5: the search must exhaust the
	// reachable space (at most 105 states) and report failure.
	var discovered int
	engine := NewEngine(domain.MustCapacities(2, 4, 6), WithHooks(domain.SearchHooks{
		OnExhausted: func(n int) { discovered = n },
	}))

	sol, found, err := engine.Solve(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, found, "no solution exists for an indivisible target")
	assert.Nil(t, sol)
	assert.Greater(t, discovered, 0)
	assert.LessOrEqual(t, discovered, 105)
}

func TestEngine_SequentialReuse(t *testing.T) {
	caps := domain.MustCapacities(3, 5, 8)
	engine := NewEngine(caps)

	first, found, err := engine.Solve(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, found)

	// A second solve on the same engine must not leak visited/history state.
	second, found, err := engine.Solve(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, found)
	assert.NoError(t, second.Verify())
	assert.True(t, second.Goal().Contains(7))

	// And the first result again, identical to the initial run.
	again, found, err := engine.Solve(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, first.Path, again.Path, "identical inputs must reproduce the identical path")
}

func TestEngine_NegativeTarget(t *testing.T) {
	engine := NewEngine(domain.MustCapacities(3, 5, 8))

	_, _, err := engine.Solve(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrNegativeTarget)
}

func TestEngine_ContextCancellation(t *testing.T) {
	engine := NewEngine(domain.MustCapacities(3, 5, 8))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, found, err := engine.Solve(ctx, 4)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, found)
}

func TestEngine_HookLayers(t *testing.T) {
	var layers []int
	engine := NewEngine(domain.MustCapacities(3, 5, 8), WithHooks(domain.SearchHooks{
		OnLayer: func(depth, frontier int) {
			layers = append(layers, depth)
			assert.Greater(t, frontier, 0)
		},
	}))

	sol, found, err := engine.Solve(context.Background(), 4)
	require.NoError(t, err)
	require.True(t, found)

	require.NotEmpty(t, layers)
	assert.Equal(t, sol.Steps(), layers[len(layers)-1], "the hit layer is the step count")
	for i, d := range layers {
		assert.Equal(t, i+1, d, "layers must be announced in order")
	}
}
