package decant_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/decant"
	"github.com/aretw0/decant/internal/adapters/memory"
	"github.com/aretw0/decant/pkg/domain"
	"github.com/aretw0/decant/pkg/observability"
)

func TestService_Solve(t *testing.T) {
	svc := decant.NewService()
	caps := domain.MustCapacities(3, 5, 8)

	sol, found, err := svc.Solve(context.Background(), caps, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.NoError(t, sol.Verify())
}

func TestService_ConcurrentSolves(t *testing.T) {
	// Each Solve runs on its own engine, so one Service may serve
	// overlapping calls.
	svc := decant.NewService()
	caps := domain.MustCapacities(3, 5, 8)

	done := make(chan error, 4)
	for target := 1; target <= 4; target++ {
		go func(target int) {
			sol, found, err := svc.Solve(context.Background(), caps, target)
			if err == nil && found {
				err = sol.Verify()
			}
			done <- err
		}(target)
	}
	for i := 0; i < 4; i++ {
		assert.NoError(t, <-done)
	}
}

func TestService_CachesSolutions(t *testing.T) {
	store := memory.New()
	svc := decant.NewService(decant.WithStore(store))
	caps := domain.MustCapacities(3, 5, 8)

	first, found, err := svc.Solve(context.Background(), caps, 4)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, store.Len(), "a found solution must be cached")

	cached, ok, err := store.Get(context.Background(), caps, 4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.Path, cached.Path)

	// A failed search caches nothing.
	_, found, err = svc.Solve(context.Background(), domain.MustCapacities(2, 4, 6), 5)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 1, store.Len())
}

func TestService_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)
	svc := decant.NewService(decant.WithMetrics(metrics))

	_, found, err := svc.Solve(context.Background(), domain.MustCapacities(3, 5, 8), 4)
	require.NoError(t, err)
	require.True(t, found)

	_, found, err = svc.Solve(context.Background(), domain.MustCapacities(2, 4, 6), 5)
	require.NoError(t, err)
	require.False(t, found)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Searches.WithLabelValues("solved")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.Searches.WithLabelValues("exhausted")))
	assert.Greater(t, testutil.ToFloat64(metrics.StatesVisited), float64(0))
}

func TestService_Feasible(t *testing.T) {
	svc := decant.NewService()

	assert.True(t, svc.Feasible(domain.MustCapacities(3, 5, 8), 4))
	assert.False(t, svc.Feasible(domain.MustCapacities(2, 4, 6), 5))
}
