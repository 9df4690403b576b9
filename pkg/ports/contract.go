package ports

import (
	"context"
	"testing"

	"github.com/aretw0/decant/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSolutionStoreContract runs a suite of tests verifying that a
// SolutionStore implementation adheres to the interface contract.
// Adapter test packages call this against their concrete store.
func RunSolutionStoreContract(t *testing.T, store SolutionStore) {
	ctx := context.Background()
	caps := domain.MustCapacities(3, 5, 8)
	sol := &domain.Solution{
		Capacities: caps,
		Target:     3,
		Path: []domain.State{
			domain.MustState(0, 0, 0),
			domain.MustState(3, 0, 0),
		},
	}

	t.Run("Put and Get", func(t *testing.T) {
		err := store.Put(ctx, sol)
		require.NoError(t, err, "Put should not return error")

		loaded, ok, err := store.Get(ctx, caps, 3)
		require.NoError(t, err, "Get should not return error")
		require.True(t, ok, "Get should find the stored solution")
		assert.Equal(t, sol.Capacities, loaded.Capacities)
		assert.Equal(t, sol.Target, loaded.Target)
		assert.Equal(t, sol.Path, loaded.Path)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, ok, err := store.Get(ctx, caps, 7)
		require.NoError(t, err)
		assert.False(t, ok, "Get should miss for a target never stored")
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, sol))
		require.NoError(t, store.Delete(ctx, caps, 3))

		_, ok, err := store.Get(ctx, caps, 3)
		require.NoError(t, err)
		assert.False(t, ok, "Get should miss after Delete")

		assert.NoError(t, store.Delete(ctx, caps, 3), "Delete should be idempotent")
	})
}
