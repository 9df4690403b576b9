package memory_test

import (
	"testing"

	"github.com/aretw0/decant/internal/adapters/memory"
	"github.com/aretw0/decant/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.New()
	ports.RunSolutionStoreContract(t, store)

	if store.Len() != 0 {
		t.Errorf("store should be empty after the contract run, has %d entries", store.Len())
	}
}
