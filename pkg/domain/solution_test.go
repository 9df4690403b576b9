package domain

import (
	"strings"
	"testing"
)

func validSolution() *Solution {
	return &Solution{
		Capacities: MustCapacities(3, 5, 8),
		Target:     3,
		Path: []State{
			MustState(0, 0, 0),
			MustState(3, 0, 0),
		},
	}
}

func TestSolution_Steps(t *testing.T) {
	sol := validSolution()
	if sol.Steps() != 1 {
		t.Errorf("Steps = %d, want 1", sol.Steps())
	}
	if sol.Goal() != MustState(3, 0, 0) {
		t.Errorf("Goal = %v", sol.Goal())
	}
}

func TestSolution_Moves(t *testing.T) {
	sol := &Solution{
		Capacities: MustCapacities(3, 5, 8),
		Target:     4,
		Path: []State{
			MustState(0, 0, 0),
			MustState(0, 5, 0),
			MustState(0, 0, 5),
			MustState(0, 5, 5),
			MustState(0, 2, 8),
		},
	}

	moves, err := sol.Moves()
	if err != nil {
		t.Fatalf("Moves failed: %v", err)
	}
	if len(moves) != 4 {
		t.Fatalf("got %d moves, want 4", len(moves))
	}
	if moves[0].Kind != MoveFill || moves[1].Kind != MoveTransfer {
		t.Errorf("unexpected move kinds: %+v", moves)
	}
	if !strings.Contains(moves[1].String(), "pour") {
		t.Errorf("transfer description = %q", moves[1])
	}
}

func TestSolution_Verify(t *testing.T) {
	t.Run("valid path", func(t *testing.T) {
		if err := validSolution().Verify(); err != nil {
			t.Errorf("Verify failed: %v", err)
		}
	})

	t.Run("wrong start", func(t *testing.T) {
		sol := validSolution()
		sol.Path[0] = MustState(1, 0, 0)
		if err := sol.Verify(); err == nil {
			t.Error("Verify should reject a path not starting at all-empty")
		}
	})

	t.Run("disconnected pair", func(t *testing.T) {
		sol := validSolution()
		sol.Path = append(sol.Path, MustState(1, 1, 1))
		if err := sol.Verify(); err == nil {
			t.Error("Verify should reject a path with an illegal consecutive pair")
		}
	})

	t.Run("goal without target", func(t *testing.T) {
		sol := validSolution()
		sol.Target = 4
		if err := sol.Verify(); err == nil {
			t.Error("Verify should reject a goal missing the target volume")
		}
	})
}
