package domain

import "fmt"

// Solution is one shortest path of states from all-empty to a state in which
// some vessel holds exactly Target.
type Solution struct {
	Capacities Capacities `json:"capacities"`
	Target     int        `json:"target"`
	Path       []State    `json:"path"`
}

// Steps returns the number of moves in the solution (one per consecutive
// state pair). A target of zero is satisfied by the start state alone,
// giving a path of length one and zero steps.
func (s *Solution) Steps() int {
	return len(s.Path) - 1
}

// Goal returns the final state of the path.
func (s *Solution) Goal() State {
	return s.Path[len(s.Path)-1]
}

// Moves classifies each consecutive state pair of the path.
// It fails if any pair is not connected by a single legal action, which
// would mean the path was not produced by a correct search.
func (s *Solution) Moves() ([]Move, error) {
	moves := make([]Move, 0, s.Steps())
	for i := 1; i < len(s.Path); i++ {
		m, ok := Classify(s.Capacities, s.Path[i-1], s.Path[i])
		if !ok {
			return nil, fmt.Errorf("no legal move connects %v to %v", s.Path[i-1], s.Path[i])
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Verify checks the structural invariants of the solution: the path starts
// at the all-empty state, every state respects the vessel limits, every
// consecutive pair is one legal move apart, and the goal contains the target.
func (s *Solution) Verify() error {
	if len(s.Path) == 0 {
		return fmt.Errorf("empty solution path")
	}
	if s.Path[0] != (State{}) {
		return fmt.Errorf("path starts at %v, want all-empty", s.Path[0])
	}
	for i, st := range s.Path {
		if !s.Capacities.Fits(st) {
			return fmt.Errorf("state %v at step %d exceeds capacities %v", st, i, s.Capacities)
		}
	}
	if _, err := s.Moves(); err != nil {
		return err
	}
	if !s.Goal().Contains(s.Target) {
		return fmt.Errorf("goal %v does not contain target %d", s.Goal(), s.Target)
	}
	return nil
}
