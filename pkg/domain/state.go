package domain

import (
	"encoding/json"
	"fmt"
)

// Vessels is the number of vessels in the puzzle.
const Vessels = 3

// State is an immutable snapshot of the water volume held by each vessel.
//
// The zero value is the canonical start state (all vessels empty). States are
// comparable, so they can be used directly as map keys; equality and ordering
// are structural (lexicographic by position).
type State struct {
	a, b, c int
}

// NewState builds a State from three volumes.
// It rejects negative volumes; the upper (capacity) bound is the caller's
// responsibility, since a State does not know which vessels it belongs to.
func NewState(a, b, c int) (State, error) {
	for _, v := range [Vessels]int{a, b, c} {
		if v < 0 {
			return State{}, fmt.Errorf("%w: %d", ErrNegativeVolume, v)
		}
	}
	return State{a: a, b: b, c: c}, nil
}

// MustState is like NewState but panics on invalid input.
// Intended for fixed literals in tests and presets.
func MustState(a, b, c int) State {
	s, err := NewState(a, b, c)
	if err != nil {
		panic(err)
	}
	return s
}

// At returns the volume held by vessel i (0-based).
func (s State) At(i int) int {
	switch i {
	case 0:
		return s.a
	case 1:
		return s.b
	case 2:
		return s.c
	}
	panic(fmt.Sprintf("domain: vessel index %d out of range", i))
}

// Volumes returns the three volumes as an array, in vessel order.
func (s State) Volumes() [Vessels]int {
	return [Vessels]int{s.a, s.b, s.c}
}

// Contains reports whether any vessel holds exactly v.
func (s State) Contains(v int) bool {
	return s.a == v || s.b == v || s.c == v
}

// Less orders states lexicographically by position.
func (s State) Less(other State) bool {
	if s.a != other.a {
		return s.a < other.a
	}
	if s.b != other.b {
		return s.b < other.b
	}
	return s.c < other.c
}

// String renders the state as "(a, b, c)".
func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.a, s.b, s.c)
}

// MarshalJSON encodes the state as a three-element array.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal([Vessels]int{s.a, s.b, s.c})
}

// UnmarshalJSON decodes a three-element array, validating the volumes.
func (s *State) UnmarshalJSON(data []byte) error {
	var vols [Vessels]int
	if err := json.Unmarshal(data, &vols); err != nil {
		return err
	}
	st, err := NewState(vols[0], vols[1], vols[2])
	if err != nil {
		return err
	}
	*s = st
	return nil
}
