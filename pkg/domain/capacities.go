package domain

import (
	"encoding/json"
	"fmt"
)

// Capacities is the fixed upper bound of each vessel, set once per puzzle.
type Capacities struct {
	a, b, c int
}

// NewCapacities builds a Capacities value, rejecting non-positive limits.
func NewCapacities(a, b, c int) (Capacities, error) {
	for _, v := range [Vessels]int{a, b, c} {
		if v <= 0 {
			return Capacities{}, fmt.Errorf("%w: %d", ErrNonPositiveCapacity, v)
		}
	}
	return Capacities{a: a, b: b, c: c}, nil
}

// MustCapacities is like NewCapacities but panics on invalid input.
func MustCapacities(a, b, c int) Capacities {
	caps, err := NewCapacities(a, b, c)
	if err != nil {
		panic(err)
	}
	return caps
}

// At returns the capacity of vessel i (0-based).
func (c Capacities) At(i int) int {
	switch i {
	case 0:
		return c.a
	case 1:
		return c.b
	case 2:
		return c.c
	}
	panic(fmt.Sprintf("domain: vessel index %d out of range", i))
}

// Limits returns the three capacities as an array, in vessel order.
func (c Capacities) Limits() [Vessels]int {
	return [Vessels]int{c.a, c.b, c.c}
}

// Full returns the state in which every vessel is filled to its limit.
func (c Capacities) Full() State {
	return State{a: c.a, b: c.b, c: c.c}
}

// Fits reports whether s respects every vessel limit.
func (c Capacities) Fits(s State) bool {
	return s.a <= c.a && s.b <= c.b && s.c <= c.c
}

// GCD returns the greatest common divisor of the three capacities.
func (c Capacities) GCD() int {
	return gcd(gcd(c.a, c.b), c.c)
}

// Feasible is a cheap divisibility pre-check for solvability: a target is
// measurable only if the capacity GCD divides it. It is an informational
// hint; the search does not depend on it for correctness.
func (c Capacities) Feasible(target int) bool {
	if target < 0 {
		return false
	}
	return target%c.GCD() == 0
}

// SpaceSize returns the number of distinct states the vessels can hold,
// the upper bound on the work an exhaustive search performs.
func (c Capacities) SpaceSize() int {
	return (c.a + 1) * (c.b + 1) * (c.c + 1)
}

// String renders the capacities as "[a, b, c]".
func (c Capacities) String() string {
	return fmt.Sprintf("[%d, %d, %d]", c.a, c.b, c.c)
}

// MarshalJSON encodes the capacities as a three-element array.
func (c Capacities) MarshalJSON() ([]byte, error) {
	return json.Marshal([Vessels]int{c.a, c.b, c.c})
}

// UnmarshalJSON decodes a three-element array, validating the limits.
func (c *Capacities) UnmarshalJSON(data []byte) error {
	var lims [Vessels]int
	if err := json.Unmarshal(data, &lims); err != nil {
		return err
	}
	caps, err := NewCapacities(lims[0], lims[1], lims[2])
	if err != nil {
		return err
	}
	*c = caps
	return nil
}

func gcd(x, y int) int {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}
