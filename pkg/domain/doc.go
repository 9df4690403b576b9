/*
Package domain contains the core models of the three-vessel measuring puzzle.

It defines the value types the solver operates on and the rules of the game.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - State: the simultaneous integer content of the three vessels.
  - Capacities: the fixed upper bounds of the three vessels.
  - Move: one atomic fill, drain or transfer between two consecutive states.
  - Solution: an ordered path of states from all-empty to a goal state.
*/
package domain
