package domain

import "fmt"

// MaxMoves is the most candidate states one state can expand to:
// up to 3 fills, 3 drains and 6 transfers.
const MaxMoves = 12

// MoveKind discriminates the three legal actions.
type MoveKind string

const (
	MoveFill     MoveKind = "fill"
	MoveDrain    MoveKind = "drain"
	MoveTransfer MoveKind = "transfer"
)

// Move describes the single action connecting two consecutive states.
type Move struct {
	Kind   MoveKind `json:"kind"`
	Src    int      `json:"src"`
	Dst    int      `json:"dst,omitempty"`
	Amount int      `json:"amount"`
}

// String renders the move as a short human sentence.
func (m Move) String() string {
	switch m.Kind {
	case MoveFill:
		return fmt.Sprintf("fill vessel %d from the tap (+%d)", m.Src+1, m.Amount)
	case MoveDrain:
		return fmt.Sprintf("drain vessel %d into the sink (-%d)", m.Src+1, m.Amount)
	case MoveTransfer:
		return fmt.Sprintf("pour %d from vessel %d into vessel %d", m.Amount, m.Src+1, m.Dst+1)
	}
	return "unknown move"
}

// NextStates enumerates every state reachable from s by exactly one legal
// action, in a fixed order: for each source vessel, fill, then drain, then
// transfer into each other vessel in index order.
//
// A fill is only offered when the source vessel is completely empty; this is
// a deliberate restriction of the legal-move set, and relaxing it would
// change which paths are shortest. Duplicates across categories are not
// removed here; deduplication belongs to the search via its visited set.
//
// The function is pure: same inputs, same slice contents, same order.
func NextStates(c Capacities, s State) []State {
	vols := s.Volumes()
	lims := c.Limits()

	out := make([]State, 0, MaxMoves)
	for src := 0; src < Vessels; src++ {
		if vols[src] == 0 {
			n := vols
			n[src] = lims[src]
			out = append(out, State{a: n[0], b: n[1], c: n[2]})
		}

		if vols[src] != 0 {
			n := vols
			n[src] = 0
			out = append(out, State{a: n[0], b: n[1], c: n[2]})
		}

		for dst := 0; dst < Vessels; dst++ {
			if dst == src || vols[dst] >= lims[dst] || vols[src] == 0 {
				continue
			}
			moved := min(vols[src], lims[dst]-vols[dst])
			n := vols
			n[src] -= moved
			n[dst] += moved
			out = append(out, State{a: n[0], b: n[1], c: n[2]})
		}
	}
	return out
}

// Classify identifies the single action turning from into to.
// It returns false when the pair is not connected by one legal move under c.
func Classify(c Capacities, from, to State) (Move, bool) {
	fv, tv := from.Volumes(), to.Volumes()
	lims := c.Limits()

	var changed []int
	for i := 0; i < Vessels; i++ {
		if fv[i] != tv[i] {
			changed = append(changed, i)
		}
	}

	switch len(changed) {
	case 1:
		i := changed[0]
		if fv[i] == 0 && tv[i] == lims[i] {
			return Move{Kind: MoveFill, Src: i, Amount: lims[i]}, true
		}
		if fv[i] > 0 && tv[i] == 0 {
			return Move{Kind: MoveDrain, Src: i, Amount: fv[i]}, true
		}
	case 2:
		src, dst := changed[0], changed[1]
		if fv[src] < tv[src] {
			src, dst = dst, src
		}
		moved := fv[src] - tv[src]
		if moved != tv[dst]-fv[dst] || moved <= 0 {
			return Move{}, false
		}
		// A transfer stops when the source empties or the destination fills.
		if tv[src] != 0 && tv[dst] != lims[dst] {
			return Move{}, false
		}
		return Move{Kind: MoveTransfer, Src: src, Dst: dst, Amount: moved}, true
	}
	return Move{}, false
}
