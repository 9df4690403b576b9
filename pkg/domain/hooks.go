package domain

// SearchHooks are optional callbacks the search engine invokes synchronously
// while it runs. The zero value is inert; any field may be nil.
type SearchHooks struct {
	// OnLayer fires when a BFS layer starts expanding, with the layer depth
	// (1-based) and the number of frontier states in it.
	OnLayer func(depth, frontier int)

	// OnSolved fires once when the target is found, with the step count and
	// the total number of states discovered.
	OnSolved func(steps, discovered int)

	// OnExhausted fires once when the reachable space is spent without a hit.
	OnExhausted func(discovered int)
}

// Merge combines two hook sets so both sides observe every event.
func (h SearchHooks) Merge(other SearchHooks) SearchHooks {
	return SearchHooks{
		OnLayer:     mergeFn2(h.OnLayer, other.OnLayer),
		OnSolved:    mergeFn2(h.OnSolved, other.OnSolved),
		OnExhausted: mergeFn1(h.OnExhausted, other.OnExhausted),
	}
}

func mergeFn1(a, b func(int)) func(int) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(x int) { a(x); b(x) }
}

func mergeFn2(a, b func(int, int)) func(int, int) {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return func(x, y int) { a(x, y); b(x, y) }
}
