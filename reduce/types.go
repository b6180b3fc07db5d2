package reduce

// Kind names one of the reduction rules Reduce can apply.
type Kind int

const (
	// KindIsolatedClique removes a vertex whose closed neighborhood is a
	// clique: that vertex belongs to some maximum independent set.
	KindIsolatedClique Kind = iota
	// KindTwin handles two non-adjacent, degree-3 vertices sharing the
	// same 3-vertex neighborhood {a, b, c}: if any two of a, b, c are
	// adjacent both twins belong to some maximum independent set and the
	// whole neighborhood is dropped; otherwise a, b, c are themselves
	// independent and are folded into one merged vertex standing in for
	// "exclude the twins, include a, b, c".
	KindTwin
	// KindNodalFold collapses a degree-2 vertex and its two non-adjacent
	// neighbors into a single vertex standing in for "exclude the
	// degree-2 vertex, include both its neighbors".
	KindNodalFold
)

// step records one applied reduction, enough information to undo it once
// the reduced graph's independent set is known.
type step struct {
	kind Kind

	// isolated-clique, twin (adjacent-neighborhood branch): vertices
	// unconditionally added to the lifted independent set.
	include []int

	// nodal-fold: v is excluded whenever merged ends up selected (in
	// which case a and b are included instead); when merged is not
	// selected, v is included instead.
	merged  int
	v, a, b int

	// twin (independent-neighborhood branch): uw (the twin pair) is
	// included whenever merged ends up excluded from the reduced
	// solution; when merged is selected, abc (all three original
	// neighbors, since they are pairwise non-adjacent) is included
	// instead.
	uw, abc []int
}

// Result holds the sequence of reductions Reduce applied, in application
// order, so Lift can undo them in reverse.
type Result struct {
	steps []step
}

// Lift turns mis, an independent set of the fully-reduced graph, back
// into an independent set of the original graph by undoing each applied
// reduction in reverse order.
func (r *Result) Lift(mis []int) []int {
	present := make(map[int]bool, len(mis))
	for _, v := range mis {
		present[v] = true
	}

	for i := len(r.steps) - 1; i >= 0; i-- {
		s := r.steps[i]
		switch s.kind {
		case KindIsolatedClique:
			for _, v := range s.include {
				present[v] = true
			}
		case KindTwin:
			if s.include != nil {
				for _, v := range s.include {
					present[v] = true
				}
				continue
			}
			if present[s.merged] {
				delete(present, s.merged)
				for _, v := range s.abc {
					present[v] = true
				}
			} else {
				for _, v := range s.uw {
					present[v] = true
				}
			}
		case KindNodalFold:
			if present[s.merged] {
				delete(present, s.merged)
				present[s.a] = true
				present[s.b] = true
			} else {
				present[s.v] = true
			}
		}
	}

	out := make([]int, 0, len(present))
	for v := range present {
		out = append(out, v)
	}
	return out
}
