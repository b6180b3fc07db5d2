package reduce

// applyIsolatedClique scans for a vertex whose closed neighborhood (itself
// plus its neighbors) forms a clique, and if found, includes it in the
// independent set and removes it and its neighbors. Returns whether a
// reduction was applied.
func applyIsolatedClique(view *AdjacencyView, result *Result) bool {
	for _, v := range view.AliveVertices() {
		neighbors := view.Neighbors(v)
		if !isClique(view, neighbors) {
			continue
		}

		view.RemoveVertex(v)
		for _, w := range neighbors {
			view.RemoveVertex(w)
		}
		result.steps = append(result.steps, step{
			kind:    KindIsolatedClique,
			include: []int{v},
		})
		return true
	}
	return false
}

// isClique reports whether every pair in vs is mutually adjacent. The
// empty and singleton cases are vacuously true, which is what makes an
// isolated vertex (degree 0) the base case of this rule.
func isClique(view *AdjacencyView, vs []int) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !view.Adjacent(vs[i], vs[j]) {
				return false
			}
		}
	}
	return true
}
