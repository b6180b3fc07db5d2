package reduce

// applyNodalFold scans for a degree-2 vertex v whose two neighbors a, b
// are not adjacent to each other. Any maximum independent set either
// includes v (and excludes a, b) or excludes v (and can safely include
// both a and b instead, since they dominate v), so v, a, and b are
// replaced by a single merged vertex connected to (N(a) ∪ N(b)) \ {v}.
func applyNodalFold(view *AdjacencyView, result *Result) bool {
	for _, v := range view.AliveVertices() {
		neighbors := view.Neighbors(v)
		if len(neighbors) != 2 {
			continue
		}
		a, b := neighbors[0], neighbors[1]
		if view.Adjacent(a, b) {
			continue
		}

		merged := mergedNeighborhood(view, v, a, b)
		view.RemoveVertex(v)
		view.RemoveVertex(a)
		view.RemoveVertex(b)
		newVertex := view.AddMergedVertex(merged)

		result.steps = append(result.steps, step{
			kind:   KindNodalFold,
			merged: newVertex,
			v:      v,
			a:      a,
			b:      b,
		})
		return true
	}
	return false
}

// mergedNeighborhood returns the deduped union of a's and b's neighbors,
// excluding v itself.
func mergedNeighborhood(view *AdjacencyView, v, a, b int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, n := range append(append([]int{}, view.Neighbors(a)...), view.Neighbors(b)...) {
		if n == v || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
