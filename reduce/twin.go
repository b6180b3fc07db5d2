package reduce

import "sort"

// applyTwin scans for a non-adjacent pair u, w, both of degree 3, sharing
// the same 3-vertex neighborhood {a, b, c}. If any two of a, b, c are
// adjacent, some maximum independent set includes both u and w in place
// of anything drawn from {a, b, c}, so all five vertices are removed and
// u, w are included unconditionally. Otherwise {a, b, c} is itself
// independent, so it is folded into a single merged vertex: selecting
// the merged vertex in the reduced solution stands for "include a, b, c
// instead of u, w", and excluding it stands for "include u, w instead".
func applyTwin(view *AdjacencyView, result *Result) bool {
	vertices := view.AliveVertices()
	for i := 0; i < len(vertices); i++ {
		u := vertices[i]
		neighborsU := sortedCopy(view.Neighbors(u))
		if len(neighborsU) != 3 {
			continue
		}
		for j := i + 1; j < len(vertices); j++ {
			w := vertices[j]
			if view.Adjacent(u, w) {
				continue
			}
			neighborsW := sortedCopy(view.Neighbors(w))
			if len(neighborsW) != 3 || !equalInts(neighborsU, neighborsW) {
				continue
			}

			a, b, c := neighborsU[0], neighborsU[1], neighborsU[2]
			if view.Adjacent(a, b) || view.Adjacent(a, c) || view.Adjacent(b, c) {
				view.RemoveVertex(u)
				view.RemoveVertex(w)
				view.RemoveVertex(a)
				view.RemoveVertex(b)
				view.RemoveVertex(c)
				result.steps = append(result.steps, step{
					kind:    KindTwin,
					include: []int{u, w},
				})
				return true
			}

			merged := tripleMergedNeighborhood(view, u, w, a, b, c)
			view.RemoveVertex(u)
			view.RemoveVertex(w)
			view.RemoveVertex(a)
			view.RemoveVertex(b)
			view.RemoveVertex(c)
			newVertex := view.AddMergedVertex(merged)

			result.steps = append(result.steps, step{
				kind:   KindTwin,
				merged: newVertex,
				uw:     []int{u, w},
				abc:    []int{a, b, c},
			})
			return true
		}
	}
	return false
}

// tripleMergedNeighborhood returns the deduped union of a's, b's, and
// c's neighbors, excluding u, w, and the three themselves.
func tripleMergedNeighborhood(view *AdjacencyView, u, w, a, b, c int) []int {
	exclude := map[int]bool{u: true, w: true, a: true, b: true, c: true}
	seen := make(map[int]bool)
	var out []int
	for _, src := range []int{a, b, c} {
		for _, n := range view.Neighbors(src) {
			if exclude[n] || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

func sortedCopy(s []int) []int {
	out := append([]int(nil), s...)
	sort.Ints(out)
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
