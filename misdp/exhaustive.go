package misdp

// Exhaustive brute-forces a maximum independent set of the graph
// described by adj (an n x n adjacency matrix), by enumerating every
// subset of {0, ..., n-1} and keeping the largest independent one.
//
// Subsets are enumerated in canonical order: starting from the empty
// set, each step doubles the current list of subsets by cloning it and
// adding the next vertex to every clone. This fixes the order in which
// ties are encountered, which in turn fixes which of several
// maximum-size independent sets is returned.
func Exhaustive(adj [][]bool) []int {
	n := len(adj)
	subsets := [][]int{{}}
	for v := 0; v < n; v++ {
		next := make([][]int, 0, len(subsets)*2)
		next = append(next, subsets...)
		for _, s := range subsets {
			extended := make([]int, len(s), len(s)+1)
			copy(extended, s)
			extended = append(extended, v)
			next = append(next, extended)
		}
		subsets = next
	}

	var best []int
	for _, s := range subsets {
		if !isIndependent(adj, s) {
			continue
		}
		if len(s) > len(best) {
			best = s
		}
	}

	return best
}

func isIndependent(adj [][]bool, s []int) bool {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if adj[s[i]][s[j]] {
				return false
			}
		}
	}
	return true
}
