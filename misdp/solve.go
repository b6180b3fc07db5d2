package misdp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/planarmis/nicetd"
)

// NewTable allocates the Table backend requested by backend, sized for
// n's node count. BackendFast falls back to an error if any bag exceeds
// 63 vertices.
func NewTable(n *nicetd.Nice, backend Backend) (Table, error) {
	switch backend {
	case BackendFast:
		bags := make([][]int, len(n.Bags))
		for i, bag := range n.Bags {
			bags[i] = bag.Vertices
		}
		return NewFastTableForNice(bags)
	default:
		return NewNormalTable(len(n.Bags)), nil
	}
}

// Solve computes a maximum independent set of the graph described by adj
// (an n x n adjacency matrix over global vertex ids) using the nice tree
// decomposition n. It fills table via the leaf/introduce/forget/join
// recurrences bottom-up, then reconstructs one optimal vertex set by
// walking back down from the table entry with the largest size at the
// root bag.
func Solve(n *nicetd.Nice, adj [][]bool, table Table) ([]int, error) {
	if n.Root < 0 {
		return nil, nil
	}

	choices := make(map[int]map[string]bool)
	if err := compute(n, adj, table, choices, n.Root); err != nil {
		return nil, err
	}

	subsets := table.Subsets(n.Root)
	if len(subsets) == 0 {
		return nil, ErrNoMisFound
	}
	best := subsets[0]
	bestSize, _ := table.Get(n.Root, best)
	for _, s := range subsets[1:] {
		size, _ := table.Get(n.Root, s)
		if size.Size() > bestSize.Size() {
			best, bestSize = s, size
		}
	}

	return reconstruct(n, table, choices, n.Root, best)
}

func compute(n *nicetd.Nice, adj [][]bool, table Table, choices map[int]map[string]bool, id int) error {
	children := n.Children[id]
	for _, c := range children {
		if err := compute(n, adj, table, choices, c); err != nil {
			return err
		}
	}

	switch len(children) {
	case 0:
		computeLeaf(table, n.Bags[id].Vertices, id)
	case 1:
		computeOneChild(n, adj, table, choices, id, children[0])
	case 2:
		computeJoin(table, id, children[0], children[1])
	default:
		return fmt.Errorf("%w: node %d has %d children", ErrInvalidNode, id, len(children))
	}

	return nil
}

func computeLeaf(table Table, bag []int, id int) {
	table.Put(id, nil, Feasible(0))
	if len(bag) > 0 {
		table.Put(id, bag[:1], Feasible(1))
	}
}

func computeOneChild(n *nicetd.Nice, adj [][]bool, table Table, choices map[int]map[string]bool, id, child int) {
	bag := n.Bags[id].Vertices
	childBag := n.Bags[child].Vertices

	if len(bag) > len(childBag) {
		computeIntroduce(adj, table, id, child, onlyIn(bag, childBag))
		return
	}
	computeForget(table, choices, id, child, onlyIn(childBag, bag))
}

func computeIntroduce(adj [][]bool, table Table, id, child, v int) {
	for _, subset := range table.Subsets(child) {
		size, _ := table.Get(child, subset)
		table.Put(id, subset, size)

		if independentWith(adj, subset, v) {
			withV := insertSortedCopy(subset, v)
			table.Put(id, withV, Feasible(size.Size()+1))
		}
	}
}

func computeForget(table Table, choices map[int]map[string]bool, id, child, v int) {
	if choices[id] == nil {
		choices[id] = make(map[string]bool)
	}

	for _, subset := range table.Subsets(child) {
		size, _ := table.Get(child, subset)
		usedV := containsInt(subset, v)
		key := removeElemCopy(subset, v)
		keyStr := canonicalKey(key)

		existing, ok := table.Get(id, key)
		if !ok || size.Size() > existing.Size() {
			table.Put(id, key, size)
			choices[id][keyStr] = usedV
		}
	}
}

func computeJoin(table Table, id, left, right int) {
	for _, subset := range table.Subsets(left) {
		leftSize, _ := table.Get(left, subset)
		rightSize, ok := table.Get(right, subset)
		if !ok {
			continue
		}
		table.Put(id, subset, Feasible(leftSize.Size()+rightSize.Size()-len(subset)))
	}
}

func reconstruct(n *nicetd.Nice, table Table, choices map[int]map[string]bool, id int, subset []int) ([]int, error) {
	children := n.Children[id]

	switch len(children) {
	case 0:
		return append([]int(nil), subset...), nil
	case 1:
		child := children[0]
		bag := n.Bags[id].Vertices
		childBag := n.Bags[child].Vertices

		if len(bag) > len(childBag) {
			v := onlyIn(bag, childBag)
			if containsInt(subset, v) {
				rest, err := reconstruct(n, table, choices, child, removeElemCopy(subset, v))
				if err != nil {
					return nil, err
				}
				return insertSortedCopy(rest, v), nil
			}
			return reconstruct(n, table, choices, child, subset)
		}

		v := onlyIn(childBag, bag)
		childSubset := subset
		if choices[id][canonicalKey(subset)] {
			childSubset = insertSortedCopy(subset, v)
		}
		return reconstruct(n, table, choices, child, childSubset)
	case 2:
		left, err := reconstruct(n, table, choices, children[0], subset)
		if err != nil {
			return nil, err
		}
		right, err := reconstruct(n, table, choices, children[1], subset)
		if err != nil {
			return nil, err
		}
		return unionSorted(left, right), nil
	default:
		return nil, fmt.Errorf("%w: node %d has %d children", ErrInvalidNode, id, len(children))
	}
}

// onlyIn returns the single element present in bigger but absent from
// smaller. Both must be sorted ascending and differ by exactly one
// element, as guaranteed by nicetd.Validate.
func onlyIn(bigger, smaller []int) int {
	i, j := 0, 0
	for i < len(bigger) {
		if j < len(smaller) && bigger[i] == smaller[j] {
			i++
			j++
			continue
		}
		return bigger[i]
	}
	return -1
}

func independentWith(adj [][]bool, subset []int, v int) bool {
	for _, u := range subset {
		if adj[u][v] {
			return false
		}
	}
	return true
}

func containsInt(s []int, v int) bool {
	idx := sort.SearchInts(s, v)
	return idx < len(s) && s[idx] == v
}

func insertSortedCopy(s []int, v int) []int {
	idx := sort.SearchInts(s, v)
	out := make([]int, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, v)
	out = append(out, s[idx:]...)
	return out
}

func removeElemCopy(s []int, v int) []int {
	out := make([]int, 0, len(s))
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func unionSorted(a, b []int) []int {
	set := make(map[int]bool, len(a)+len(b))
	for _, v := range a {
		set[v] = true
	}
	for _, v := range b {
		set[v] = true
	}
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
