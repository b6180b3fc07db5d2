package misdp

import (
	"sort"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
)

// NormalTable is a map-backed Table with no bag-width limit: each subset
// is canonicalized (deduped and sorted) via a hashset before being turned
// into a string map key.
type NormalTable struct {
	sizes   []map[string]MisSize
	subsets []map[string][]int
	order   [][]string
}

// NewNormalTable allocates a NormalTable sized for nodeCount nice-TD
// nodes.
func NewNormalTable(nodeCount int) *NormalTable {
	t := &NormalTable{
		sizes:   make([]map[string]MisSize, nodeCount),
		subsets: make([]map[string][]int, nodeCount),
		order:   make([][]string, nodeCount),
	}
	for i := 0; i < nodeCount; i++ {
		t.sizes[i] = make(map[string]MisSize)
		t.subsets[i] = make(map[string][]int)
	}

	return t
}

// Get implements Table.
func (t *NormalTable) Get(node int, subset []int) (MisSize, bool) {
	size, ok := t.sizes[node][canonicalKey(subset)]

	return size, ok
}

// Put implements Table.
func (t *NormalTable) Put(node int, subset []int, size MisSize) {
	key := canonicalKey(subset)
	if _, seen := t.sizes[node][key]; !seen {
		t.order[node] = append(t.order[node], key)
		t.subsets[node][key] = canonicalSlice(subset)
	}
	t.sizes[node][key] = size
}

// Subsets implements Table.
func (t *NormalTable) Subsets(node int) [][]int {
	out := make([][]int, 0, len(t.order[node]))
	for _, key := range t.order[node] {
		out = append(out, t.subsets[node][key])
	}

	return out
}

// canonicalKey dedupes and sorts subset via a hashset, then joins the
// result into a stable map key.
func canonicalKey(subset []int) string {
	ints := canonicalSlice(subset)
	parts := make([]string, len(ints))
	for i, v := range ints {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// canonicalSlice dedupes and sorts subset via a hashset.
func canonicalSlice(subset []int) []int {
	set := hashset.New()
	for _, v := range subset {
		set.Add(v)
	}
	values := set.Values()
	ints := make([]int, 0, len(values))
	for _, v := range values {
		ints = append(ints, v.(int))
	}
	sort.Ints(ints)

	return ints
}
