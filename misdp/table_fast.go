package misdp

import (
	"errors"
	"sort"
)

// ErrBagTooWide is returned by FastTable when a bag exceeds 63 vertices,
// the limit imposed by encoding subsets as uint64 bitmasks.
var ErrBagTooWide = errors.New("misdp: bag width exceeds FastTable's 63-vertex limit")

// FastTable is a Table backend that encodes each node's subsets as
// uint64 bitmasks over a per-node, lazily assigned vertex-to-bit
// position mapping. It is restricted to bags of width <= 63.
type FastTable struct {
	sizes    []map[uint64]MisSize
	posOf    []map[int]int
	vertexOf []map[int]int
}

// NewFastTable allocates a FastTable sized for nodeCount nice-TD nodes.
func NewFastTable(nodeCount int) *FastTable {
	t := &FastTable{
		sizes:    make([]map[uint64]MisSize, nodeCount),
		posOf:    make([]map[int]int, nodeCount),
		vertexOf: make([]map[int]int, nodeCount),
	}
	for i := 0; i < nodeCount; i++ {
		t.sizes[i] = make(map[uint64]MisSize)
		t.posOf[i] = make(map[int]int)
		t.vertexOf[i] = make(map[int]int)
	}

	return t
}

// NewFastTableForNice allocates a FastTable sized for bags, rejecting bags
// with ErrBagTooWide if any bag exceeds 63 vertices.
func NewFastTableForNice(bags [][]int) (*FastTable, error) {
	for _, bag := range bags {
		if len(bag) > 63 {
			return nil, ErrBagTooWide
		}
	}

	return NewFastTable(len(bags)), nil
}

// Get implements Table. A vertex whose bit position would be beyond 63
// contributes no bit to the mask (the uint64 shift yields 0); it does not
// panic.
func (t *FastTable) Get(node int, subset []int) (MisSize, bool) {
	mask := t.encode(node, subset)
	size, ok := t.sizes[node][mask]

	return size, ok
}

// Put implements Table.
func (t *FastTable) Put(node int, subset []int, size MisSize) {
	mask := t.encode(node, subset)
	t.sizes[node][mask] = size
}

// Subsets implements Table. Order follows ascending bitmask value, which
// is deterministic but not necessarily insertion order.
func (t *FastTable) Subsets(node int) [][]int {
	masks := make([]uint64, 0, len(t.sizes[node]))
	for mask := range t.sizes[node] {
		masks = append(masks, mask)
	}
	sort.Slice(masks, func(i, j int) bool { return masks[i] < masks[j] })

	out := make([][]int, 0, len(masks))
	for _, mask := range masks {
		out = append(out, t.decode(node, mask))
	}

	return out
}

// encode maps subset's vertices to node's bit positions, assigning a new
// position to any vertex seen for the first time.
func (t *FastTable) encode(node int, subset []int) uint64 {
	var mask uint64
	for _, v := range subset {
		pos, ok := t.posOf[node][v]
		if !ok {
			pos = len(t.posOf[node])
			t.posOf[node][v] = pos
			t.vertexOf[node][pos] = v
		}
		mask |= 1 << uint(pos)
	}

	return mask
}

func (t *FastTable) decode(node int, mask uint64) []int {
	var out []int
	for pos := 0; pos < 64; pos++ {
		if mask&(1<<uint(pos)) != 0 {
			out = append(out, t.vertexOf[node][pos])
		}
	}
	sort.Ints(out)

	return out
}
