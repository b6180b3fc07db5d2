package misdp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/misdp"
	"github.com/katalvlaran/planarmis/nicetd"
)

// pathAdjacency builds the adjacency matrix of a simple path 0-1-2-...-(n-1).
func pathAdjacency(n int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i+1 < n; i++ {
		adj[i][i+1] = true
		adj[i+1][i] = true
	}
	return adj
}

// pathNiceTD hand-builds a nice tree decomposition for the 4-vertex path
// 0-1-2-3: leaf{0} -> introduce 1 -> forget 0 -> introduce 2 -> forget 1
// -> introduce 3 -> forget 2 (root).
func pathNiceTD() *nicetd.Nice {
	return &nicetd.Nice{
		Bags: []nicetd.Bag{
			{Vertices: []int{0}},    // 0: leaf
			{Vertices: []int{0, 1}}, // 1: introduce 1
			{Vertices: []int{1}},    // 2: forget 0
			{Vertices: []int{1, 2}}, // 3: introduce 2
			{Vertices: []int{2}},    // 4: forget 1
			{Vertices: []int{2, 3}}, // 5: introduce 3
			{Vertices: []int{3}},    // 6: forget 2 (root)
		},
		Children: [][]int{
			{},
			{0},
			{1},
			{2},
			{3},
			{4},
			{5},
		},
		Root: 6,
	}
}

func TestPathNiceTD_Validates(t *testing.T) {
	require.NoError(t, nicetd.Validate(pathNiceTD()))
}

func TestExhaustive_PathGraph(t *testing.T) {
	mis := misdp.Exhaustive(pathAdjacency(4))
	assert.Len(t, mis, 2)
	assertIndependent(t, pathAdjacency(4), mis)
}

func TestSolve_NormalBackend_MatchesExhaustiveSize(t *testing.T) {
	n := pathNiceTD()
	adj := pathAdjacency(4)
	table, err := misdp.NewTable(n, misdp.BackendNormal)
	require.NoError(t, err)

	mis, err := misdp.Solve(n, adj, table)
	require.NoError(t, err)
	assert.Len(t, mis, 2)
	assertIndependent(t, adj, mis)
}

func TestSolve_FastBackend_MatchesExhaustiveSize(t *testing.T) {
	n := pathNiceTD()
	adj := pathAdjacency(4)
	table, err := misdp.NewTable(n, misdp.BackendFast)
	require.NoError(t, err)

	mis, err := misdp.Solve(n, adj, table)
	require.NoError(t, err)
	assert.Len(t, mis, 2)
	assertIndependent(t, adj, mis)
}

// joinNiceTD hand-builds a trivial join over a single-vertex graph: two
// leaf children both holding vertex 0, joined at a root with the same bag.
func joinNiceTD() *nicetd.Nice {
	return &nicetd.Nice{
		Bags: []nicetd.Bag{
			{Vertices: []int{0}},
			{Vertices: []int{0}},
			{Vertices: []int{0}},
		},
		Children: [][]int{
			{},
			{},
			{0, 1},
		},
		Root: 2,
	}
}

func TestSolve_JoinDoesNotDoubleCount(t *testing.T) {
	n := joinNiceTD()
	require.NoError(t, nicetd.Validate(n))
	adj := [][]bool{{false}}

	table, err := misdp.NewTable(n, misdp.BackendNormal)
	require.NoError(t, err)

	mis, err := misdp.Solve(n, adj, table)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, mis)
}

func TestNormalTable_GetPutSubsets(t *testing.T) {
	table := misdp.NewNormalTable(2)
	table.Put(0, []int{1, 2}, misdp.Feasible(1))
	table.Put(0, nil, misdp.Feasible(0))

	size, ok := table.Get(0, []int{2, 1})
	require.True(t, ok)
	assert.Equal(t, 1, size.Size())

	subsets := table.Subsets(0)
	assert.Len(t, subsets, 2)

	_, ok = table.Get(1, []int{1, 2})
	assert.False(t, ok)
}

func TestFastTable_RejectsWideBags(t *testing.T) {
	wide := make([]int, 64)
	for i := range wide {
		wide[i] = i
	}
	_, err := misdp.NewFastTableForNice([][]int{wide})
	require.Error(t, err)
	assert.ErrorIs(t, err, misdp.ErrBagTooWide)
}

func TestFastTable_GetPutSubsets(t *testing.T) {
	table := misdp.NewFastTable(1)
	table.Put(0, []int{5, 7}, misdp.Feasible(2))

	size, ok := table.Get(0, []int{7, 5})
	require.True(t, ok)
	assert.Equal(t, 2, size.Size())
}

func assertIndependent(t *testing.T, adj [][]bool, mis []int) {
	t.Helper()
	for i := 0; i < len(mis); i++ {
		for j := i + 1; j < len(mis); j++ {
			assert.False(t, adj[mis[i]][mis[j]], "mis contains adjacent pair %d, %d", mis[i], mis[j])
		}
	}
}
