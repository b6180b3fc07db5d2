package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/reduce"
)

func TestReduce_IsolatedVertex(t *testing.T) {
	view := reduce.NewAdjacencyView([][]bool{{false}})
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindIsolatedClique})
	require.NoError(t, err)

	assert.Empty(t, view.AliveVertices())
	assert.Equal(t, []int{0}, result.Lift(nil))
}

func TestReduce_IsolatedCliqueTriangle(t *testing.T) {
	adj := [][]bool{
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	view := reduce.NewAdjacencyView(adj)
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindIsolatedClique})
	require.NoError(t, err)

	lifted := result.Lift(nil)
	assert.Len(t, lifted, 1)
	assertIndependent(t, adj, lifted)
}

// TestReduce_TwinPair_AdjacentNeighborhood covers twins 0, 1 of degree 3
// sharing neighborhood {2, 3, 4}, where 2-3 are adjacent: the reduced
// solution drops the whole neighborhood and includes both twins.
func TestReduce_TwinPair_AdjacentNeighborhood(t *testing.T) {
	adj := [][]bool{
		{false, false, true, true, true},
		{false, false, true, true, true},
		{true, true, false, true, false},
		{true, true, true, false, false},
		{true, true, false, false, false},
	}
	view := reduce.NewAdjacencyView(adj)
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindTwin})
	require.NoError(t, err)

	assert.Empty(t, view.AliveVertices())
	lifted := result.Lift(nil)
	assert.ElementsMatch(t, []int{0, 1}, lifted)
	assertIndependent(t, adj, lifted)
}

// TestReduce_TwinPair_IndependentNeighborhood_MergedIncluded covers twins 0, 1 of degree
// 3 sharing neighborhood {2, 3, 4}, where 2, 3, 4 are pairwise
// non-adjacent: the neighborhood is folded into one merged vertex, and
// selecting it in the reduced solution means all three of 2, 3, 4 belong
// to the lifted solution instead of just the twin pair.
func TestReduce_TwinPair_IndependentNeighborhood_MergedIncluded(t *testing.T) {
	adj := [][]bool{
		{false, false, true, true, true},
		{false, false, true, true, true},
		{true, true, false, false, false},
		{true, true, false, false, false},
		{true, true, false, false, false},
	}
	view := reduce.NewAdjacencyView(adj)
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindTwin})
	require.NoError(t, err)

	alive := view.AliveVertices()
	require.Len(t, alive, 1)
	merged := alive[0]

	lifted := result.Lift([]int{merged})
	assert.ElementsMatch(t, []int{2, 3, 4}, lifted)
	assertIndependent(t, adj, lifted)
}

func TestReduce_TwinPair_IndependentNeighborhood_MergedExcluded(t *testing.T) {
	adj := [][]bool{
		{false, false, true, true, true},
		{false, false, true, true, true},
		{true, true, false, false, false},
		{true, true, false, false, false},
		{true, true, false, false, false},
	}
	view := reduce.NewAdjacencyView(adj)
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindTwin})
	require.NoError(t, err)

	lifted := result.Lift(nil)
	assert.ElementsMatch(t, []int{0, 1}, lifted)
	assertIndependent(t, adj, lifted)
}

func TestReduce_NodalFold_MergedIncluded(t *testing.T) {
	adj := [][]bool{
		{false, true, true},
		{true, false, false},
		{true, false, false},
	}
	view := reduce.NewAdjacencyView(adj)
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindNodalFold})
	require.NoError(t, err)

	alive := view.AliveVertices()
	require.Len(t, alive, 1)
	merged := alive[0]

	lifted := result.Lift([]int{merged})
	assert.ElementsMatch(t, []int{1, 2}, lifted)
	assertIndependent(t, adj, lifted)
}

func TestReduce_NodalFold_MergedExcluded(t *testing.T) {
	adj := [][]bool{
		{false, true, true},
		{true, false, false},
		{true, false, false},
	}
	view := reduce.NewAdjacencyView(adj)
	result, err := reduce.Reduce(view, []reduce.Kind{reduce.KindNodalFold})
	require.NoError(t, err)

	lifted := result.Lift(nil)
	assert.Equal(t, []int{0}, lifted)
	assertIndependent(t, adj, lifted)
}

func TestReduce_UnknownKind(t *testing.T) {
	view := reduce.NewAdjacencyView([][]bool{{false}})
	_, err := reduce.Reduce(view, []reduce.Kind{reduce.Kind(99)})
	require.Error(t, err)
	assert.ErrorIs(t, err, reduce.ErrUnknownKind)
}

func assertIndependent(t *testing.T, adj [][]bool, set []int) {
	t.Helper()
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			assert.False(t, adj[set[i]][set[j]], "set contains adjacent pair %d, %d", set[i], set[j])
		}
	}
}
