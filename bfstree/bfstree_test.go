package bfstree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/bfstree"
	"github.com/katalvlaran/planarmis/dcel"
)

func buildTriangle(t *testing.T) *dcel.Graph {
	t.Helper()
	b := dcel.NewBuilder()
	require.NoError(t, b.AddHalfEdge(0, 1))
	require.NoError(t, b.AddHalfEdge(1, 2))
	require.NoError(t, b.AddHalfEdge(2, 0))
	require.NoError(t, b.AddHalfEdge(0, 2))
	require.NoError(t, b.AddHalfEdge(2, 1))
	require.NoError(t, b.AddHalfEdge(1, 0))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestBFS_NilGraph(t *testing.T) {
	_, err := bfstree.BFS(nil, 0)
	require.ErrorIs(t, err, bfstree.ErrGraphNil)
}

func TestBFS_RootOutOfRange(t *testing.T) {
	g := buildTriangle(t)
	_, err := bfstree.BFS(g, 99)
	require.ErrorIs(t, err, bfstree.ErrRootOutOfRange)
}

func TestBFS_LevelsAndDiscovery(t *testing.T) {
	g := buildTriangle(t)
	st, err := bfstree.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, st.Level(0))
	assert.Equal(t, 1, st.Level(1))
	assert.Equal(t, 1, st.Level(2))
	assert.Equal(t, 1, st.MaxLevel())

	_, rootHasParent := st.DiscoveredBy(0)
	assert.False(t, rootHasParent)

	a1, ok1 := st.DiscoveredBy(1)
	require.True(t, ok1)
	assert.True(t, st.Contains(a1))

	a2, ok2 := st.DiscoveredBy(2)
	require.True(t, ok2)
	assert.True(t, st.Contains(a2))
}

func TestBFS_DeterministicVisitOrder(t *testing.T) {
	g := buildTriangle(t)
	st1, err := bfstree.BFS(g, 0)
	require.NoError(t, err)
	st2, err := bfstree.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, st1.VerticesAtLevel(1), st2.VerticesAtLevel(1))
}

func TestBFS_DisconnectedGraphLeavesOtherComponentUnreached(t *testing.T) {
	b := dcel.NewBuilder()
	require.NoError(t, b.AddHalfEdge(0, 1))
	require.NoError(t, b.AddHalfEdge(1, 0))
	require.NoError(t, b.AddHalfEdge(2, 3))
	require.NoError(t, b.AddHalfEdge(3, 2))
	g, err := b.Build()
	require.NoError(t, err)

	st, err := bfstree.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, st.Level(0))
	assert.Equal(t, 1, st.Level(1))
	assert.Equal(t, -1, st.Level(2))
	assert.Equal(t, -1, st.Level(3))

	_, ok := st.DiscoveredBy(2)
	assert.False(t, ok)
}

func TestComponents_SplitsDisconnectedGraph(t *testing.T) {
	b := dcel.NewBuilder()
	require.NoError(t, b.AddHalfEdge(0, 1))
	require.NoError(t, b.AddHalfEdge(1, 0))
	require.NoError(t, b.AddHalfEdge(2, 3))
	require.NoError(t, b.AddHalfEdge(3, 2))
	g, err := b.Build()
	require.NoError(t, err)

	trees, err := bfstree.Components(g)
	require.NoError(t, err)
	require.Len(t, trees, 2)

	assert.Equal(t, 0, trees[0].Root())
	assert.Equal(t, 0, trees[0].Level(0))
	assert.Equal(t, 1, trees[0].Level(1))
	assert.Equal(t, -1, trees[0].Level(2))

	assert.Equal(t, 2, trees[1].Root())
	assert.Equal(t, 0, trees[1].Level(2))
	assert.Equal(t, 1, trees[1].Level(3))
	assert.Equal(t, -1, trees[1].Level(0))
}

func TestComponents_SingleComponent(t *testing.T) {
	g := buildTriangle(t)
	trees, err := bfstree.Components(g)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	assert.Equal(t, 0, trees[0].Root())
}
