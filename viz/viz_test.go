package viz_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/bfstree"
	"github.com/katalvlaran/planarmis/dcel"
	"github.com/katalvlaran/planarmis/nicetd"
	"github.com/katalvlaran/planarmis/viz"
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

func TestWriteJS_IncludesSpanningTree(t *testing.T) {
	g := buildTriangle(t)
	st, err := bfstree.BFS(g, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, viz.WriteJS(&buf, g, st))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "let data = "))
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), ";"))
	assert.Contains(t, out, "\"vertices\"")
	assert.Contains(t, out, "\"spantree\"")

	var doc struct {
		Faces [][]int `json:"faces"`
	}
	body := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(out, "let data = ")), ";")
	require.NoError(t, json.Unmarshal([]byte(body), &doc))
	require.Len(t, doc.Faces, 2)
	for _, face := range doc.Faces {
		assert.NotEmpty(t, face)
	}
}

func TestWriteJS_WithoutSpanningTree(t *testing.T) {
	g := buildTriangle(t)

	var buf bytes.Buffer
	require.NoError(t, viz.WriteJS(&buf, g, nil))
	assert.False(t, strings.Contains(buf.String(), "\"discoveredBy\""))
}

func TestWriteDOT_RendersOneNodePerBag(t *testing.T) {
	n := &nicetd.Nice{
		Bags: []nicetd.Bag{
			{Vertices: []int{0, 1}},
			{Vertices: []int{1}},
		},
		Children: [][]int{{1}, {}},
		Root:     0,
	}

	var buf bytes.Buffer
	require.NoError(t, viz.WriteDOT(&buf, n))
	assert.Contains(t, buf.String(), "B0")
	assert.Contains(t, buf.String(), "B1")
}
