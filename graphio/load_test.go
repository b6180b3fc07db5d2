package graphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/graphio"
)

func TestLoad_Triangle(t *testing.T) {
	input := "3\n3\n0 1\n1 2\n2 0\n1 0\n2 1\n0 2\n"
	b, err := graphio.Load(strings.NewReader(input))
	require.NoError(t, err)

	g, err := b.Build()
	require.NoError(t, err)
	assert.Len(t, g.Vertices, 3)
	assert.Len(t, g.Arcs, 6)
}

func TestLoad_TruncatedInput(t *testing.T) {
	input := "3\n3\n0 1\n"
	_, err := graphio.Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)
}

func TestLoad_BadVertexCount(t *testing.T) {
	input := "not-a-number\n3\n"
	_, err := graphio.Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)
}

func TestLoad_MalformedPair(t *testing.T) {
	input := "3\n1\n0 1 2\n"
	_, err := graphio.Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, graphio.ErrMalformedInput)
}
