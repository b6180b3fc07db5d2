package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/reduce"
)

func TestParseScheme_Valid(t *testing.T) {
	s, err := parseScheme("ptas")
	require.NoError(t, err)
	assert.Equal(t, SchemePTAS, s)

	s, err = parseScheme("exhaustive")
	require.NoError(t, err)
	assert.Equal(t, SchemeExhaustive, s)
}

func TestParseScheme_Unknown(t *testing.T) {
	_, err := parseScheme("bogus")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestParseReductions_Valid(t *testing.T) {
	kinds, err := parseReductions([]string{"twin", "isolated-clique", "nodal-fold"})
	require.NoError(t, err)
	assert.Equal(t, []reduce.Kind{reduce.KindTwin, reduce.KindIsolatedClique, reduce.KindNodalFold}, kinds)
}

func TestParseReductions_Empty(t *testing.T) {
	kinds, err := parseReductions(nil)
	require.NoError(t, err)
	assert.Empty(t, kinds)
}

func TestParseReductions_Unknown(t *testing.T) {
	_, err := parseReductions([]string{"twin", "bogus"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReduction)
}
