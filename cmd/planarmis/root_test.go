package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand_RejectsTooFewArgs(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"ptas"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestNewRootCommand_ParsesKFlag(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, triangleGraph))
	output := filepath.Join(dir, "out.js")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"exhaustive", input, output, "--k", "2"})
	require.NoError(t, cmd.Execute())

	k, err := cmd.Flags().GetInt("k")
	require.NoError(t, err)
	assert.Equal(t, 2, k)
}

func TestNewRootCommand_UnknownReductionFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, triangleGraph))

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"exhaustive", input, "-R", "bogus"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownReduction)
}
