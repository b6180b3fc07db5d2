package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planarmis/ptaslog"
	"github.com/katalvlaran/planarmis/reduce"
)

// pathGraph is the path 0-1-2-3-4-5: planar, and every BFS band from
// root 0 is a contiguous, connected sub-path, so donut extraction at any
// k never produces a disconnected donut. Optimal MIS size 3 (every other
// vertex), though the PTAS is only required to produce *some*
// independent set, not necessarily the optimum.
const pathGraph = "6\n5\n" +
	"0 1\n1 2\n2 3\n3 4\n4 5\n" +
	"1 0\n2 1\n3 2\n4 3\n5 4\n"

func runOptions(scheme Scheme, input, output string, k int) Options {
	return Options{
		Scheme: scheme,
		Input:  input,
		Output: output,
		K:      k,
	}
}

// assertIndependentSet re-parses graph's edge lines (skipping the n/m
// header) and fails the test if mis contains both endpoints of any edge.
func assertIndependentSet(t *testing.T, graph string, mis []int) {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(graph), "\n")
	present := make(map[int]bool, len(mis))
	for _, v := range mis {
		present[v] = true
	}

	for _, line := range lines[2:] {
		var u, v int
		if _, err := fmt.Sscan(line, &u, &v); err != nil {
			t.Fatalf("malformed test fixture line %q: %v", line, err)
		}
		if present[u] && present[v] {
			t.Fatalf("MIS %v is not independent: edge %d-%d", mis, u, v)
		}
	}
}

func TestRun_Exhaustive_Triangle(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, triangleGraph))
	output := filepath.Join(dir, "out.js")

	mis, err := Run(runOptions(SchemeExhaustive, input, output, 1), ptaslog.New(false))
	require.NoError(t, err)
	assert.Len(t, mis, 1)
	assertIndependentSet(t, triangleGraph, mis)
}

func TestRun_PTAS_Path(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, pathGraph))
	output := filepath.Join(dir, "out.js")

	mis, err := Run(runOptions(SchemePTAS, input, output, 1), ptaslog.New(false))
	require.NoError(t, err)
	assert.NotEmpty(t, mis)
	assertIndependentSet(t, pathGraph, mis)
}

func TestRun_PTAS_Exact_Path(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, pathGraph))
	output := filepath.Join(dir, "out.js")

	opts := runOptions(SchemePTAS, input, output, 1)
	opts.Exact = true
	mis, err := Run(opts, ptaslog.New(false))
	require.NoError(t, err)
	assert.NotEmpty(t, mis)
	assertIndependentSet(t, pathGraph, mis)
}

func TestRun_InputReduction_Triangle(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, triangleGraph))
	output := filepath.Join(dir, "out.js")

	opts := runOptions(SchemeExhaustive, input, output, 1)
	opts.InputKinds = []reduce.Kind{reduce.KindIsolatedClique}
	mis, err := Run(opts, ptaslog.New(false))
	require.NoError(t, err)
	assert.Len(t, mis, 1)
	assertIndependentSet(t, triangleGraph, mis)
}

func TestRun_DonutReduction_Path(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "g.txt")
	require.NoError(t, writeFile(input, pathGraph))
	output := filepath.Join(dir, "out.js")

	opts := runOptions(SchemePTAS, input, output, 1)
	opts.DonutKinds = []reduce.Kind{reduce.KindNodalFold}
	mis, err := Run(opts, ptaslog.New(false))
	require.NoError(t, err)
	assertIndependentSet(t, pathGraph, mis)
}

func TestRun_UnknownInput(t *testing.T) {
	_, err := Run(runOptions(SchemeExhaustive, "/nonexistent/path", "/tmp/out.js", 1), ptaslog.New(false))
	require.Error(t, err)
}
