package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/planarmis/dcel"
	"github.com/katalvlaran/planarmis/graphio"
	"github.com/katalvlaran/planarmis/ptaslog"
	"github.com/katalvlaran/planarmis/reduce"
	"github.com/katalvlaran/planarmis/viz"
)

// Run loads the graph named by opts.Input, dispatches to the requested
// scheme, and returns the resulting independent set in original vertex
// ids, writing the visualization to opts.Output as a side effect.
func Run(opts Options, logger *ptaslog.Logger) ([]int, error) {
	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, fmt.Errorf("planarmis: open input: %w", err)
	}
	defer f.Close()

	builder, err := graphio.Load(f)
	if err != nil {
		return nil, fmt.Errorf("planarmis: load graph: %w", err)
	}

	g, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("planarmis: build embedding: %w", err)
	}
	logger.Infof("loaded graph: %d vertices, %d arcs, %d faces", len(g.Vertices), len(g.Arcs), len(g.Faces))

	var inputResult *reduce.Result
	if len(opts.InputKinds) > 0 {
		// -R reductions run on the plain adjacency view, never by
		// mutating the already-built DCEL's face structure directly;
		// the reduced adjacency is then re-embedded from scratch.
		view := reduce.NewAdjacencyView(adjacencyMatrix(g))
		inputResult, err = reduce.Reduce(view, opts.InputKinds)
		if err != nil {
			return nil, fmt.Errorf("planarmis: input reduction: %w", err)
		}
		g, err = rebuildGraph(view)
		if err != nil {
			return nil, fmt.Errorf("planarmis: rebuild reduced embedding: %w", err)
		}
		logger.Infof("input reduction: %d vertices remain", len(view.AliveVertices()))
	}

	var mis []int
	switch opts.Scheme {
	case SchemePTAS:
		mis, err = runPTAS(g, opts, logger)
	case SchemeExhaustive:
		mis, err = runExhaustive(g, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, opts.Scheme)
	}
	if err != nil {
		return nil, err
	}

	if inputResult != nil {
		mis = inputResult.Lift(mis)
	}

	if err := writeVisualization(opts, g); err != nil {
		return nil, err
	}
	logger.Infof("wrote visualization to %s", opts.Output)

	return mis, nil
}

func writeVisualization(opts Options, g *dcel.Graph) error {
	out, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("planarmis: create output: %w", err)
	}
	defer out.Close()

	if err := viz.WriteJS(out, g, nil); err != nil {
		return fmt.Errorf("planarmis: write visualization: %w", err)
	}

	return nil
}

// adjacencyMatrix builds the dense adjacency matrix misdp.Solve and
// reduce.NewAdjacencyView expect, directly from a built dcel.Graph's arc
// lists.
func adjacencyMatrix(g *dcel.Graph) [][]bool {
	n := len(g.Vertices)
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, v := range g.Vertices {
		for _, arcID := range v.Arcs {
			a := g.Arcs[arcID]
			adj[a.Src][a.Dst] = true
			adj[a.Dst][a.Src] = true
		}
	}
	return adj
}

// rebuildGraph re-embeds view's surviving (and merged) vertices as a fresh
// DCEL, assigning each alive vertex an arbitrary but fixed rotation order
// over its surviving neighbors. The reduced graph no longer carries the
// original embedding's face structure, which is fine: nothing downstream
// of a reduction depends on any particular face beyond BFS connectivity.
func rebuildGraph(view *reduce.AdjacencyView) (*dcel.Graph, error) {
	b := dcel.NewBuilder()
	for _, u := range view.AliveVertices() {
		for _, w := range view.Neighbors(u) {
			if err := b.AddHalfEdge(u, w); err != nil {
				return nil, err
			}
		}
	}
	return b.Build()
}
