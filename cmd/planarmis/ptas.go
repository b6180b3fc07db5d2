package main

import (
	"fmt"

	"github.com/katalvlaran/planarmis/bfstree"
	"github.com/katalvlaran/planarmis/dcel"
	"github.com/katalvlaran/planarmis/donut"
	"github.com/katalvlaran/planarmis/misdp"
	"github.com/katalvlaran/planarmis/nicetd"
	"github.com/katalvlaran/planarmis/ptaslog"
	"github.com/katalvlaran/planarmis/reduce"
	"github.com/katalvlaran/planarmis/tdbuild"
)

// runPTAS runs Baker's PTAS independently on every connected component of
// g (donut extraction and tree decomposition both assume a single BFS
// tree spanning everything they touch, so a disconnected input is split
// up front rather than ever reaching bfstree.BFS with unreachable
// vertices), then unions each component's result: components share no
// edges, so their independent sets are always compatible.
func runPTAS(g *dcel.Graph, opts Options, logger *ptaslog.Logger) ([]int, error) {
	components, err := bfstree.Components(g)
	if err != nil {
		return nil, fmt.Errorf("planarmis: connected components: %w", err)
	}

	var mis []int
	for _, st := range components {
		componentMis, err := runPTASComponent(g, st, opts, logger)
		if err != nil {
			return nil, err
		}
		mis = append(mis, componentMis...)
	}

	return mis, nil
}

// runPTASComponent layers one connected component (spanned by st) into
// donuts at every phase offset, solves each donut independently, and
// keeps the offset whose union of per-donut MISes is largest (bestOf,
// resolving spec.md's Open Question 2 — see DESIGN.md).
func runPTASComponent(g *dcel.Graph, st *bfstree.SpanningTree, opts Options, logger *ptaslog.Logger) ([]int, error) {
	bands := donut.DonutsForK(st, opts.K)
	byOffset := make(map[int][]donut.Band)
	for _, band := range bands {
		byOffset[band.Offset] = append(byOffset[band.Offset], band)
	}

	var best []int
	for offset := 0; offset <= opts.K; offset++ {
		candidate, err := solveOffset(g, st, byOffset[offset], opts, logger)
		if err != nil {
			return nil, err
		}
		logger.Infof("component rooted at %d, offset %d: MIS size %d", st.Root(), offset, len(candidate))
		if len(candidate) > len(best) {
			best = candidate
		}
	}

	return best, nil
}

// solveOffset solves every donut of one phase offset and unions their
// (disjoint, by construction) MISes into one candidate.
func solveOffset(g *dcel.Graph, st *bfstree.SpanningTree, bands []donut.Band, opts Options, logger *ptaslog.Logger) ([]int, error) {
	var union []int
	for _, band := range bands {
		mis, err := solveDonut(g, st, band, opts, logger)
		if err != nil {
			return nil, err
		}
		union = append(union, mis...)
	}
	return union, nil
}

// solveDonut extracts one donut, optionally reduces it, builds a tree
// decomposition (exact or approximated), solves the MIS DP over its nice
// form, and maps the result back to global vertex ids.
func solveDonut(g *dcel.Graph, st *bfstree.SpanningTree, band donut.Band, opts Options, logger *ptaslog.Logger) ([]int, error) {
	d, err := donut.ExtractDonut(g, st, band)
	if err != nil {
		return nil, fmt.Errorf("planarmis: extract donut [%d,%d]@%d: %w", band.Lo, band.Hi, band.Offset, err)
	}

	localGraph := d.Graph
	localVertices := identityMapping(len(localGraph.Vertices))
	var donutResult *reduce.Result
	if len(opts.DonutKinds) > 0 {
		view := reduce.NewAdjacencyView(adjacencyMatrix(localGraph))
		donutResult, err = reduce.Reduce(view, opts.DonutKinds)
		if err != nil {
			return nil, fmt.Errorf("planarmis: donut reduction: %w", err)
		}
		localGraph, err = rebuildGraph(view)
		if err != nil {
			return nil, fmt.Errorf("planarmis: rebuild reduced donut: %w", err)
		}
		localVertices = view.AliveVertices()
	}

	if len(localGraph.Arcs) == 0 {
		// An edgeless donut (a single BFS level with no within-level
		// edges is a common one) has no faces at all, so neither TD
		// builder has anything to walk. Every vertex is trivially in
		// the MIS — there are no edges to violate.
		return edgelessDonutMIS(d, localVertices, donutResult, logger, band)
	}

	var td *tdbuild.TD
	if opts.Exact {
		reExtracted := &donutLike{Graph: localGraph, VertexMapping: identityMapping(len(localGraph.Vertices))}
		td, err = tdbuild.BuildExact(reExtracted.asDonut())
	} else {
		localSt, bfsErr := bfstree.BFS(localGraph, 0)
		if bfsErr != nil {
			return nil, fmt.Errorf("planarmis: donut spanning tree: %w", bfsErr)
		}
		td, err = tdbuild.Build(localGraph, localSt)
	}
	if err != nil {
		return nil, fmt.Errorf("planarmis: build tree decomposition: %w", err)
	}

	nice, err := nicetd.ToNice(td)
	if err != nil {
		return nil, fmt.Errorf("planarmis: nice tree decomposition: %w", err)
	}
	if err := nicetd.Validate(nice); err != nil {
		return nil, fmt.Errorf("planarmis: validate nice tree decomposition: %w", err)
	}

	table, err := misdp.NewTable(nice, misdp.BackendFast)
	if err != nil {
		return nil, fmt.Errorf("planarmis: allocate DP table: %w", err)
	}

	localMis, err := misdp.Solve(nice, adjacencyMatrix(localGraph), table)
	if err != nil {
		return nil, fmt.Errorf("planarmis: solve donut: %w", err)
	}

	if donutResult != nil {
		localMis = donutResult.Lift(localMis)
	}

	logger.Infof("donut [%d,%d]@%d: %d vertices, MIS size %d", band.Lo, band.Hi, band.Offset, len(localGraph.Vertices), len(localMis))

	global := make([]int, len(localMis))
	for i, local := range localMis {
		global[i] = d.VertexMapping[local]
	}

	return global, nil
}

// edgelessDonutMIS handles a donut with no arcs: its vertices are
// pairwise non-adjacent by definition, so the MIS is all of them.
func edgelessDonutMIS(d *donut.Donut, localVertices []int, donutResult *reduce.Result, logger *ptaslog.Logger, band donut.Band) ([]int, error) {
	localMis := append([]int(nil), localVertices...)
	if donutResult != nil {
		localMis = donutResult.Lift(localMis)
	}

	logger.Infof("donut [%d,%d]@%d: %d vertices, edgeless, MIS size %d", band.Lo, band.Hi, band.Offset, len(localVertices), len(localMis))

	global := make([]int, len(localMis))
	for i, local := range localMis {
		global[i] = d.VertexMapping[local]
	}

	return global, nil
}

// donutLike lets a reduced/re-embedded local graph (which is no longer
// literally a donut.Donut, since reduction may have changed its vertex
// count) reuse tdbuild.BuildExact, which only needs the *dcel.Graph and
// an identity VertexMapping.
type donutLike struct {
	Graph         *dcel.Graph
	VertexMapping []int
}

func (d *donutLike) asDonut() *donut.Donut {
	return &donut.Donut{
		Graph:         d.Graph,
		VertexMapping: d.VertexMapping,
	}
}

func identityMapping(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
