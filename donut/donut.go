package donut

import (
	"fmt"

	"github.com/katalvlaran/planarmis/bfstree"
	"github.com/katalvlaran/planarmis/dcel"
)

// DonutsForK returns every Band produced by Baker's layering technique for
// width k: for each phase offset i in [0, k], delete every level congruent
// to i modulo (k+1), and record each surviving maximal run of consecutive
// levels as a Band tagged with that offset.
func DonutsForK(st *bfstree.SpanningTree, k int) []Band {
	if k <= 0 {
		return nil
	}

	period := k + 1
	maxLevel := st.MaxLevel()
	bands := make([]Band, 0, (maxLevel+1)/k+period)

	for offset := 0; offset < period; offset++ {
		lo := -1
		// Walk one level past maxLevel as a sentinel "deleted" level so a
		// trailing band is flushed without duplicating the loop body.
		for level := 0; level <= maxLevel+1; level++ {
			deleted := level > maxLevel || level%period == offset
			switch {
			case deleted && lo >= 0:
				bands = append(bands, Band{Offset: offset, Lo: lo, Hi: level - 1})
				lo = -1
			case !deleted && lo < 0:
				lo = level
			}
		}
	}

	return bands
}

// ExtractDonut builds the sub-DCEL induced by the vertices of g whose BFS
// level (per st) falls within band, preserving each kept vertex's relative
// rotation order. Arcs with an endpoint outside the band are dropped.
func ExtractDonut(g *dcel.Graph, st *bfstree.SpanningTree, band Band) (*Donut, error) {
	n := len(g.Vertices)
	inBand := make([]bool, n)
	anyInBand := false
	for v := 0; v < n; v++ {
		lvl := st.Level(v)
		if lvl >= band.Lo && lvl <= band.Hi {
			inBand[v] = true
			anyInBand = true
		}
	}
	if !anyInBand {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrEmptyBand, band.Lo, band.Hi)
	}

	global2Local := make(map[int]int, n)
	var vertexMapping []int
	localOf := func(global int) int {
		if id, ok := global2Local[global]; ok {
			return id
		}
		id := len(vertexMapping)
		global2Local[global] = id
		vertexMapping = append(vertexMapping, global)
		return id
	}

	b := dcel.NewBuilder()
	var arcMapping []int
	for v := 0; v < n; v++ {
		if !inBand[v] {
			continue
		}
		srcLocal := localOf(v)
		for _, arcID := range g.Vertices[v].Arcs {
			arc := g.Arcs[arcID]
			if !inBand[arc.Dst] {
				continue
			}
			dstLocal := localOf(arc.Dst)
			if err := b.AddHalfEdge(srcLocal, dstLocal); err != nil {
				return nil, err
			}
			arcMapping = append(arcMapping, arcID)
		}
	}

	sub, err := b.Build()
	if err != nil {
		return nil, err
	}
	// The builder only creates vertices that appear in some half-edge; band
	// vertices with no in-band arcs still get an (arc-less) vertex entry.
	for len(sub.Vertices) < len(vertexMapping) {
		sub.Vertices = append(sub.Vertices, dcel.Vertex{})
	}

	return &Donut{
		Graph:         sub,
		VertexMapping: vertexMapping,
		ArcMapping:    arcMapping,
		MinLevel:      band.Lo,
	}, nil
}
