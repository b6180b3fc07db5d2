package tdbuild

import (
	"sort"

	"github.com/katalvlaran/planarmis/bfstree"
	"github.com/katalvlaran/planarmis/dcel"
	"github.com/katalvlaran/planarmis/donut"
)

// Build constructs the approximated tree decomposition of g: one bag per
// face (its boundary vertices plus each such vertex's path to the
// spanning-tree root), with bag adjacency taken from the non-tree edges
// crossing each face boundary.
func Build(g *dcel.Graph, st *bfstree.SpanningTree) (*TD, error) {
	bagSets := make([]map[int]bool, len(g.Faces))
	adjSets := make([]map[int]bool, len(g.Faces))
	for i := range bagSets {
		bagSets[i] = make(map[int]bool)
		adjSets[i] = make(map[int]bool)
	}

	for faceID, face := range g.Faces {
		walk, err := g.FaceWalk(face.Start)
		if err != nil {
			return nil, err
		}
		for _, arcID := range walk {
			arc := g.Arcs[arcID]
			bagSets[faceID][arc.Src] = true
			if st.Contains(arcID) {
				continue
			}
			other := g.Arcs[arc.Twin].Face
			adjSets[faceID][other] = true
		}
	}

	for faceID := range bagSets {
		seed := make([]int, 0, len(bagSets[faceID]))
		for v := range bagSets[faceID] {
			seed = append(seed, v)
		}
		for _, v := range seed {
			addRootPath(bagSets[faceID], v, st, g)
		}
	}

	return assemble(bagSets, adjSets), nil
}

// BuildExact triangulates d's sub-DCEL and builds one bag per resulting
// triangular face (width exactly 3), with adjacency from every shared
// edge — no spanning-tree filtering or root-path augmentation, since the
// donut's bounded width already makes the naive dual construction exact.
func BuildExact(d *donut.Donut) (*TD, error) {
	if _, err := d.Graph.Triangulate(); err != nil {
		return nil, err
	}

	bagSets := make([]map[int]bool, len(d.Faces))
	adjSets := make([]map[int]bool, len(d.Faces))
	for i := range bagSets {
		bagSets[i] = make(map[int]bool)
		adjSets[i] = make(map[int]bool)
	}

	for faceID, face := range d.Faces {
		walk, err := d.FaceWalk(face.Start)
		if err != nil {
			return nil, err
		}
		for _, arcID := range walk {
			arc := d.Arcs[arcID]
			bagSets[faceID][d.VertexMapping[arc.Src]] = true
			other := d.Arcs[arc.Twin].Face
			if other != faceID {
				adjSets[faceID][other] = true
			}
		}
	}

	return assemble(bagSets, adjSets), nil
}

// addRootPath walks from v up through discovered-by arcs to the spanning
// tree's root, adding every vertex along the way to bag. Idempotent: if the
// path is already present, re-adding it is a no-op.
func addRootPath(bag map[int]bool, v int, st *bfstree.SpanningTree, g *dcel.Graph) {
	cur := v
	for {
		bag[cur] = true
		arcID, ok := st.DiscoveredBy(cur)
		if !ok {
			return
		}
		cur = g.Arcs[arcID].Src
	}
}

func assemble(bagSets, adjSets []map[int]bool) *TD {
	td := &TD{
		Bags:      make([]Bag, len(bagSets)),
		Adjacency: make([][]int, len(adjSets)),
		RootBag:   0,
	}
	for i, s := range bagSets {
		td.Bags[i] = Bag{Vertices: sortedKeys(s)}
	}
	for i, s := range adjSets {
		td.Adjacency[i] = sortedKeys(s)
	}

	return td
}

func sortedKeys(s map[int]bool) []int {
	out := make([]int, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
