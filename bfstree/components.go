package bfstree

import "github.com/katalvlaran/planarmis/dcel"

// Components runs BFS once per connected component of g, returning one
// SpanningTree per component in order of increasing root vertex id. Every
// vertex of g appears with a non-negative Level in exactly one of the
// returned trees.
func Components(g *dcel.Graph) ([]*SpanningTree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	visited := make([]bool, len(g.Vertices))
	var trees []*SpanningTree
	for v := 0; v < len(g.Vertices); v++ {
		if visited[v] {
			continue
		}
		st, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		for u := range visited {
			if st.Level(u) >= 0 {
				visited[u] = true
			}
		}
		trees = append(trees, st)
	}

	return trees, nil
}
