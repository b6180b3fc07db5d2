package reduce

// AdjacencyView is a tombstone-on-delete adjacency-list view over a fixed
// universe of vertex ids (which grows only when AddMergedVertex is
// called). Deleting a vertex marks it gone and strips it from its
// neighbors' lists, but never renumbers any surviving vertex, so ids
// recorded by earlier reduction steps stay valid for the life of the
// view.
type AdjacencyView struct {
	neighbors [][]int
	alive     []bool
}

// NewAdjacencyView builds a view over adj, an n x n adjacency matrix.
func NewAdjacencyView(adj [][]bool) *AdjacencyView {
	n := len(adj)
	v := &AdjacencyView{
		neighbors: make([][]int, n),
		alive:     make([]bool, n),
	}
	for i := 0; i < n; i++ {
		v.alive[i] = true
		for j := 0; j < n; j++ {
			if adj[i][j] {
				v.neighbors[i] = append(v.neighbors[i], j)
			}
		}
	}
	return v
}

// Alive reports whether vertex u has not been removed.
func (v *AdjacencyView) Alive(u int) bool {
	return u < len(v.alive) && v.alive[u]
}

// Neighbors returns u's currently-alive neighbors.
func (v *AdjacencyView) Neighbors(u int) []int {
	out := make([]int, 0, len(v.neighbors[u]))
	for _, w := range v.neighbors[u] {
		if v.Alive(w) {
			out = append(out, w)
		}
	}
	return out
}

// Degree returns the number of currently-alive neighbors of u.
func (v *AdjacencyView) Degree(u int) int {
	return len(v.Neighbors(u))
}

// Adjacent reports whether u and w are both alive and connected.
func (v *AdjacencyView) Adjacent(u, w int) bool {
	if !v.Alive(u) || !v.Alive(w) {
		return false
	}
	for _, x := range v.neighbors[u] {
		if x == w {
			return true
		}
	}
	return false
}

// RemoveVertex tombstones u: it is no longer Alive and no longer appears
// in any neighbor's Neighbors list.
func (v *AdjacencyView) RemoveVertex(u int) {
	v.alive[u] = false
}

// AddMergedVertex appends a brand-new vertex connected to every id in
// neighbors (which must already be alive), and returns its id.
func (v *AdjacencyView) AddMergedVertex(neighbors []int) int {
	id := len(v.alive)
	v.alive = append(v.alive, true)
	v.neighbors = append(v.neighbors, append([]int(nil), neighbors...))
	for _, w := range neighbors {
		v.neighbors[w] = append(v.neighbors[w], id)
	}
	return id
}

// VertexCount returns the size of the id universe, including tombstoned
// and merged vertices.
func (v *AdjacencyView) VertexCount() int {
	return len(v.alive)
}

// AliveVertices returns every currently-alive vertex id, ascending.
func (v *AdjacencyView) AliveVertices() []int {
	out := make([]int, 0, len(v.alive))
	for u, alive := range v.alive {
		if alive {
			out = append(out, u)
		}
	}
	return out
}

// AdjacencyMatrix materializes the currently-alive subgraph as a dense
// matrix indexed by the same ids as the view (dead rows/columns are left
// false), for handoff to misdp.
func (v *AdjacencyView) AdjacencyMatrix() [][]bool {
	n := v.VertexCount()
	out := make([][]bool, n)
	for i := range out {
		out[i] = make([]bool, n)
	}
	for u := 0; u < n; u++ {
		if !v.Alive(u) {
			continue
		}
		for _, w := range v.Neighbors(u) {
			out[u][w] = true
		}
	}
	return out
}
