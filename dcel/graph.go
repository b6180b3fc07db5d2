package dcel

import (
	"fmt"
)

// FaceWalk returns the arc indices bounding the face reached by walking
// Next from start, in order, ending just before returning to start.
func (g *Graph) FaceWalk(start int) ([]int, error) {
	if start < 0 || start >= len(g.Arcs) {
		return nil, fmt.Errorf("%w: FaceWalk(%d)", ErrIndexOutOfRange, start)
	}

	walk := make([]int, 0, 4)
	cur := start
	for {
		walk = append(walk, cur)
		cur = g.Arcs[cur].Next
		if cur == start {
			break
		}
		if len(walk) > len(g.Arcs) {
			return nil, fmt.Errorf("%w: face walk from arc %d did not close", ErrMalformedEmbedding, start)
		}
	}

	return walk, nil
}

// RemoveVertex deletes vertex u and every arc incident to it, renumbering
// all surviving vertices and arcs to keep the arenas dense, then rebuilds
// face structure from scratch for what remains.
func (g *Graph) RemoveVertex(u int) error {
	if u < 0 || u >= len(g.Vertices) {
		return fmt.Errorf("%w: RemoveVertex(%d)", ErrIndexOutOfRange, u)
	}

	removedArcs := make(map[int]bool)
	for i := range g.Arcs {
		if g.Arcs[i].Src == u || g.Arcs[i].Dst == u {
			removedArcs[i] = true
		}
	}

	return g.removeVertexAndArcs(u, removedArcs)
}

// MergeVertices folds v into u: v's arcs not already connecting to a
// neighbor of u are reparented onto u (preserving v's cyclic order,
// spliced into u's rotation at the position the direct u-v edge occupied);
// arcs that would duplicate an existing u-neighbor are discarded. v and the
// direct u-v edge are then removed.
func (g *Graph) MergeVertices(u, v int) error {
	if u == v {
		return fmt.Errorf("%w: MergeVertices(%d, %d)", ErrPreconditionViolated, u, v)
	}
	if u < 0 || u >= len(g.Vertices) || v < 0 || v >= len(g.Vertices) {
		return fmt.Errorf("%w: MergeVertices(%d, %d)", ErrIndexOutOfRange, u, v)
	}

	uvArc, posOfV := -1, -1
	for pos, a := range g.Vertices[u].Arcs {
		if g.Arcs[a].Dst == v {
			uvArc, posOfV = a, pos
			break
		}
	}
	vuArc, posOfU := -1, -1
	for pos, a := range g.Vertices[v].Arcs {
		if g.Arcs[a].Dst == u {
			vuArc, posOfU = a, pos
			break
		}
	}
	if uvArc < 0 || vuArc < 0 {
		return fmt.Errorf("%w: MergeVertices(%d, %d): no edge between them", ErrPreconditionViolated, u, v)
	}

	uNeighbors := make(map[int]bool, len(g.Vertices[u].Arcs))
	for _, a := range g.Vertices[u].Arcs {
		uNeighbors[g.Arcs[a].Dst] = true
	}

	deleted := map[int]bool{uvArc: true, vuArc: true}
	var bendOver []int

	vDeg := len(g.Vertices[v].Arcs)
	for step := 1; step < vDeg; step++ {
		a := g.Vertices[v].Arcs[(posOfU+step)%vDeg]
		dst := g.Arcs[a].Dst
		if uNeighbors[dst] {
			deleted[a] = true
			deleted[g.Arcs[a].Twin] = true
		} else {
			bendOver = append(bendOver, a)
		}
	}

	for _, a := range bendOver {
		g.Arcs[a].Src = u
		g.Arcs[g.Arcs[a].Twin].Dst = u
	}

	newUArcs := make([]int, 0, len(g.Vertices[u].Arcs)-1+len(bendOver))
	newUArcs = append(newUArcs, g.Vertices[u].Arcs[:posOfV]...)
	newUArcs = append(newUArcs, bendOver...)
	newUArcs = append(newUArcs, g.Vertices[u].Arcs[posOfV+1:]...)
	g.Vertices[u].Arcs = newUArcs

	return g.removeVertexAndArcs(v, deleted)
}

// removeVertexAndArcs is the shared renumbering pass behind RemoveVertex
// and MergeVertices: it drops removedVertex and every arc in removedArcs,
// remaps every surviving index, recomputes SrcPort/DstPort, and rebuilds
// faces from scratch.
func (g *Graph) removeVertexAndArcs(removedVertex int, removedArcs map[int]bool) error {
	arcIndexMap := make([]int, len(g.Arcs))
	newArcs := make([]Arc, 0, len(g.Arcs)-len(removedArcs))
	for i, a := range g.Arcs {
		if removedArcs[i] {
			arcIndexMap[i] = -1
			continue
		}
		arcIndexMap[i] = len(newArcs)
		newArcs = append(newArcs, a)
	}

	remapVertex := func(old int) int {
		if old < removedVertex {
			return old
		}
		return old - 1
	}

	for i := range newArcs {
		a := &newArcs[i]
		a.Src = remapVertex(a.Src)
		a.Dst = remapVertex(a.Dst)
		a.Twin = arcIndexMap[a.Twin]
		a.Next, a.Prev, a.Face = -1, -1, -1
	}

	newVertices := make([]Vertex, 0, len(g.Vertices)-1)
	for vi, v := range g.Vertices {
		if vi == removedVertex {
			continue
		}
		arcs := make([]int, 0, len(v.Arcs))
		for _, a := range v.Arcs {
			if na := arcIndexMap[a]; na >= 0 {
				arcs = append(arcs, na)
			}
		}
		newVertices = append(newVertices, Vertex{Arcs: arcs})
	}

	for vi := range newVertices {
		for port, a := range newVertices[vi].Arcs {
			newArcs[a].SrcPort = port
		}
	}
	for i := range newArcs {
		newArcs[i].DstPort = newArcs[newArcs[i].Twin].SrcPort
	}

	g.Vertices = newVertices
	g.Arcs = newArcs
	g.Faces = nil

	return g.buildFaces()
}

// Triangulate adds diagonals to every face with more than three arcs until
// all faces are triangles, fan-triangulating from each face's first
// boundary vertex. It returns the arc index at which added arcs begin, so
// callers can distinguish original arcs from those Triangulate introduced
// (the arena is append-only for this operation: arcs [0, addedFrom) are
// the originals, which keep their indices though their Next/Prev/Face
// links and ports are updated, and [addedFrom, len(Arcs)) are new
// diagonals).
func (g *Graph) Triangulate() (addedFrom int, err error) {
	addedFrom = len(g.Arcs)

	faceID := 0
	for faceID < len(g.Faces) {
		walk, werr := g.FaceWalk(g.Faces[faceID].Start)
		if werr != nil {
			return addedFrom, werr
		}
		if len(walk) <= 3 {
			faceID++
			continue
		}
		if err = g.splitFace(faceID, walk); err != nil {
			return addedFrom, err
		}
		// Do not advance faceID: the remainder of this face (now shorter)
		// keeps the same id and is revisited until it, too, is a triangle.
	}

	return addedFrom, nil
}

// splitFace adds one diagonal from the first vertex of a face's boundary
// walk to its third vertex, splitting off a triangle and leaving the
// remainder (one vertex shorter) under faceID.
func (g *Graph) splitFace(faceID int, walk []int) error {
	a0, a1, a2 := walk[0], walk[1], walk[2]
	vi, vj := g.Arcs[a0].Src, g.Arcs[a2].Src // v0 and v2

	g.Arcs = append(g.Arcs, Arc{Src: vi, Dst: vj}, Arc{Src: vj, Dst: vi})
	newIJ, newJI := len(g.Arcs)-2, len(g.Arcs)-1
	g.Arcs[newIJ].Twin, g.Arcs[newJI].Twin = newJI, newIJ

	// Splice newIJ into v_i's rotation immediately before a0 (between the
	// arc that used to enter v_i on this face and a0, where the new
	// diagonal now belongs); splice newJI into v_j's rotation immediately
	// before a2, symmetrically.
	insertBefore(&g.Vertices[vi].Arcs, a0, newIJ)
	insertBefore(&g.Vertices[vj].Arcs, a2, newJI)
	renumberPorts(g, vi)
	renumberPorts(g, vj)

	// Triangle face: a0 (v0->v1), a1 (v1->v2), newJI (v2->v0).
	triID := len(g.Faces)
	g.Faces = append(g.Faces, Face{Start: a0})
	g.Arcs[a0].Face, g.Arcs[a1].Face, g.Arcs[newJI].Face = triID, triID, triID
	g.Arcs[a0].Next, g.Arcs[a1].Next, g.Arcs[newJI].Next = a1, newJI, a0
	g.Arcs[a1].Prev, g.Arcs[newJI].Prev, g.Arcs[a0].Prev = a0, a1, newJI

	// Remainder face: newIJ (v0->v2), a2, ..., a_{k-1} (back to v0).
	rest := walk[2:]
	g.Faces[faceID].Start = newIJ
	g.Arcs[newIJ].Face = faceID
	g.Arcs[newIJ].Next = rest[0]
	g.Arcs[rest[0]].Prev = newIJ
	last := rest[len(rest)-1]
	g.Arcs[last].Next = newIJ
	g.Arcs[newIJ].Prev = last
	for _, a := range rest {
		g.Arcs[a].Face = faceID
	}

	return nil
}

// insertBefore inserts value into arcs immediately before the first
// occurrence of marker.
func insertBefore(arcs *[]int, marker, value int) {
	s := *arcs
	pos := 0
	for i, a := range s {
		if a == marker {
			pos = i
			break
		}
	}
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = value
	*arcs = s
}

// renumberPorts refreshes SrcPort for every arc leaving v and DstPort for
// their twins after v's rotation list has been spliced.
func renumberPorts(g *Graph, v int) {
	for port, a := range g.Vertices[v].Arcs {
		g.Arcs[a].SrcPort = port
		g.Arcs[g.Arcs[a].Twin].DstPort = port
	}
}

// AdjacencyMatrix returns a dense n x n boolean adjacency matrix (n =
// len(Vertices)), symmetric since every edge contributes a twin pair.
func (g *Graph) AdjacencyMatrix() [][]bool {
	n := len(g.Vertices)
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for _, a := range g.Arcs {
		m[a.Src][a.Dst] = true
	}

	return m
}

// Clone returns a structural deep copy of g.
func (g *Graph) Clone() *Graph {
	cp := &Graph{
		Vertices: make([]Vertex, len(g.Vertices)),
		Arcs:     make([]Arc, len(g.Arcs)),
		Faces:    make([]Face, len(g.Faces)),
	}
	for i, v := range g.Vertices {
		cp.Vertices[i] = Vertex{Arcs: append([]int(nil), v.Arcs...)}
	}
	copy(cp.Arcs, g.Arcs)
	copy(cp.Faces, g.Faces)

	return cp
}

// NeighborArcs returns the arc indices leaving v, in rotation order.
func (g *Graph) NeighborArcs(v int) []int {
	return g.Vertices[v].Arcs
}
