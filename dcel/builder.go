package dcel

import "fmt"

// AddHalfEdge appends one directed arc src -> dst to the builder. An
// undirected edge is expressed as two calls, one per direction; the order
// calls are made in for a given src determines that vertex's rotation
// order.
//
// If a reverse-direction arc dst -> src has already been added, the two
// arcs are paired as twins immediately (this mirrors the original
// construction algorithm: twin discovery happens eagerly, at push time,
// not as a separate pass).
func (b *Builder) AddHalfEdge(src, dst int) error {
	if src < 0 || dst < 0 {
		return fmt.Errorf("%w: AddHalfEdge(%d, %d)", ErrIndexOutOfRange, src, dst)
	}

	b.arcs = append(b.arcs, Arc{Src: src, Dst: dst, Next: -1, Prev: -1, Twin: -1, Face: -1})
	current := len(b.arcs) - 1

	for len(b.vertices) <= src {
		b.vertices = append(b.vertices, Vertex{})
	}
	srcPort := len(b.vertices[src].Arcs)
	b.vertices[src].Arcs = append(b.vertices[src].Arcs, current)
	b.arcs[current].SrcPort = srcPort

	if len(b.vertices) > dst {
		for _, candidate := range b.vertices[dst].Arcs {
			if b.arcs[candidate].Dst == src {
				b.arcs[current].Twin = candidate
				b.arcs[candidate].Twin = current
				break
			}
		}
	}

	return nil
}

// Build pairs destination ports and walks faces, returning the finished
// Graph. It returns ErrMalformedEmbedding if any arc never found a twin, or
// if a face walk does not close within len(arcs) steps.
func (b *Builder) Build() (*Graph, error) {
	if err := b.setDestPorts(); err != nil {
		return nil, err
	}

	g := &Graph{
		Vertices: b.vertices,
		Arcs:     b.arcs,
		Faces:    nil,
	}

	if err := g.buildFaces(); err != nil {
		return nil, err
	}

	return g, nil
}

// setDestPorts fills in Arc.DstPort for every arc from its twin's SrcPort.
func (b *Builder) setDestPorts() error {
	for i := range b.arcs {
		twin := b.arcs[i].Twin
		if twin < 0 {
			return fmt.Errorf("%w: arc %d (%d -> %d) has no twin", ErrMalformedEmbedding, i, b.arcs[i].Src, b.arcs[i].Dst)
		}
		b.arcs[i].DstPort = b.arcs[twin].SrcPort
	}

	return nil
}

// buildFaces walks every arc exactly once, assigning Face/Next/Prev along
// the way. An arc's next-in-face is found by stepping one position past its
// twin's destination port in the destination vertex's rotation — the
// standard half-edge face-traversal rule.
func (g *Graph) buildFaces() error {
	n := len(g.Arcs)
	for start := 0; start < n; start++ {
		if g.Arcs[start].Face >= 0 {
			continue
		}

		faceID := len(g.Faces)
		cur := start
		steps := 0
		for {
			g.Arcs[cur].Face = faceID
			next, err := g.nextArcInFace(cur)
			if err != nil {
				return err
			}
			g.Arcs[cur].Next = next
			g.Arcs[next].Prev = cur
			cur = next
			steps++
			if cur == start {
				break
			}
			if steps > n {
				return fmt.Errorf("%w: face starting at arc %d did not close", ErrMalformedEmbedding, start)
			}
		}
		g.Faces = append(g.Faces, Face{Start: start})
	}

	return nil
}

// nextArcInFace returns the arc immediately following a in its face's
// boundary walk.
func (g *Graph) nextArcInFace(a int) (int, error) {
	dst := g.Arcs[a].Dst
	if dst < 0 || dst >= len(g.Vertices) {
		return -1, fmt.Errorf("%w: arc %d targets unknown vertex %d", ErrMalformedEmbedding, a, dst)
	}
	deg := len(g.Vertices[dst].Arcs)
	if deg == 0 {
		return -1, fmt.Errorf("%w: vertex %d has no incident arcs", ErrMalformedEmbedding, dst)
	}
	pos := (g.Arcs[a].DstPort + 1) % deg

	return g.Vertices[dst].Arcs[pos], nil
}
