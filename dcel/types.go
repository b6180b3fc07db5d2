package dcel

// Arc is one directed half-edge of an embedded planar graph.
type Arc struct {
	Src, Dst int // endpoints (vertex indices)
	SrcPort  int // this arc's position within Vertex[Src].Arcs
	DstPort  int // Twin's SrcPort, i.e. this arc's position within Vertex[Dst].Arcs
	Next     int // next arc around Face, in rotation order
	Prev     int // inverse of Next
	Twin     int // the opposite-direction arc between the same two vertices
	Face     int // the face this arc bounds
}

// Vertex holds the arcs leaving it, ordered counter-clockwise (the
// embedding's rotation system).
type Vertex struct {
	Arcs []int // arc indices, in rotation order
}

// Face holds one arc on its boundary; walking Next from it enumerates the
// whole face.
type Face struct {
	Start int
}

// Graph is a built, immutable-shape-until-mutated planar DCEL. All of
// Vertices, Arcs, Faces are dense arenas: valid indices are
// [0, len(...)).
//
// Graph is not safe for concurrent use — see doc.go.
type Graph struct {
	Vertices []Vertex
	Arcs     []Arc
	Faces    []Face
}

// Builder accumulates half-edges before a single Build() pass pairs twins,
// assigns ports, and walks faces.
type Builder struct {
	vertices []Vertex
	arcs     []Arc
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}
