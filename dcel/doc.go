// Package dcel implements a doubly-connected edge list (half-edge) data
// structure for embedded planar graphs.
//
// What
//
//   - A Graph is an arena of Vertex, Arc (half-edge), and Face records,
//     addressed by dense int indices — never pointers.
//   - Vertex.Arcs lists the arcs leaving that vertex in rotation
//     (counter-clockwise) order; this order is the embedding.
//   - Arc carries Src, Dst, Next, Prev, Twin, Face. Twin(Twin(a)) == a,
//     Next(Prev(a)) == a and Prev(Next(a)) == a always hold for a built
//     Graph.
//   - Face.Start is one arc on the face's boundary; walking Next from it
//     returns to Start after exactly the face's arc count steps.
//
// Why
//
//   - The BFS layering, donut extraction, and tree-decomposition stages
//     of this repository all need to walk faces and vertex rotations in
//     O(1) per step; a half-edge structure is the standard representation
//     for that, and index-arenas avoid the pointer-chasing and GC
//     pressure of a graph built from *Vertex/*Arc nodes.
//
// Building
//
//	b := dcel.NewBuilder()
//	_ = b.AddHalfEdge(0, 1)
//	_ = b.AddHalfEdge(1, 0)
//	g, err := b.Build()
//
// Each undirected edge is added as two AddHalfEdge calls, one per
// direction, in the order the caller wants them to appear in the
// resulting rotation. Build pairs every arc with its reverse-direction
// twin, assigns ports (the arc's position within its source vertex's
// rotation), and walks faces.
//
// Concurrency
//
//   - Graph is not safe for concurrent use. It is built once by a single
//     goroutine and then either read or mutated by a single owner; no
//     internal locking is performed. This is a deliberate deviation from
//     the rest of this codebase's ancestry (core.Graph there guards itself
//     with sync.RWMutex for concurrent callers) — the PTAS pipeline this
//     package serves is strictly single-threaded (see the repository's
//     concurrency notes), so the lock would be pure overhead.
//
// Errors
//
//   - ErrMalformedEmbedding: an arc has no twin, or a face walk fails to
//     close.
//   - ErrIndexOutOfRange: a vertex/arc index is outside the arena.
//   - ErrPreconditionViolated: a mutation precondition (e.g. merging a
//     vertex with itself) does not hold.
package dcel
