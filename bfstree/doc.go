// Package bfstree computes a breadth-first spanning tree over a dcel.Graph,
// recording each vertex's level and the arc that discovered it.
//
// What
//
//   - BFS(g, root) visits every vertex reachable from root, in rotation
//     order per vertex (see dcel's Vertex.Arcs ordering), producing a
//     SpanningTree.
//   - SpanningTree.Contains(arc) reports whether an arc (in either
//     direction) belongs to the tree.
//   - SpanningTree.Level(v) / DiscoveredBy(v) / MaxLevel() expose the
//     layering this repository's donut-extraction stage bands over.
//
// Why
//
//   - The BFS layer of each vertex is the input to Baker's layering
//     technique: donuts are bands of consecutive layers, found by deleting
//     every (k+1)-th layer.
//
// Determinism
//
//	Because dcel.Vertex.Arcs is a fixed rotation order, enumerating a
//	vertex's neighbors in that order makes visit order, level assignment,
//	and discovered-by arcs fully reproducible for a given embedding.
//
// Complexity
//
//   - Time:  O(V + E).
//   - Space: O(V) for the queue and level/discovered-by tables.
//
// Errors
//
//   - ErrGraphNil: g is nil.
//   - ErrRootOutOfRange: root is outside [0, len(g.Vertices)).
package bfstree
