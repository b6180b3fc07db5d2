// Package donut extracts k-outerplanar "donut" sub-embeddings from a
// dcel.Graph, banding BFS levels per Baker's layering technique.
//
// What
//
//   - DonutsForK(st, k) partitions the BFS levels of a spanning tree into
//     bands: for each of the k+1 phase offsets i, every (k+1)-th level
//     (those congruent to i mod (k+1)) is conceptually deleted, and the
//     surviving runs of at most k consecutive levels become Bands.
//   - ExtractDonut(g, st, band) builds the sub-DCEL induced by the
//     vertices in that band (only arcs with both endpoints inside the
//     band survive), preserving each kept vertex's relative rotation
//     order, along with the local-to-global vertex/arc index mappings
//     a caller needs to lift results back to the original graph.
//
// Why
//
//   - A graph banded into k consecutive BFS levels is k-outerplanar,
//     which bounds the treewidth of its approximated tree decomposition —
//     the structural property the whole PTAS pipeline depends on.
//
// Complexity
//
//   - DonutsForK:  O(V) per offset, O(k*V) total.
//   - ExtractDonut: O(V_band + E_band).
package donut
