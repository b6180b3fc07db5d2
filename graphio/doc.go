// Package graphio loads a planar graph's edge list from a simple
// line-oriented text format into a dcel.Builder, ready for Build.
//
// Format: the first line is the vertex count n, the second line is the
// edge count m, followed by exactly 2*m lines, each "u v" giving one
// directed half-edge. Each undirected edge must appear as its own two
// half-edges (one per direction), and the embedding's rotation order is
// exactly the order half-edges are read, matching dcel.Builder's own
// eager-twin-pairing contract.
package graphio
