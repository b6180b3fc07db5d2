// Package tdbuild builds an approximated tree decomposition of a dcel.Graph
// from its spanning tree, one bag per face.
//
// What
//
//   - Build(g, st) creates one bag per face of g, containing the face's
//     boundary vertices plus, for every such vertex, its entire path to
//     the spanning-tree root. Bag adjacency follows the dual graph of
//     non-tree edges: two bags are adjacent if their faces share an edge
//     that is not part of the spanning tree.
//   - BuildExact(donut) supplements Build with an alternative construction
//     reserved for single donuts: triangulate the donut first, then take
//     one bag per triangular face (width exactly 3), with adjacency from
//     every shared edge (no spanning-tree filtering, no root paths).
//
// Why
//
//   - This is the standard "one bag per face plus root path" construction
//     for bounding the treewidth of a graph embedded with bounded
//     face-to-root distance (itself bounded by the donut's width).
//
// Complexity
//
//   - Build:       O(F * depth) where F = faces, depth = max face-to-root
//     path length.
//   - BuildExact:  O(F) after triangulation (bags have constant size).
package tdbuild
