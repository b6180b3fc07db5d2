// Package misdp computes a maximum independent set over a nice tree
// decomposition by dynamic programming, and offers a brute-force
// Exhaustive fallback for small graphs.
//
// What
//
//   - Table stores, for a decomposition node and a subset of that node's
//     bag, the largest independent-set size achievable in the node's
//     subtree whose intersection with the bag equals that subset exactly.
//     Two backends implement it: NormalTable (map-keyed, any bag width)
//     and FastTable (uint64-bitset-keyed, bag width <= 63).
//   - Solve walks the nice tree decomposition bottom-up, filling the table
//     via the four standard recurrences (leaf, introduce, forget, join),
//     then reconstructs a maximum independent set by walking back down
//     from the best root entry.
//   - Exhaustive brute-forces the maximum independent set of a small
//     adjacency matrix directly, for testing and for graphs too small to
//     bother decomposing.
//
// Why
//
//   - This is the textbook DP for MIS on bounded-treewidth graphs: each
//     table entry is exponential only in the bag width, not in the graph
//     size, which is what makes the whole pipeline (donut extraction,
//     tree decomposition, nice-TD normalization) worthwhile.
//
// Complexity
//
//   - Solve: O(3^w) per bag of width w for the join step (the dominant
//     term), O(nodes) nodes total.
//   - Exhaustive: O(2^n * n).
//
// Errors
//
//   - ErrInvalidNode is returned when a nice-TD node has a child count
//     outside {0, 1, 2}; ErrNoMisFound is returned if the root bag ends up
//     with no recorded table entries (should not happen for a validated
//     nice tree decomposition).
package misdp
