// Package nicetd converts an approximated tree decomposition into nice
// form: every node is a Leaf (one vertex, no children), an Introduce or
// Forget node (exactly one child, bags differing by exactly one vertex),
// or a Join node (exactly two children, both with the same bag as the
// parent).
//
// What
//
//   - ToNice(td) walks td's bag tree and, for every node with more than
//     one child, fans it out into a chain of binary Join nodes; for every
//     edge between adjacent bags (whatever their vertex-set difference),
//     inserts a chain of Introduce/Forget nodes changing one vertex at a
//     time; for every leaf bag, appends a chain down to a single vertex.
//   - Validate(n) checks the four node-kind invariants above hold for
//     every node in n, returning ErrInvalidNiceTD on the first violation.
//
// Why
//
//   - The DP in package misdp is defined over exactly these four node
//     kinds; an approximated TD's bags can differ by an arbitrary number
//     of vertices and have arbitrary fan-out, so this normalization step
//     is required before the DP can run.
//
// Complexity
//
//   - ToNice: O(sum of bag sizes) for the chain lengths, plus O(bags) for
//     the join fan-out.
//   - Validate: O(nodes * bag size).
package nicetd
