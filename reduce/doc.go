// Package reduce applies size-reducing graph transformations ahead of the
// tree-decomposition pipeline, shrinking the vertex count the rest of the
// pipeline has to deal with without changing the maximum independent set
// size (up to the bookkeeping Lift restores).
//
// What
//
//   - AdjacencyView is a tombstone-on-delete adjacency-list view: deleting
//     a vertex marks it gone without renumbering anything else, so vertex
//     ids stay stable across a whole reduction sequence.
//   - Reduce(view, kinds) repeatedly applies the requested reduction kinds
//     (isolated-clique, twin, nodal-fold) to a fixpoint, recording each
//     applied reduction on a LIFO stack.
//   - Result.Lift(mis) replays that stack in reverse, turning an
//     independent set of the reduced graph back into one of the original.
//
// Why
//
//   - Each reduction kind removes vertices whose membership in some
//     maximum independent set can be decided locally (isolated vertices
//     and their neighborhoods, twin pairs, degree-2 folds), so running
//     them first can shrink the graph the donut/tree-decomposition
//     pipeline has to handle, without affecting correctness.
//
// Complexity
//
//   - Each reduction kind scans the alive vertices for a candidate (the
//     twin scan compares pairs of vertices, so it is quadratic in V);
//     Reduce applies reductions one at a time, rescanning after each,
//     and repeats until a pass finds nothing to reduce.
package reduce
