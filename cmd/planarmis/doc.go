// Command planarmis computes a maximum independent set on a planar graph,
// either exactly (small graphs, brute force) or approximately via Baker's
// PTAS. It wires graphio, dcel, bfstree, donut, tdbuild, nicetd, misdp,
// reduce, viz, and ptaslog together. The library packages import one
// another along the pipeline (tdbuild uses dcel, bfstree and donut;
// misdp uses nicetd; and so on); only this command imports ptaslog.
package main
