// Package planarmis computes large independent sets on planar graphs.
//
// It implements Baker's PTAS: a planar graph is layered by BFS distance
// from a root, the layering is sliced into k-outerplanar "donuts", each
// donut gets an (exact or approximated) tree decomposition, and a
// dynamic program over the decomposition's nice form solves the donut
// exactly. The per-offset union of donut solutions approximates the
// whole graph's maximum independent set within a factor that tightens
// as k grows.
//
// Subpackages:
//
//	dcel/     — doubly-connected edge list planar embedding
//	bfstree/  — BFS layering and spanning trees
//	donut/    — k-outerplanar band extraction
//	tdbuild/  — tree decomposition construction, exact and approximated
//	nicetd/   — nice tree decomposition normalization
//	misdp/    — independent-set dynamic program over a nice decomposition
//	reduce/   — kernelization (twin, isolated-clique, nodal-fold)
//	graphio/  — plain-text graph loading
//	viz/      — JS and DOT visualization of an embedding
//	ptaslog/  — leveled, optionally file-backed logging
//	cmd/planarmis — the command-line driver wiring all of the above
package planarmis
