// Package viz renders the pipeline's intermediate structures for
// inspection: the embedded graph plus its spanning tree as a small JSON
// document consumable by a browser-side viewer, and a nice tree
// decomposition as a Graphviz DOT tree.
package viz
