package donut

import "github.com/katalvlaran/planarmis/dcel"

// Band is a contiguous run of BFS levels [Lo, Hi] (inclusive) surviving
// the deletion of every (k+1)-th level at phase Offset.
type Band struct {
	Offset int
	Lo, Hi int
}

// Donut is the sub-DCEL induced by one Band, plus the mappings needed to
// translate local vertex/arc indices back to the original graph.
type Donut struct {
	*dcel.Graph
	VertexMapping []int // local vertex id -> global vertex id
	ArcMapping    []int // local arc id -> global arc id
	MinLevel      int   // the band's Lo
}
