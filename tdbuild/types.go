package tdbuild

// Bag holds the (global, original-numbering) vertex ids assigned to one
// tree-decomposition node, in ascending order.
type Bag struct {
	Vertices []int
}

// TD is an approximated tree decomposition: one Bag per entry, with
// Adjacency giving each bag's neighboring bag indices (ascending, deduped).
// RootBag is the bag designated as the decomposition's root (by convention,
// the bag built from face 0).
type TD struct {
	Bags      []Bag
	Adjacency [][]int
	RootBag   int
}
