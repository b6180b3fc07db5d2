package misdp

// MisSize is a dynamic-table entry: either a concrete achievable
// independent-set size, or the absence of one. Distinguishing "no entry"
// from "entry of size zero" matters because the empty independent set is
// always a legitimate partial solution.
type MisSize struct {
	size  int
	valid bool
}

// Infeasible returns the zero MisSize: no independent set recorded.
func Infeasible() MisSize { return MisSize{} }

// Feasible returns a MisSize recording an achievable size n.
func Feasible(n int) MisSize { return MisSize{size: n, valid: true} }

// Valid reports whether m records an achievable size.
func (m MisSize) Valid() bool { return m.valid }

// Size returns the recorded size. Callers must check Valid first.
func (m MisSize) Size() int { return m.size }

// Table stores, for a decomposition node id and a subset of that node's
// bag (given as a sorted, deduped slice of global vertex ids), the best
// MisSize computed for that (node, subset) pair.
type Table interface {
	// Get returns the entry for (node, subset) and whether it exists.
	Get(node int, subset []int) (MisSize, bool)
	// Put records or overwrites the entry for (node, subset).
	Put(node int, subset []int, size MisSize)
	// Subsets returns every subset that has been Put for node so far. The
	// order is implementation-defined (NormalTable yields insertion
	// order, FastTable yields ascending bitmask order) and callers must
	// not rely on any particular one.
	Subsets(node int) [][]int
}

// Backend selects which Table implementation Solve uses.
type Backend int

const (
	// BackendNormal uses NormalTable, a map-keyed table with no bag-width
	// limit.
	BackendNormal Backend = iota
	// BackendFast uses FastTable, a uint64-bitset-keyed table restricted
	// to bags of width 63 or less.
	BackendFast
)
