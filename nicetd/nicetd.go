package nicetd

import (
	"sort"

	"github.com/katalvlaran/planarmis/tdbuild"
)

// ToNice converts an approximated tree decomposition into nice form. Every
// node with more than one child is fanned out into a chain of binary join
// nodes; every edge between adjacent bags, whatever their vertex-set
// difference, is bridged by a chain of introduce/forget nodes changing one
// vertex at a time; every leaf bag is extended down to a single vertex.
func ToNice(td *tdbuild.TD) (*Nice, error) {
	if len(td.Bags) == 0 {
		return &Nice{Root: -1}, nil
	}

	kidsOf := childrenOf(td)
	b := &builder{}
	root := b.convert(td.RootBag, td, kidsOf)

	return &Nice{Bags: b.bags, Children: b.children, Root: root}, nil
}

// childrenOf recovers the rooted tree structure implied by td's (symmetric)
// Adjacency via a breadth-first walk from td.RootBag. The approximated
// construction in package tdbuild guarantees Adjacency forms a tree, so
// this walk visits every bag exactly once.
func childrenOf(td *tdbuild.TD) [][]int {
	n := len(td.Bags)
	children := make([][]int, n)
	visited := make([]bool, n)
	queue := []int{td.RootBag}
	visited[td.RootBag] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range td.Adjacency[cur] {
			if visited[nb] {
				continue
			}
			visited[nb] = true
			children[cur] = append(children[cur], nb)
			queue = append(queue, nb)
		}
	}

	return children
}

// builder accumulates the nice-TD's bags and children lists as convert
// recurses over the approximated TD.
type builder struct {
	bags     []Bag
	children [][]int
}

func (b *builder) newBag(vertices []int) int {
	id := len(b.bags)
	b.bags = append(b.bags, Bag{Vertices: append([]int(nil), vertices...)})
	b.children = append(b.children, nil)

	return id
}

func (b *builder) link(parent, child int) {
	b.children[parent] = append(b.children[parent], child)
}

// convert builds the nice-TD subtree rooted at oldID and returns the id of
// the new node whose bag equals td.Bags[oldID].Vertices exactly.
func (b *builder) convert(oldID int, td *tdbuild.TD, kidsOf [][]int) int {
	full := td.Bags[oldID].Vertices
	anchor := b.newBag(full)
	kids := kidsOf[oldID]

	switch {
	case len(kids) == 0:
		b.attachLeafChain(anchor, full)
	case len(kids) == 1:
		childAnchor := b.convert(kids[0], td, kidsOf)
		b.attachBridge(anchor, full, td.Bags[kids[0]].Vertices, childAnchor)
	default:
		parent := anchor
		for i, childOld := range kids {
			last := i == len(kids)-1
			if !last {
				left := b.newBag(full)
				right := b.newBag(full)
				b.link(parent, left)
				b.link(parent, right)
				childAnchor := b.convert(childOld, td, kidsOf)
				b.attachBridge(left, full, td.Bags[childOld].Vertices, childAnchor)
				parent = right
			} else {
				childAnchor := b.convert(childOld, td, kidsOf)
				b.attachBridge(parent, full, td.Bags[childOld].Vertices, childAnchor)
			}
		}
	}

	return anchor
}

// attachBridge links parentAnchor (bag s1) down to childAnchor (bag s2,
// already built) through a chain of new nodes that each differ from their
// neighbor by exactly one vertex.
func (b *builder) attachBridge(parentAnchor int, s1, s2 []int, childAnchor int) {
	chain := buildBridge(s1, s2)
	cur := parentAnchor
	for i := 1; i < len(chain)-1; i++ {
		node := b.newBag(chain[i])
		b.link(cur, node)
		cur = node
	}
	b.link(cur, childAnchor)
}

// attachLeafChain extends anchor (bag full) down to a childless node
// holding a single vertex of full, via the same one-vertex-at-a-time
// bridge used between internal bags.
func (b *builder) attachLeafChain(anchor int, full []int) {
	var end []int
	if len(full) > 0 {
		end = []int{full[0]}
	}
	chain := buildBridge(full, end)
	cur := anchor
	for i := 1; i < len(chain)-1; i++ {
		node := b.newBag(chain[i])
		b.link(cur, node)
		cur = node
	}
	leaf := b.newBag(chain[len(chain)-1])
	b.link(cur, leaf)
}

// buildBridge returns the sequence of vertex sets connecting s1 to s2, each
// consecutive pair differing by exactly one vertex. chain[0] == s1 and
// chain[len(chain)-1] == s2. If s1 and s2 are identical, a single
// synthetic intermediate set is inserted so the two endpoints still end up
// one hop apart from something, since a nice-TD edge must change the bag.
func buildBridge(s1, s2 []int) [][]int {
	_, a, c := intersectDiff(s1, s2)
	if len(a) == 0 && len(c) == 0 {
		if len(s1) == 0 {
			return [][]int{{}, {}}
		}
		mid := removeElem(s1, s1[0])

		return [][]int{cloneInts(s1), mid, cloneInts(s2)}
	}

	chain := [][]int{cloneInts(s1)}
	cur := cloneInts(s1)
	for _, v := range a {
		cur = removeElem(cur, v)
		chain = append(chain, cloneInts(cur))
	}
	for _, v := range c {
		cur = insertSorted(cur, v)
		chain = append(chain, cloneInts(cur))
	}

	return chain
}

// intersectDiff returns s1 ∩ s2, s1 \ s2, and s2 \ s1, all sorted ascending.
// s1 and s2 must already be sorted ascending (tdbuild.Bag's invariant).
func intersectDiff(s1, s2 []int) (inter, only1, only2 []int) {
	i, j := 0, 0
	for i < len(s1) && j < len(s2) {
		switch {
		case s1[i] == s2[j]:
			inter = append(inter, s1[i])
			i++
			j++
		case s1[i] < s2[j]:
			only1 = append(only1, s1[i])
			i++
		default:
			only2 = append(only2, s2[j])
			j++
		}
	}
	only1 = append(only1, s1[i:]...)
	only2 = append(only2, s2[j:]...)

	return inter, only1, only2
}

func removeElem(s []int, v int) []int {
	out := make([]int, 0, len(s))
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}

	return out
}

func insertSorted(s []int, v int) []int {
	idx := sort.SearchInts(s, v)
	out := make([]int, 0, len(s)+1)
	out = append(out, s[:idx]...)
	out = append(out, v)
	out = append(out, s[idx:]...)

	return out
}

func cloneInts(s []int) []int {
	return append([]int(nil), s...)
}
