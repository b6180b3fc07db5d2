package nicetd

import "fmt"

// Validate checks that every node of n satisfies exactly one of the four
// nice-tree-decomposition node shapes: leaf (no children, one vertex),
// introduce (one child, bag = child's bag plus one vertex), forget (one
// child, bag = child's bag minus one vertex), or join (two children, both
// sharing the node's own bag exactly). It returns ErrInvalidNiceTD, wrapped
// with the offending node id, on the first violation.
func Validate(n *Nice) error {
	if n.Root < 0 {
		if len(n.Bags) != 0 {
			return fmt.Errorf("%w: node 0: negative root with non-empty tree", ErrInvalidNiceTD)
		}
		return nil
	}

	for id, bag := range n.Bags {
		children := n.Children[id]
		switch len(children) {
		case 0:
			if len(bag.Vertices) != 1 {
				return fmt.Errorf("%w: node %d: leaf must hold exactly one vertex, has %d", ErrInvalidNiceTD, id, len(bag.Vertices))
			}
		case 1:
			child := n.Bags[children[0]].Vertices
			if !isSingleVertexDiff(bag.Vertices, child) {
				return fmt.Errorf("%w: node %d: introduce/forget bag must differ from its child by exactly one vertex", ErrInvalidNiceTD, id)
			}
		case 2:
			left := n.Bags[children[0]].Vertices
			right := n.Bags[children[1]].Vertices
			if !equalVertices(bag.Vertices, left) || !equalVertices(bag.Vertices, right) {
				return fmt.Errorf("%w: node %d: join's two children must both share its own bag", ErrInvalidNiceTD, id)
			}
		default:
			return fmt.Errorf("%w: node %d: has %d children, want 0, 1, or 2", ErrInvalidNiceTD, id, len(children))
		}
	}

	return nil
}

// isSingleVertexDiff reports whether bag and child differ by exactly one
// vertex in one direction: either bag = child + {v} or child = bag + {v}.
func isSingleVertexDiff(bag, child []int) bool {
	switch {
	case len(bag) == len(child)+1:
		return isSubsetSorted(child, bag)
	case len(child) == len(bag)+1:
		return isSubsetSorted(bag, child)
	default:
		return false
	}
}

func isSubsetSorted(small, big []int) bool {
	i := 0
	for _, v := range small {
		for i < len(big) && big[i] < v {
			i++
		}
		if i >= len(big) || big[i] != v {
			return false
		}
		i++
	}

	return true
}

func equalVertices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
