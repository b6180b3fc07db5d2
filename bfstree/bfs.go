package bfstree

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/planarmis/dcel"
)

// queueItem pairs a discovered vertex with its level and the arc that
// discovered it (-1 for the root).
type queueItem struct {
	vertex         int
	level          int
	discoveredByID int
}

// BFS runs breadth-first search over g starting at root, visiting each
// vertex's neighbors in rotation order (g.Vertices[v].Arcs), and returns
// the resulting SpanningTree. If g is disconnected, vertices outside
// root's component are simply never reached: their Level is -1 and
// DiscoveredBy reports false (as it also does for root), rather than
// BFS failing outright. Callers that need every vertex covered should
// run BFS again from an unreached vertex (see SpanningTree.Level) until
// none remain.
func BFS(g *dcel.Graph, root int) (*SpanningTree, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if root < 0 || root >= len(g.Vertices) {
		return nil, ErrRootOutOfRange
	}

	n := len(g.Vertices)
	st := &SpanningTree{
		root:         root,
		containsArc:  make([]bool, len(g.Arcs)),
		level:        make([]int, n),
		discoveredBy: make([]int, n),
	}
	for i := range st.level {
		st.level[i] = -1
		st.discoveredBy[i] = -1
	}

	queue := linkedlistqueue.New()
	st.level[root] = 0
	queue.Enqueue(queueItem{vertex: root, level: 0, discoveredByID: -1})
	st.layers = append(st.layers, []int{root})

	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		item := raw.(queueItem)

		for _, arcID := range g.Vertices[item.vertex].Arcs {
			arc := g.Arcs[arcID]
			nbr := arc.Dst
			if st.level[nbr] >= 0 {
				continue
			}

			nextLevel := item.level + 1
			st.level[nbr] = nextLevel
			st.discoveredBy[nbr] = arcID
			st.containsArc[arcID] = true
			st.containsArc[arc.Twin] = true
			if nextLevel > st.maxLevel {
				st.maxLevel = nextLevel
			}
			for len(st.layers) <= nextLevel {
				st.layers = append(st.layers, nil)
			}
			st.layers[nextLevel] = append(st.layers[nextLevel], nbr)

			queue.Enqueue(queueItem{vertex: nbr, level: nextLevel, discoveredByID: arcID})
		}
	}

	return st, nil
}
