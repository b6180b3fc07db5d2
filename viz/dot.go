package viz

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/katalvlaran/planarmis/nicetd"
)

// WriteDOT renders n as a Graphviz DOT tree: one node per bag, labeled
// with its bag id and vertex set, and one undirected edge per
// parent-child link. The root has no incoming edge.
func WriteDOT(w io.Writer, n *nicetd.Nice) error {
	gv := graphviz.New()
	graph, err := gv.Graph(graphviz.Name("nicetd"), graphviz.StrictUnDirected)
	if err != nil {
		return err
	}
	defer func() {
		_ = graph.Close()
		_ = gv.Close()
	}()

	nodes := make([]*cgraph.Node, len(n.Bags))
	for id, bag := range n.Bags {
		node, err := graph.CreateNode(fmt.Sprintf("B%d", id))
		if err != nil {
			return err
		}
		node.SetLabel(fmt.Sprintf("B%d %s", id, bagLabel(bag.Vertices)))
		nodes[id] = node
	}
	for id, children := range n.Children {
		for _, c := range children {
			if _, err := graph.CreateEdge(fmt.Sprintf("B%d--B%d", id, c), nodes[id], nodes[c]); err != nil {
				return err
			}
		}
	}

	return gv.Render(context.Background(), graph, graphviz.XDOT, w)
}

// bagLabel renders a bag's vertex set as "{v0 v1 ...}", matching the
// visualization contract's brace notation rather than Go's %v brackets.
func bagLabel(vertices []int) string {
	s := fmt.Sprintf("%v", vertices)
	return "{" + s[1:len(s)-1] + "}"
}
