package main

import (
	"github.com/katalvlaran/planarmis/dcel"
	"github.com/katalvlaran/planarmis/misdp"
	"github.com/katalvlaran/planarmis/ptaslog"
)

// runExhaustive brute-forces a maximum independent set over the whole
// graph, ignoring k, -E, and any donut-stage reductions (they only make
// sense for the layered PTAS scheme).
func runExhaustive(g *dcel.Graph, logger *ptaslog.Logger) ([]int, error) {
	adj := adjacencyMatrix(g)
	mis := misdp.Exhaustive(adj)
	logger.Infof("exhaustive: %d vertices, MIS size %d", len(g.Vertices), len(mis))
	return mis, nil
}
