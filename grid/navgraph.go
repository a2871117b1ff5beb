package grid

import (
	"fmt"
	"math"

	"github.com/tdickson/sailrouter/core"
	"github.com/tdickson/sailrouter/dijkstra"
)

const (
	navStartID  = "start"
	navFinishID = "finish"
)

func vertexID(r, w int) string {
	return fmt.Sprintf("%d,%d", r, w)
}

// NavGraph builds the grid's bare hop-connectivity as a weighted *core.Graph,
// mirroring the solver's Stage B adjacency (every non-land node in rank r
// connects to every non-land node in rank r+1, unit weight) but stripped of
// wind, speed, and reliability cost. A synthetic start vertex fans out to
// every non-land rank-0 node and every non-land last-rank node fans into a
// synthetic finish vertex, so the whole corridor is reachable from a single
// source/sink pair.
//
// This is a topology-only view used for a cheap feasibility precheck; it
// never substitutes for Solve's cost-aware relaxation.
func (g *Grid) NavGraph() *core.Graph {
	ng := core.NewGraph(core.WithWeighted())
	_ = ng.AddVertex(navStartID)
	_ = ng.AddVertex(navFinishID)

	for r := 0; r < g.R; r++ {
		for w := 0; w < g.W; w++ {
			if !g.IsLand(r, w) {
				_ = ng.AddVertex(vertexID(r, w))
			}
		}
	}

	for w := 0; w < g.W; w++ {
		if !g.IsLand(0, w) {
			_, _ = ng.AddEdge(navStartID, vertexID(0, w), 1)
		}
	}
	for w := 0; w < g.W; w++ {
		if !g.IsLand(g.R-1, w) {
			_, _ = ng.AddEdge(vertexID(g.R-1, w), navFinishID, 1)
		}
	}

	for r := 0; r < g.R-1; r++ {
		for w := 0; w < g.W; w++ {
			if g.IsLand(r, w) {
				continue
			}
			for k := 0; k < g.W; k++ {
				if g.IsLand(r+1, k) {
					continue
				}
				_, _ = ng.AddEdge(vertexID(r, w), vertexID(r+1, k), 1)
			}
		}
	}

	return ng
}

// Reachable reports whether finish can possibly be reached from start
// through the grid's land mask alone, ignoring wind and craft performance.
// It runs Dijkstra over NavGraph from the synthetic start vertex and checks
// whether finish is among the settled distances; callers use this ahead of
// solver.Solve to fail fast on a corridor blocked outright by land, without
// paying for a full relaxation pass first.
func (g *Grid) Reachable() (bool, error) {
	dist, _, err := dijkstra.Dijkstra(g.NavGraph(), dijkstra.Source(navStartID))
	if err != nil {
		return false, err
	}
	d, ok := dist[navFinishID]
	if !ok {
		return false, nil
	}
	return d < math.MaxInt64, nil
}
