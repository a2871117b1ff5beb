package routing

import (
	"context"
	"errors"
	"math"

	"github.com/tdickson/sailrouter/craft"
	"github.com/tdickson/sailrouter/geo"
	"github.com/tdickson/sailrouter/grid"
	"github.com/tdickson/sailrouter/solver"
)

// emptyArrival builds an all-unreached arrival surface for the land-blocked
// precheck path, where Solve never ran and so never produced a *solver.State.
func emptyArrival(g *grid.Grid) [][]float64 {
	out := make([][]float64, g.R)
	for r := range out {
		out[r] = make([]float64, g.W)
		for w := range out[r] {
			out[r][w] = math.Inf(1)
		}
	}
	return out
}

// Solve builds on solver.Solve: it runs the solve and, on an unreachable
// finish, wraps the partial arrival surface into a *VoyageFailedError
// instead of surfacing the bare solver.ErrVoyageFailed sentinel.
func Solve(ctx context.Context, g *grid.Grid, start, finish geo.Location, env solver.Environment, c *craft.Craft, opts ...solver.Option) (*Route, error) {
	reachable, err := g.Reachable()
	if err != nil {
		return nil, err
	}
	if !reachable {
		return nil, &VoyageFailedError{Arrival: emptyArrival(g)}
	}

	res, err := solver.Solve(ctx, g, start, finish, env, c, opts...)
	if err != nil {
		if errors.Is(err, solver.ErrVoyageFailed) {
			return nil, &VoyageFailedError{Arrival: res.State.ArrivalGrid()}
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, &VoyageFailedError{Arrival: res.State.ArrivalGrid(), Err: err}
		}
		return nil, err
	}

	return &Route{
		JourneyTime: res.JourneyTime,
		Arrival:     res.State.ArrivalGrid(),
		PathLon:     res.PathLon,
		PathLat:     res.PathLat,
	}, nil
}

// Isochrones derives, for each rank, the (lon, lat) coordinate of the node
// with the earliest arrival, provided that arrival is at or before elapsed —
// the classic isochrone-chart driver output. elapsed is compared directly
// with the arrival values, so it is on their clock (departure time plus
// elapsed hours); arrival must be the R×W matrix produced by a solve over
// the same grid g.
//
// The returned slice has one entry per rank whose earliest arrival is
// within elapsed; ranks with no such node are omitted.
func Isochrones(g *grid.Grid, arrival [][]float64, elapsed float64) [][2]float64 {
	out := make([][2]float64, 0, g.R)

	for r := 0; r < g.R; r++ {
		bestW := -1
		best := elapsed
		for w := 0; w < g.W; w++ {
			t := arrival[r][w]
			if t <= best {
				best = t
				bestW = w
			}
		}
		if bestW < 0 {
			continue
		}
		node := g.Nodes[r][bestW]
		out = append(out, [2]float64{node.Lon, node.Lat})
	}

	return out
}
