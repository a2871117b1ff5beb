package grid

import (
	"github.com/tdickson/sailrouter/geo"
)

// Build constructs the R×W curvilinear grid between start and finish.
//
// Algorithm (spec.md §4.1):
//  1. Place R equally spaced interior points along the start→finish
//     geodesic (rank points), excluding the endpoints themselves — the
//     endpoints are handled separately by the solver's seed and terminal
//     relaxation stages.
//  2. At each rank point, compute the initial bearing toward finish and
//     rotate by 90° to get the locally perpendicular direction.
//  3. Offset by ±(k·d_node) along that perpendicular for
//     k = -(W-1)/2 .. (W-1)/2, producing W nodes for that rank.
//  4. Classify each node via the coastline oracle.
//
// Degenerate shapes (R=1 or W=1) are well-defined: a single rank point, or
// a single node per rank centered on the rank point.
func Build(start, finish geo.Location, r, w int, dNode float64, oracle CoastlineOracle) (*Grid, error) {
	if r < 1 || w < 1 {
		return nil, ErrInvalidShape
	}
	if dNode <= 0 {
		return nil, ErrNonPositiveSpacing
	}
	if start.Lon == finish.Lon && start.Lat == finish.Lat {
		return nil, ErrSameEndpoints
	}

	nodes := make([][]Node, r)
	for rank := 0; rank < r; rank++ {
		f := float64(rank+1) / float64(r+1)
		rankPoint := geo.InterpolateAlongGreatCircle(start, finish, f)

		// Bearing toward finish at this rank point defines the corridor's
		// forward direction; rotating 90° gives the perpendicular along
		// which this rank's nodes are laid out.
		forward, err := geo.InitialBearing(rankPoint, finish)
		if err != nil {
			// rankPoint coincides with finish only in a degenerate corridor
			// shorter than one rank spacing; fall back to the overall
			// start→finish bearing, which remains well-defined since
			// start != finish was checked above.
			forward, _ = geo.InitialBearing(start, finish)
		}
		perp := forward + 90.0

		row := make([]Node, w)
		half := float64(w-1) / 2.0
		for k := 0; k < w; k++ {
			offset := (float64(k) - half) * dNode
			loc := rankPoint
			if offset != 0 {
				loc = geo.Destination(rankPoint, perp, offset/1000.0)
			}
			row[k] = Node{
				Lon:    loc.Lon,
				Lat:    loc.Lat,
				IsLand: oracle.IsLand(loc.Lon, loc.Lat),
			}
		}
		nodes[rank] = row
	}

	return &Grid{R: r, W: w, DNode: dNode, Nodes: nodes}, nil
}
