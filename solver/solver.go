package solver

import (
	"context"
	"math"
	"sync"

	"github.com/tdickson/sailrouter/costfn"
	"github.com/tdickson/sailrouter/craft"
	"github.com/tdickson/sailrouter/geo"
	"github.com/tdickson/sailrouter/grid"
)

// Solve runs the isochronal layered-relaxation solver over g, from start to
// finish, sampling env at each edge's departure node and time, under craft
// c. It returns the earliest feasible arrival and a reconstructed path, or
// ErrVoyageFailed if finish is unreachable.
//
// ctx is checked at each rank boundary (Stage B's outer loop); a cancelled
// context aborts the solve early and returns ctx.Err(), with State left at
// its last-relaxed rank for diagnostics only — never as a completed result.
func Solve(ctx context.Context, g *grid.Grid, start, finish geo.Location, env Environment, c *craft.Craft, opts ...Option) (*Result, error) {
	cfg := config{departureTime: 0, parallelRanks: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	st := newState(g.R, g.W)
	t0 := cfg.departureTime

	seedRank0(g, start, env, c, t0, st)

	for r := 0; r < g.R-1; r++ {
		select {
		case <-ctx.Done():
			return &Result{JourneyTime: math.Inf(1), State: st}, ctx.Err()
		default:
		}
		relaxRank(g, env, c, t0, r, st, cfg.parallelRanks)
	}

	tFin, wStar, ok := terminalRelax(g, finish, env, c, t0, st)
	if !ok {
		return &Result{JourneyTime: math.Inf(1), State: st}, ErrVoyageFailed
	}

	lons, lats := reconstructPath(g, start, finish, st, wStar)

	return &Result{
		JourneyTime: tFin,
		State:       st,
		PathLon:     lons,
		PathLat:     lats,
	}, nil
}

// seedRank0 evaluates the cost function from start to every non-land node
// in rank 0, sampling the environment at (start, t0).
func seedRank0(g *grid.Grid, start geo.Location, env Environment, c *craft.Craft, t0 float64, st *State) {
	for w := 0; w < g.W; w++ {
		if g.IsLand(0, w) {
			continue
		}
		dest := nodeLoc(g, 0, w)
		sample := sampleAt(env, start, t0)

		cost := costfn.Evaluate(start, dest, sample, c, 0)
		if !math.IsInf(cost, 1) {
			st.Arrival.Set(0, w, t0+cost)
		}
	}
}

// relaxRank performs Stage B for a single source rank r, writing candidate
// arrivals into rank r+1. When parallelism > 1, the W source cells are
// partitioned across workers; each destination cell's min-update is
// guarded by its own mutex, matching spec.md §5's per-cell-lock reduction
// strategy.
func relaxRank(g *grid.Grid, env Environment, c *craft.Craft, t0 float64, r int, st *State, parallelism int) {
	if parallelism <= 1 {
		for w := 0; w < g.W; w++ {
			relaxCell(g, env, c, t0, r, w, st, nil)
		}
		return
	}

	locks := make([]sync.Mutex, g.W)
	var wg sync.WaitGroup
	work := make(chan int)

	for i := 0; i < parallelism; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for w := range work {
				relaxCell(g, env, c, t0, r, w, st, locks)
			}
		}()
	}
	for w := 0; w < g.W; w++ {
		work <- w
	}
	close(work)
	wg.Wait()
}

// relaxCell relaxes all edges out of source node (r, w), updating rank r+1
// destinations. locks, if non-nil, guards each destination cell's
// read-compare-write against concurrent writers from other source cells.
func relaxCell(g *grid.Grid, env Environment, c *craft.Craft, t0 float64, r, w int, st *State, locks []sync.Mutex) {
	tDep := st.Arrival.At(r, w)
	if math.IsInf(tDep, 1) {
		return
	}

	origin := nodeLoc(g, r, w)
	sample := sampleAt(env, origin, tDep)
	lifetime := tDep - t0

	for k := 0; k < g.W; k++ {
		if g.IsLand(r+1, k) {
			continue
		}
		dest := nodeLoc(g, r+1, k)
		cost := costfn.Evaluate(origin, dest, sample, c, lifetime)
		if math.IsInf(cost, 1) {
			continue
		}
		tCand := tDep + cost

		if locks != nil {
			locks[k].Lock()
		}
		if tCand < st.Arrival.At(r+1, k) {
			st.Arrival.Set(r+1, k, tCand)
			st.Pred[r+1][k] = st.Indices[r][w]
		}
		if locks != nil {
			locks[k].Unlock()
		}
	}
}

// terminalRelax performs Stage C: for each reachable node in the last
// rank, price the edge to finish and keep the minimum total arrival and
// its source width index.
func terminalRelax(g *grid.Grid, finish geo.Location, env Environment, c *craft.Craft, t0 float64, st *State) (tFin float64, wStar int, ok bool) {
	best := math.Inf(1)
	bestW := -1
	last := g.R - 1

	for w := 0; w < g.W; w++ {
		tDep := st.Arrival.At(last, w)
		if math.IsInf(tDep, 1) {
			continue
		}
		origin := nodeLoc(g, last, w)
		sample := sampleAt(env, origin, tDep)

		cost := costfn.Evaluate(origin, finish, sample, c, tDep-t0)
		if math.IsInf(cost, 1) {
			continue
		}
		candidate := tDep + cost
		if candidate < best {
			best = candidate
			bestW = w
		}
	}

	if bestW < 0 {
		return 0, 0, false
	}
	return best, bestW, true
}

// reconstructPath performs Stage D: walk pred iteratively from rank R−1's
// winning node back to the origin sentinel, collecting coordinates into a
// pre-sized sequence, then bracket it with start and finish.
func reconstructPath(g *grid.Grid, start, finish geo.Location, st *State, wStar int) (lons, lats []float64) {
	chain := make([][2]float64, 0, g.R)

	r, w := g.R-1, wStar
	for {
		loc := nodeLoc(g, r, w)
		chain = append(chain, [2]float64{loc.Lon, loc.Lat})

		predIdx := st.Pred[r][w]
		if predIdx == originSentinel {
			break
		}
		r, w = decodeIndex(predIdx, g.W)
	}

	lons = make([]float64, 0, len(chain)+2)
	lats = make([]float64, 0, len(chain)+2)
	lons = append(lons, start.Lon)
	lats = append(lats, start.Lat)
	for i := len(chain) - 1; i >= 0; i-- {
		lons = append(lons, chain[i][0])
		lats = append(lats, chain[i][1])
	}
	lons = append(lons, finish.Lon)
	lats = append(lats, finish.Lat)

	return lons, lats
}

func decodeIndex(idx, w int) (r, col int) {
	return idx / w, idx % w
}

func nodeLoc(g *grid.Grid, r, w int) geo.Location {
	n := g.Nodes[r][w]
	return geo.Location{Lon: n.Lon, Lat: n.Lat}
}

func sampleAt(env Environment, loc geo.Location, t float64) costfn.Sample {
	return costfn.Sample{
		TWS: env.TWS.At(loc.Lon, loc.Lat, t),
		TWD: env.TWD.At(loc.Lon, loc.Lat, t),
		WD:  env.WD.At(loc.Lon, loc.Lat, t),
		WH:  env.WH.At(loc.Lon, loc.Lat, t),
	}
}
