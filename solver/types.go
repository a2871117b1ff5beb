// Package solver implements the isochronal layered-relaxation shortest-time
// solver: given a grid, an environment field, and a craft, it finds the
// earliest arrival time at finish by relaxing rank-to-rank edges in order,
// one rank forming a write barrier for the next.
//
// Complexity: O(R·W²) cost-function evaluations plus O(R·W) field queries
// per solve. The core has no suspension points; cancellation is checked
// only at rank boundaries.
package solver

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for solver construction and execution.
var (
	// ErrBadDepartureTime indicates a negative departure time.
	ErrBadDepartureTime = errors.New("solver: departure time must be non-negative")
	// ErrBadParallelism indicates a non-positive rank parallelism factor.
	ErrBadParallelism = errors.New("solver: parallel rank count must be positive")
)

// ErrVoyageFailed indicates every terminal-relaxation candidate was
// infeasible: no path from start reaches finish under the given craft and
// environment. The partial State is still returned for inspection.
var ErrVoyageFailed = errors.New("solver: voyage failed, finish unreachable")

// originSentinel is the predecessor-chain terminator for rank-0 nodes,
// which have no predecessor within the grid (their predecessor is the
// start point itself).
const originSentinel = -1

// State holds one solve's working arrays: arrival times, predecessor flat
// indices, and the flat-index table used to express pred as a single
// linear array rather than a (rank, width) pair, per spec.md §9's note
// that predecessor chains must be collected iteratively into a pre-sized
// sequence rather than walked recursively.
//
// Arrival is backed by a gonum mat.Dense rather than a plain [][]float64,
// matching the teacher's own preference for a dense backing store
// (matrix.Dense) over ad-hoc nested slices for a fixed-shape 2-D numeric
// table. Pred and Indices stay plain [][]int since mat.Dense only holds
// float64.
//
// arrival and pred are owned exclusively by the solver during a solve and
// are not safe for concurrent external mutation; WithParallelRanks governs
// only the solver's own internal fan-out within a rank.
type State struct {
	R, W    int
	Arrival *mat.Dense
	Pred    [][]int
	Indices [][]int
}

// newState allocates a State with arrival initialized to +Inf and pred to
// the origin sentinel.
func newState(r, w int) *State {
	arrival := mat.NewDense(r, w, nil)
	pred := make([][]int, r)
	indices := make([][]int, r)
	idx := 0
	for rank := 0; rank < r; rank++ {
		pred[rank] = make([]int, w)
		indices[rank] = make([]int, w)
		for width := 0; width < w; width++ {
			arrival.Set(rank, width, math.Inf(1))
			pred[rank][width] = originSentinel
			indices[rank][width] = idx
			idx++
		}
	}
	return &State{R: r, W: w, Arrival: arrival, Pred: pred, Indices: indices}
}

// ArrivalGrid copies Arrival into a plain [][]float64, for callers (the
// routing package's Route.Arrival, VoyageFailedError.Arrival) that expose
// the arrival surface across a package boundary without leaking the
// gonum dependency into their own API.
func (s *State) ArrivalGrid() [][]float64 {
	out := make([][]float64, s.R)
	for r := 0; r < s.R; r++ {
		out[r] = make([]float64, s.W)
		for w := 0; w < s.W; w++ {
			out[r][w] = s.Arrival.At(r, w)
		}
	}
	return out
}

// Option configures a solve at construction time.
type Option func(*config)

type config struct {
	departureTime float64
	parallelRanks int
}

// WithDepartureTime sets the departure time t0. Defaults to 0. t must be
// non-negative.
//
// Edge costs are in hours and are added to t0 without unit conversion:
// every arrival value, Result.JourneyTime and each environment sample time
// is t0 plus elapsed hours. A t0 given in seconds since epoch is not
// converted.
func WithDepartureTime(t float64) Option {
	if t < 0 {
		panic(ErrBadDepartureTime)
	}
	return func(c *config) { c.departureTime = t }
}

// WithParallelRanks enables a bounded worker-pool fan-out across the w
// dimension within each rank's relaxation, per spec.md §5's data-parallel
// batch model. n is the number of concurrent workers; n must be positive.
// n=1 (the default) is the sequential path.
func WithParallelRanks(n int) Option {
	if n < 1 {
		panic(ErrBadParallelism)
	}
	return func(c *config) { c.parallelRanks = n }
}

// Result is the outcome of a successful solve.
type Result struct {
	JourneyTime float64
	State       *State
	PathLon     []float64
	PathLat     []float64
}

// Environment bundles the four environment fields the cost function
// samples, per spec.md §6's external-interface listing (wave period is
// part of that listing but unused by the cost function itself, so it is
// not carried here).
type Environment struct {
	TWS EnvField // true wind speed, knots
	TWD EnvField // true wind direction, degrees
	WH  EnvField // wave height, meters
	WD  EnvField // wave direction, degrees
}

// EnvField is the subset of envfield.Field's contract the solver depends
// on, kept as a local interface so solver tests can supply lightweight
// fakes without constructing a full envfield.Field.
type EnvField interface {
	At(lon, lat, t float64) float64
}
