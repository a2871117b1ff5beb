// Package routing is the top-level orchestration entry point: it wires a
// grid, an environment, and a craft through the solver and surfaces the
// result (or a typed voyage-failed error) as a single Route.
package routing

import (
	"github.com/tdickson/sailrouter/solver"
)

// ErrVoyageFailed indicates the solve could not reach finish under the
// given craft and environment; it is solver.ErrVoyageFailed re-exported at
// this package's boundary so callers need not import solver directly to
// check for it with errors.Is.
var ErrVoyageFailed = solver.ErrVoyageFailed

// VoyageFailedError wraps the cause of an incomplete solve (unreachable
// finish, or a cancelled/deadline-exceeded context) together with the
// partial arrival surface, so a caller can inspect how far the solve
// progressed before giving up.
//
// Err is the underlying cause; when nil, Unwrap reports ErrVoyageFailed so
// existing errors.Is(err, ErrVoyageFailed) checks keep working for the
// unreachable-finish case without every construction site needing to set
// it explicitly.
type VoyageFailedError struct {
	Arrival [][]float64
	Err     error
}

// Error implements the error interface.
func (e *VoyageFailedError) Error() string {
	if e.Err != nil {
		return "routing: voyage incomplete: " + e.Err.Error()
	}
	return "routing: voyage failed, finish unreachable"
}

// Unwrap lets errors.Is(err, ErrVoyageFailed) match a *VoyageFailedError
// built from an unreachable finish, and errors.Is(err, context.Canceled) /
// errors.Is(err, context.DeadlineExceeded) match one built from a
// cancelled solve.
func (e *VoyageFailedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrVoyageFailed
}

var _ error = (*VoyageFailedError)(nil)

// Route is the outcome of a successful Solve call.
type Route struct {
	JourneyTime float64
	Arrival     [][]float64
	PathLon     []float64
	PathLat     []float64
}
