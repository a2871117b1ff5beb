// Package costfn implements the time-dependent edge-cost function: given
// two endpoints, an environment sample, and a craft, it returns the
// traversal time in hours, or +Inf for an infeasible edge.
package costfn

// MinSpeedKn is the minimum boat speed below which an edge is treated as
// an irrecoverable stall and priced at +Inf.
const MinSpeedKn = 0.3

// Sample holds the environment readings at an edge's departure point and
// time, sufficient to price that one edge under the departure-time,
// departure-location frozen approximation.
type Sample struct {
	TWS float64 // true wind speed, knots
	TWD float64 // true wind direction, degrees (0=N, clockwise)
	WD  float64 // wave direction, degrees
	WH  float64 // wave height, meters
}
