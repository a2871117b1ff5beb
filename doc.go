// Package sailrouter computes isochronal ocean-crossing sail routes.
//
// Given a start and finish position, sailrouter lays a curvilinear grid of
// candidate waypoints along the great-circle corridor between them and runs
// a layered dynamic-program relaxation over it: each rank of the grid is
// relaxed against the next using a craft's polar speed table, a discrete
// failure model, and a time-and-position-varying wind/wave environment,
// producing the earliest feasible arrival time and the path that achieves
// it.
//
// Subpackages:
//
//	geo/      — great-circle geodesy (haversine, bearing, destination point)
//	polar/    — bilinear boat-speed lookup over (twa, tws)
//	failure/  — discrete Bayesian failure-probability lookup
//	envfield/ — trilinear (lon, lat, time) environment field sampling
//	grid/     — corridor grid construction, land masking, reachability precheck
//	craft/    — vessel aggregate: polar table, failure model, tolerances
//	costfn/   — per-edge cost function (time, or +Inf if infeasible)
//	solver/   — the layered isochronal relaxation solver
//	routing/  — solver orchestration, error wrapping, isochrone extraction
//	config/   — YAML run configuration
//	cmd/sailroute/ — CLI driver
package sailrouter
