// Package craft aggregates a vessel's performance and reliability model:
// its polar speed table, its Bayesian failure network, and the tolerance
// against which a predicted failure probability is judged unacceptable.
package craft

import (
	"github.com/tdickson/sailrouter/failure"
	"github.com/tdickson/sailrouter/polar"
)

// Craft bundles everything costfn needs to price an edge: boat speed,
// predicted failure probability, and the tolerance that turns the latter
// into a pass/fail gate.
//
// ReliabilityTolerance defaults to 0.0 (zero tolerance for predicted
// failure) unless overridden by WithReliabilityTolerance.
type Craft struct {
	Polar                *polar.Table
	FailureModel         *failure.Model
	ReliabilityTolerance float64
	LifetimeDecayRate    float64
}

// Option configures a Craft at construction time.
type Option func(*Craft)

// WithReliabilityTolerance sets the maximum acceptable predicted failure
// probability for any single edge traversal. tol must be in [0, 1]; values
// outside that range panic.
func WithReliabilityTolerance(tol float64) Option {
	if tol < 0 || tol > 1 {
		panic("craft: reliability tolerance must be in [0, 1]")
	}
	return func(c *Craft) { c.ReliabilityTolerance = tol }
}

// WithLifetimeDecay enables an additional time-decaying failure term,
// composed with the Bayesian network's instantaneous prediction via max()
// rather than addition, so the combined probability never exceeds 1. rate
// is a per-hour decay constant; rate must be >= 0.
//
// This supplements spec.md's instantaneous failure model with the original
// source's notion that a craft's reliability degrades over a long voyage
// independent of the conditions encountered at any one edge — a feature
// the distilled spec does not mention but original_source/ models
// explicitly. Off by default (rate == 0 contributes nothing).
func WithLifetimeDecay(rate float64) Option {
	if rate < 0 {
		panic("craft: lifetime decay rate must be non-negative")
	}
	return func(c *Craft) { c.LifetimeDecayRate = rate }
}

// New constructs a Craft from a polar table and a failure model, applying
// any options. Both p and m must be non-nil.
func New(p *polar.Table, m *failure.Model, opts ...Option) *Craft {
	if p == nil {
		panic("craft: polar table must not be nil")
	}
	if m == nil {
		panic("craft: failure model must not be nil")
	}

	c := &Craft{Polar: p, FailureModel: m}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PFail returns the total predicted failure probability for an edge
// departed elapsedHours into the voyage (mission lifetime since
// departure), combining the Bayesian network's
// instantaneous prediction with the optional lifetime-decay term.
func (c *Craft) PFail(tws, twaRel, wh, wdRel, elapsedHours float64) float64 {
	instant := c.FailureModel.PFail(tws, twaRel, wh, wdRel)
	if c.LifetimeDecayRate == 0 {
		return instant
	}

	decay := 1 - decayFactor(c.LifetimeDecayRate, elapsedHours)
	return max(instant, decay)
}

// decayFactor returns exp(-rate*hours); kept as a named helper so its
// derivation reads independently of PFail's composition logic.
func decayFactor(rate, hours float64) float64 {
	return expNeg(rate * hours)
}
