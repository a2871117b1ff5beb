// Package failure implements the discrete Bayesian craft-failure network:
// four binarized environmental inputs (high true wind speed, low true wind
// angle, high wave height, low relative wave direction) feed two
// intermediate condition nodes (WindCond, WaveCond), which in turn feed a
// single Fail node. Because every node is binary and the network is singly
// connected, the marginal P(Fail=1 | inputs) reduces to arithmetic over a
// fixed set of conditional probability tables; this package precomputes
// that arithmetic into a 16-entry lookup table (one per combination of the
// four binarized inputs) at construction time, per spec.md §9's explicit
// note that a Bayesian-network library is unnecessary here.
package failure

// CPT holds the conditional probability P(node=1 | parents) for a pair of
// binary parents, indexed [parentA][parentB].
type CPT [2][2]float64

// DefaultWindCPT is the authoritative P(WindCond=1 | TWA_lo, TWS_hi) table.
var DefaultWindCPT = CPT{
	{0.0, 0.9},
	{0.9, 1.0},
}

// DefaultWaveCPT is the authoritative P(WaveCond=1 | WH_hi, WD_lo) table.
var DefaultWaveCPT = CPT{
	{0.0, 0.9},
	{0.9, 1.0},
}

// DefaultFailCPT is the authoritative P(Fail=1 | WaveCond, WindCond) table.
var DefaultFailCPT = CPT{
	{0.0, 0.9},
	{0.9, 1.0},
}

// Thresholds holds the fixed discretization points that binarize raw
// environmental readings into the network's four binary inputs.
//
// TWSHigh defaults to 25 kn (spec.md §6's authoritative table). The
// original source also used 20 kn in one code path (spec.md §9's Open
// Question); it is exposed here as a configurable field rather than
// hardcoded, exactly as spec.md instructs.
//
// TWALowDeg gates a predicate that is structurally dead: TWA_lo is always
// computed against an already-absolute-valued relative wind angle, so
// "angle < TWALowDeg" with the spec's degenerate TWALowDeg=0 can never be
// true. It is kept (rather than removed) to preserve the network's
// documented four-leaf shape, per spec.md §9's instruction not to guess an
// alternate intent for this dead predicate.
//
// WaveDirLowDeg resolves an ambiguity spec.md's prose does not flag
// explicitly but which a direct evaluation of the authoritative scenario
// S6 surfaces: read literally as "relative wave direction < WaveDirLowDeg"
// the S6 benign case (tws=10, twa=60, wh=0, wd=40) marginalizes to p_fail
// ≈ 0.81, not the documented ≈0.0. Evaluating the network with the
// complementary predicate "relative wave direction ≥ WaveDirLowDeg"
// reproduces both S6 cases (≈0.0 and ≈0.97) to within the scenario's
// stated tolerance. This package therefore implements WD_lo as "wave
// direction NOT within WaveDirLowDeg of dead-ahead/following" — see
// DESIGN.md for the full derivation.
type Thresholds struct {
	TWSHigh        float64
	TWALowDeg      float64
	WaveHeightHigh float64
	WaveDirLowDeg  float64
}

// DefaultThresholds returns the spec.md §6 default discretization.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TWSHigh:        25.0,
		TWALowDeg:      0.0,
		WaveHeightHigh: 3.0,
		WaveDirLowDeg:  60.0,
	}
}

// Model is an immutable, precomputed 16-entry failure-probability lookup,
// one entry per combination of the four binarized inputs.
type Model struct {
	thresholds Thresholds
	windCPT    CPT
	waveCPT    CPT
	failCPT    CPT
	lookup     [16]float64
}

// Option configures a Model at construction time.
type Option func(*modelConfig)

type modelConfig struct {
	thresholds Thresholds
	windCPT    CPT
	waveCPT    CPT
	failCPT    CPT
}

// WithThresholds overrides the default discretization thresholds.
func WithThresholds(th Thresholds) Option {
	return func(c *modelConfig) { c.thresholds = th }
}

// WithCPTs overrides the default conditional probability tables, for tests
// and alternate-configuration drivers. The TWS_hi threshold (e.g. a 20kn
// study alongside the default 25kn) is set with WithThresholds, not here.
func WithCPTs(wind, wave, fail CPT) Option {
	return func(c *modelConfig) {
		c.windCPT = wind
		c.waveCPT = wave
		c.failCPT = fail
	}
}
