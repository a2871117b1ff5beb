package craft

import "math"

// expNeg returns exp(-x), isolated behind a named function so the decay
// law used by WithLifetimeDecay is visible at a glance from its call site.
func expNeg(x float64) float64 {
	return math.Exp(-x)
}
