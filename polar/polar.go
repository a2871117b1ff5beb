package polar

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// NewTable constructs an immutable Table from ascending TWA/TWS axes and a
// matching [len(twa)][len(tws)] speed matrix. PerfFactor defaults to 1.0
// (no derating) unless overridden by WithPerfFactor.
//
// Validation order:
//  1. twa and tws must each be non-empty (ErrEmptyAxis).
//  2. twa and tws must each be strictly ascending (ErrNonAscendingAxis).
//  3. speed must have len(twa) rows of len(tws) columns (ErrShapeMismatch).
//  4. every speed entry must be ≥ 0 (ErrNegativeSpeed).
func NewTable(twa, tws []float64, speed [][]float64, opts ...Option) (*Table, error) {
	if len(twa) == 0 || len(tws) == 0 {
		return nil, ErrEmptyAxis
	}
	if !strictlyAscending(twa) || !strictlyAscending(tws) {
		return nil, ErrNonAscendingAxis
	}
	if len(speed) != len(twa) {
		return nil, ErrShapeMismatch
	}
	for _, row := range speed {
		if len(row) != len(tws) {
			return nil, ErrShapeMismatch
		}
		for _, v := range row {
			if v < 0 {
				return nil, ErrNegativeSpeed
			}
		}
	}

	t := &Table{
		TWA:        append([]float64(nil), twa...),
		TWS:        append([]float64(nil), tws...),
		Speed:      cloneMatrix(speed),
		PerfFactor: 1.0,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

func strictlyAscending(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

func cloneMatrix(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// SpeedAt returns the boat speed (knots) for a given absolute relative wind
// angle twaRel (degrees, [0,180]) and true wind speed tws (knots), via
// bilinear interpolation over the two enclosing table samples on each axis,
// scaled by PerfFactor. Out-of-range inputs clamp to the table boundary;
// SpeedAt never fails.
func (t *Table) SpeedAt(twaRel, tws float64) float64 {
	twaC := clamp(twaRel, t.TWA)
	twsC := clamp(tws, t.TWS)

	aLo, aHi, aFrac := bracket(t.TWA, twaC)
	sLo, sHi, sFrac := bracket(t.TWS, twsC)

	v00 := t.Speed[aLo][sLo]
	v01 := t.Speed[aLo][sHi]
	v10 := t.Speed[aHi][sLo]
	v11 := t.Speed[aHi][sHi]

	v0 := v00 + (v01-v00)*sFrac
	v1 := v10 + (v11-v10)*sFrac
	v := v0 + (v1-v0)*aFrac

	return v * t.PerfFactor
}

// clamp restricts x to the closed interval [axis[0], axis[len-1]], using
// gonum's Min/Max so the clamping bound is derived the same way one would
// derive it for any numeric slice elsewhere in the codebase.
func clamp(x float64, axis []float64) float64 {
	lo, hi := floats.Min(axis), floats.Max(axis)
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// bracket finds the pair of adjacent indices (lo, hi) in the ascending axis
// that enclose x, plus the fractional position of x within that bracket in
// [0, 1]. x is assumed already clamped to the axis range. A single-sample
// axis, or an x exactly equal to the final sample, returns lo == hi and
// frac == 0.
func bracket(axis []float64, x float64) (lo, hi int, frac float64) {
	if len(axis) == 1 {
		return 0, 0, 0
	}

	// sort.SearchFloat64s returns the index of the first element >= x.
	i := sort.SearchFloat64s(axis, x)
	if i <= 0 {
		return 0, 1, safeFrac(x, axis[0], axis[1])
	}
	if i >= len(axis) {
		last := len(axis) - 1
		return last - 1, last, safeFrac(x, axis[last-1], axis[last])
	}
	if floats.EqualWithinAbs(axis[i], x, 1e-12) {
		return i, i, 0
	}

	return i - 1, i, safeFrac(x, axis[i-1], axis[i])
}

func safeFrac(x, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	f := (x - lo) / (hi - lo)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
