package envfield

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// New constructs an immutable Field from ascending lon/lat/time axes and a
// matching [len(times)][len(lats)][len(lons)] value array.
func New(lons, lats, times []float64, values [][][]float64, mode InterpMode) (*Field, error) {
	if len(lons) == 0 || len(lats) == 0 || len(times) == 0 {
		return nil, ErrEmptyAxis
	}
	if !strictlyAscending(lons) || !strictlyAscending(lats) || !strictlyAscending(times) {
		return nil, ErrNonAscendingAxis
	}
	if len(values) != len(times) {
		return nil, ErrShapeMismatch
	}
	for _, plane := range values {
		if len(plane) != len(lats) {
			return nil, ErrShapeMismatch
		}
		for _, row := range plane {
			if len(row) != len(lons) {
				return nil, ErrShapeMismatch
			}
		}
	}

	return &Field{
		Lons:   append([]float64(nil), lons...),
		Lats:   append([]float64(nil), lats...),
		Times:  append([]float64(nil), times...),
		Values: values,
		Mode:   mode,
	}, nil
}

func strictlyAscending(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// At returns the field value at (lon, lat, t). Queries outside the field's
// coverage clamp to the boundary sample on the offending axis (or axes) —
// At never fails.
func (f *Field) At(lon, lat, t float64) float64 {
	lonC := clamp(lon, f.Lons)
	latC := clamp(lat, f.Lats)
	tC := clamp(t, f.Times)

	if f.Mode == Nearest {
		li := nearestIndex(f.Lons, lonC)
		ai := nearestIndex(f.Lats, latC)
		ti := nearestIndex(f.Times, tC)
		return f.Values[ti][ai][li]
	}

	loLo, loHi, loFrac := bracket(f.Lons, lonC)
	laLo, laHi, laFrac := bracket(f.Lats, latC)
	tLo, tHi, tFrac := bracket(f.Times, tC)

	atTime := func(ti int) float64 {
		v00 := f.Values[ti][laLo][loLo]
		v01 := f.Values[ti][laLo][loHi]
		v10 := f.Values[ti][laHi][loLo]
		v11 := f.Values[ti][laHi][loHi]
		v0 := v00 + (v01-v00)*loFrac
		v1 := v10 + (v11-v10)*loFrac
		return v0 + (v1-v0)*laFrac
	}

	vLo := atTime(tLo)
	vHi := atTime(tHi)

	return vLo + (vHi-vLo)*tFrac
}

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

func nearestIndex(axis []float64, x float64) int {
	i := sort.SearchFloat64s(axis, x)
	if i <= 0 {
		return 0
	}
	if i >= len(axis) {
		return len(axis) - 1
	}
	if x-axis[i-1] <= axis[i]-x {
		return i - 1
	}
	return i
}

// bracket mirrors polar.bracket: finds the enclosing adjacent-index pair
// on an ascending axis for an already-clamped query value, plus the
// fractional position within that bracket.
func bracket(axis []float64, x float64) (lo, hi int, frac float64) {
	if len(axis) == 1 {
		return 0, 0, 0
	}

	i := sort.SearchFloat64s(axis, x)
	if i <= 0 {
		return 0, 1, safeFrac(x, axis[0], axis[1])
	}
	if i >= len(axis) {
		last := len(axis) - 1
		return last - 1, last, safeFrac(x, axis[last-1], axis[last])
	}
	if floats.EqualWithinAbs(axis[i], x, 1e-9) {
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
