package hepcalc

import "math"

// Real is the floating point type used for every kinematic quantity.
type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// nearly compares a and b with a relative tolerance, falling back to an
// absolute one around zero. Two NaNs compare equal.
func nearly(a, b, tol Real) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	d := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return d <= tol
	}
	return d <= tol*scale
}

func ptr[T any](v T) *T { return &v }
