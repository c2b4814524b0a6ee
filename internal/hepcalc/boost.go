package hepcalc

import (
	"errors"
	"math"
)

// ErrNotLorentz is returned when a frame change would not preserve the metric.
var ErrNotLorentz = errors.New("frame transform is not a Lorentz transform")

const lorentzTol = 1e-6

// BoostZ is a Lorentz boost along pz by the given rapidity.
func BoostZ(y Real) Mat4 {
	ch, sh := math.Cosh(y), math.Sinh(y)
	M := I4()
	M.M[0][0], M.M[0][3] = ch, sh
	M.M[3][0], M.M[3][3] = sh, ch
	return M
}

// RotateXY rotates the transverse plane by angle a (radians) about pz.
func RotateXY(a Real) Mat4 {
	c, s := math.Cos(a), math.Sin(a)
	M := I4()
	M.M[1][1], M.M[1][2] = c, -s
	M.M[2][1], M.M[2][2] = s, c
	return M
}

// FrameTransform rotates about pz by phi and then boosts along pz by y.
func FrameTransform(y, phi Real) Mat4 {
	return BoostZ(y).Mul(RotateXY(phi))
}

// ToFrame applies L to all three inputs of the event.
//
// Masses and a·(b+c) survive any Lorentz transform. The calculation itself
// is neither boost nor rotation covariant (c.pz enters with the opposite sign
// to c.E, and the diff cross terms swap px and py), so the answer generally
// changes.
func (ev *Event) ToFrame(L Mat4) error {
	if !L.IsLorentz(lorentzTol) {
		return ErrNotLorentz
	}
	ev.A = L.MulVec(ev.A)
	ev.B = L.MulVec(ev.B)
	ev.C = L.MulVec(ev.C)
	return nil
}
