package hepcalc

import (
	"errors"
	"fmt"
	"math"
)

// ErrComponentCount is returned when a four-momentum is built from a
// component list whose length is not four.
var ErrComponentCount = errors.New("four-momentum needs exactly 4 components")

// FourMomentum holds energy and the three momentum components.
// Component order is E, px, py, pz (indices 0..3).
//
// No physical validity is enforced: E may be smaller than |p|, in which case
// M2 is negative and M, Rap and the logarithms downstream become NaN.
type FourMomentum struct {
	e, px, py, pz Real
}

// NewFourMomentum builds a four-momentum from E, px, py, pz in that order.
func NewFourMomentum(e, px, py, pz Real) FourMomentum {
	return FourMomentum{e: e, px: px, py: py, pz: pz}
}

// FourMomentumFromSlice builds a four-momentum from an ordered list
// (E, px, py, pz). Any other length is rejected.
func FourMomentumFromSlice(p []Real) (FourMomentum, error) {
	if len(p) != 4 {
		return FourMomentum{}, fmt.Errorf("%w: got %d", ErrComponentCount, len(p))
	}
	return NewFourMomentum(p[0], p[1], p[2], p[3]), nil
}

func (f FourMomentum) E() Real  { return f.e }
func (f FourMomentum) Px() Real { return f.px }
func (f FourMomentum) Py() Real { return f.py }
func (f FourMomentum) Pz() Real { return f.pz }

// P returns a copy of all four components.
func (f FourMomentum) P() [4]Real { return [4]Real{f.e, f.px, f.py, f.pz} }

// PPerp2 is the squared transverse momentum px² + py².
func (f FourMomentum) PPerp2() Real { return f.px*f.px + f.py*f.py }

// PPerp is the transverse momentum.
func (f FourMomentum) PPerp() Real { return math.Sqrt(f.PPerp2()) }

// Rap is the rapidity ½·ln((E+pz)/(E−pz)). E == pz gives +Inf.
func (f FourMomentum) Rap() Real { return 0.5 * math.Log((f.e+f.pz)/(f.e-f.pz)) }

// Phi is the azimuthal angle atan2(py, px).
func (f FourMomentum) Phi() Real { return math.Atan2(f.py, f.px) }

// M2 is the invariant mass squared; negative for spacelike vectors.
func (f FourMomentum) M2() Real { return f.e*f.e - f.px*f.px - f.py*f.py - f.pz*f.pz }

// M is the invariant mass, NaN when M2 < 0.
func (f FourMomentum) M() Real { return math.Sqrt(f.M2()) }

// Add returns f + o without touching either operand.
func (f FourMomentum) Add(o FourMomentum) FourMomentum {
	return FourMomentum{f.e + o.e, f.px + o.px, f.py + o.py, f.pz + o.pz}
}

// Sub returns f − o without touching either operand.
func (f FourMomentum) Sub(o FourMomentum) FourMomentum {
	return FourMomentum{f.e - o.e, f.px - o.px, f.py - o.py, f.pz - o.pz}
}

// AddInPlace sets f = f + o and returns f for chaining.
func (f *FourMomentum) AddInPlace(o FourMomentum) *FourMomentum {
	*f = f.Add(o)
	return f
}

// SubInPlace sets f = f − o and returns f for chaining.
func (f *FourMomentum) SubInPlace(o FourMomentum) *FourMomentum {
	*f = f.Sub(o)
	return f
}

// ApproxEqual compares components with a relative tolerance.
func (f FourMomentum) ApproxEqual(o FourMomentum, tol Real) bool {
	return nearly(f.e, o.e, tol) && nearly(f.px, o.px, tol) &&
		nearly(f.py, o.py, tol) && nearly(f.pz, o.pz, tol)
}

// IsFinite reports whether every component is finite.
func (f FourMomentum) IsFinite() bool {
	return isFinite(f.e) && isFinite(f.px) && isFinite(f.py) && isFinite(f.pz)
}

func (f FourMomentum) String() string {
	return fmt.Sprintf("Four Momentum with components\nE = %.9g px = %.9g py = %.9g pz = %.9g || (mass)^2 = %.9g\n",
		f.e, f.px, f.py, f.pz, f.M2())
}
