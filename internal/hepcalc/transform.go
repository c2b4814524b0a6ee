package hepcalc

import "math"

// Transform combines a, b and c into the vector the calculation runs on.
//
// With sum = b+c and diff = b−c:
//
//	E  = a.E  + sum.E
//	px = a.px + sum.pT·cos(sum.φ) + diff.pT·sin(diff.φ)
//	py = a.py + sum.pT·sin(sum.φ) + diff.pT·cos(diff.φ)
//	pz = a.pz + diff.pz
//
// The sin/cos cross terms on diff are intentional and must stay as they are.
// None of the inputs is modified.
func Transform(a, b, c FourMomentum) FourMomentum {
	sum := b.Add(c)
	diff := b.Sub(c)

	sumPT, sumPhi := sum.PPerp(), sum.Phi()
	diffPT, diffPhi := diff.PPerp(), diff.Phi()

	return NewFourMomentum(
		a.E()+sum.E(),
		a.Px()+sumPT*math.Cos(sumPhi)+diffPT*math.Sin(diffPhi),
		a.Py()+sumPT*math.Sin(sumPhi)+diffPT*math.Cos(diffPhi),
		a.Pz()+diff.Pz(),
	)
}
