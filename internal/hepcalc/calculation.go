package hepcalc

import "math"

// ScaleAndCombine returns ln(pT²/q2)·ln(m²/q2) for the transformed vector.
// Nothing is validated: q2 == 0, m² < 0 or pT² == 0 give non-finite results
// which are returned as they are.
func ScaleAndCombine(t FourMomentum, q2 Real) Real {
	logSoft, logHard := logTerms(t, q2)
	return logSoft * logHard
}

func logTerms(t FourMomentum, q2 Real) (logSoft, logHard Real) {
	return math.Log(t.PPerp2() / q2), math.Log(t.M2() / q2)
}

// Event is one set of inputs to the calculation.
type Event struct {
	Name    string
	A, B, C FourMomentum
	Q2      Real
}

// Result holds the answer together with the intermediates that produced it.
type Result struct {
	Name        string
	Inputs      [3]FourMomentum // a, b, c as given, before b is updated
	Transformed FourMomentum
	LogSoft     Real
	LogHard     Real
	LogProduct  Real
	Dot         Real // a·(b+c)
	Answer      Real
}

// Finite reports whether the answer is a finite number.
func (r Result) Finite() bool { return isFinite(r.Answer) }

// Calculate runs the full calculation on ev:
//
//  1. t = Transform(a, b, c)
//  2. l = ScaleAndCombine(t, q2)
//  3. b += c (in place, visible to the caller through ev.B)
//  4. answer = l · Dot(a, b)
//
// Step 3 has to follow steps 1 and 2, which need the original b.
func Calculate(ev *Event) Result {
	r := Result{
		Name:   ev.Name,
		Inputs: [3]FourMomentum{ev.A, ev.B, ev.C},
	}
	r.Transformed = Transform(ev.A, ev.B, ev.C)
	r.LogSoft, r.LogHard = logTerms(r.Transformed, ev.Q2)
	r.LogProduct = r.LogSoft * r.LogHard

	ev.B.AddInPlace(ev.C)

	r.Dot = Dot(ev.A, ev.B)
	r.Answer = r.LogProduct * r.Dot
	return r
}
