package hepcalc

// Dot returns the Minkowski product of a and b with signature (+,−,−,−).
func Dot(a, b FourMomentum) Real {
	return a.e*b.e - a.px*b.px - a.py*b.py - a.pz*b.pz
}
