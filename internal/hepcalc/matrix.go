package hepcalc

// Mat4 is a row-major 4×4 matrix acting on (E, px, py, pz).
type Mat4 struct {
	M [4][4]Real
}

func diag4(d0, d1, d2, d3 Real) Mat4 {
	var D Mat4
	D.M[0][0], D.M[1][1], D.M[2][2], D.M[3][3] = d0, d1, d2, d3
	return D
}

func I4() Mat4 { return diag4(1, 1, 1, 1) }

// Metric is the Minkowski metric diag(+1, −1, −1, −1).
func Metric() Mat4 { return diag4(1, -1, -1, -1) }

// Mul returns the product L·R, so (L·R)·v applies R first.
func (L Mat4) Mul(R Mat4) Mat4 {
	var P Mat4
	for i, row := range L.M {
		for j := range P.M[i] {
			P.M[i][j] = row[0]*R.M[0][j] + row[1]*R.M[1][j] + row[2]*R.M[2][j] + row[3]*R.M[3][j]
		}
	}
	return P
}

func (L Mat4) Transpose() Mat4 {
	var T Mat4
	for i, row := range L.M {
		for j, x := range row {
			T.M[j][i] = x
		}
	}
	return T
}

func (L Mat4) MulVec(f FourMomentum) FourMomentum {
	v := f.P()
	var o [4]Real
	for i, row := range L.M {
		o[i] = row[0]*v[0] + row[1]*v[1] + row[2]*v[2] + row[3]*v[3]
	}
	return NewFourMomentum(o[0], o[1], o[2], o[3])
}

// IsLorentz reports whether Lᵀ·g·L equals the metric g within tol,
// i.e. whether L preserves every Minkowski product.
func (L Mat4) IsLorentz(tol Real) bool {
	P := L.Transpose().Mul(Metric()).Mul(L)
	g := Metric()
	for i := range P.M {
		for j := range P.M[i] {
			if !nearly(P.M[i][j], g.M[i][j], tol) {
				return false
			}
		}
	}
	return true
}
