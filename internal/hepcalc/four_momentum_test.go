package hepcalc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourMomentumAccessors(t *testing.T) {
	f := NewFourMomentum(90, 30, 30, 2000)
	assert.Equal(t, Real(90), f.E())
	assert.Equal(t, Real(30), f.Px())
	assert.Equal(t, Real(30), f.Py())
	assert.Equal(t, Real(2000), f.Pz())
	assert.Equal(t, [4]Real{90, 30, 30, 2000}, f.P())

	// P is a copy, writing to it must not leak back.
	p := f.P()
	p[0] = -1
	assert.Equal(t, Real(90), f.E())
}

func TestFourMomentumFromSlice(t *testing.T) {
	f, err := FourMomentumFromSlice([]Real{45, 15, 20, 1000})
	require.NoError(t, err)
	assert.Equal(t, NewFourMomentum(45, 15, 20, 1000), f)

	for _, n := range []int{0, 1, 3, 5, 8} {
		_, err := FourMomentumFromSlice(make([]Real, n))
		require.Error(t, err, "len=%d", n)
		assert.True(t, errors.Is(err, ErrComponentCount))
	}
}

func TestFourMomentumDerived(t *testing.T) {
	f := NewFourMomentum(135, 45, 50, 3000)
	assert.Equal(t, Real(45*45+50*50), f.PPerp2())
	assert.InDelta(t, math.Sqrt(4525), f.PPerp(), 1e-12)
	assert.InDelta(t, math.Atan2(50, 45), f.Phi(), 1e-15)
	assert.Equal(t, Real(135*135-45*45-50*50-3000*3000), f.M2())
	assert.True(t, math.IsNaN(f.M()), "spacelike mass should be NaN")

	g := NewFourMomentum(10, 3, 4, 0)
	assert.InDelta(t, math.Sqrt(75), g.M(), 1e-12)
	assert.InDelta(t, 5, g.PPerp(), 1e-12)
	assert.Equal(t, Real(0), g.Rap())

	h := NewFourMomentum(10, 0, 0, 6)
	assert.InDelta(t, 0.5*math.Log(16.0/4.0), h.Rap(), 1e-12)
}

func TestFourMomentumDerivedArePure(t *testing.T) {
	f := NewFourMomentum(335, 55, 65, 1200)
	before := f
	for i := 0; i < 3; i++ {
		assert.Equal(t, f.PPerp2(), f.PPerp2())
		assert.Equal(t, f.PPerp(), f.PPerp())
		assert.Equal(t, f.Rap(), f.Rap())
		assert.Equal(t, f.Phi(), f.Phi())
		assert.Equal(t, f.M2(), f.M2())
	}
	assert.Equal(t, before, f)
}

func TestFourMomentumRapidityBoundary(t *testing.T) {
	f := NewFourMomentum(200, 0, 0, 200)
	require.NotPanics(t, func() { _ = f.Rap() })
	assert.True(t, math.IsInf(f.Rap(), 1), "E == pz must give +Inf, got %v", f.Rap())

	g := NewFourMomentum(200, 0, 0, -200)
	assert.True(t, math.IsInf(g.Rap(), -1))
}

func TestFourMomentumPureAlgebra(t *testing.T) {
	b := NewFourMomentum(90, 30, 30, 2000)
	c := NewFourMomentum(45, 15, 20, 1000)
	assert.Equal(t, NewFourMomentum(135, 45, 50, 3000), b.Add(c))
	assert.Equal(t, NewFourMomentum(45, 15, 10, 1000), b.Sub(c))
	// operands untouched
	assert.Equal(t, NewFourMomentum(90, 30, 30, 2000), b)
	assert.Equal(t, NewFourMomentum(45, 15, 20, 1000), c)
}

func TestFourMomentumInPlace(t *testing.T) {
	b := NewFourMomentum(90, 30, 30, 2000)
	c := NewFourMomentum(45, 15, 20, 1000)

	r := b.AddInPlace(c)
	assert.Same(t, &b, r)
	assert.Equal(t, NewFourMomentum(135, 45, 50, 3000), b)
	assert.Equal(t, NewFourMomentum(45, 15, 20, 1000), c)

	b.SubInPlace(c).SubInPlace(c)
	assert.Equal(t, NewFourMomentum(45, 15, 10, 1000), b)
}

func TestFourMomentumInverseLaws(t *testing.T) {
	cases := [][2]FourMomentum{
		{NewFourMomentum(200, 0, 0, 200), NewFourMomentum(90, 30, 30, 2000)},
		{NewFourMomentum(0.1, -0.2, 0.3, -0.4), NewFourMomentum(1e6, 1e-6, -3.5, 42)},
		{NewFourMomentum(-7, 8, -9, 10), NewFourMomentum(0, 0, 0, 0)},
	}
	for _, tc := range cases {
		v, w := tc[0], tc[1]
		orig := v
		v.AddInPlace(w).SubInPlace(w)
		assert.True(t, v.ApproxEqual(orig, 1e-9), "add/sub: got %v want %v", v, orig)

		v = orig
		v.SubInPlace(w).AddInPlace(w)
		assert.True(t, v.ApproxEqual(orig, 1e-9), "sub/add: got %v want %v", v, orig)
	}
}

func TestFourMomentumIsFinite(t *testing.T) {
	assert.True(t, NewFourMomentum(1, 2, 3, 4).IsFinite())
	assert.False(t, NewFourMomentum(math.NaN(), 2, 3, 4).IsFinite())
	assert.False(t, NewFourMomentum(1, 2, 3, math.Inf(-1)).IsFinite())
}

func TestFourMomentumString(t *testing.T) {
	f := NewFourMomentum(200, 0, 0, 200)
	want := "Four Momentum with components\nE = 200 px = 0 py = 0 pz = 200 || (mass)^2 = 0\n"
	assert.Equal(t, want, f.String())

	g := NewFourMomentum(1.0/3.0, 0, 0, 0)
	assert.Contains(t, g.String(), "E = 0.333333333 ")
}
