package hepcalc

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	if !isFinite(1) || isFinite(math.Inf(1)) || isFinite(math.NaN()) {
		t.Fatal("isFinite failed")
	}
}

func TestNearly(t *testing.T) {
	if !nearly(1e6, 1e6+1e-4, 1e-9) {
		t.Fatal("relative tolerance not applied")
	}
	if nearly(1, 1.1, 1e-9) {
		t.Fatal("1 and 1.1 should differ")
	}
	if !nearly(0, 1e-12, 1e-9) {
		t.Fatal("absolute tolerance not applied near zero")
	}
	if !nearly(math.NaN(), math.NaN(), 0) || nearly(math.NaN(), 1, 1) {
		t.Fatal("NaN handling wrong")
	}
	if !nearly(math.Inf(1), math.Inf(1), 0) || nearly(math.Inf(1), math.Inf(-1), 1) {
		t.Fatal("Inf handling wrong")
	}
}
