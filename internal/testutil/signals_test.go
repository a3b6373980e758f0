package testutil

import "testing"

func TestGaussianPeakMaximum(t *testing.T) {
	g := GaussianPeak(101, 50, 7, 5)
	if g[50] != 7 {
		t.Fatalf("g[50] = %v, want 7", g[50])
	}
	for i, v := range g {
		if v > 7 || v < 0 {
			t.Fatalf("g[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestRamp(t *testing.T) {
	r := Ramp(2, 0.5, 4)
	want := []float64{2, 2.5, 3, 3.5}
	RequireSliceNearlyEqual(t, r, want, 0)
}
