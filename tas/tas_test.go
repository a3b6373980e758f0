package tas

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
	"github.com/cwbudde/algo-spectro/spectrum"
)

func constSet(n int, darkRef, darkSig, ref, sig, refP, sigP float64) spectrum.Set {
	return spectrum.Set{
		DarkRef:   testutil.DC(darkRef, n),
		DarkSig:   testutil.DC(darkSig, n),
		Ref:       testutil.DC(ref, n),
		Sig:       testutil.DC(sig, n),
		RefPumped: testutil.DC(refP, n),
		SigPumped: testutil.DC(sigP, n),
	}
}

type shift float64

func (s shift) Apply(ch float64) float64 { return ch + float64(s) }

func TestComputeSingleChannelValue(t *testing.T) {
	set := constSet(4, 0, 0, 10, 5, 9, 6)

	tr, err := Compute(set, 1, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	want := math.Log(0.75)
	testutil.RequireSliceNearlyEqual(t, tr.Y, []float64{want, want, want, want}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, tr.Raw, tr.Y, 0)
	testutil.RequireSliceNearlyEqual(t, tr.X, []float64{0, 1, 2, 3}, 0)
	if math.Abs(want-(-0.2877)) > 1e-4 {
		t.Fatalf("ln(0.75) = %v", want)
	}
}

func TestComputeDarkCorrection(t *testing.T) {
	// Same ratios as above once the dark levels are removed.
	set := constSet(3, 2, 1, 12, 6, 11, 7)

	tr, err := Compute(set, 1, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	want := math.Log(0.75)
	testutil.RequireSliceNearlyEqual(t, tr.Y, []float64{want, want, want}, 1e-12)
}

func TestComputeNoPumpEffectIsZero(t *testing.T) {
	n := 32
	set := spectrum.Set{
		DarkRef:   testutil.DC(1, n),
		DarkSig:   testutil.DC(2, n),
		Ref:       testutil.GaussianPeak(n, 10, 500, 4),
		Sig:       testutil.GaussianPeak(n, 20, 300, 6),
	}
	// Keep every channel above dark so no gaps appear.
	set.Ref = addConst(set.Ref, 100)
	set.Sig = addConst(set.Sig, 100)
	set.RefPumped = set.Ref.Clone()
	set.SigPumped = set.Sig.Clone()

	tr, err := Compute(set, DefaultSmoothingWidth, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, tr.Y, make([]float64, n), 1e-12)
}

func addConst(s spectrum.Spectrum, c float64) spectrum.Spectrum {
	out := s.Clone()
	for i := range out {
		out[i] += c
	}
	return out
}

func TestComputeLengthMismatch(t *testing.T) {
	set := constSet(100, 0, 0, 10, 5, 9, 6)
	set.SigPumped = set.SigPumped[:99]

	tr, err := Compute(set, 5, nil)
	if !errors.Is(err, spectrum.ErrLengthMismatch) {
		t.Fatalf("Compute() error = %v, want ErrLengthMismatch", err)
	}
	if tr != nil {
		t.Fatalf("Compute() returned a trace on error")
	}
	var lerr *spectrum.LengthError
	if !errors.As(err, &lerr) || lerr.Label != spectrum.SigPumped || lerr.Len != 99 || lerr.Want != 100 {
		t.Fatalf("LengthError = %+v", lerr)
	}
}

func TestComputeEmpty(t *testing.T) {
	if _, err := Compute(spectrum.Set{}, 1, nil); !errors.Is(err, spectrum.ErrEmpty) {
		t.Fatalf("Compute(empty) error = %v, want ErrEmpty", err)
	}
}

func TestComputeInvalidWidth(t *testing.T) {
	set := constSet(8, 0, 0, 10, 5, 9, 6)
	for _, w := range []int{0, -1, 2, 4} {
		if _, err := Compute(set, w, nil); !errors.Is(err, ErrInvalidWidth) {
			t.Fatalf("Compute(width=%d) error = %v, want ErrInvalidWidth", w, err)
		}
	}
}

func TestComputeZeroDenominatorIsGap(t *testing.T) {
	set := constSet(5, 0, 0, 10, 5, 9, 6)
	set.Ref[2] = 0
	set.SigPumped[4] = 0

	tr, err := Compute(set, 1, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for i, v := range tr.Y {
		gap := i == 2 || i == 4
		if gap != math.IsNaN(v) {
			t.Fatalf("Y[%d] = %v, gap expected: %v", i, v, gap)
		}
	}
}

func TestComputeSmoothingEdges(t *testing.T) {
	set := constSet(6, 0, 0, 10, 5, 9, 6)

	tr, err := Compute(set, 3, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	v := math.Log(0.75)
	want := []float64{2 * v / 3, v, v, v, v, 2 * v / 3}
	testutil.RequireSliceNearlyEqual(t, tr.Y, want, 1e-12)
}

func TestComputeCalibratedAxis(t *testing.T) {
	set := constSet(3, 0, 0, 10, 5, 9, 6)

	plain, err := Compute(set, 1, nil)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	cal, err := Compute(set, 1, shift(400))
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, cal.X, []float64{400, 401, 402}, 0)
	testutil.RequireSliceNearlyEqual(t, cal.Y, plain.Y, 0)
	if x, y := cal.At(1); x != 401 || y != plain.Y[1] {
		t.Fatalf("At(1) = (%v, %v)", x, y)
	}
	if cal.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cal.Len())
	}
}

func TestComputeDoesNotModifyInputs(t *testing.T) {
	set := constSet(4, 1, 1, 10, 5, 9, 6)
	before := set.Clone()

	if _, err := Compute(set, 3, nil); err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	for _, l := range spectrum.Labels() {
		testutil.RequireSliceNearlyEqual(t, set.Get(l), before.Get(l), 0)
	}
}

func TestComputeSpectraArgumentOrder(t *testing.T) {
	n := 3
	tr, err := ComputeSpectra(
		testutil.DC(10, n), testutil.DC(5, n), testutil.DC(9, n), testutil.DC(6, n),
		testutil.DC(0, n), testutil.DC(0, n), 1, nil)
	if err != nil {
		t.Fatalf("ComputeSpectra() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, tr.Y, testutil.DC(math.Log(0.75), n), 1e-12)
}

func TestLogRatio(t *testing.T) {
	got := LogRatio(
		[]float64{10, 0, 4},
		[]float64{5, 5, 4},
		[]float64{9, 9, 4},
		[]float64{6, 6, 0},
	)
	testutil.RequireSliceNearlyEqual(t, got, []float64{math.Log(0.75), math.NaN(), math.NaN()}, 1e-12)
}

func BenchmarkCompute(b *testing.B) {
	n := 1344
	set := spectrum.Set{
		DarkRef:   testutil.DC(10, n),
		DarkSig:   testutil.DC(12, n),
		Ref:       addConst(testutil.GaussianPeak(n, 400, 3000, 80), 500),
		Sig:       addConst(testutil.GaussianPeak(n, 700, 2500, 90), 500),
		RefPumped: addConst(testutil.GaussianPeak(n, 400, 2900, 80), 500),
		SigPumped: addConst(testutil.GaussianPeak(n, 700, 2600, 90), 500),
	}
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Compute(set, DefaultSmoothingWidth, nil); err != nil {
			b.Fatal(err)
		}
	}
}
