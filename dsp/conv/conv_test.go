package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "simd path",
			a:        []float64{1, 0, 0, 2},
			b:        []float64{1, 1, 1, 1, 1},
			expected: []float64{1, 1, 1, 3, 3, 2, 2, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestOverlapAddConvolve(t *testing.T) {
	signal := testutil.GaussianPeak(1000, 400, 100, 30)
	kernel := []float64{0.25, 0.5, 0.25}

	directResult, err := Direct(signal, kernel)
	if err != nil {
		t.Fatalf("direct convolution failed: %v", err)
	}

	oaResult, err := OverlapAddConvolve(signal, kernel)
	if err != nil {
		t.Fatalf("overlap-add convolution failed: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, oaResult, directResult, 1e-9)
}

func TestNewOverlapAddRejectsNegativeBlock(t *testing.T) {
	_, err := NewOverlapAdd([]float64{1}, -1)
	if !errors.Is(err, ErrInvalidBlockSize) {
		t.Fatalf("expected ErrInvalidBlockSize, got %v", err)
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	longKernel := make([]float64, 100)
	for i := range longKernel {
		longKernel[i] = math.Exp(-float64(i) / 20)
	}

	got, err := Convolve(signal, longKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}

	want, _ := Direct(signal, longKernel)

	maxDiff, err := testutil.MaxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if maxDiff > 1e-8 {
		t.Errorf("long kernel max difference %v exceeds tolerance", maxDiff)
	}
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	full, _ := ConvolveMode(a, b, ModeFull)
	if len(full) != len(a)+len(b)-1 {
		t.Errorf("full mode length: got %d, want %d", len(full), len(a)+len(b)-1)
	}

	same, _ := ConvolveMode(a, b, ModeSame)
	testutil.RequireSliceNearlyEqual(t, same, []float64{4, 10, 16, 22, 22}, 1e-12)

	valid, _ := ConvolveMode(a, b, ModeValid)
	if len(valid) != len(a)-len(b)+1 {
		t.Errorf("valid mode length: got %d, want %d", len(valid), len(a)-len(b)+1)
	}
}

func TestConvolveModeSameKernelLongerThanSignal(t *testing.T) {
	same, err := ConvolveMode([]float64{3, 3}, []float64{1, 1, 1, 1, 1}, ModeSame)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, same, []float64{6, 6}, 1e-12)
}

func TestBoxcar(t *testing.T) {
	k, err := Boxcar(4)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, k, []float64{0.25, 0.25, 0.25, 0.25}, 0)

	if _, err := Boxcar(0); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("Boxcar(0) err = %v, want ErrInvalidWidth", err)
	}
}

func TestMovingAverageZeroPaddedEdges(t *testing.T) {
	got, err := MovingAverage(testutil.DC(1, 5), 3)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{2.0 / 3, 1, 1, 1, 2.0 / 3}, 1e-12)
}

func TestMovingAverageWidthOneIsIdentity(t *testing.T) {
	in := []float64{-0.5, 0.25, math.NaN(), 3}
	got, err := MovingAverage(in, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, in, 0)
}

func TestMovingAverageNaNStaysLocal(t *testing.T) {
	in := []float64{1, 1, math.NaN(), 1, 1, 1, 1}
	got, err := MovingAverage(in, 3)
	if err != nil {
		t.Fatal(err)
	}

	nan := math.NaN()
	testutil.RequireSliceNearlyEqual(t, got, []float64{2.0 / 3, nan, nan, nan, 1, 1, 2.0 / 3}, 1e-12)
}

func TestMovingAverageWideKernelIsExact(t *testing.T) {
	signal := testutil.AddGaussian(testutil.DeterministicNoise(7, 0.3, 300), 150, 2, 20)

	for _, width := range []int{63, 65, 101} {
		got, err := MovingAverage(signal, width)
		if err != nil {
			t.Fatal(err)
		}
		kernel, _ := Boxcar(width)
		want, _ := DirectMode(signal, kernel, ModeSame)
		testutil.RequireSliceNearlyEqual(t, got, want, 0)
	}
}

func TestMovingAverageErrors(t *testing.T) {
	if _, err := MovingAverage(nil, 3); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
	if _, err := MovingAverage([]float64{1}, -2); !errors.Is(err, ErrInvalidWidth) {
		t.Fatalf("err = %v, want ErrInvalidWidth", err)
	}
}

func BenchmarkMovingAverage(b *testing.B) {
	signal := testutil.GaussianPeak(1344, 600, 1, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = MovingAverage(signal, 5)
	}
}
