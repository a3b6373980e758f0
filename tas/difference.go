package tas

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/spectrum"
)

// Differences are the pump-induced intensity changes of a measurement, each
// scaled to a peak magnitude of one.
//
// NaN channels are ignored when finding the peak magnitude, so a NaN stays
// in its own channel and the rest of the curve is still normalized.
type Differences struct {
	// Ref is |ref_p - ref| after dark correction, normalized.
	Ref []float64
	// Sig is |sig_p - sig| after dark correction, normalized.
	Sig []float64
	// Combined is |Ref - Sig|, normalized.
	Combined []float64
}

// ComputeDifferences derives the normalized difference curves of a set.
func ComputeDifferences(set spectrum.Set) (*Differences, error) {
	if _, err := set.Len(); err != nil {
		return nil, err
	}
	c, err := darkCorrect(set)
	if err != nil {
		return nil, err
	}

	refDiff, err := spectrum.Subtract(c.refP, c.ref)
	if err != nil {
		return nil, err
	}
	sigDiff, err := spectrum.Subtract(c.sigP, c.sig)
	if err != nil {
		return nil, err
	}
	d := &Differences{
		Ref: normAbs(refDiff),
		Sig: normAbs(sigDiff),
	}
	combined, err := spectrum.Subtract(d.Ref, d.Sig)
	if err != nil {
		return nil, err
	}
	d.Combined = normAbs(combined)
	return d, nil
}

// normAbs returns |x| / max|x|; an all-zero input stays zero. NaN samples
// do not take part in max|x|.
func normAbs(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}
	// NaN ordering differs between the SIMD kernels; zero the gaps first.
	for i, v := range x {
		if !math.IsNaN(v) {
			out[i] = v
		}
	}
	peak := vecmath.MaxAbs(out)
	if peak == 0 {
		peak = 1
	}
	for i, v := range x {
		out[i] = math.Abs(v)
	}
	vecmath.ScaleBlockInPlace(out, 1/peak)
	return out
}
