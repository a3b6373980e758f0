package tas

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/dsp/conv"
	"github.com/cwbudde/algo-spectro/spectrum"
)

// DefaultSmoothingWidth is the moving-average width used by the grapher.
const DefaultSmoothingWidth = 5

// ErrInvalidWidth is returned for smoothing widths that are even or below 1.
var ErrInvalidWidth = errors.New("tas: smoothing width must be odd and >= 1")

// Calibration maps a channel index to the value shown on the x axis.
// *calib.Model and calib.Transform satisfy it.
type Calibration interface {
	Apply(channel float64) float64
}

// Trace is a computed ΔAbs curve. X, Y and Raw all have one entry per
// channel; Y is Raw after smoothing.
type Trace struct {
	X   []float64
	Y   []float64
	Raw []float64
}

// Len returns the number of channels in the trace.
func (t *Trace) Len() int { return len(t.Y) }

// At returns the (x, y) pair of channel i.
func (t *Trace) At(i int) (x, y float64) { return t.X[i], t.Y[i] }

// Compute builds the ΔAbs trace of a measurement set. All six spectra must
// have the same length; otherwise a *spectrum.LengthError is returned and
// nothing is computed.
func Compute(set spectrum.Set, width int, cal Calibration) (*Trace, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	n, err := set.Len()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, spectrum.ErrEmpty
	}

	c, err := darkCorrect(set)
	if err != nil {
		return nil, err
	}

	raw := LogRatio(c.ref, c.sig, c.refP, c.sigP)
	smoothed, err := conv.MovingAverage(raw, width)
	if err != nil {
		return nil, fmt.Errorf("tas: smooth: %w", err)
	}

	return &Trace{
		X:   axis(n, cal),
		Y:   smoothed,
		Raw: raw,
	}, nil
}

// ComputeSpectra is Compute with the six spectra passed individually.
func ComputeSpectra(ref, sig, refP, sigP, darkRef, darkSig spectrum.Spectrum, width int, cal Calibration) (*Trace, error) {
	return Compute(spectrum.Set{
		DarkRef:   darkRef,
		DarkSig:   darkSig,
		Ref:       ref,
		Sig:       sig,
		RefPumped: refP,
		SigPumped: sigP,
	}, width, cal)
}

// LogRatio returns ln((refP·sig) / (sigP·ref)) per channel for dark-corrected
// inputs of equal length. Channels where ref or sigP is zero are NaN.
func LogRatio(ref, sig, refP, sigP []float64) []float64 {
	n := len(ref)
	num := make([]float64, n)
	den := make([]float64, n)
	vecmath.MulBlock(num, refP, sig)
	vecmath.MulBlock(den, sigP, ref)

	out := num
	for i := range out {
		if ref[i] == 0 || sigP[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log(num[i] / den[i])
	}
	return out
}

type corrected struct {
	ref, sig, refP, sigP spectrum.Spectrum
}

func darkCorrect(set spectrum.Set) (corrected, error) {
	var c corrected
	var err error
	if c.ref, err = spectrum.Subtract(set.Ref, set.DarkRef); err != nil {
		return c, err
	}
	if c.sig, err = spectrum.Subtract(set.Sig, set.DarkSig); err != nil {
		return c, err
	}
	if c.refP, err = spectrum.Subtract(set.RefPumped, set.DarkRef); err != nil {
		return c, err
	}
	if c.sigP, err = spectrum.Subtract(set.SigPumped, set.DarkSig); err != nil {
		return c, err
	}
	return c, nil
}

func axis(n int, cal Calibration) []float64 {
	x := spectrum.Channels(n)
	if cal == nil {
		return x
	}
	for i, ch := range x {
		x[i] = cal.Apply(ch)
	}
	return x
}

func validateWidth(width int) error {
	if width < 1 || width%2 == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	return nil
}
