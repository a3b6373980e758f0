package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Spectrum is an ordered intensity sequence indexed by detector channel.
// Values are not modified once parsed; functions in this module return new
// spectra instead of writing into their inputs.
type Spectrum []float64

// Len returns the number of channels.
func (s Spectrum) Len() int { return len(s) }

// Clone returns an independent copy of s. Clone of nil is nil.
func (s Spectrum) Clone() Spectrum {
	if s == nil {
		return nil
	}
	out := make(Spectrum, len(s))
	copy(out, s)
	return out
}

// Channels returns the channel index axis 0..n-1 as float64 values.
func Channels(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// Subtract returns a - b element-wise. Both spectra must have equal length.
func Subtract(a, b Spectrum) (Spectrum, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d channels", ErrLengthMismatch, len(a), len(b))
	}
	out := make(Spectrum, len(a))
	if len(a) == 0 {
		return out, nil
	}
	vecmath.ScaleBlock(out, b, -1)
	vecmath.AddBlockInPlace(out, a)
	return out, nil
}

// DarkCorrect subtracts a dark spectrum from s.
func DarkCorrect(s, dark Spectrum) (Spectrum, error) {
	out, err := Subtract(s, dark)
	if err != nil {
		return nil, fmt.Errorf("dark correction: %w", err)
	}
	return out, nil
}
