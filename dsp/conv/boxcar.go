package conv

import "fmt"

// Boxcar returns a uniform kernel of the given width whose taps sum to one.
func Boxcar(width int) ([]float64, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	kernel := make([]float64, width)
	tap := 1 / float64(width)
	for i := range kernel {
		kernel[i] = tap
	}
	return kernel, nil
}

// MovingAverage smooths signal with a centered boxcar of the given width and
// returns a slice of the same length.
//
// Samples outside the signal are treated as zero and every output is divided
// by width, so the first and last (width-1)/2 values are pulled toward zero
// rather than renormalized by the number of covered samples.
//
// The sum is always taken in the time domain, whatever the width, so results
// do not depend on FFT rounding and NaN gaps stay local.
func MovingAverage(signal []float64, width int) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptyInput
	}
	kernel, err := Boxcar(width)
	if err != nil {
		return nil, err
	}
	return DirectMode(signal, kernel, ModeSame)
}
