// Package conv provides the convolution routines used to smooth spectra and
// transient-absorption traces.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain accumulation, exact and NaN-preserving
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)            // Auto-selects best algorithm
//	result, err := conv.Direct(signal, kernel)              // Force direct convolution
//	same, err := conv.ConvolveMode(signal, kernel, conv.ModeSame)
//
// For boxcar smoothing with the same edge behaviour as a zero-padded
// "same"-mode convolution:
//
//	smoothed, err := conv.MovingAverage(trace, 5)
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution for kernels up to 64 taps and FFT-based
// overlap-add above that. [MovingAverage] always sums directly, so its output
// is exact for any width and a NaN or Inf only affects the bins whose window
// covers it.
package conv
