package testutil

import (
	"math"
	"math/rand"
)

// GaussianPeak returns a spectrum of length n holding a single Gaussian bump
// of the given height centered on channel center. width is the standard
// deviation in channels.
func GaussianPeak(n int, center, height, width float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		d := (float64(i) - center) / width
		out[i] = height * math.Exp(-0.5*d*d)
	}
	return out
}

// AddGaussian adds a Gaussian bump to dst in place and returns dst.
func AddGaussian(dst []float64, center, height, width float64) []float64 {
	for i := range dst {
		d := (float64(i) - center) / width
		dst[i] += height * math.Exp(-0.5*d*d)
	}
	return dst
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued spectrum.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns start, start+step, ... with the given length.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
