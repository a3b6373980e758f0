package calib

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultDetectorChannels is the channel count of the Chromex detector the
// calibration tool was built around.
const DefaultDetectorChannels = 1344

// Point pairs a detector channel with the known wavelength observed there.
type Point struct {
	Channel    float64
	Wavelength float64
}

// Transform is an immutable snapshot of a model's coefficients. The zero
// value is uncalibrated and maps every channel to itself.
type Transform struct {
	a, b       float64
	calibrated bool
}

// NewTransform returns a calibrated transform wavelength = a*channel + b.
func NewTransform(a, b float64) Transform {
	return Transform{a: a, b: b, calibrated: true}
}

// Calibrated reports whether the transform holds fitted coefficients.
func (t Transform) Calibrated() bool { return t.calibrated }

// Coefficients returns slope a and intercept b, and whether they are set.
func (t Transform) Coefficients() (a, b float64, ok bool) {
	return t.a, t.b, t.calibrated
}

// Apply maps a channel to a wavelength, or returns the channel unchanged
// when uncalibrated.
func (t Transform) Apply(channel float64) float64 {
	if !t.calibrated {
		return channel
	}
	return t.a*channel + t.b
}

// ApplyAll maps every channel of in and returns a new slice.
func (t Transform) ApplyAll(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, ch := range in {
		out[i] = t.Apply(ch)
	}
	return out
}

// Axis returns Apply(0) .. Apply(n-1).
func (t Transform) Axis(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = t.Apply(float64(i))
	}
	return out
}

// Model holds the current calibration and the detector width it applies to.
// A Model is not safe for concurrent mutation; hand readers a Transform
// snapshot instead.
type Model struct {
	t        Transform
	channels int
	lo, hi   float64
}

// Option configures a Model.
type Option func(*Model)

// WithDetectorChannels sets the detector width used for Range. Values below 1
// are ignored.
func WithDetectorChannels(n int) Option {
	return func(m *Model) {
		if n >= 1 {
			m.channels = n
		}
	}
}

// NewModel returns an uncalibrated model.
func NewModel(opts ...Option) *Model {
	m := &Model{channels: DefaultDetectorChannels}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// DetectorChannels returns the detector width used for Range.
func (m *Model) DetectorChannels() int { return m.channels }

// Calibrated reports whether a fit or import has set coefficients.
func (m *Model) Calibrated() bool { return m.t.calibrated }

// Transform returns an immutable snapshot of the current coefficients.
func (m *Model) Transform() Transform { return m.t }

// Coefficients returns slope a and intercept b, and whether they are set.
func (m *Model) Coefficients() (a, b float64, ok bool) { return m.t.Coefficients() }

// Apply maps channel through the current calibration; identity when
// uncalibrated.
func (m *Model) Apply(channel float64) float64 { return m.t.Apply(channel) }

// ApplyAll maps every element of channels through Apply.
func (m *Model) ApplyAll(channels []float64) []float64 { return m.t.ApplyAll(channels) }

// Axis returns the display axis for an n-channel spectrum.
func (m *Model) Axis(n int) []float64 { return m.t.Axis(n) }

// Range returns the wavelengths of the first and last detector channel,
// b and a*(channels-1)+b.
func (m *Model) Range() (lo, hi float64, ok bool) {
	return m.lo, m.hi, m.t.calibrated
}

// Fit replaces the coefficients with a line through points. Two points are
// solved exactly; more points use ordinary least squares.
//
// A non-finite channel or wavelength yields a *PointError, and fewer than two
// distinct channels a *FitError. Either way the previous coefficients are
// left untouched.
func (m *Model) Fit(points []Point) error {
	a, b, err := FitLine(points)
	if err != nil {
		return err
	}
	m.set(NewTransform(a, b))
	return nil
}

// Reset returns the model to the uncalibrated state.
func (m *Model) Reset() {
	m.t = Transform{}
	m.lo, m.hi = 0, 0
}

func (m *Model) set(t Transform) {
	m.t = t
	m.lo = t.Apply(0)
	m.hi = t.Apply(float64(m.channels - 1))
}

// Equation renders the calibration as "λ = a·ch + b".
func (m *Model) Equation() string {
	a, b, ok := m.t.Coefficients()
	if !ok {
		return "λ = a·ch + b (uncalibrated)"
	}
	return fmt.Sprintf("λ = %.6f·ch + %.6f", a, b)
}

// Residuals returns wavelength - Apply(channel) for each point.
func (m *Model) Residuals(points []Point) []float64 {
	channels, wavelengths := split(points)
	out := make([]float64, len(points))
	if len(points) == 0 {
		return out
	}
	floats.SubTo(out, wavelengths, m.ApplyAll(channels))
	return out
}

// RSS returns the residual sum of squares of points against the model.
func (m *Model) RSS(points []Point) float64 {
	r := m.Residuals(points)
	return floats.Dot(r, r)
}

// FitLine solves wavelength = a*channel + b for points without touching any
// model. A point with a non-finite channel or wavelength fails the fit with
// a *PointError.
func FitLine(points []Point) (a, b float64, err error) {
	for i, p := range points {
		if !finite(p.Channel) || !finite(p.Wavelength) {
			return 0, 0, &PointError{Index: i, Point: p}
		}
	}

	distinct := countDistinctChannels(points)
	if len(points) < 2 || distinct < 2 {
		return 0, 0, &FitError{Valid: len(points), Distinct: distinct}
	}

	if len(points) == 2 {
		p, q := points[0], points[1]
		a = (q.Wavelength - p.Wavelength) / (q.Channel - p.Channel)
		b = p.Wavelength - a*p.Channel
		return a, b, nil
	}

	channels, wavelengths := split(points)
	b, a = stat.LinearRegression(channels, wavelengths, nil, false)
	return a, b, nil
}

func split(points []Point) (channels, wavelengths []float64) {
	channels = make([]float64, len(points))
	wavelengths = make([]float64, len(points))
	for i, p := range points {
		channels[i] = p.Channel
		wavelengths[i] = p.Wavelength
	}
	return channels, wavelengths
}

func countDistinctChannels(points []Point) int {
	seen := make(map[float64]struct{}, len(points))
	for _, p := range points {
		seen[p.Channel] = struct{}{}
	}
	return len(seen)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
