package calib

import (
	"errors"
	"fmt"
)

// Errors returned by calibration functions.
var (
	ErrInsufficientPoints = errors.New("calib: need at least two points with distinct channels")
	ErrUncalibrated       = errors.New("calib: model is not calibrated")
	ErrInvalidRecord      = errors.New("calib: invalid coefficient record")
	ErrUnsupportedFormat  = errors.New("calib: unsupported record format")
	ErrInvalidPoint       = errors.New("calib: non-finite calibration point")
)

// FitError reports why a point list could not be fitted. It matches
// ErrInsufficientPoints with errors.Is.
type FitError struct {
	// Valid is the number of points supplied.
	Valid int
	// Distinct is the number of distinct channels among them.
	Distinct int
}

func (e *FitError) Error() string {
	return fmt.Sprintf("calib: %d points, %d distinct channels; need at least 2", e.Valid, e.Distinct)
}

// Is reports whether target is ErrInsufficientPoints.
func (e *FitError) Is(target error) bool { return target == ErrInsufficientPoints }

// PointError names the first calibration point with a NaN or infinite
// channel or wavelength. It matches ErrInvalidPoint with errors.Is.
type PointError struct {
	Index int
	Point Point
}

func (e *PointError) Error() string {
	return fmt.Sprintf("calib: point %d (channel %v, wavelength %v) is not finite",
		e.Index, e.Point.Channel, e.Point.Wavelength)
}

// Is reports whether target is ErrInvalidPoint.
func (e *PointError) Is(target error) bool { return target == ErrInvalidPoint }
