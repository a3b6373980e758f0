// Package calib fits and applies the affine channel-to-wavelength mapping of
// a spectrometer detector.
//
// A [Model] starts uncalibrated. [Model.Fit] solves wavelength = a*channel + b
// from two or more [Point] values (exactly for two points, by ordinary least
// squares otherwise). Until a fit succeeds, [Model.Apply] is the identity, so
// callers can always push channel axes through Apply and get either channels
// or wavelengths back.
//
// Coefficients persist as a flat {a, b} [Record] in JSON or TOML.
package calib
