// Package peaks locates candidate calibration lines in a raw spectrum.
//
// Candidates are local maxima. A candidate survives when no taller candidate
// lies closer than the minimum distance and when its prominence (height above
// the higher of the two valleys separating it from taller terrain) reaches the
// minimum prominence. Survivors are ordered by descending height and truncated
// to the requested count.
//
//	idx := peaks.Find(data, peaks.WithProminence(50), peaks.WithDistance(100), peaks.WithTopK(5))
//
// An empty result means no peaks were found; it is not an error.
package peaks
