// Package tas computes transient-absorption (ΔAbs) traces from pump-probe
// spectra.
//
// For every channel the four measurement spectra are dark corrected and
// combined into
//
//	ΔAbs = ln((ref_p·sig) / (sig_p·ref))
//
// which is then smoothed with a centered moving average. Channels where the
// unpumped reference or the pumped signal is zero after dark correction carry
// NaN; they are gaps in the trace, not errors.
//
// The x axis is produced by the supplied [Calibration]; a nil calibration
// yields raw channel indices. Calibration never touches ΔAbs values.
package tas
