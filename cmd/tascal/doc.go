// Command tascal calibrates a spectrometer's channel axis and computes
// transient-absorption (ΔAbs) traces from pump-probe spectra.
//
// Usage:
//
//	tascal peaks FILE [--prominence P] [--distance D] [--top-k K]
//	tascal calibrate --point CH=NM --point CH=NM ... [--out FILE]
//	tascal range --calib FILE
//	tascal dabs --dark-ref F --dark-sig F --ref F --sig F --ref-p F --sig-p F [--width N] [--calib FILE]
//	tascal overlay DIR...
//
// Settings are read from the TOML file given with --config; flags override
// it. Each overlay directory holds DARK_ref.txt, DARK_sig.txt, ref.txt,
// sig.txt, ref_p.txt and sig_p.txt.
package main
