// Package spectrum holds raw detector spectra and the six-spectrum sets that
// a transient-absorption measurement is made of.
//
// A [Spectrum] is an intensity per detector channel. A [Set] groups the
// dark-reference, dark-signal, reference, signal, pumped-reference and
// pumped-signal spectra recorded for one measurement. Spectra are usually
// pasted or exported as line-oriented text; [Parse] accepts one value per
// line or "index value" pairs.
package spectrum
