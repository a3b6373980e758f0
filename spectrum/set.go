package spectrum

import "fmt"

// Set is the six spectra of one pump-probe measurement.
type Set struct {
	DarkRef   Spectrum
	DarkSig   Spectrum
	Ref       Spectrum
	Sig       Spectrum
	RefPumped Spectrum
	SigPumped Spectrum
}

// Get returns the spectrum stored under label. Unknown labels return nil.
func (s *Set) Get(label Label) Spectrum {
	if p := s.slot(label); p != nil {
		return *p
	}
	return nil
}

// Put stores spec under label.
func (s *Set) Put(label Label, spec Spectrum) error {
	p := s.slot(label)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLabel, label)
	}
	*p = spec
	return nil
}

func (s *Set) slot(label Label) *Spectrum {
	switch label {
	case DarkRef:
		return &s.DarkRef
	case DarkSig:
		return &s.DarkSig
	case Ref:
		return &s.Ref
	case Sig:
		return &s.Sig
	case RefPumped:
		return &s.RefPumped
	case SigPumped:
		return &s.SigPumped
	default:
		return nil
	}
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	return Set{
		DarkRef:   s.DarkRef.Clone(),
		DarkSig:   s.DarkSig.Clone(),
		Ref:       s.Ref.Clone(),
		Sig:       s.Sig.Clone(),
		RefPumped: s.RefPumped.Clone(),
		SigPumped: s.SigPumped.Clone(),
	}
}

// Len returns the common channel count of all six spectra. The first
// spectrum whose length differs from DarkRef is reported as a *LengthError.
func (s *Set) Len() (int, error) {
	want := len(s.DarkRef)
	for _, l := range Labels()[1:] {
		if n := len(s.Get(l)); n != want {
			return 0, &LengthError{Label: l, Len: n, Want: want}
		}
	}
	return want, nil
}
