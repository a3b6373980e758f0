package spectrum

import "fmt"

// Label identifies one of the six spectra of a measurement set.
type Label int

const (
	DarkRef   Label = iota // detector dark level on the reference arm
	DarkSig                // detector dark level on the signal arm
	Ref                    // reference, probe only
	Sig                    // signal, probe only
	RefPumped              // reference with pump
	SigPumped              // signal with pump
)

var labelNames = [...]string{
	DarkRef:   "DARK_ref",
	DarkSig:   "DARK_sig",
	Ref:       "ref",
	Sig:       "sig",
	RefPumped: "ref_p",
	SigPumped: "sig_p",
}

// Labels returns all six labels in canonical order.
func Labels() []Label {
	return []Label{DarkRef, DarkSig, Ref, Sig, RefPumped, SigPumped}
}

func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return fmt.Sprintf("Label(%d)", int(l))
	}
	return labelNames[l]
}

// Valid reports whether l is one of the six known labels.
func (l Label) Valid() bool {
	return l >= 0 && int(l) < len(labelNames)
}

// ParseLabel resolves the textual name used in files and exports
// ("DARK_ref", "sig_p", ...).
func ParseLabel(name string) (Label, error) {
	for i, n := range labelNames {
		if n == name {
			return Label(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, name)
}
