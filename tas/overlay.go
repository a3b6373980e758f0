package tas

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/spectrum"
)

// Source looks up measurement sets by name. *registry.Registry satisfies it.
type Source interface {
	Load(name string) (spectrum.Set, error)
}

// NamedTrace pairs a dataset name with its trace.
type NamedTrace struct {
	Name  string
	Trace *Trace
}

// Overlay computes the traces of several saved datasets in the given order.
// The first failing dataset aborts the overlay and is named in the error.
func Overlay(src Source, names []string, width int, cal Calibration) ([]NamedTrace, error) {
	if err := validateWidth(width); err != nil {
		return nil, err
	}
	out := make([]NamedTrace, 0, len(names))
	for _, name := range names {
		set, err := src.Load(name)
		if err != nil {
			return nil, err
		}
		tr, err := Compute(set, width, cal)
		if err != nil {
			return nil, fmt.Errorf("dataset %q: %w", name, err)
		}
		out = append(out, NamedTrace{Name: name, Trace: tr})
	}
	return out, nil
}
