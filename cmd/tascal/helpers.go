package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-spectro/spectrum"
)

func readSpectrumFile(path string) (spectrum.Spectrum, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open spectrum: %w", err)
	}
	defer f.Close()

	spec, err := spectrum.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// readSetDir loads the six measurement files of one run directory.
func readSetDir(dir string) (spectrum.Set, error) {
	var set spectrum.Set
	for _, label := range spectrum.Labels() {
		spec, err := readSpectrumFile(filepath.Join(dir, label.String()+".txt"))
		if err != nil {
			return spectrum.Set{}, err
		}
		if err := set.Put(label, spec); err != nil {
			return spectrum.Set{}, err
		}
	}
	return set, nil
}

// axisHeader names the x column for an optional calibration.
func axisHeader(calibrated bool) string {
	if calibrated {
		return "Wavelength (nm)"
	}
	return "Channel"
}
