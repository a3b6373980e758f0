package tas_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectro/calib"
	"github.com/cwbudde/algo-spectro/spectrum"
	"github.com/cwbudde/algo-spectro/tas"
)

func ExampleCompute() {
	set := spectrum.Set{
		DarkRef:   spectrum.Spectrum{0, 0, 0},
		DarkSig:   spectrum.Spectrum{0, 0, 0},
		Ref:       spectrum.Spectrum{10, 10, 10},
		Sig:       spectrum.Spectrum{5, 5, 5},
		RefPumped: spectrum.Spectrum{9, 9, 9},
		SigPumped: spectrum.Spectrum{6, 6, 6},
	}

	m := calib.NewModel()
	if err := m.Fit([]calib.Point{
		{Channel: 0, Wavelength: 400},
		{Channel: 2, Wavelength: 401},
	}); err != nil {
		fmt.Println(err)
		return
	}

	tr, err := tas.Compute(set, 1, m)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := range tr.Len() {
		x, y := tr.At(i)
		fmt.Printf("%.1f nm  %.4f\n", x, y)
	}

	// Output:
	// 400.0 nm  -0.2877
	// 400.5 nm  -0.2877
	// 401.0 nm  -0.2877
}
