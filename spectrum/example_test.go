package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-astro/spectrum"
)

func ExampleResampleUniform() {
	s, _ := spectrum.New(
		[]float64{4000, 4010, 4020},
		[]float64{0, 10, 20},
	)

	out, outside, _ := spectrum.ResampleUniform(s, 4000, 4020, 5, spectrum.ModeLinear)
	fmt.Println(out.Flux, outside)

	// Output:
	// [0 5 10 15 20] 0
}

func ExampleCombineMean() {
	a, _ := spectrum.New([]float64{4000, 4001}, []float64{1, 3})
	b, _ := spectrum.New([]float64{4000, 4001}, []float64{3, 5})

	out, _ := spectrum.CombineMean([]*spectrum.Spectrum{a, b}, spectrum.CombineOptions{})
	fmt.Println(out.Flux)

	// Output:
	// [2 4]
}
