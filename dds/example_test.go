package dds

import (
	"fmt"
	"math"
)

func ExampleNewSpinEcho() {
	s, _ := NewSpinEcho(1)
	fmt.Println(s.Offsets())
	fmt.Printf("%.2f\n", s.RabiRotations())
	// Output:
	// [0 0.5 1]
	// [0.00 3.14 0.00]
}

func ExampleNewCarrPurcellMeiboomGill() {
	s, _ := NewCarrPurcellMeiboomGill(1, 2, WithName("CPMG"))
	fmt.Println(s)
	// Output:
	// CPMG:
	// Duration = 1
	// Offsets = [0,0.25,0.75,1] x 1
	// Rabi Rotations = [0,1,1,0] x pi
	// Azimuthal Angles = [0,0.5,0.5,0] x pi
	// Detuning Rotations = [0,0,0,0] x pi
}

func ExampleGenerate() {
	p := DefaultParams()
	p.ConcatenationOrder = 2
	s, err := Generate(SchemeXConcatenated, p)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(s.Offsets())
	// Output:
	// [0 0.25 0.75 1]
}

func ExampleGenerate_unrecognizedParameter() {
	p := DefaultParams()
	p.NumberOfOffsets = 3
	_, err := Generate(SchemeRamsey, p)
	fmt.Println(err)
	// Output:
	// dds: unrecognized parameter for scheme Ramsey (number_of_offsets=3) [accepted_parameters=[]]
}

func ExampleNew() {
	s, _ := New(1, []float64{0.5}, []float64{math.Pi}, nil, nil, WithPrePostRotation(true))
	fmt.Printf("%.4f\n", s.RabiRotations())
	// Output:
	// [1.5708 3.1416 1.5708]
}
