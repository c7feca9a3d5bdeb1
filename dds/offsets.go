package dds

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// cpmgOffsets returns n offsets evenly spaced at (k+0.5)/n of the duration.
func cpmgOffsets(duration float64, n int) []float64 {
	spacing := 1 / float64(n)
	start := 0.5 * spacing

	out := make([]float64, n)
	for k := range out {
		out[k] = spacing*float64(k) + start
	}

	vecmath.ScaleBlockInPlace(out, duration)
	return out
}

// uhrigOffsets returns n offsets at sin²(πk/(2n+2)) of the duration, k=1..n.
func uhrigOffsets(duration float64, n int) []float64 {
	c := 1 / float64(2*n+2)

	out := make([]float64, n)
	for i := range out {
		s := math.Sin(math.Pi * float64(i+1) * c)
		out[i] = s * s
	}

	vecmath.ScaleBlockInPlace(out, duration)
	return out
}

// periodicOffsets returns n offsets at k/(n+1) of the duration, k=1..n.
func periodicOffsets(duration float64, n int) []float64 {
	spacing := 1 / float64(n+1)

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) * spacing
	}

	vecmath.ScaleBlockInPlace(out, duration)
	return out
}
