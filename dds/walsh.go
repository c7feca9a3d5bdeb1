package dds

import (
	"math"
	"math/bits"

	"github.com/cwbudde/algo-vecmath"
)

// NewWalshSingleAxis returns X(π) pulses at the sign changes of the Walsh
// function with the given Paley order.
func NewWalshSingleAxis(duration float64, paleyOrder int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if paleyOrder < 1 || paleyOrder > UpperBoundPaleyOrder {
		return nil, argumentError("paley order must be between 1 and 2000",
			map[string]any{"paley_order": paleyOrder})
	}

	offsets := walshOffsets(paleyOrder)
	vecmath.ScaleBlockInPlace(offsets, duration)
	return New(duration, offsets,
		constant(len(offsets), math.Pi),
		make([]float64, len(offsets)),
		make([]float64, len(offsets)),
		opts...)
}

// walshSamples evaluates the Paley-ordered Walsh function at the midpoints
// of 2^h equal slots, h = floor(log2(order)) + 1.
//
// Bit i of the order (least significant first) selects the Rademacher
// factor sign(sin(2^(i+1)·π·t)). At t = (j+0.5)/2^h the argument is
// π·(2j+1)/2^(h-i), so the factor is negative exactly when
// floor((2j+1)/2^(h-i)) is odd. Evaluating it on integers keeps the
// samples free of rounding.
func walshSamples(order int) []int8 {
	h := bits.Len(uint(order))
	samples := 1 << h

	out := make([]int8, samples)
	for j := range out {
		v := int8(1)
		odd := 2*j + 1
		for i := 0; i < h; i++ {
			if order>>i&1 == 0 {
				continue
			}
			if (odd>>(h-i))&1 == 1 {
				v = -v
			}
		}
		out[j] = v
	}

	return out
}

// walshOffsets returns the relative positions, in (0, 1), of the sign
// changes of the Walsh function.
func walshOffsets(order int) []float64 {
	w := walshSamples(order)
	step := 1 / float64(len(w))

	var out []float64
	for i := 0; i < len(w)-1; i++ {
		if w[i] != w[i+1] {
			out = append(out, float64(i+1)*step)
		}
	}

	return out
}
