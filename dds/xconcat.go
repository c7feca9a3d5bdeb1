package dds

import "math"

// NewXConcatenated returns the X-concatenated sequence
// C(n) = C(n-1) X C(n-1) X with C(0) free evolution.
func NewXConcatenated(duration float64, concatenationOrder int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateConcatenationOrder(duration, concatenationOrder, xPatternLength); err != nil {
		return nil, err
	}

	offsets := xConcatenatedOffsets(duration, concatenationOrder)
	return New(duration, offsets,
		constant(len(offsets), math.Pi),
		make([]float64, len(offsets)),
		make([]float64, len(offsets)),
		opts...)
}

func xConcatenatedOffsets(duration float64, order int) []float64 {
	unit := duration / float64(int(1)<<order)
	steps := oddPulseTimes(patterns.get(patternX, order), markerX)

	// Odd orders end with a pulse at the duration itself.
	if order%2 == 1 && len(steps) > 0 {
		steps = steps[:len(steps)-1]
	}

	out := make([]float64, len(steps))
	for i, k := range steps {
		out[i] = float64(k) * unit
	}
	return out
}
