package dds

import "math"

// NewQuadratic returns a quadratic (nested Uhrig) sequence.
//
// numberOuterOffsets X(π) pulses sit at Uhrig offsets over the full
// duration. Each of the numberOuterOffsets+1 intervals they delimit holds
// numberInnerOffsets Z(π) detuning pulses at Uhrig offsets local to that
// interval.
func NewQuadratic(duration float64, numberInnerOffsets, numberOuterOffsets int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateCount("number_inner_offsets", numberInnerOffsets, map[string]any{
		"duration": duration, "number_outer_offsets": numberOuterOffsets,
	}); err != nil {
		return nil, err
	}
	if err := validateCount("number_outer_offsets", numberOuterOffsets, map[string]any{
		"duration": duration, "number_inner_offsets": numberInnerOffsets,
	}); err != nil {
		return nil, err
	}

	offsets, rabi, detuning := quadraticGrid(duration, numberInnerOffsets, numberOuterOffsets)
	return New(duration, offsets, rabi, make([]float64, len(offsets)), detuning, opts...)
}

// quadraticGrid lays the pulses out on a (outer+1) x (inner+1) grid: row r
// holds the inner pulses of interval r followed by the outer pulse closing
// it. The grid is flattened row-major and the last cell, which would be the
// end of the sequence, is dropped.
func quadraticGrid(duration float64, inner, outer int) (offsets, rabi, detuning []float64) {
	bounds := make([]float64, 0, outer+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, uhrigOffsets(duration, outer)...)
	bounds = append(bounds, duration)

	rows := outer + 1
	cols := inner + 1
	size := rows*cols - 1

	offsets = make([]float64, 0, size)
	rabi = make([]float64, 0, size)
	detuning = make([]float64, 0, size)

	for r := 0; r < rows; r++ {
		start := bounds[r]
		for _, o := range uhrigOffsets(bounds[r+1]-start, inner) {
			offsets = append(offsets, o+start)
			rabi = append(rabi, 0)
			detuning = append(detuning, math.Pi)
		}

		if r < outer {
			offsets = append(offsets, bounds[r+1])
			rabi = append(rabi, math.Pi)
			detuning = append(detuning, 0)
		}
	}

	return offsets, rabi, detuning
}
