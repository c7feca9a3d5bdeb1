package dds

import "math"

// NewRamsey returns a free-evolution sequence with no pulses.
func NewRamsey(duration float64, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}

	offsets := []float64{0, duration}
	return New(duration, offsets,
		make([]float64, 2), make([]float64, 2), make([]float64, 2), opts...)
}

// NewSpinEcho returns a single X(π) pulse at the midpoint.
func NewSpinEcho(duration float64, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}

	return New(duration, []float64{duration * 0.5},
		[]float64{math.Pi}, make([]float64, 1), make([]float64, 1), opts...)
}

// NewCarrPurcell returns n evenly spaced X(π) pulses at (k+0.5)/n of the
// duration.
func NewCarrPurcell(duration float64, numberOfOffsets int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateCount("number_of_offsets", numberOfOffsets, nil); err != nil {
		return nil, err
	}

	offsets := cpmgOffsets(duration, numberOfOffsets)
	return New(duration, offsets,
		constant(len(offsets), math.Pi),
		make([]float64, len(offsets)),
		make([]float64, len(offsets)),
		opts...)
}

// NewCarrPurcellMeiboomGill returns the Carr-Purcell timing with Y(π)
// pulses (azimuthal angle π/2).
func NewCarrPurcellMeiboomGill(duration float64, numberOfOffsets int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateCount("number_of_offsets", numberOfOffsets, nil); err != nil {
		return nil, err
	}

	offsets := cpmgOffsets(duration, numberOfOffsets)
	return New(duration, offsets,
		constant(len(offsets), math.Pi),
		constant(len(offsets), math.Pi/2),
		make([]float64, len(offsets)),
		opts...)
}

// NewUhrigSingleAxis returns n Y(π) pulses at the Uhrig offsets
// duration * sin²(πk/(2n+2)), k=1..n.
func NewUhrigSingleAxis(duration float64, numberOfOffsets int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateCount("number_of_offsets", numberOfOffsets, nil); err != nil {
		return nil, err
	}

	offsets := uhrigOffsets(duration, numberOfOffsets)
	return New(duration, offsets,
		constant(len(offsets), math.Pi),
		constant(len(offsets), math.Pi/2),
		make([]float64, len(offsets)),
		opts...)
}

// NewPeriodicSingleAxis returns n X(π) pulses at k/(n+1) of the duration.
func NewPeriodicSingleAxis(duration float64, numberOfOffsets int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateCount("number_of_offsets", numberOfOffsets, nil); err != nil {
		return nil, err
	}

	offsets := periodicOffsets(duration, numberOfOffsets)
	return New(duration, offsets,
		constant(len(offsets), math.Pi),
		make([]float64, len(offsets)),
		make([]float64, len(offsets)),
		opts...)
}
