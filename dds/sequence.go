package dds

import "math"

// Sequence is a validated dynamic decoupling sequence.
//
// Offsets always begin at 0 and end at the duration, and the three rotation
// streams have the same length as the offsets. A Sequence never changes
// after [New] returns it; accessors hand out copies.
type Sequence struct {
	duration          float64
	offsets           []float64
	rabiRotations     []float64
	azimuthalAngles   []float64
	detuningRotations []float64
	prePostRotation   bool
	name              string
}

// Option configures sequence construction.
type Option func(*config)

type config struct {
	prePostRotation bool
	name            string
}

// WithPrePostRotation places X(π/2) rotations at offset 0 and at the end of
// the sequence, overwriting any rotation supplied there.
func WithPrePostRotation(enabled bool) Option {
	return func(c *config) {
		c.prePostRotation = enabled
	}
}

// WithName labels the sequence.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// New validates and normalizes a sequence.
//
// A nil offsets slice defaults to a single pulse at duration/2. A nil
// rabi slice defaults to π at every supplied offset; nil azimuthal and
// detuning slices default to zeros. Missing boundary offsets at 0 and at
// duration are inserted before the rotation lengths are checked, so the
// rotation slices must match the supplied offsets, not the normalized ones.
//
// The input slices are not modified.
func New(duration float64, offsets, rabi, azimuthal, detuning []float64, opts ...Option) (*Sequence, error) {
	cfg := applyOptions(opts)

	if err := validateDuration(duration); err != nil {
		return nil, err
	}

	if offsets == nil {
		offsets = []float64{duration / 2}
	}

	if len(offsets) > UpperBoundOffsets {
		return nil, &ArgumentError{
			Message: "number of offsets is above the allowed maximum",
			Fields:  map[string]any{"number_of_offsets": len(offsets)},
			Extras:  map[string]any{"allowed_maximum_offsets": UpperBoundOffsets},
		}
	}

	for _, o := range offsets {
		if !isFinite(o) || o < 0 || o > duration {
			return nil, argumentError("offsets must be between 0 and the sequence duration (inclusive)",
				map[string]any{"offsets": offsets, "duration": duration})
		}
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, argumentError("offsets must be in non-decreasing order",
				map[string]any{"offsets": offsets, "index": i})
		}
	}

	if rabi == nil {
		rabi = constant(len(offsets), math.Pi)
	}
	if azimuthal == nil {
		azimuthal = make([]float64, len(offsets))
	}
	if detuning == nil {
		detuning = make([]float64, len(offsets))
	}

	s := &Sequence{
		duration:          duration,
		offsets:           append([]float64(nil), offsets...),
		rabiRotations:     append([]float64(nil), rabi...),
		azimuthalAngles:   append([]float64(nil), azimuthal...),
		detuningRotations: append([]float64(nil), detuning...),
		prePostRotation:   cfg.prePostRotation,
		name:              cfg.name,
	}

	s.normalizeBoundaries()

	if err := s.validateLengths(offsets, rabi, azimuthal, detuning); err != nil {
		return nil, err
	}

	return s, nil
}

// normalizeBoundaries makes the sequence start at 0 and end at the duration.
func (s *Sequence) normalizeBoundaries() {
	boundary := 0.0
	if s.prePostRotation {
		boundary = math.Pi / 2
	}

	if len(s.offsets) == 0 || s.offsets[0] != 0 {
		s.offsets = prepend(s.offsets, 0)
		s.rabiRotations = prepend(s.rabiRotations, boundary)
		s.azimuthalAngles = prepend(s.azimuthalAngles, 0)
		s.detuningRotations = prepend(s.detuningRotations, 0)
	} else if s.prePostRotation && len(s.rabiRotations) > 0 {
		s.rabiRotations[0] = boundary
	}

	if s.offsets[len(s.offsets)-1] != s.duration {
		s.offsets = append(s.offsets, s.duration)
		s.rabiRotations = append(s.rabiRotations, boundary)
		s.azimuthalAngles = append(s.azimuthalAngles, 0)
		s.detuningRotations = append(s.detuningRotations, 0)
	} else if s.prePostRotation && len(s.rabiRotations) > 0 {
		s.rabiRotations[len(s.rabiRotations)-1] = boundary
	}
}

func (s *Sequence) validateLengths(offsets, rabi, azimuthal, detuning []float64) error {
	n := len(s.offsets)

	if len(s.rabiRotations) != n {
		return argumentError("rabi rotations must have the same length as offsets",
			map[string]any{"offsets": offsets, "rabi_rotations": rabi})
	}

	if len(s.azimuthalAngles) != n {
		return argumentError("azimuthal angles must have the same length as offsets",
			map[string]any{"offsets": offsets, "azimuthal_angles": azimuthal})
	}

	if len(s.detuningRotations) != n {
		return &ArgumentError{
			Message: "detuning rotations must have the same length as offsets",
			Fields:  map[string]any{"offsets": offsets, "detuning_rotations": detuning},
			Extras: map[string]any{
				"len(detuning_rotations)": len(s.detuningRotations),
				"number_of_offsets":       n,
			},
		}
	}

	return nil
}

// Duration returns the total sequence duration.
func (s *Sequence) Duration() float64 { return s.duration }

// NumberOfOffsets returns the number of offsets including both boundaries.
func (s *Sequence) NumberOfOffsets() int { return len(s.offsets) }

// Offsets returns a copy of the pulse offsets.
func (s *Sequence) Offsets() []float64 { return clone(s.offsets) }

// RabiRotations returns a copy of the Rabi rotations.
func (s *Sequence) RabiRotations() []float64 { return clone(s.rabiRotations) }

// AzimuthalAngles returns a copy of the azimuthal angles.
func (s *Sequence) AzimuthalAngles() []float64 { return clone(s.azimuthalAngles) }

// DetuningRotations returns a copy of the detuning rotations.
func (s *Sequence) DetuningRotations() []float64 { return clone(s.detuningRotations) }

// PrePostRotation reports whether boundary X(π/2) rotations were requested.
func (s *Sequence) PrePostRotation() bool { return s.prePostRotation }

// Name returns the sequence label, or "" if none was set.
func (s *Sequence) Name() string { return s.name }

func prepend(xs []float64, v float64) []float64 {
	out := make([]float64, 0, len(xs)+1)
	out = append(out, v)
	return append(out, xs...)
}

func clone(xs []float64) []float64 {
	return append([]float64(nil), xs...)
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
