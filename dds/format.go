package dds

import (
	"math"
	"strconv"
	"strings"
)

// String renders the sequence with offsets as fractions of the duration and
// rotations as multiples of π.
func (s *Sequence) String() string {
	lines := make([]string, 0, 6)
	if s.name != "" {
		lines = append(lines, s.name+":")
	}

	lines = append(lines,
		"Duration = "+formatFloat(s.duration),
		"Offsets = ["+joinScaled(s.offsets, s.duration)+"] x "+formatFloat(s.duration),
		"Rabi Rotations = ["+joinScaled(s.rabiRotations, math.Pi)+"] x pi",
		"Azimuthal Angles = ["+joinScaled(s.azimuthalAngles, math.Pi)+"] x pi",
		"Detuning Rotations = ["+joinScaled(s.detuningRotations, math.Pi)+"] x pi",
	)

	return strings.Join(lines, "\n")
}

func joinScaled(xs []float64, unit float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x / unit)
	}
	return strings.Join(parts, ",")
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
