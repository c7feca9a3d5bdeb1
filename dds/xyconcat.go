package dds

import "math"

// NewXYConcatenated returns the XY-concatenated sequence built from the base
// cycle X Y X Y, with X(π) pulses, Y(π) pulses (azimuthal angle π/2) and the
// Z(π) detuning pulses produced where the recursion splices copies.
func NewXYConcatenated(duration float64, concatenationOrder int, opts ...Option) (*Sequence, error) {
	if err := validateDuration(duration); err != nil {
		return nil, err
	}
	if err := validateConcatenationOrder(duration, concatenationOrder, xyPatternLength); err != nil {
		return nil, err
	}

	offsets, rabi, azimuthal, detuning := xyConcatenatedArrays(duration, concatenationOrder)
	return New(duration, offsets, rabi, azimuthal, detuning, opts...)
}

type pulse struct {
	step      int
	rabi      float64
	azimuthal float64
	detuning  float64
}

func xyConcatenatedArrays(duration float64, order int) (offsets, rabi, azimuthal, detuning []float64) {
	pattern := patterns.get(patternXY, order)
	merged := mergePulseStreams(
		oddPulseTimes(pattern, markerX),
		oddPulseTimes(pattern, markerY),
		oddPulseTimes(pattern, markerZ),
	)

	unit := duration / float64(int(1)<<(2*order))

	n := len(merged)
	offsets = make([]float64, n)
	rabi = make([]float64, n)
	azimuthal = make([]float64, n)
	detuning = make([]float64, n)
	for i, p := range merged {
		offsets[i] = float64(p.step) * unit
		rabi[i] = p.rabi
		azimuthal[i] = p.azimuthal
		detuning[i] = p.detuning
	}

	return offsets, rabi, azimuthal, detuning
}

// mergePulseStreams interleaves the X, Y and Z pulse times into one
// ascending list. X and Y are merged first with ties going to Y. Each Z
// pulse is then placed before the first merged pulse that is strictly later
// than it, or at the end when there is none.
func mergePulseStreams(xs, ys, zs []int) []pulse {
	xy := make([]pulse, 0, len(xs)+len(ys))
	xPulse := func(step int) pulse { return pulse{step: step, rabi: math.Pi} }
	yPulse := func(step int) pulse { return pulse{step: step, rabi: math.Pi, azimuthal: math.Pi / 2} }

	i, j := 0, 0
	for i < len(xs) && j < len(ys) {
		if xs[i] < ys[j] {
			xy = append(xy, xPulse(xs[i]))
			i++
		} else {
			xy = append(xy, yPulse(ys[j]))
			j++
		}
	}
	for ; i < len(xs); i++ {
		xy = append(xy, xPulse(xs[i]))
	}
	for ; j < len(ys); j++ {
		xy = append(xy, yPulse(ys[j]))
	}

	out := make([]pulse, 0, len(xy)+len(zs))
	k := 0
	for _, p := range xy {
		for k < len(zs) && zs[k] < p.step {
			out = append(out, pulse{step: zs[k], detuning: math.Pi})
			k++
		}
		out = append(out, p)
	}
	for ; k < len(zs); k++ {
		out = append(out, pulse{step: zs[k], detuning: math.Pi})
	}

	return out
}
