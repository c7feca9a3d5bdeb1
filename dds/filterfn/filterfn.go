package filterfn

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dd/dds"
)

const (
	defaultSamples = 1024
	defaultPadding = 4

	// rotationTolerance is the slack, in units of π, when deciding whether a
	// Rabi rotation flips the switching function.
	rotationTolerance = 1e-9
)

var errNilSequence = errors.New("filterfn: sequence must not be nil")

// Response is a one-sided filter function on a uniform angular frequency
// grid starting at 0.
type Response struct {
	AngularFrequencies []float64
	Values             []float64
}

// Option configures filter function evaluation.
type Option func(*config)

type config struct {
	samples int
	padding int
}

func defaultConfig() config {
	return config{
		samples: defaultSamples,
		padding: defaultPadding,
	}
}

// WithSamples sets the number of time samples of the switching function.
func WithSamples(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.samples = n
		}
	}
}

// WithPadding sets the zero-padding factor applied before the FFT.
func WithPadding(factor int) Option {
	return func(c *config) {
		if factor > 0 {
			c.padding = factor
		}
	}
}

// SwitchingFunction samples y(t) at the midpoints of samples equal slots
// spanning the sequence duration.
func SwitchingFunction(seq *dds.Sequence, samples int) ([]float64, error) {
	if seq == nil {
		return nil, errNilSequence
	}
	if samples <= 0 {
		return nil, fmt.Errorf("filterfn: samples must be > 0: %d", samples)
	}

	offsets := seq.Offsets()
	rabi := seq.RabiRotations()
	dt := seq.Duration() / float64(samples)

	out := make([]float64, samples)
	sign := 1.0
	next := 0
	for j := range out {
		t := (float64(j) + 0.5) * dt
		for next < len(offsets) && offsets[next] < t {
			if flipsSign(rabi[next]) {
				sign = -sign
			}
			next++
		}
		out[j] = sign
	}

	return out, nil
}

// Area returns ∫ y(t) dt of the sampled switching function.
func Area(seq *dds.Sequence, samples int) (float64, error) {
	y, err := SwitchingFunction(seq, samples)
	if err != nil {
		return 0, err
	}
	return vecmath.Sum(y) * seq.Duration() / float64(samples), nil
}

// Compute evaluates the filter function of seq.
func Compute(seq *dds.Sequence, opts ...Option) (Response, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	y, err := SwitchingFunction(seq, cfg.samples)
	if err != nil {
		return Response{}, err
	}

	dt := seq.Duration() / float64(cfg.samples)
	fftSize := nextPowerOf2(cfg.samples * cfg.padding)

	in := make([]complex128, fftSize)
	for i, v := range y {
		in[i] = complex(v*dt, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Response{}, fmt.Errorf("filterfn: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, in); err != nil {
		return Response{}, fmt.Errorf("filterfn: forward FFT: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < bins; k++ {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	resp := Response{
		AngularFrequencies: make([]float64, bins),
		Values:             make([]float64, bins),
	}
	vecmath.Power(resp.Values, re, im)

	step := 2 * math.Pi / (float64(fftSize) * dt)
	for k := range resp.AngularFrequencies {
		resp.AngularFrequencies[k] = float64(k) * step
	}

	return resp, nil
}

// flipsSign reports whether rotation is an odd multiple of π.
func flipsSign(rotation float64) bool {
	turns := rotation / math.Pi
	n := math.Round(turns)
	if math.Abs(turns-n) > rotationTolerance {
		return false
	}
	return int64(n)%2 != 0
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
