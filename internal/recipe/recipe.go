// Package recipe reads sequence recipes: small YAML documents naming a
// predefined scheme and its parameters.
//
//	name: cpmg-8
//	scheme: cpmg
//	duration: 1.0e-3
//	number_of_offsets: 8
//	pre_post_rotation: true
//
// Unknown fields and parameters the scheme does not use are rejected.
package recipe

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-dd/dds"
)

// Recipe describes one predefined sequence.
type Recipe struct {
	Name               string   `yaml:"name"`
	Scheme             string   `yaml:"scheme"`
	Duration           *float64 `yaml:"duration,omitempty"`
	NumberOfOffsets    *int     `yaml:"number_of_offsets,omitempty"`
	NumberInnerOffsets *int     `yaml:"number_inner_offsets,omitempty"`
	NumberOuterOffsets *int     `yaml:"number_outer_offsets,omitempty"`
	PaleyOrder         *int     `yaml:"paley_order,omitempty"`
	ConcatenationOrder *int     `yaml:"concatenation_order,omitempty"`
	PrePostRotation    bool     `yaml:"pre_post_rotation,omitempty"`

	// Rates are carried for control conversion downstream; they do not
	// affect the sequence itself.
	MaximumRabiRate     *float64 `yaml:"maximum_rabi_rate,omitempty"`
	MaximumDetuningRate *float64 `yaml:"maximum_detuning_rate,omitempty"`

	Source string `yaml:"-"`
}

// Built pairs a recipe with the sequence generated from it.
type Built struct {
	Recipe   *Recipe
	Sequence *dds.Sequence
}

// Params validates r and converts it into generator parameters.
// defaultDuration is used when the recipe has no duration.
func (r *Recipe) Params(defaultDuration float64) (dds.Scheme, dds.Params, error) {
	scheme, err := dds.ParseScheme(r.Scheme)
	if err != nil {
		return "", dds.Params{}, err
	}

	p := dds.DefaultParams()
	p.Duration = defaultDuration
	p.Name = r.Name
	p.PrePostRotation = r.PrePostRotation

	if r.Duration != nil {
		p.Duration = *r.Duration
	}
	if p.Duration < dds.LowerBoundDuration || p.Duration > dds.UpperBoundDuration {
		return "", dds.Params{}, fmt.Errorf("recipe %q: duration must be in [%g, %g]: %g",
			r.Name, dds.LowerBoundDuration, dds.UpperBoundDuration, p.Duration)
	}

	if err := checkRate("maximum_rabi_rate", r.MaximumRabiRate, dds.UpperBoundRabiRate); err != nil {
		return "", dds.Params{}, fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	if err := checkRate("maximum_detuning_rate", r.MaximumDetuningRate, dds.UpperBoundDetuningRate); err != nil {
		return "", dds.Params{}, fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	accepted := scheme.Parameters()
	fields := []struct {
		name string
		val  *int
		dst  *int
	}{
		{"number_of_offsets", r.NumberOfOffsets, &p.NumberOfOffsets},
		{"number_inner_offsets", r.NumberInnerOffsets, &p.NumberInnerOffsets},
		{"number_outer_offsets", r.NumberOuterOffsets, &p.NumberOuterOffsets},
		{"paley_order", r.PaleyOrder, &p.PaleyOrder},
		{"concatenation_order", r.ConcatenationOrder, &p.ConcatenationOrder},
	}
	for _, f := range fields {
		if f.val == nil {
			continue
		}
		if !contains(accepted, f.name) {
			return "", dds.Params{}, fmt.Errorf("recipe %q: scheme %s does not accept %s (accepted: %s)",
				r.Name, scheme, f.name, strings.Join(accepted, ", "))
		}
		*f.dst = *f.val
	}

	return scheme, p, nil
}

// Build generates the sequence described by r.
func (r *Recipe) Build(defaultDuration float64) (*dds.Sequence, error) {
	scheme, p, err := r.Params(defaultDuration)
	if err != nil {
		return nil, err
	}

	seq, err := dds.Generate(scheme, p)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
	}
	return seq, nil
}

// BuildAll generates every recipe in order and stops at the first failure.
func BuildAll(recipes []*Recipe, defaultDuration float64, log zerolog.Logger) ([]Built, error) {
	out := make([]Built, 0, len(recipes))
	for _, r := range recipes {
		seq, err := r.Build(defaultDuration)
		if err != nil {
			log.Error().Err(err).Str("recipe", r.Name).Str("source", r.Source).Msg("failed to build recipe")
			return nil, err
		}

		log.Debug().
			Str("recipe", r.Name).
			Str("scheme", r.Scheme).
			Int("offsets", seq.NumberOfOffsets()).
			Msg("built recipe")

		out = append(out, Built{Recipe: r, Sequence: seq})
	}
	return out, nil
}

func checkRate(name string, rate *float64, upper float64) error {
	if rate == nil {
		return nil
	}
	if *rate <= 0 || *rate > upper {
		return fmt.Errorf("%s must be in (0, %g]: %g", name, upper, *rate)
	}
	return nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
