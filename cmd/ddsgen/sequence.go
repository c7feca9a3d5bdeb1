package main

import (
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dd/dds"
	"github.com/cwbudde/algo-dd/internal/recipe"
)

// sequenceFlags holds the generator flags shared by generate, plot and
// filter.
type sequenceFlags struct {
	offsets            int
	inner              int
	outer              int
	paleyOrder         int
	concatenationOrder int
	prePost            bool
	name               string
}

func (f *sequenceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.offsets, "offsets", 1, "number of offsets (CP, CPMG, Uhrig, periodic)")
	fs.IntVar(&f.inner, "inner", 1, "number of inner offsets (quadratic)")
	fs.IntVar(&f.outer, "outer", 1, "number of outer offsets (quadratic)")
	fs.IntVar(&f.paleyOrder, "paley-order", 1, "Paley order (Walsh)")
	fs.IntVar(&f.concatenationOrder, "concatenation-order", 1, "concatenation order (X and XY concatenated)")
	fs.BoolVar(&f.prePost, "pre-post", false, "add X(pi/2) rotations at both ends")
	fs.StringVar(&f.name, "name", "", "sequence name (default: the scheme name)")
}

// recipe turns the flags into a recipe. Only flags set on the command line
// are carried over, so a flag the scheme does not use is rejected.
func (f *sequenceFlags) recipe(cmd *cobra.Command, scheme string) *recipe.Recipe {
	r := &recipe.Recipe{
		Name:            f.name,
		Scheme:          scheme,
		PrePostRotation: f.prePost,
		Source:          "command line",
	}

	set := func(flag string, v int) *int {
		if !cmd.Flags().Changed(flag) {
			return nil
		}
		return &v
	}
	r.NumberOfOffsets = set("offsets", f.offsets)
	r.NumberInnerOffsets = set("inner", f.inner)
	r.NumberOuterOffsets = set("outer", f.outer)
	r.PaleyOrder = set("paley-order", f.paleyOrder)
	r.ConcatenationOrder = set("concatenation-order", f.concatenationOrder)

	return r
}

// build resolves the scheme and generates the sequence.
func (f *sequenceFlags) build(a *app, cmd *cobra.Command, scheme string) (*dds.Sequence, error) {
	r := f.recipe(cmd, scheme)
	if r.Name == "" {
		s, err := dds.ParseScheme(scheme)
		if err != nil {
			return nil, err
		}
		r.Name = string(s)
	}

	seq, err := r.Build(a.cfg.Duration)
	if err != nil {
		return nil, err
	}

	a.log.Info().
		Str("scheme", scheme).
		Float64("duration", seq.Duration()).
		Int("offsets", seq.NumberOfOffsets()).
		Msg("generated sequence")

	return seq, nil
}
