package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-dd/dds"
	"github.com/cwbudde/algo-dd/dds/filterfn"
	"github.com/cwbudde/algo-dd/internal/config"
	"github.com/cwbudde/algo-dd/internal/recipe"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the predefined schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Scheme\tAliases\tParameters")
			fmt.Fprintln(tw, "------\t-------\t----------")
			for _, s := range dds.Schemes() {
				params := strings.Join(s.Parameters(), ", ")
				if params == "" {
					params = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s, strings.Join(s.Aliases(), ", "), params)
			}
			return systemError(tw.Flush())
		},
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	var flags sequenceFlags

	cmd := &cobra.Command{
		Use:   "generate <scheme>",
		Short: "Print a predefined sequence",
		Example: `  ddsgen generate spin-echo
  ddsgen generate cpmg --offsets 8 --pre-post
  ddsgen generate walsh --paley-order 5 --plot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := flags.build(a, cmd, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, seq); err != nil {
				return systemError(err)
			}
			if a.v.GetBool(config.KeyPlot) {
				if _, err := fmt.Fprintln(out); err != nil {
					return systemError(err)
				}
				return writePlot(out, seq)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().Bool("plot", false, "also print the plot arrays")
	mustBind(a.v, config.KeyPlot, cmd.Flags().Lookup("plot"))

	return cmd
}

func newPlotCmd(a *app) *cobra.Command {
	var flags sequenceFlags

	cmd := &cobra.Command{
		Use:   "plot <scheme>",
		Short: "Print the plot arrays of a predefined sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := flags.build(a, cmd, args[0])
			if err != nil {
				return err
			}
			return writePlot(cmd.OutOrStdout(), seq)
		},
	}

	flags.register(cmd)
	return cmd
}

func newFilterCmd(a *app) *cobra.Command {
	var flags sequenceFlags

	cmd := &cobra.Command{
		Use:   "filter <scheme>",
		Short: "Print the noise filter function of a predefined sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := flags.build(a, cmd, args[0])
			if err != nil {
				return err
			}

			resp, err := filterfn.Compute(seq,
				filterfn.WithSamples(a.cfg.Samples),
				filterfn.WithPadding(a.cfg.Padding))
			if err != nil {
				return err
			}

			area, err := filterfn.Area(seq, a.cfg.Samples)
			if err != nil {
				return err
			}
			a.log.Debug().Float64("area", area).Int("bins", len(resp.Values)).Msg("filter function computed")

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Omega\tF(omega)")
			fmt.Fprintln(tw, "-----\t--------")
			for k, w := range resp.AngularFrequencies {
				fmt.Fprintf(tw, "%.6g\t%.6g\n", w, resp.Values[k])
			}
			return systemError(tw.Flush())
		},
	}

	flags.register(cmd)
	fs := cmd.Flags()
	fs.Int("samples", 1024, "time samples of the switching function")
	fs.Int("padding", 4, "zero-padding factor before the FFT")
	mustBind(a.v, config.KeySamples, fs.Lookup("samples"))
	mustBind(a.v, config.KeyPadding, fs.Lookup("padding"))

	return cmd
}

func newRecipeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "recipe <path>...",
		Short: "Build sequences from YAML recipe files or directories",
		Long: `recipe loads every recipe named on the command line. Directories contribute
all .yaml and .yml files they contain, sorted by recipe name. Recipes
without a duration use the configured default.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := recipe.LoadPaths(args)
			if err != nil {
				return systemError(err)
			}
			a.log.Info().Int("recipes", len(recipes)).Msg("loaded recipes")

			built, err := recipe.BuildAll(recipes, a.cfg.Duration, a.log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, b := range built {
				if i > 0 {
					if _, err := fmt.Fprintln(out); err != nil {
						return systemError(err)
					}
				}
				if _, err := fmt.Fprintln(out, b.Sequence); err != nil {
					return systemError(err)
				}
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ddsgen", version)
		},
	}
}

// writePlot prints the plot arrays as a four-column table.
func writePlot(w io.Writer, seq *dds.Sequence) error {
	p := seq.PlotArrays()

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Time\tRabi\tAzimuthal\tDetuning")
	fmt.Fprintln(tw, "----\t----\t---------\t--------")
	for i, t := range p.Times {
		fmt.Fprintf(tw, "%g\t%g\t%g\t%g\n",
			t, p.RabiRotations[i], p.AzimuthalAngles[i], p.DetuningRotations[i])
	}
	return systemError(tw.Flush())
}
