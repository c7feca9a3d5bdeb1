package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-dd/internal/config"
	"github.com/cwbudde/algo-dd/internal/logging"
)

// app carries state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        config.Config
	log        zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "ddsgen",
		Short: "Generate dynamic decoupling sequences",
		Long: `ddsgen builds predefined dynamic decoupling sequences and prints them as
text, as plot arrays or as noise filter functions.

Settings are read from ddsgen.yaml in the working directory (or --config),
from DDSGEN_* environment variables and from flags, in increasing order of
precedence.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default: ./ddsgen.yaml if present)")
	pf.Float64("duration", 1.0, "sequence duration")
	pf.String("log-level", "info", "log level (trace, debug, info, warn, error)")
	mustBind(a.v, config.KeyDuration, pf.Lookup("duration"))
	mustBind(a.v, config.KeyLogLevel, pf.Lookup("log-level"))

	root.AddCommand(
		newListCmd(),
		newGenerateCmd(a),
		newPlotCmd(a),
		newFilterCmd(a),
		newRecipeCmd(a),
		newVersionCmd(),
	)

	return root
}

// setup loads configuration and initializes logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" || cmd.Name() == "list" {
		return nil
	}

	cfg, err := config.Load(a.v, a.configPath)
	if err != nil {
		return systemError(fmt.Errorf("load config: %w", err))
	}
	if err := logging.Init(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.Component("ddsgen")
	a.log.Debug().
		Float64("duration", cfg.Duration).
		Int("samples", cfg.Samples).
		Int("padding", cfg.Padding).
		Str("command", cmd.Name()).
		Msg("configuration loaded")

	return nil
}

// mustBind binds a flag to a viper key. Binding only fails for a nil flag,
// which is a programming error.
func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", key, err))
	}
}
