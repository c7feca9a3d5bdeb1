// Package config loads ddsgen settings from defaults, an optional YAML
// file, DDSGEN_* environment variables and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "ddsgen"
	configFileType = "yaml"
	envPrefix      = "DDSGEN"

	// Keys.
	KeyDuration = "duration"
	KeySamples  = "samples"
	KeyPadding  = "padding"
	KeyLogLevel = "log_level"
	KeyPlot     = "plot"
)

// Config is the resolved ddsgen configuration.
type Config struct {
	Duration float64
	Samples  int
	Padding  int
	LogLevel string
	Plot     bool
}

// New returns a viper instance with defaults and environment binding
// applied. Flags may be bound to it before Load is called.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyDuration, 1.0)
	v.SetDefault(KeySamples, 1024)
	v.SetDefault(KeyPadding, 4)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPlot, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and returns the resolved configuration.
//
// With an explicit path the file must exist. Otherwise ddsgen.yaml is
// looked up in the working directory and a missing file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Duration: v.GetFloat64(KeyDuration),
		Samples:  v.GetInt(KeySamples),
		Padding:  v.GetInt(KeyPadding),
		LogLevel: v.GetString(KeyLogLevel),
		Plot:     v.GetBool(KeyPlot),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Duration <= 0 {
		return fmt.Errorf("config: duration must be > 0: %g", c.Duration)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("config: samples must be > 0: %d", c.Samples)
	}
	if c.Padding <= 0 {
		return fmt.Errorf("config: padding must be > 0: %d", c.Padding)
	}
	return nil
}
