// Package config loads the labelprep settings from flags, environment
// variables (LABELPREP_*) and an optional configuration file.
package config

import (
	"errors"
	"fmt"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "labelprep"

// Config holds the settings shared by every subcommand.
type Config struct {
	LogLevel   string  `mapstructure:"log_level"`
	LogJSON    bool    `mapstructure:"log_json"`
	Seed       uint64  `mapstructure:"seed"`
	LabelCol   int     `mapstructure:"label_col"`
	Proportion float64 `mapstructure:"proportion"`
	TestRate   float64 `mapstructure:"test_rate"`
	Labels     int     `mapstructure:"labels"`
	Folds      int     `mapstructure:"folds"`
}

// ApplyDefaults registers the default value of every key on v.
func ApplyDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("seed", 0)
	v.SetDefault("label_col", -1)
	v.SetDefault("proportion", 0.2)
	v.SetDefault("test_rate", 0.2)
	v.SetDefault("labels", 0)
	v.SetDefault("folds", 5)
}

// Load reads cfgFile (when not empty) and the environment into v, then
// decodes and validates the result.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	ApplyDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: unable to read %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errm error
	if !inUnitRange(c.Proportion) {
		errm = multierror.Append(errm, fmt.Errorf("proportion %v is outside [0, 1]", c.Proportion))
	}
	if !inUnitRange(c.TestRate) {
		errm = multierror.Append(errm, fmt.Errorf("test_rate %v is outside [0, 1]", c.TestRate))
	}
	if c.Labels < 0 {
		errm = multierror.Append(errm, errors.New("labels must be non-negative"))
	}
	if c.Folds < 2 {
		errm = multierror.Append(errm, errors.New("folds must be at least 2"))
	}
	return errm
}

// inUnitRange reports whether p is within [0, 1]; NaN is not.
func inUnitRange(p float64) bool {
	return p >= 0 && p <= 1
}
