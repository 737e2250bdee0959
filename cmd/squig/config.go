// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/squig/ptrig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix scopes environment overrides: SQUIG_P, SQUIG_RTOL, SQUIG_MAX_STEPS, …
const envPrefix = "SQUIG"

var errConfig = errors.New("squig: invalid configuration")

// config is the resolved global configuration of one invocation.
type config struct {
	P        float64 `mapstructure:"p"`
	Rtol     float64 `mapstructure:"rtol"`
	Atol     float64 `mapstructure:"atol"`
	MaxSteps int     `mapstructure:"max_steps"`
	Margin   float64 `mapstructure:"margin"`
	Parallel bool    `mapstructure:"parallel"`
	LogLevel string  `mapstructure:"log_level"`
	Verbose  bool    `mapstructure:"verbose"`
}

// flagKeys maps persistent flag names onto viper keys.
var flagKeys = map[string]string{
	"p":         "p",
	"rtol":      "rtol",
	"atol":      "atol",
	"max-steps": "max_steps",
	"margin":    "margin",
	"parallel":  "parallel",
	"log-level": "log_level",
	"verbose":   "verbose",
}

// registerFlags declares the global flags on fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "YAML config file")
	fs.Float64P("p", "p", 2, "shape parameter p > 1")
	fs.Float64("rtol", ptrig.DefaultRtol, "integrator relative tolerance")
	fs.Float64("atol", ptrig.DefaultAtol, "integrator absolute tolerance")
	fs.Int("max-steps", ptrig.DefaultMaxSteps, "integrator step budget")
	fs.Float64("margin", ptrig.DefaultMargin, "integration overshoot past the quarter point")
	fs.Bool("parallel", ptrig.DefaultParallel, "evaluate quadrant buckets concurrently")
	fs.String("log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolP("verbose", "v", false, "shorthand for --log-level=debug")
}

// newViper binds the global flags and SQUIG_* environment variables.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return v, nil
}

// loadConfig reads the optional config file and resolves cfg.
func loadConfig(v *viper.Viper, path string) (config, error) {
	var cfg config
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.validate()
}

// validate rejects values the option constructors would panic on.
func (c config) validate() error {
	switch {
	case !finite(c.Rtol) || c.Rtol <= 0:
		return fmt.Errorf("rtol=%g: %w", c.Rtol, errConfig)
	case !finite(c.Atol) || c.Atol < 0:
		return fmt.Errorf("atol=%g: %w", c.Atol, errConfig)
	case c.MaxSteps <= 0:
		return fmt.Errorf("max-steps=%d: %w", c.MaxSteps, errConfig)
	case !finite(c.Margin) || c.Margin < 0:
		return fmt.Errorf("margin=%g: %w", c.Margin, errConfig)
	}

	return nil
}

// options translates cfg into evaluator options.
func (c config) options(log *logrus.Logger) []ptrig.Option {
	opts := []ptrig.Option{
		ptrig.WithTolerances(c.Rtol, c.Atol),
		ptrig.WithMaxSteps(c.MaxSteps),
		ptrig.WithMargin(c.Margin),
		ptrig.WithLogger(log),
	}
	if c.Parallel {
		opts = append(opts, ptrig.WithParallel())
	}

	return opts
}

// setupLogger builds the stderr logger for one invocation.
func setupLogger(cfg config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	default:
		logger.SetLevel(logrus.WarnLevel)
	}
	if cfg.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	return logger
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
