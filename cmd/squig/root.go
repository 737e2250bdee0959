// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/squig/ptrig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config
	log *logrus.Logger
}

// newRootCmd assembles the command tree. Each call returns an independent
// tree with its own viper instance.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "squig",
		Short:        "Generalized trigonometric functions on the unit p-circle",
		Long:         "squig evaluates squine, cosquine, tanquent and the half-period π_p\nfor |x|^p + |y|^p = 1 with p > 1.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(
		a.piCmd(),
		a.evalCmd("squine", "Evaluate squine (p-sine) at each t", ptrig.Squine),
		a.evalCmd("cosquine", "Evaluate cosquine (p-cosine) at each t", ptrig.Cosquine),
		a.evalCmd("tanquent", "Evaluate tanquent = squine/cosquine at each t", ptrig.Tanquent),
		a.tableCmd(),
	)

	return root
}

// configure resolves configuration and logging before any subcommand runs.
func (a *app) configure(cmd *cobra.Command) error {
	fs := cmd.Root().PersistentFlags()
	v, err := newViper(fs)
	if err != nil {
		return err
	}
	path, err := fs.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(v, path)
	if err != nil {
		return err
	}
	a.v, a.cfg = v, cfg
	a.log = setupLogger(cfg, cmd.ErrOrStderr())
	a.log.WithFields(logrus.Fields{
		"p":        cfg.P,
		"rtol":     cfg.Rtol,
		"atol":     cfg.Atol,
		"parallel": cfg.Parallel,
		"config":   v.ConfigFileUsed(),
	}).Debug("squig: configured")

	return nil
}

// piCmd prints π_p for each argument, or for --p when none is given.
func (a *app) piCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pi [p...]",
		Short: "Print the half-period π_p",
		RunE: func(cmd *cobra.Command, args []string) error {
			ps := []float64{a.cfg.P}
			if len(args) > 0 {
				var err error
				if ps, err = parseFloats(args); err != nil {
					return err
				}
			}
			vals, err := ptrig.PiPs(ps)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, p := range ps {
				fmt.Fprintf(w, "%s\t%s\n", formatFloat(p), formatFloat(vals[i]))
			}

			return nil
		},
	}
}

// evaluator is the shape shared by Squine, Cosquine and Tanquent.
type evaluator func(ts []float64, p float64, opts ...ptrig.Option) ([]float64, error)

// evalCmd prints f(t) for every argument t, one per line.
func (a *app) evalCmd(name, short string, f evaluator) *cobra.Command {
	return &cobra.Command{
		Use:   name + " t...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseFloats(args)
			if err != nil {
				return err
			}
			out, err := f(ts, a.cfg.P, a.cfg.options(a.log)...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, v := range out {
				fmt.Fprintln(w, formatFloat(v))
			}

			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
