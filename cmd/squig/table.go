// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/squig/ptrig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of the table command.
const (
	formatText = "text"
	formatCSV  = "csv"
	formatJSON = "json"
	formatYAML = "yaml"
)

var errFormat = errors.New("squig: unknown output format")

// row is one sample of the table. Tanquent is nil wherever the quotient is
// not finite; tq keeps the raw quotient for the text and csv renderers.
type row struct {
	T        float64  `json:"t" yaml:"t"`
	Squine   float64  `json:"squine" yaml:"squine"`
	Cosquine float64  `json:"cosquine" yaml:"cosquine"`
	Tanquent *float64 `json:"tanquent" yaml:"tanquent"`

	tq float64
}

func newRow(t, s, c float64) row {
	r := row{T: t, Squine: s, Cosquine: c, tq: s / c}
	if finite(r.tq) {
		tq := r.tq
		r.Tanquent = &tq
	}

	return r
}

// tableCmd samples all three functions on an evenly spaced grid.
func (a *app) tableCmd() *cobra.Command {
	var (
		from, to float64
		n        int
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate squine, cosquine and tanquent on [from, to]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.v.BindPFlag("format", cmd.Flags().Lookup("format")); err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				to = math.NaN()
			}
			rows, err := a.table(from, to, n)
			if err != nil {
				return err
			}

			return writeRows(cmd.OutOrStdout(), a.v.GetString("format"), rows)
		},
	}
	fs := cmd.Flags()
	fs.Float64Var(&from, "from", 0, "first sample")
	fs.Float64Var(&to, "to", 0, "last sample (default from + 2·π_p)")
	fs.IntVar(&n, "n", 9, "number of samples")
	fs.String("format", formatText, "output format: text, csv, json, yaml")

	return cmd
}

// table evaluates n samples over [from, to]; a NaN to means from + 2·π_p.
func (a *app) table(from, to float64, n int) ([]row, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: need at least 2 samples: %w", n, errConfig)
	}
	ppi, err := ptrig.PiP(a.cfg.P)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(to) {
		to = from + 2*ppi
	}

	ts := make([]float64, n)
	for i := range ts {
		ts[i] = from + (to-from)*float64(i)/float64(n-1)
	}
	opts := append(a.cfg.options(a.log), ptrig.WithPeriod(ppi))
	s, c, err := ptrig.SquineCosquine(ts, a.cfg.P, opts...)
	if err != nil {
		return nil, err
	}

	rows := make([]row, n)
	for i, t := range ts {
		rows[i] = newRow(t, s[i], c[i])
	}
	a.log.WithFields(logrus.Fields{
		"p":    a.cfg.P,
		"from": from,
		"to":   to,
		"n":    n,
	}).Info("squig: table")

	return rows, nil
}

// writeRows renders rows in the requested format.
func writeRows(w io.Writer, format string, rows []row) error {
	switch format {
	case formatText:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "t\tsquine\tcosquine\ttanquent")
		for _, r := range rows {
			fmt.Fprintf(tw, "%.6f\t%.9f\t%.9f\t%s\n", r.T, r.Squine, r.Cosquine, formatTanquent(r.tq, 'f', 9))
		}

		return tw.Flush()
	case formatCSV:
		cw := csv.NewWriter(w)
		records := [][]string{{"t", "squine", "cosquine", "tanquent"}}
		for _, r := range rows {
			records = append(records, []string{
				formatFloat(r.T), formatFloat(r.Squine), formatFloat(r.Cosquine), formatTanquent(r.tq, 'g', -1),
			})
		}

		return cw.WriteAll(records)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(rows); err != nil {
			return err
		}

		return enc.Close()
	}

	return fmt.Errorf("%q: %w", format, errFormat)
}

// formatTanquent renders poles as inf and 0/0 as nan.
func formatTanquent(v float64, fmtByte byte, prec int) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 0):
		return "inf"
	}

	return strconv.FormatFloat(v, fmtByte, prec, 64)
}
