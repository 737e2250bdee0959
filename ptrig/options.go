// SPDX-License-Identifier: MIT

// Package ptrig: functional configuration for the evaluators.
// Every public entry point accepts ...Option; the effective settings are
// resolved once per call by gatherOptions. Constructors panic only on
// nonsensical values (programmer error), never on user data.
package ptrig

import (
	"math"

	"github.com/katalvlaran/squig/ode"
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRtol is the relative tolerance handed to the integrator.
	DefaultRtol = ode.DefaultRtol

	// DefaultAtol is the absolute tolerance handed to the integrator.
	DefaultAtol = ode.DefaultAtol

	// DefaultMaxSteps bounds the integrator's attempted steps. Small p close
	// to 1 needs the most steps; the budget turns a runaway into ErrSolver.
	DefaultMaxSteps = ode.DefaultMaxSteps

	// DefaultMargin extends the integration span past π_p/2 so that the
	// quarter point itself is an interior point of the dense output.
	DefaultMargin = 0.06

	// DefaultParallel evaluates quadrant buckets sequentially.
	DefaultParallel = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTolerancesInvalid = "ptrig: WithTolerances: rtol must be finite > 0, atol finite >= 0"
	panicMaxStepsInvalid   = "ptrig: WithMaxSteps: n must be > 0"
	panicMarginInvalid     = "ptrig: WithMargin: eps must be finite and >= 0"
	panicPeriodInvalid     = "ptrig: WithPeriod: ppi must be finite and > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	rtol     float64
	atol     float64
	maxSteps int
	margin   float64
	period   float64 // 0 => compute π_p from p
	parallel bool
	logger   *logrus.Logger
}

// WithTolerances sets the integrator's relative and absolute tolerances.
// Relaxing them is the caller-driven retry path after an ErrSolver.
func WithTolerances(rtol, atol float64) Option {
	if math.IsNaN(rtol) || math.IsInf(rtol, 0) || rtol <= 0 ||
		math.IsNaN(atol) || math.IsInf(atol, 0) || atol < 0 {
		panic(panicTolerancesInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// WithMaxSteps sets the integrator's step budget.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *Options) { o.maxSteps = n }
}

// WithMargin sets ε, the integration overshoot past π_p/2.
func WithMargin(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicMarginInvalid)
	}

	return func(o *Options) { o.margin = eps }
}

// WithPeriod supplies a precomputed π_p instead of recomputing it from p.
// The value is trusted; a wrong period yields wrong (but finite) results.
func WithPeriod(ppi float64) Option {
	if math.IsNaN(ppi) || math.IsInf(ppi, 0) || ppi <= 0 {
		panic(panicPeriodInvalid)
	}

	return func(o *Options) { o.period = ppi }
}

// WithParallel evaluates the occupied quadrant buckets concurrently.
func WithParallel() Option {
	return func(o *Options) { o.parallel = true }
}

// WithSequential evaluates the buckets one after another (default).
func WithSequential() Option {
	return func(o *Options) { o.parallel = false }
}

// WithLogger routes evaluation and integrator diagnostics to l.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		rtol:     DefaultRtol,
		atol:     DefaultAtol,
		maxSteps: DefaultMaxSteps,
		margin:   DefaultMargin,
		parallel: DefaultParallel,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// odeOptions translates the settings the integrator understands.
func (o Options) odeOptions() []ode.Option {
	return []ode.Option{
		ode.WithRtol(o.rtol),
		ode.WithAtol(o.atol),
		ode.WithMaxSteps(o.maxSteps),
		ode.WithLogger(o.logger),
	}
}

// resolvePeriod validates p and returns the period to use for this call.
func (o Options) resolvePeriod(p float64) (float64, error) {
	if o.period > 0 {
		if err := validateShape(p); err != nil {
			return 0, err
		}

		return o.period, nil
	}

	return PiP(p)
}
