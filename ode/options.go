// SPDX-License-Identifier: MIT

// Package ode: functional configuration for the integrator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package ode

import (
	"math"

	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRtol is the relative tolerance of the local error test.
	DefaultRtol = 1e-10

	// DefaultAtol is the absolute tolerance of the local error test.
	DefaultAtol = 1e-12

	// DefaultMaxSteps bounds attempted steps (accepted + rejected) per Solve.
	DefaultMaxSteps = 100000

	// DefaultFirstStep of 0 selects the initial step automatically.
	DefaultFirstStep = 0.0
)

// Step-size controller constants (Hairer, Nørsett & Wanner, §II.4).
const (
	safety    = 0.9
	minFactor = 0.2
	maxFactor = 10.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRtolInvalid      = "ode: WithRtol: rtol must be finite and > 0"
	panicAtolInvalid      = "ode: WithAtol: atol must be finite and >= 0"
	panicMaxStepsInvalid  = "ode: WithMaxSteps: n must be > 0"
	panicFirstStepInvalid = "ode: WithFirstStep: h must be finite and >= 0"
	panicMaxStepInvalid   = "ode: WithMaxStep: h must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	rtol      float64
	atol      float64
	maxSteps  int
	firstStep float64 // 0 => automatic
	maxStep   float64 // +Inf => unbounded
	logger    *logrus.Logger
}

// WithRtol sets the relative tolerance.
// Panics if rtol is not finite or not positive.
func WithRtol(rtol float64) Option {
	if isNonFinite(rtol) || rtol <= 0 {
		panic(panicRtolInvalid)
	}

	return func(o *Options) { o.rtol = rtol }
}

// WithAtol sets the absolute tolerance.
// Panics if atol is not finite or negative.
func WithAtol(atol float64) Option {
	if isNonFinite(atol) || atol < 0 {
		panic(panicAtolInvalid)
	}

	return func(o *Options) { o.atol = atol }
}

// WithMaxSteps bounds the number of attempted steps.
// Exceeding it fails the run with ErrTooManySteps.
func WithMaxSteps(n int) Option {
	if n <= 0 {
		panic(panicMaxStepsInvalid)
	}

	return func(o *Options) { o.maxSteps = n }
}

// WithFirstStep fixes the magnitude of the first trial step.
// A value of 0 restores automatic selection.
func WithFirstStep(h float64) Option {
	if isNonFinite(h) || h < 0 {
		panic(panicFirstStepInvalid)
	}

	return func(o *Options) { o.firstStep = h }
}

// WithMaxStep caps the step magnitude. +Inf (the default) means no cap.
func WithMaxStep(h float64) Option {
	if math.IsNaN(h) || h <= 0 {
		panic(panicMaxStepInvalid)
	}

	return func(o *Options) { o.maxStep = h }
}

// WithLogger routes run statistics (Debug) and failures (Warn) to l.
// A nil logger keeps the integrator silent.
func WithLogger(l *logrus.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		rtol:      DefaultRtol,
		atol:      DefaultAtol,
		maxSteps:  DefaultMaxSteps,
		firstStep: DefaultFirstStep,
		maxStep:   math.Inf(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
