// SPDX-License-Identifier: MIT
// Package ode: sentinel error set.
// Every failure of the integrator wraps one of these sentinels so callers can
// branch with errors.Is. Integrator breakdowns additionally travel inside a
// *SolverError carrying the state of the failed run.

package ode

import (
	"errors"
	"fmt"
)

var (
	// ErrSolver is the umbrella sentinel for every integrator breakdown
	// (step collapse, step budget, non-finite state). *SolverError matches it.
	ErrSolver = errors.New("ode: solver failed")

	// ErrStepCollapse indicates the adaptive step shrank below the resolution
	// of t (10 ulp) without meeting the tolerance.
	ErrStepCollapse = errors.New("ode: step size collapsed below minimum")

	// ErrTooManySteps indicates the step budget (accepted + rejected) ran out
	// before the end of the span was reached.
	ErrTooManySteps = errors.New("ode: step budget exhausted")

	// ErrNonFinite indicates NaN or ±Inf in the initial state, in a span end
	// point, or in every trial step while the step collapsed.
	ErrNonFinite = errors.New("ode: NaN or Inf encountered")

	// ErrBadSpan indicates t0 == t1.
	ErrBadSpan = errors.New("ode: empty integration span")

	// ErrDimension indicates an empty state vector or a destination buffer of
	// the wrong length.
	ErrDimension = errors.New("ode: state dimension mismatch")

	// ErrOutOfSpan indicates a dense-output query outside [t0, t1].
	ErrOutOfSpan = errors.New("ode: time outside integration span")

	// ErrNilSystem indicates a nil right-hand side.
	ErrNilSystem = errors.New("ode: nil system")
)

// SolverError describes an integrator breakdown.
// It unwraps to the specific cause (ErrStepCollapse, ErrTooManySteps,
// ErrNonFinite) and also matches ErrSolver.
type SolverError struct {
	T     float64 // time reached by the last accepted step
	H     float64 // step size at the moment of failure
	Steps int     // attempted steps, accepted and rejected
	Evals int     // right-hand side evaluations
	Err   error   // cause sentinel
}

// Error implements error.
func (e *SolverError) Error() string {
	return fmt.Sprintf("ode: dop853 failed at t=%g (h=%g, steps=%d, evals=%d): %v",
		e.T, e.H, e.Steps, e.Evals, e.Err)
}

// Unwrap returns the cause sentinel.
func (e *SolverError) Unwrap() error { return e.Err }

// Is reports whether target is ErrSolver.
func (e *SolverError) Is(target error) bool { return target == ErrSolver }
