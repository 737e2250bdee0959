// SPDX-License-Identifier: MIT
// Package ptrig: sentinel error set.
// Public functions return these sentinels (possibly wrapped with call-site
// context via fmt.Errorf("ctx: %w", ErrX)); callers match with errors.Is.

package ptrig

import (
	"errors"

	"github.com/katalvlaran/squig/ode"
)

var (
	// ErrDomain is returned when the shape parameter p is not a finite
	// number greater than 1. No partial result accompanies it.
	ErrDomain = errors.New("ptrig: shape parameter must be finite and > 1")

	// ErrOutOfQuarter is returned by QuarterSolve and Quarter queries for a
	// point outside [0, π_p/2 + margin].
	ErrOutOfQuarter = errors.New("ptrig: point outside the quarter-period span")
)

// ErrSolver matches every integrator breakdown (step collapse, step budget,
// non-finite state). It is the same sentinel as ode.ErrSolver, so
// errors.Is(err, ErrSolver) holds for the *ode.SolverError inside err.
var ErrSolver = ode.ErrSolver
