// SPDX-License-Identifier: MIT

// Package ptrig evaluates generalized trigonometric functions on the unit
// p-circle |x|^p + |y|^p = 1: squine (p-sine), cosquine (p-cosine) and their
// ratio tanquent, together with the half-period constant π_p.
//
// 🚀 What are p-trigonometric functions?
//
//	For a shape parameter p > 1 the pair (cosquine, squine) solves
//
//	  f0' = −f1^(p−1),   f1' = f0^(p−1),   f(0) = (1, 0)
//
//	and traces the superellipse |f0|^p + |f1|^p = 1 with period 2·π_p,
//	π_p = 2·Γ(1/p)²/(p·Γ(2/p)). At p = 2 they are exactly cos and sin.
//
// ✨ How it is computed:
//   - one adaptive DOP853 integration over the first quarter [0, π_p/2]
//     (package ode), kept as a dense continuous solution;
//   - every query point is reduced modulo 2·π_p and routed to one of four
//     quadrant buckets;
//   - each bucket reads the quarter arc forward (offset) or mirrored
//     (π_p/2 − offset) and applies a sign, so the whole period comes from
//     one solve.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/squig/ptrig"
//
//	ts := []float64{0, 0.5, 1, 2, 4}
//	s, err := ptrig.Squine(ts, 3)
//	c, err := ptrig.Cosquine(ts, 3)
//	tq, err := ptrig.Tanquent(ts, 3)
//	ppi, err := ptrig.PiP(3)
//
// Options tune the integrator (WithTolerances, WithMaxSteps), the overshoot
// past the quarter point (WithMargin), reuse a known period (WithPeriod),
// bucket concurrency (WithParallel) and diagnostics (WithLogger).
//
// Errors:
//   - ErrDomain: p is not a finite number > 1.
//   - ErrSolver: the integrator failed; the whole call fails.
//
// All functions are pure: no state survives a call, and concurrent calls
// are independent.
package ptrig
