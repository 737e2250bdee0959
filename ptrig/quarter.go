// SPDX-License-Identifier: MIT

package ptrig

import (
	"fmt"

	"github.com/katalvlaran/squig/ode"
)

// Quarter is the integrated first-quadrant arc of the system from f(0) = (1, 0)
// over [0, π_p/2 + margin]. It is immutable and safe for concurrent queries.
type Quarter struct {
	p      float64
	period float64
	half   float64
	margin float64
	sol    *ode.Solution
}

// NewQuarter integrates the quarter-period arc for p.
//
// Implementation:
//   - Stage 1: validate p and resolve π_p (WithPeriod or PiP).
//   - Stage 2: one DOP853 run from (1, 0) over [0, π_p/2 + margin].
//
// Errors:
//   - ErrDomain for invalid p.
//   - ErrSolver (wrapping *ode.SolverError) when the integration breaks down.
func NewQuarter(p float64, opts ...Option) (*Quarter, error) {
	o := gatherOptions(opts...)
	ppi, err := o.resolvePeriod(p)
	if err != nil {
		return nil, fmt.Errorf("NewQuarter: %w", err)
	}

	return newQuarter(p, ppi, o)
}

// newQuarter runs the integration for an already validated p.
func newQuarter(p, ppi float64, o Options) (*Quarter, error) {
	half := ppi / 2
	sol, err := ode.Solve(VectorField(p), 0, half+o.margin, []float64{1, 0}, o.odeOptions()...)
	if err != nil {
		return nil, fmt.Errorf("NewQuarter: p=%g: %w", p, err)
	}

	return &Quarter{
		p:      p,
		period: ppi,
		half:   half,
		margin: o.margin,
		sol:    sol,
	}, nil
}

// P returns the shape parameter.
func (q *Quarter) P() float64 { return q.p }

// Period returns π_p.
func (q *Quarter) Period() float64 { return q.period }

// Span returns the integrated interval [0, π_p/2 + margin].
func (q *Quarter) Span() (lo, hi float64) { return 0, q.half + q.margin }

// Stats returns the integrator statistics of the run.
func (q *Quarter) Stats() ode.Stats { return q.sol.Stats() }

// Sine returns f1(u), the squine branch of the arc.
// The end points of the quarter are pinned to their exact values,
// f1(0) = 0 and f1(π_p/2) = 1.
func (q *Quarter) Sine(u float64) (float64, error) {
	switch u {
	case 0:
		return 0, nil
	case q.half:
		return 1, nil
	}

	return q.component(u, 1)
}

// Cosine returns f0(u), the cosquine branch of the arc, with
// f0(0) = 1 and f0(π_p/2) = 0 pinned.
func (q *Quarter) Cosine(u float64) (float64, error) {
	switch u {
	case 0:
		return 1, nil
	case q.half:
		return 0, nil
	}

	return q.component(u, 0)
}

// component queries the dense output, translating span errors.
func (q *Quarter) component(u float64, j int) (float64, error) {
	v, err := q.sol.Component(u, j)
	if err != nil {
		return 0, fmt.Errorf("u=%g not in [0, %g]: %w", u, q.half+q.margin, ErrOutOfQuarter)
	}

	return v, nil
}

// QuarterSolve integrates the arc for p once and returns f1 at every point of
// ts, in order. All points must lie in [0, π_p/2 + margin].
//
// Errors:
//   - ErrDomain for invalid p.
//   - ErrOutOfQuarter if any point is outside the span (checked before integrating).
//   - ErrSolver when the integration breaks down.
func QuarterSolve(p float64, ts []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	ppi, err := o.resolvePeriod(p)
	if err != nil {
		return nil, fmt.Errorf("QuarterSolve: %w", err)
	}
	hi := ppi/2 + o.margin
	for i, t := range ts {
		if !(t >= 0 && t <= hi) {
			return nil, fmt.Errorf("QuarterSolve: index %d: t=%g not in [0, %g]: %w", i, t, hi, ErrOutOfQuarter)
		}
	}
	out := make([]float64, len(ts))
	if len(ts) == 0 {
		return out, nil
	}

	q, err := newQuarter(p, ppi, o)
	if err != nil {
		return nil, fmt.Errorf("QuarterSolve: %w", err)
	}
	for i, t := range ts {
		if out[i], err = q.Sine(t); err != nil {
			return nil, fmt.Errorf("QuarterSolve: index %d: %w", i, err)
		}
	}

	return out, nil
}
