// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"sort"
)

// Stats summarizes the work done by one Solve call.
type Stats struct {
	Steps    int // attempted steps
	Accepted int // accepted steps
	Rejected int // rejected steps
	Evals    int // right-hand side evaluations
}

// segment is the continuous extension over one accepted step [t, tEnd].
type segment struct {
	t, tEnd float64
	h       float64   // tEnd - t, signed
	y       []float64 // state at t
	f       []float64 // nInterp×dim coefficients, row-major
}

// component evaluates coordinate j of the interpolant at time t.
// With x = (t - seg.t)/h the polynomial is evaluated in the nested
// x / (1-x) form, which reproduces y exactly at x = 0.
func (g *segment) component(t float64, j, dim int) float64 {
	x := (t - g.t) / g.h
	var acc float64
	for r := 0; r < nInterp; r++ {
		acc += g.f[(nInterp-1-r)*dim+j]
		if r%2 == 0 {
			acc *= x
		} else {
			acc *= 1 - x
		}
	}

	return acc + g.y[j]
}

// Solution is the dense output of a successful Solve.
// It is read-only and safe for concurrent use.
type Solution struct {
	t0, t1 float64
	dir    float64
	dim    int
	segs   []segment
	yEnd   []float64
	stats  Stats
}

// Span returns the integration interval as passed to Solve.
func (s *Solution) Span() (t0, t1 float64) { return s.t0, s.t1 }

// Dim returns the dimension of the state vector.
func (s *Solution) Dim() int { return s.dim }

// Stats returns the run statistics.
func (s *Solution) Stats() Stats { return s.stats }

// Nodes returns the accepted step points, t0 first and t1 last.
func (s *Solution) Nodes() []float64 {
	out := make([]float64, 0, len(s.segs)+1)
	out = append(out, s.t0)
	for i := range s.segs {
		out = append(out, s.segs[i].tEnd)
	}

	return out
}

// Final returns a copy of the state at t1.
func (s *Solution) Final() []float64 {
	return append([]float64(nil), s.yEnd...)
}

// contains reports whether t lies in the closed span. NaN is never inside.
func (s *Solution) contains(t float64) bool {
	return s.dir*(t-s.t0) >= 0 && s.dir*(s.t1-t) >= 0
}

// locate returns the segment whose closed interval holds t.
// Assumes contains(t).
func (s *Solution) locate(t float64) *segment {
	i := sort.Search(len(s.segs), func(i int) bool {
		return s.dir*(s.segs[i].tEnd-t) >= 0
	})
	if i == len(s.segs) {
		i = len(s.segs) - 1
	}

	return &s.segs[i]
}

// At evaluates the full state at t into dst (allocated when nil).
//
// Errors:
//   - ErrOutOfSpan if t is outside [t0, t1] or NaN.
//   - ErrDimension if dst is non-nil with the wrong length.
func (s *Solution) At(t float64, dst []float64) ([]float64, error) {
	if !s.contains(t) {
		return nil, fmt.Errorf("At: t=%g not in [%g, %g]: %w", t, s.t0, s.t1, ErrOutOfSpan)
	}
	if dst == nil {
		dst = make([]float64, s.dim)
	} else if len(dst) != s.dim {
		return nil, fmt.Errorf("At: len(dst)=%d, dim=%d: %w", len(dst), s.dim, ErrDimension)
	}
	if t == s.t1 {
		copy(dst, s.yEnd)

		return dst, nil
	}
	seg := s.locate(t)
	for j := 0; j < s.dim; j++ {
		dst[j] = seg.component(t, j, s.dim)
	}

	return dst, nil
}

// Component evaluates coordinate j of the state at t without allocating.
//
// Errors:
//   - ErrOutOfSpan if t is outside [t0, t1] or NaN.
//   - ErrDimension if j is not a valid coordinate.
func (s *Solution) Component(t float64, j int) (float64, error) {
	if j < 0 || j >= s.dim {
		return 0, fmt.Errorf("Component: j=%d, dim=%d: %w", j, s.dim, ErrDimension)
	}
	if !s.contains(t) {
		return 0, fmt.Errorf("Component: t=%g not in [%g, %g]: %w", t, s.t0, s.t1, ErrOutOfSpan)
	}
	if t == s.t1 {
		return s.yEnd[j], nil
	}

	return s.locate(t).component(t, j, s.dim), nil
}

// Eval evaluates the state at every t in ts, in order.
// The first out-of-span point aborts the call with ErrOutOfSpan.
func (s *Solution) Eval(ts []float64) ([][]float64, error) {
	out := make([][]float64, len(ts))
	for i, t := range ts {
		y, err := s.At(t, nil)
		if err != nil {
			return nil, fmt.Errorf("Eval: index %d: %w", i, err)
		}
		out[i] = y
	}

	return out, nil
}
