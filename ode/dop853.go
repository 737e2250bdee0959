// SPDX-License-Identifier: MIT

package ode

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

// System is the right-hand side of y' = f(t, y).
// Implementations write f(t, y) into dy (len(dy) == len(y)) and must not
// retain either slice.
type System func(t float64, y, dy []float64)

// Solve integrates sys from (t0, y0) to t1 with DOP853 and returns the dense
// trajectory.
//
// Implementation:
//   - Stage 1: validate inputs (nil system, empty state, non-finite values, empty span).
//   - Stage 2: evaluate f(t0, y0) and pick the first step (automatic unless WithFirstStep).
//   - Stage 3: advance with error-controlled steps; every accepted step stores
//     its 7th-order interpolant.
//
// Behavior highlights:
//   - The last step is shortened to land exactly on t1.
//   - t1 < t0 integrates backward.
//
// Errors:
//   - ErrNilSystem, ErrDimension, ErrNonFinite, ErrBadSpan for invalid input.
//   - *SolverError wrapping ErrStepCollapse, ErrTooManySteps or ErrNonFinite
//     when the integration breaks down. No partial solution is returned.
//
// Complexity:
//   - Time O(steps · 15 · dim) plus the cost of sys; Memory O(steps · 8 · dim).
func Solve(sys System, t0, t1 float64, y0 []float64, opts ...Option) (*Solution, error) {
	// Stage 1: validate
	if sys == nil {
		return nil, ErrNilSystem
	}
	if len(y0) == 0 {
		return nil, fmt.Errorf("Solve: empty initial state: %w", ErrDimension)
	}
	if isNonFinite(t0) || isNonFinite(t1) || !allFinite(y0) {
		return nil, fmt.Errorf("Solve: initial values: %w", ErrNonFinite)
	}
	if t0 == t1 {
		return nil, fmt.Errorf("Solve: t0 = t1 = %g: %w", t0, ErrBadSpan)
	}
	o := gatherOptions(opts...)

	// Stage 2: prepare the stepper
	s := newStepper(sys, t0, t1, y0, o)
	if !allFinite(s.f) {
		return nil, s.fail(0, ErrNonFinite)
	}
	s.hAbs = s.initialStep()

	// Stage 3: march to t1
	sol := &Solution{
		t0:  t0,
		t1:  t1,
		dir: s.dir,
		dim: s.n,
	}
	for s.t != s.tEnd {
		seg, err := s.step()
		if err != nil {
			return nil, err
		}
		sol.segs = append(sol.segs, seg)
	}
	sol.yEnd = append([]float64(nil), s.y...)
	sol.stats = Stats{
		Steps:    s.steps,
		Accepted: len(sol.segs),
		Rejected: s.rejected,
		Evals:    s.evals,
	}

	if s.o.logger != nil {
		s.o.logger.WithFields(logrus.Fields{
			"t0":       t0,
			"t1":       t1,
			"accepted": sol.stats.Accepted,
			"rejected": sol.stats.Rejected,
			"evals":    sol.stats.Evals,
		}).Debug("ode: dop853 finished")
	}

	return sol, nil
}

// stepper holds the mutable state of one Solve call.
type stepper struct {
	sys  System
	o    Options
	n    int
	dir  float64
	tEnd float64

	t    float64
	y, f []float64 // state and derivative at t
	hAbs float64   // magnitude of the next trial step

	k                [nExtended][]float64
	yNew, tmp, scale []float64

	steps, rejected, evals int
}

// newStepper allocates workspace and evaluates f(t0, y0).
func newStepper(sys System, t0, t1 float64, y0 []float64, o Options) *stepper {
	n := len(y0)
	s := &stepper{
		sys:   sys,
		o:     o,
		n:     n,
		dir:   1,
		tEnd:  t1,
		t:     t0,
		y:     append([]float64(nil), y0...),
		f:     make([]float64, n),
		yNew:  make([]float64, n),
		tmp:   make([]float64, n),
		scale: make([]float64, n),
	}
	if t1 < t0 {
		s.dir = -1
	}
	for i := range s.k {
		s.k[i] = make([]float64, n)
	}
	s.eval(t0, s.y, s.f)

	return s
}

// eval calls the system and counts the evaluation.
func (s *stepper) eval(t float64, y, dy []float64) {
	s.sys(t, y, dy)
	s.evals++
}

// initialStep picks the magnitude of the first step from the local scale of
// y and of its first two derivatives (Hairer, Nørsett & Wanner, §II.4).
func (s *stepper) initialStep() float64 {
	span := math.Abs(s.tEnd - s.t)
	if s.o.firstStep > 0 {
		return math.Min(s.o.firstStep, span)
	}

	for i := 0; i < s.n; i++ {
		s.scale[i] = s.o.atol + math.Abs(s.y[i])*s.o.rtol
		s.tmp[i] = s.y[i] / s.scale[i]
	}
	d0 := rmsNorm(s.tmp)
	for i := 0; i < s.n; i++ {
		s.tmp[i] = s.f[i] / s.scale[i]
	}
	d1 := rmsNorm(s.tmp)

	h0 := 1e-6
	if d0 >= 1e-5 && d1 >= 1e-5 {
		h0 = 0.01 * d0 / d1
	}
	h0 = math.Min(h0, span)

	// explicit Euler probe for the second derivative
	y1, f1 := s.yNew, s.k[1]
	for i := 0; i < s.n; i++ {
		y1[i] = s.y[i] + h0*s.dir*s.f[i]
	}
	s.eval(s.t+h0*s.dir, y1, f1)
	for i := 0; i < s.n; i++ {
		s.tmp[i] = (f1[i] - s.f[i]) / s.scale[i]
	}
	d2 := rmsNorm(s.tmp) / h0

	var h1 float64
	if d1 <= 1e-15 && d2 <= 1e-15 {
		h1 = math.Max(1e-6, h0*1e-3)
	} else {
		h1 = math.Pow(0.01/math.Max(d1, d2), 1.0/(errOrder+1))
	}
	if isNonFinite(h1) {
		h1 = h0
	}

	return math.Min(math.Min(100*h0, h1), span)
}

// step performs one accepted step, retrying with smaller steps on rejection.
// It returns the dense-output segment covering the accepted step.
func (s *stepper) step() (segment, error) {
	minStep := 10 * math.Abs(math.Nextafter(s.t, s.dir*math.Inf(1))-s.t)
	hAbs := s.hAbs
	if hAbs > s.o.maxStep {
		hAbs = s.o.maxStep
	} else if hAbs < minStep {
		hAbs = minStep
	}

	rejected, nonFinite := false, false
	for {
		if s.steps >= s.o.maxSteps {
			return segment{}, s.fail(hAbs, ErrTooManySteps)
		}
		if hAbs < minStep {
			if nonFinite {
				return segment{}, s.fail(hAbs, ErrNonFinite)
			}

			return segment{}, s.fail(hAbs, ErrStepCollapse)
		}

		h := hAbs * s.dir
		tNew := s.t + h
		if s.dir*(tNew-s.tEnd) > 0 {
			tNew = s.tEnd
		}
		h = tNew - s.t
		hAbs = math.Abs(h)

		s.steps++
		s.rkStep(h)
		errNorm := s.errorNorm(hAbs)
		nonFinite = isNonFinite(errNorm) || !allFinite(s.yNew) || !allFinite(s.k[nStages])

		if !nonFinite && errNorm < 1 {
			factor := maxFactor
			if errNorm > 0 {
				factor = math.Min(maxFactor, safety*math.Pow(errNorm, -1.0/(errOrder+1)))
			}
			if rejected {
				factor = math.Min(1, factor)
			}
			seg := s.denseSegment(h, tNew)

			// commit
			s.t = tNew
			s.y, s.yNew = s.yNew, s.y
			copy(s.f, s.k[nStages])
			s.hAbs = hAbs * factor

			return seg, nil
		}

		factor := minFactor
		if !nonFinite {
			factor = math.Max(minFactor, safety*math.Pow(errNorm, -1.0/(errOrder+1)))
		}
		hAbs *= factor
		rejected = true
		s.rejected++
	}
}

// rkStep evaluates stages 0..11, the 8th-order update into yNew and the
// derivative at the new point into k[12].
func (s *stepper) rkStep(h float64) {
	copy(s.k[0], s.f)
	for st := 1; st < nStages; st++ {
		s.stageState(st, h)
		s.eval(s.t+dopC[st]*h, s.tmp, s.k[st])
	}
	for i := 0; i < s.n; i++ {
		var acc float64
		for m := 0; m < nStages; m++ {
			acc += dopB[m] * s.k[m][i]
		}
		s.yNew[i] = s.y[i] + h*acc
	}
	s.eval(s.t+h, s.yNew, s.k[nStages])
}

// stageState writes y + h·Σ a[st][m]·k[m] into tmp.
func (s *stepper) stageState(st int, h float64) {
	row := &dopA[st]
	for i := 0; i < s.n; i++ {
		var acc float64
		for m := 0; m < st; m++ {
			if row[m] != 0 {
				acc += row[m] * s.k[m][i]
			}
		}
		s.tmp[i] = s.y[i] + h*acc
	}
}

// errorNorm blends the 5th- and 3rd-order estimates the way DOP853 does; the
// step is accepted when the result is below 1.
func (s *stepper) errorNorm(hAbs float64) float64 {
	var err5sq, err3sq float64
	for i := 0; i < s.n; i++ {
		sc := s.o.atol + math.Max(math.Abs(s.y[i]), math.Abs(s.yNew[i]))*s.o.rtol
		var e5, e3 float64
		for m := 0; m <= nStages; m++ {
			e5 += dopE5[m] * s.k[m][i]
			e3 += dopE3[m] * s.k[m][i]
		}
		e5 /= sc
		e3 /= sc
		err5sq += e5 * e5
		err3sq += e3 * e3
	}
	if err5sq == 0 && err3sq == 0 {
		return 0
	}
	denom := err5sq + 0.01*err3sq

	return hAbs * err5sq / math.Sqrt(denom*float64(s.n))
}

// denseSegment runs the three extra stages and packs the interpolation
// coefficients of the step [t, tNew].
func (s *stepper) denseSegment(h, tNew float64) segment {
	for st := nStages + 1; st < nExtended; st++ {
		s.stageState(st, h)
		s.eval(s.t+dopC[st]*h, s.tmp, s.k[st])
	}

	n := s.n
	f := make([]float64, nInterp*n)
	fOld, fNew := s.k[0], s.k[nStages]
	for i := 0; i < n; i++ {
		dy := s.yNew[i] - s.y[i]
		f[i] = dy
		f[n+i] = h*fOld[i] - dy
		f[2*n+i] = 2*dy - h*(fNew[i]+fOld[i])
		for r := 0; r < nInterp-3; r++ {
			var acc float64
			for m := 0; m < nExtended; m++ {
				acc += dopD[r][m] * s.k[m][i]
			}
			f[(3+r)*n+i] = h * acc
		}
	}

	return segment{
		t:    s.t,
		tEnd: tNew,
		h:    h,
		y:    append([]float64(nil), s.y...),
		f:    f,
	}
}

// fail builds the *SolverError for the current run and logs it.
func (s *stepper) fail(h float64, cause error) error {
	err := &SolverError{
		T:     s.t,
		H:     h,
		Steps: s.steps,
		Evals: s.evals,
		Err:   cause,
	}
	if s.o.logger != nil {
		s.o.logger.WithFields(logrus.Fields{
			"t":     s.t,
			"h":     h,
			"steps": s.steps,
			"evals": s.evals,
		}).Warn(err.Error())
	}

	return err
}
