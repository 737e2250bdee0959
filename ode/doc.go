// SPDX-License-Identifier: MIT

// Package ode integrates explicit first-order systems of ordinary
// differential equations with an adaptive high-order Runge–Kutta method and
// keeps a dense (continuous) representation of the trajectory.
//
// 🚀 What is inside?
//
//	Solve runs the Dormand–Prince 8(5,3) pair (DOP853): twelve stages per
//	step, a combined 5th/3rd order error estimate driving the step size, and
//	three extra stages per accepted step that build a 7th-order continuous
//	extension. The returned *Solution answers y(t) for any t inside the
//	integration span, not only at the step points.
//
// ✨ Key features:
//   - allocation-free right-hand side: System writes into a caller buffer
//   - automatic initial step selection
//   - step budget (WithMaxSteps) and step-collapse detection instead of
//     unbounded loops; failures surface as *SolverError
//   - forward and backward integration (t1 < t0)
//   - optional structured logging via logrus (WithLogger)
//
// ⚙️ Usage:
//
//	harmonic := func(_ float64, y, dy []float64) {
//		dy[0], dy[1] = -y[1], y[0]
//	}
//	sol, err := ode.Solve(harmonic, 0, math.Pi, []float64{1, 0}, ode.WithRtol(1e-10))
//	if err != nil {
//		// errors.Is(err, ode.ErrSolver) for any integrator failure
//	}
//	y, _ := sol.Eval([]float64{0.5, 1.5})
//
// Complexity:
//
//   - Time:   O(steps · 15 · dim) right-hand side work + O(log steps) per query
//   - Memory: O(steps · 8 · dim) for the dense output
//
// A *Solution is immutable once Solve returns and may be queried from many
// goroutines at once.
package ode
