// Package squig is a small numeric library for generalized trigonometry:
// the sine, cosine and tangent of the unit p-circle |x|^p + |y|^p = 1.
//
// 🚀 What is squig?
//
//	A pure-Go toolkit that brings together:
//		• π_p, the half-period of the p-circle, via the Gamma function
//		• squine / cosquine / tanquent evaluated at any real t, for any p > 1
//		• an adaptive DOP853 ODE integrator with continuous (dense) output
//		• a thin CLI for quick evaluations and tables
//
// ✨ Why choose squig?
//
//   - One integration per call – a single quarter period, reused by symmetry
//   - Exact where it matters – squine(0) = 0, cosquine(0) = 1, ±1 at the peaks
//   - Predictable errors – sentinel errors, errors.Is friendly
//   - Observable – optional logrus logger on every entry point
//
// Under the hood, everything is organized under these packages:
//
//	ode/        — generic explicit Runge–Kutta 8(5,3) integrator with dense output
//	ptrig/      — π_p, the p-circle vector field, quarter arc and periodic reconstruction
//	cmd/squig/  — cobra command line front end (pi, squine, cosquine, tanquent, table)
//
// Quick ASCII example (p = 4, the "squircle"):
//
//	   ┌───────┐
//	   │       │   cosquine → x, squine → y
//	   │   ·   │   |x|^4 + |y|^4 = 1
//	   │       │
//	   └───────┘
//
//	go get github.com/katalvlaran/squig/ptrig
package squig
