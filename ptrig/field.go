// SPDX-License-Identifier: MIT

package ptrig

import (
	"math"

	"github.com/katalvlaran/squig/ode"
)

// Field is the right-hand side of the generalized trigonometric system,
//
//	f0' = −f1^(p−1),  f1' = f0^(p−1),
//
// the p-analogue of (cos, sin)' = (−sin, cos). t is unused: the system is
// autonomous. Every trajectory from (1, 0) stays on |f0|^p + |f1|^p = 1.
//
// Powers of negative arguments use the odd extension sign(x)·|x|^(p−1). On
// the first-quadrant arc, where both components are non-negative, this is the
// plain power.
func Field(_, f0, f1, p float64) (d0, d1 float64) {
	e := p - 1

	return -oddPow(f1, e), oddPow(f0, e)
}

// VectorField returns Field for a fixed p as an ode.System.
func VectorField(p float64) ode.System {
	e := p - 1

	return func(_ float64, f, df []float64) {
		df[0] = -oddPow(f[1], e)
		df[1] = oddPow(f[0], e)
	}
}

// oddPow is sign(x)·|x|^e.
func oddPow(x, e float64) float64 {
	if x < 0 {
		return -math.Pow(-x, e)
	}

	return math.Pow(x, e)
}
