// SPDX-License-Identifier: MIT

package ode

import "math"

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}

// allFinite reports whether every element of v is finite.
func allFinite(v []float64) bool {
	for _, x := range v {
		if isNonFinite(x) {
			return false
		}
	}

	return true
}

// rmsNorm is the root-mean-square norm used by the step controller.
func rmsNorm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum / float64(len(v)))
}
