// SPDX-License-Identifier: MIT

package ode_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/squig/ode"
)

// BenchmarkSolve_Harmonic measures one full-turn integration.
func BenchmarkSolve_Harmonic(b *testing.B) {
	y0 := []float64{1, 0}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ode.Solve(harmonic, 0, 2*math.Pi, y0); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolution_Component measures a single dense-output query.
func BenchmarkSolution_Component(b *testing.B) {
	sol, err := ode.Solve(harmonic, 0, 2*math.Pi, []float64{1, 0})
	if err != nil {
		b.Fatalf("Solve failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sol.Component(float64(i%628)/100, 1)
	}
}
