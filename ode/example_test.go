// SPDX-License-Identifier: MIT

package ode_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/squig/ode"
)

// ExampleSolve integrates the harmonic oscillator over half a turn and reads
// the dense output between step points.
func ExampleSolve() {
	harmonic := func(_ float64, y, dy []float64) {
		dy[0], dy[1] = -y[1], y[0]
	}

	sol, err := ode.Solve(harmonic, 0, math.Pi, []float64{1, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	y, _ := sol.At(math.Pi/6, nil)
	fmt.Printf("cos=%.6f sin=%.6f\n", y[0], y[1])
	fmt.Printf("end=%.6f\n", sol.Final()[0])
	// Output:
	// cos=0.866025 sin=0.500000
	// end=-1.000000
}
