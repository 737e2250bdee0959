// SPDX-License-Identifier: MIT

package ptrig_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/squig/ptrig"
	"github.com/stretchr/testify/assert"
)

// TestField_Values checks the right-hand side at a few states.
func TestField_Values(t *testing.T) {
	d0, d1 := ptrig.Field(0, 1, 0, 3)
	assert.Equal(t, 0.0, d0)
	assert.Equal(t, 1.0, d1)

	d0, d1 = ptrig.Field(7, 0.6, 0.8, 2)
	assert.Equal(t, -0.8, d0, "p=2 reduces to (−sin, cos)")
	assert.Equal(t, 0.6, d1)

	// odd extension past the quarter point
	d0, d1 = ptrig.Field(0, -0.25, 0.5, 3)
	assert.InDelta(t, -0.25, d0, 1e-15)
	assert.InDelta(t, -0.0625, d1, 1e-15)
}

// TestVectorField_MatchesField compares the ode.System form with Field.
func TestVectorField_MatchesField(t *testing.T) {
	sys := ptrig.VectorField(3.5)
	df := make([]float64, 2)
	for _, f := range [][2]float64{{1, 0}, {0.9, 0.3}, {0.2, 0.99}, {-0.1, 1}} {
		sys(0, f[:], df)
		d0, d1 := ptrig.Field(0, f[0], f[1], 3.5)
		assert.Equal(t, d0, df[0])
		assert.Equal(t, d1, df[1])
	}
}

// TestVectorField_ConservesNorm checks d/dt(|f0|^p + |f1|^p) = 0 along the field.
func TestVectorField_ConservesNorm(t *testing.T) {
	for _, p := range []float64{1.5, 2, 3, 6} {
		theta := 0.7
		f0 := math.Pow(math.Cos(theta), 2/p)
		f1 := math.Pow(math.Sin(theta), 2/p)
		d0, d1 := ptrig.Field(0, f0, f1, p)
		rate := p*math.Pow(f0, p-1)*d0 + p*math.Pow(f1, p-1)*d1
		assert.InDelta(t, 0, rate, 1e-12, "p=%g", p)
	}
}
