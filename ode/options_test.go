// SPDX-License-Identifier: MIT

package ode

import (
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// TestGatherOptions_Defaults verifies the zero-option configuration.
func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, DefaultRtol, o.rtol)
	assert.Equal(t, DefaultAtol, o.atol)
	assert.Equal(t, DefaultMaxSteps, o.maxSteps)
	assert.Equal(t, DefaultFirstStep, o.firstStep)
	assert.True(t, math.IsInf(o.maxStep, 1))
	assert.Nil(t, o.logger)
}

// TestGatherOptions_Overrides verifies that later options win and nil
// options are skipped.
func TestGatherOptions_Overrides(t *testing.T) {
	l := logrus.New()
	o := gatherOptions(WithRtol(1e-6), nil, WithRtol(1e-8), WithAtol(0), WithMaxSteps(10),
		WithFirstStep(0.5), WithMaxStep(2), WithLogger(l))
	assert.Equal(t, 1e-8, o.rtol)
	assert.Equal(t, 0.0, o.atol)
	assert.Equal(t, 10, o.maxSteps)
	assert.Equal(t, 0.5, o.firstStep)
	assert.Equal(t, 2.0, o.maxStep)
	assert.Same(t, l, o.logger)
}

// TestOptions_Panics verifies constructor validation.
func TestOptions_Panics(t *testing.T) {
	assert.PanicsWithValue(t, panicRtolInvalid, func() { WithRtol(0) })
	assert.PanicsWithValue(t, panicRtolInvalid, func() { WithRtol(math.NaN()) })
	assert.PanicsWithValue(t, panicAtolInvalid, func() { WithAtol(-1) })
	assert.PanicsWithValue(t, panicMaxStepsInvalid, func() { WithMaxSteps(0) })
	assert.PanicsWithValue(t, panicFirstStepInvalid, func() { WithFirstStep(math.Inf(1)) })
	assert.PanicsWithValue(t, panicMaxStepInvalid, func() { WithMaxStep(0) })
	assert.NotPanics(t, func() { WithMaxStep(math.Inf(1)) })
}

// TestTableau_Consistency checks the row-sum conditions of the coefficients.
func TestTableau_Consistency(t *testing.T) {
	for s := 1; s < nExtended; s++ {
		var sum float64
		for m := 0; m < s; m++ {
			sum += dopA[s][m]
		}
		assert.InDelta(t, dopC[s], sum, 1e-12, "row %d", s)
	}
	var e5, e3 float64
	for m := 0; m <= nStages; m++ {
		e5 += dopE5[m]
		e3 += dopE3[m]
	}
	assert.InDelta(t, 0, e5, 1e-12, "E5 weights sum to zero")
	assert.InDelta(t, 0, e3, 1e-12, "E3 weights sum to zero")
	for r := range dopD {
		var sum float64
		for _, d := range dopD[r] {
			sum += d
		}
		assert.InDelta(t, 0, sum, 1e-8, "dense row %d", r)
	}
}
