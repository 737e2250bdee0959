// SPDX-License-Identifier: MIT

package ptrig

import (
	"math"
	"testing"

	"github.com/katalvlaran/squig/ode"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()
	assert.Equal(t, DefaultRtol, o.rtol)
	assert.Equal(t, DefaultAtol, o.atol)
	assert.Equal(t, DefaultMaxSteps, o.maxSteps)
	assert.Equal(t, DefaultMargin, o.margin)
	assert.Equal(t, 0.0, o.period)
	assert.False(t, o.parallel)
	assert.Nil(t, o.logger)
}

func TestGatherOptions_Overrides(t *testing.T) {
	l := logrus.New()
	o := gatherOptions(
		WithTolerances(1e-6, 1e-9),
		WithMaxSteps(10),
		WithMargin(0),
		WithPeriod(3),
		WithParallel(),
		nil,
		WithLogger(l),
	)
	assert.Equal(t, 1e-6, o.rtol)
	assert.Equal(t, 1e-9, o.atol)
	assert.Equal(t, 10, o.maxSteps)
	assert.Equal(t, 0.0, o.margin)
	assert.Equal(t, 3.0, o.period)
	assert.True(t, o.parallel)
	assert.Same(t, l, o.logger)

	o = gatherOptions(WithParallel(), WithSequential())
	assert.False(t, o.parallel, "last option wins")
	assert.Len(t, o.odeOptions(), 4)
}

func TestOptions_Panics(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	assert.PanicsWithValue(t, panicTolerancesInvalid, func() { WithTolerances(0, 1e-9) })
	assert.PanicsWithValue(t, panicTolerancesInvalid, func() { WithTolerances(nan, 1e-9) })
	assert.PanicsWithValue(t, panicTolerancesInvalid, func() { WithTolerances(1e-6, -1) })
	assert.PanicsWithValue(t, panicTolerancesInvalid, func() { WithTolerances(1e-6, inf) })
	assert.PanicsWithValue(t, panicMaxStepsInvalid, func() { WithMaxSteps(0) })
	assert.PanicsWithValue(t, panicMarginInvalid, func() { WithMargin(-0.1) })
	assert.PanicsWithValue(t, panicMarginInvalid, func() { WithMargin(inf) })
	assert.PanicsWithValue(t, panicPeriodInvalid, func() { WithPeriod(0) })
	assert.PanicsWithValue(t, panicPeriodInvalid, func() { WithPeriod(nan) })
	assert.NotPanics(t, func() { WithTolerances(1e-3, 0) })
}

func TestResolvePeriod(t *testing.T) {
	ppi, err := gatherOptions().resolvePeriod(2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, ppi, 1e-12)

	ppi, err = gatherOptions(WithPeriod(3.5)).resolvePeriod(4)
	require.NoError(t, err)
	assert.Equal(t, 3.5, ppi)

	// a supplied period never bypasses the shape check
	_, err = gatherOptions(WithPeriod(3.5)).resolvePeriod(1)
	assert.ErrorIs(t, err, ErrDomain)
}

func TestTransformTables(t *testing.T) {
	// squine and cosquine read opposite directions in every bucket
	for b := range Bucket(numBuckets) {
		assert.NotEqual(t, squineRules[b].reflect, cosquineRules[b].reflect, "%v", b)
	}
	// cosquine(t) = squine(t + π_p/2): bucket b of cosquine is bucket b+1 of squine
	for b := range Bucket(numBuckets) {
		next := (b + 1) % numBuckets
		assert.Equal(t, squineRules[next], cosquineRules[b], "%v", b)
	}
}

func TestPartition(t *testing.T) {
	ts := []float64{5, math.NaN(), 0.5, math.Inf(-1), 2, 0.1}
	buckets, bad := partition(ts, 4)
	assert.Equal(t, []int{1, 3}, bad)
	assert.Equal(t, []point{{idx: 2, off: 0.5}, {idx: 5, off: 0.1}}, buckets[FirstQuadrant])
	assert.Equal(t, []point{{idx: 4, off: 0}}, buckets[SecondQuadrant])
	assert.Equal(t, []point{{idx: 0, off: 1}}, buckets[ThirdQuadrant])
	assert.Empty(t, buckets[FourthQuadrant])
}

func TestQuarter_StatsConsistent(t *testing.T) {
	q, err := NewQuarter(2)
	require.NoError(t, err)
	var st ode.Stats = q.Stats()
	assert.Equal(t, st.Accepted+st.Rejected, st.Steps)
}
