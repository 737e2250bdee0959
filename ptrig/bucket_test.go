// SPDX-License-Identifier: MIT

package ptrig_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/squig/ptrig"
	"github.com/stretchr/testify/assert"
)

// TestLocate_Table checks bucket routing and offsets, including boundaries,
// negative t and t beyond one period.
func TestLocate_Table(t *testing.T) {
	const ppi = 3.0
	cases := []struct {
		name    string
		t       float64
		wantB   ptrig.Bucket
		wantOff float64
	}{
		{"zero", 0, ptrig.FirstQuadrant, 0},
		{"inside Q1", 1, ptrig.FirstQuadrant, 1},
		{"edge Q2", 1.5, ptrig.SecondQuadrant, 0},
		{"inside Q2", 2.5, ptrig.SecondQuadrant, 1},
		{"edge Q3", 3, ptrig.ThirdQuadrant, 0},
		{"edge Q4", 4.5, ptrig.FourthQuadrant, 0},
		{"inside Q4", 5.9, ptrig.FourthQuadrant, 1.4},
		{"full period", 6, ptrig.FirstQuadrant, 0},
		{"second turn", 8.5, ptrig.SecondQuadrant, 1},
		{"negative", -1, ptrig.FourthQuadrant, 0.5},
		{"negative edge", -1.5, ptrig.FourthQuadrant, 0},
		{"negative turns", -13, ptrig.FourthQuadrant, 0.5},
		{"negative zero", math.Copysign(0, -1), ptrig.FirstQuadrant, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, off := ptrig.Locate(tc.t, ppi)
			assert.Equal(t, tc.wantB, b)
			assert.InDelta(t, tc.wantOff, off, 1e-12)
		})
	}
}

// TestLocate_OffsetRange checks that offsets stay inside [0, π_p/2].
func TestLocate_OffsetRange(t *testing.T) {
	ppi := 2.737853623918902
	for _, x := range linspace(-50, 50, 2001) {
		b, off := ptrig.Locate(x, ppi)
		assert.GreaterOrEqual(t, off, 0.0, "t=%g", x)
		assert.LessOrEqual(t, off, ppi/2, "t=%g", x)
		assert.GreaterOrEqual(t, int(b), 0)
		assert.LessOrEqual(t, int(b), 3)
	}
	_, off := ptrig.Locate(-1e-300, ppi)
	assert.Equal(t, 0.0, off, "tiny negative t wraps to the period start")
}

// TestBucket_String names the buckets.
func TestBucket_String(t *testing.T) {
	assert.Equal(t, "Q1", ptrig.FirstQuadrant.String())
	assert.Equal(t, "Q2", ptrig.SecondQuadrant.String())
	assert.Equal(t, "Q3", ptrig.ThirdQuadrant.String())
	assert.Equal(t, "Q4", ptrig.FourthQuadrant.String())
	assert.Equal(t, "Bucket(7)", ptrig.Bucket(7).String())
}
