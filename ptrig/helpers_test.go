// SPDX-License-Identifier: MIT

package ptrig_test

import (
	"testing"

	"github.com/katalvlaran/squig/ptrig"
	"github.com/stretchr/testify/require"
)

// shapes is the set of p values exercised by the property tests.
var shapes = []float64{1.2, 1.5, 2, 3, 4.5, 10}

// identityTol bounds | |s|^p + |c|^p − 1 | at default tolerances.
const identityTol = 1e-7

// mustPiP returns π_p or fails the test.
func mustPiP(t testing.TB, p float64) float64 {
	t.Helper()
	v, err := ptrig.PiP(p)
	require.NoError(t, err)

	return v
}

// linspace returns n points evenly spaced over [a, b].
func linspace(a, b float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = a + (b-a)*float64(i)/float64(n-1)
	}

	return out
}
