// SPDX-License-Identifier: MIT

package ptrig

import (
	"fmt"
	"math"
)

// PiP returns the generalized half-period
//
//	π_p = 2·Γ(1/p)² / (p·Γ(2/p))
//
// the length of the interval on which squine goes from 0 through 1 back to 0.
// π_2 = π.
//
// Errors:
//   - ErrDomain if p is NaN, ±Inf or p ≤ 1.
func PiP(p float64) (float64, error) {
	if err := validateShape(p); err != nil {
		return 0, err
	}
	g1 := math.Gamma(1 / p)
	g2 := math.Gamma(2 / p)

	return 2 * g1 * g1 / (p * g2), nil
}

// PiPs applies PiP elementwise. The first invalid p aborts the call.
func PiPs(ps []float64) ([]float64, error) {
	out := make([]float64, len(ps))
	for i, p := range ps {
		v, err := PiP(p)
		if err != nil {
			return nil, fmt.Errorf("PiPs: index %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// validateShape enforces the p > 1 domain.
func validateShape(p float64) error {
	if math.IsNaN(p) || math.IsInf(p, 0) || p <= 1 {
		return fmt.Errorf("p=%g: %w", p, ErrDomain)
	}

	return nil
}
