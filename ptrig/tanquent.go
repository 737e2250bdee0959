// SPDX-License-Identifier: MIT

package ptrig

import "fmt"

// Tanquent evaluates squine/cosquine elementwise.
//
// Cosquine vanishes at t ≡ π_p/2 (mod π_p); there the quotient follows IEEE
// division and is ±Inf (or NaN for 0/0). These values are returned as-is,
// they are not errors.
//
// Errors:
//   - ErrDomain for invalid p.
//   - ErrSolver when the integration breaks down.
func Tanquent(ts []float64, p float64, opts ...Option) ([]float64, error) {
	s, c, err := SquineCosquine(ts, p, opts...)
	if err != nil {
		return nil, fmt.Errorf("Tanquent: %w", err)
	}
	for i := range s {
		s[i] /= c[i]
	}

	return s, nil
}

// Tanquent1 is Tanquent for a single point.
func Tanquent1(t, p float64, opts ...Option) (float64, error) {
	out, err := Tanquent([]float64{t}, p, opts...)
	if err != nil {
		return 0, err
	}

	return out[0], nil
}
