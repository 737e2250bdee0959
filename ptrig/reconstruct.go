// SPDX-License-Identifier: MIT

package ptrig

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Squine evaluates the generalized sine at every point of ts for shape p.
//
// Implementation:
//   - Stage 1: validate p and resolve π_p.
//   - Stage 2: wrap each t into [0, 2·π_p) and route it to its quadrant bucket.
//   - Stage 3: integrate the quarter arc once and read every bucket from it,
//     reflecting and negating per bucket; results are scattered back to the
//     caller's order.
//
// Behavior highlights:
//   - Any real t is accepted: t is reduced modulo 2·π_p first.
//   - NaN or ±Inf points yield NaN at their position.
//   - Squine(0) = 0 exactly; bucket boundaries map to exact 0 or ±1.
//   - Empty ts returns an empty slice without integrating.
//
// Errors:
//   - ErrDomain for invalid p.
//   - ErrSolver when the integration breaks down; no partial result.
func Squine(ts []float64, p float64, opts ...Option) ([]float64, error) {
	out, err := evaluate(ts, p, gatherOptions(opts...), &squineRules)
	if err != nil {
		return nil, fmt.Errorf("Squine: %w", err)
	}

	return out[0], nil
}

// Cosquine evaluates the generalized cosine at every point of ts for shape p.
// Cosquine(0) = 1 exactly. Semantics and errors match Squine.
func Cosquine(ts []float64, p float64, opts ...Option) ([]float64, error) {
	out, err := evaluate(ts, p, gatherOptions(opts...), &cosquineRules)
	if err != nil {
		return nil, fmt.Errorf("Cosquine: %w", err)
	}

	return out[0], nil
}

// SquineCosquine evaluates both functions from a single integration.
func SquineCosquine(ts []float64, p float64, opts ...Option) (s, c []float64, err error) {
	out, err := evaluate(ts, p, gatherOptions(opts...), &squineRules, &cosquineRules)
	if err != nil {
		return nil, nil, fmt.Errorf("SquineCosquine: %w", err)
	}

	return out[0], out[1], nil
}

// Squine1 is Squine for a single point.
func Squine1(t, p float64, opts ...Option) (float64, error) {
	out, err := Squine([]float64{t}, p, opts...)
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// Cosquine1 is Cosquine for a single point.
func Cosquine1(t, p float64, opts ...Option) (float64, error) {
	out, err := Cosquine([]float64{t}, p, opts...)
	if err != nil {
		return 0, err
	}

	return out[0], nil
}

// evaluate fills one output slice per transform table.
func evaluate(ts []float64, p float64, o Options, tables ...*[numBuckets]rule) ([][]float64, error) {
	// Stage 1: domain
	ppi, err := o.resolvePeriod(p)
	if err != nil {
		return nil, err
	}
	outs := make([][]float64, len(tables))
	for k := range outs {
		outs[k] = make([]float64, len(ts))
	}

	// Stage 2: bucket routing
	buckets, bad := partition(ts, ppi)
	for _, i := range bad {
		for k := range outs {
			outs[k][i] = math.NaN()
		}
	}
	if len(bad) == len(ts) {
		return outs, nil
	}

	// Stage 3: one integration, shared by every bucket
	q, err := newQuarter(p, ppi, o)
	if err != nil {
		return nil, err
	}
	fill := func(b Bucket) error {
		for k, table := range tables {
			r := table[b]
			dst := outs[k]
			for _, pt := range buckets[b] {
				v, err := q.Sine(r.query(pt.off, q.half))
				if err != nil {
					return fmt.Errorf("%v: %w", b, err)
				}
				dst[pt.idx] = r.sign * v
			}
		}

		return nil
	}

	if o.parallel {
		var g errgroup.Group
		for b := range Bucket(numBuckets) {
			if len(buckets[b]) == 0 {
				continue
			}
			g.Go(func() error { return fill(b) })
		}
		err = g.Wait()
	} else {
		for b := range Bucket(numBuckets) {
			if err = fill(b); err != nil {
				break
			}
		}
	}
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.WithFields(logrus.Fields{
			"p":      p,
			"period": ppi,
			"points": len(ts),
			"q1":     len(buckets[FirstQuadrant]),
			"q2":     len(buckets[SecondQuadrant]),
			"q3":     len(buckets[ThirdQuadrant]),
			"q4":     len(buckets[FourthQuadrant]),
			"evals":  q.Stats().Evals,
		}).Debug("ptrig: evaluated")
	}

	return outs, nil
}
