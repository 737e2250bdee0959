// SPDX-License-Identifier: MIT

package ptrig

import (
	"fmt"
	"math"
)

// Bucket identifies the quarter-period window of a point modulo 2·π_p.
//
//	FirstQuadrant   [0,        π_p/2)
//	SecondQuadrant  [π_p/2,    π_p)
//	ThirdQuadrant   [π_p,      3·π_p/2)
//	FourthQuadrant  [3·π_p/2,  2·π_p)
type Bucket int

const (
	FirstQuadrant Bucket = iota
	SecondQuadrant
	ThirdQuadrant
	FourthQuadrant

	numBuckets = 4
)

// String implements fmt.Stringer.
func (b Bucket) String() string {
	switch b {
	case FirstQuadrant:
		return "Q1"
	case SecondQuadrant:
		return "Q2"
	case ThirdQuadrant:
		return "Q3"
	case FourthQuadrant:
		return "Q4"
	}

	return fmt.Sprintf("Bucket(%d)", int(b))
}

// Locate wraps t into [0, 2·π_p) and returns its bucket together with the
// offset from the start of that bucket, clamped to [0, π_p/2].
//
// Boundary points belong to the bucket they open: t = π_p/2 is SecondQuadrant
// with offset 0, never FirstQuadrant with offset π_p/2.
// Assumes t is finite and ppi > 0.
func Locate(t, ppi float64) (Bucket, float64) {
	full := 2 * ppi
	u := math.Mod(t, full)
	if u < 0 {
		u += full
	}
	if u >= full {
		// -tiny + full rounds up to full
		u = 0
	}

	half := ppi / 2
	var b Bucket
	switch {
	case u < half:
		b = FirstQuadrant
	case u < ppi:
		b = SecondQuadrant
	case u < ppi*3/2:
		b = ThirdQuadrant
	default:
		b = FourthQuadrant
	}

	off := u - float64(b)*half
	if off < 0 {
		off = 0
	} else if off > half {
		off = half
	}

	return b, off
}

// rule maps a bucket offset onto a quarter-arc query and a sign.
type rule struct {
	reflect bool    // query π_p/2 − offset instead of offset
	sign    float64 // applied to f1 at the query point
}

// query returns the point on the quarter arc to sample.
func (r rule) query(off, half float64) float64 {
	if r.reflect {
		return half - off
	}

	return off
}

// Transform tables, indexed by Bucket. All values are read from f1.
var (
	squineRules = [numBuckets]rule{
		FirstQuadrant:  {reflect: false, sign: 1},
		SecondQuadrant: {reflect: true, sign: 1},
		ThirdQuadrant:  {reflect: false, sign: -1},
		FourthQuadrant: {reflect: true, sign: -1},
	}
	cosquineRules = [numBuckets]rule{
		FirstQuadrant:  {reflect: true, sign: 1},
		SecondQuadrant: {reflect: false, sign: -1},
		ThirdQuadrant:  {reflect: true, sign: -1},
		FourthQuadrant: {reflect: false, sign: 1},
	}
)

// point is one finite query point routed to a bucket.
type point struct {
	idx int     // position in the caller's slice
	off float64 // offset inside the bucket
}

// partition routes finite points of ts to their buckets, preserving input
// order inside each bucket. Indices of non-finite points are returned apart.
func partition(ts []float64, ppi float64) (buckets [numBuckets][]point, bad []int) {
	for i, t := range ts {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			bad = append(bad, i)

			continue
		}
		b, off := Locate(t, ppi)
		buckets[b] = append(buckets[b], point{idx: i, off: off})
	}

	return buckets, bad
}
