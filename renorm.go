// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import (
	"math"
	"sort"
)

// renorm.go: turns a sequence of possibly-overlapping components into the
// canonical non-overlapping, magnitude-ordered tuple that every wide value
// must satisfy. Arithmetic operators build up a wider
// scratch tuple (the raw, unrenormalized sum of several EFT results) and
// call one of these before returning it to the caller.

// specialComponent reports whether c0 forces a short-circuit result: a NaN
// or ±Inf in the leading component propagates with zeros trailing.
func specialComponent(c0 float64) (float64, bool) {
	if math.IsNaN(c0) || math.IsInf(c0, 0) {
		return c0, true
	}
	return 0, false
}

// renormalizeDouble3 implements the exact three-step double-double
// renormalization, given three possibly-overlapping components c0, c1, c2
// already in decreasing order of magnitude.
func renormalizeDouble3(c0, c1, c2 float64) Double {
	if v, ok := specialComponent(c0); ok {
		return Double{c0: v}
	}
	s, t := quickTwoSum(c1, c2)
	r0, e := quickTwoSum(c0, s)
	h, l := quickTwoSum(r0, e+t)
	return Double{c0: h, c1: l}
}

// renormalizeDoubleN renormalizes an arbitrary-length scratch sequence
// (e.g. the hi/lo partial products multiplication gathers) to a
// canonical Double, using the generic two-pass cascade below.
func renormalizeDoubleN(comps []float64) Double {
	if len(comps) == 0 {
		return Double{}
	}
	if v, ok := specialComponent(comps[0]); ok {
		return Double{c0: v}
	}
	out := renormalizeCascade(comps, 2)
	return Double{c0: out[0], c1: out[1]}
}

// renormalizeQuadN renormalizes an arbitrary-length scratch sequence (four
// or more possibly overlapping components, such as the raw sums and
// partial products of quad-double arithmetic) down
// to the canonical 4-component Quad, using Priest's cascading algorithm
//: a bottom-up two_sum pass followed by a top-down sweep
// that packs non-zero residuals into output slots, skipping exact zeros and
// zero-filling any slots left over if fewer than four survive.
func renormalizeQuadN(comps []float64) Quad {
	if len(comps) == 0 {
		return Quad{}
	}
	if v, ok := specialComponent(comps[0]); ok {
		return Quad{c0: v}
	}
	out := renormalizeCascade(comps, 4)
	return Quad{c0: out[0], c1: out[1], c2: out[2], c3: out[3]}
}

// renormalizeCascade performs the generic two-pass Priest renormalization
// of comps (assumed free of NaN/Inf in position 0) down to exactly width
// canonical, non-overlapping, magnitude-ordered components.
func renormalizeCascade(comps []float64, width int) []float64 {
	n := len(comps)
	work := make([]float64, n)
	copy(work, comps)

	// Bottom-up pass: cascade two_sum from the smallest component upward,
	// folding each residual into its more-significant neighbor. two_sum
	// rather than quick_two_sum, since the running sum can outgrow the
	// neighbor it is added to.
	for i := n - 1; i > 0; i-- {
		s, e := twoSum(work[i-1], work[i])
		work[i-1] = s
		work[i] = e
	}

	// Top-down sweep: accumulate residuals into output slots, dropping
	// exact zeros, until width slots are filled or the input is exhausted.
	out := make([]float64, 0, width)
	sum := work[0]
	for i := 1; i < n && len(out) < width; i++ {
		if work[i] == 0 {
			continue
		}
		s, e := quickTwoSum(sum, work[i])
		if e != 0 {
			out = append(out, s)
			sum = e
		} else {
			sum = s
		}
	}
	for len(out) < width {
		out = append(out, sum)
		sum = 0
	}
	return out[:width]
}

// sortByDecreasingMagnitude orders p so that |p[0]| >= |p[1]| >= ...,
// the order renormalizeCascade expects its input in.
func sortByDecreasingMagnitude(p []float64) {
	sort.Slice(p, func(i, j int) bool { return math.Abs(p[i]) > math.Abs(p[j]) })
}

// mulScratch gathers two_prod(a_i, b_j) for every pair whose combined
// order i+j is at most maxOrder, skipping any pair with a zero factor,
// and returns the hi/lo results sorted by decreasing magnitude so they
// can feed directly into renormalizeDoubleN/renormalizeQuadN.
func mulScratch(a, b []float64, maxOrder int) []float64 {
	scratch := make([]float64, 0, 2*(maxOrder+1)*(maxOrder+1))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if i+j > maxOrder || bj == 0 {
				continue
			}
			p, e := twoProd(ai, bj)
			scratch = append(scratch, p, e)
		}
	}
	if len(scratch) == 0 {
		return []float64{0}
	}
	sortByDecreasingMagnitude(scratch)
	return scratch
}
