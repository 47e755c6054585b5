// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

// eft.go: error-free transformations. These are the three primitives that
// every wide arithmetic operation ultimately bottoms out in. Each returns a
// pair (s, e) such that s+e, evaluated as an infinite-precision real, equals
// the infinite-precision result of the scalar operation on the inputs. None
// of these may special-case ±0, ±Inf, or NaN: IEEE 754 already carries those
// through correctly, and renormalization and the operators built on top of
// these primitives depend on that.

// quickTwoSum computes an error-free sum of two float64s, assuming
// |a| >= |b|.
//
// Dekker algorithm, 3 floating point operations. Result s is a+b, e is the
// error such that s+e exactly equals a+b.
func quickTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return
}

// twoSum computes an error-free sum of two float64s with no assumption on
// relative magnitude.
//
// Knuth algorithm, 6 floating point operations.
func twoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return
}

// splitFactor splits a float64 into a high and low half each fitting in 26
// bits of significand, for use by twoProd's Dekker-split strategy.
var splitFactor = float64(uint64(1)<<27 + 1)

// split divides a into hi, lo such that hi+lo == a exactly and both fit in
// 26 bits.
func split(a float64) (hi, lo float64) {
	c := splitFactor * a
	hi = c - (c - a)
	lo = a - hi
	return
}

// twoProd computes an error-free product of two float64s.
//
// This always uses the FMA-free Dekker split, even on hardware with a
// fused multiply-add, so that results are bit-identical across platforms.
func twoProd(a, b float64) (p, e float64) {
	p = a * b
	ahi, alo := split(a)
	bhi, blo := split(b)
	e = alo*blo - (p - ahi*bhi - alo*bhi - ahi*blo)
	return
}
