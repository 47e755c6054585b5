// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import "math"

// double.go: Double, the double-double type. A Double represents the real
// number c0+c1 where c0 and c1 are float64s satisfying the non-overlap and
// magnitude-ordering invariants. The zero value of Double is a
// valid representation of positive zero, so Double{} needs no constructor.
type Double struct {
	c0, c1 float64
}

// NewDouble promotes a float64 to a Double: (x, 0).
func NewDouble(x float64) Double {
	return Double{c0: x}
}

// DoubleFromComponents builds a Double from a raw pair of components,
// renormalizing them into canonical form. Callers that already know their
// pair is canonical (non-overlapping, magnitude ordered) still get a
// correct result; the renormalization is a no-op in that case modulo
// floating point identities.
func DoubleFromComponents(c0, c1 float64) Double {
	return renormalizeDouble3(c0, c1, 0)
}

// Float64 returns the leading component of d. This is deliberately c0
// alone, not c0+c1: summing would reintroduce the rounding error the wide
// representation exists to avoid.
func (d Double) Float64() float64 { return d.c0 }

// Components returns the canonical (c0, c1) pair.
func (d Double) Components() (float64, float64) { return d.c0, d.c1 }

// Neg returns -d, computed by negating every component.
func (d Double) Neg() Double { return Double{c0: -d.c0, c1: -d.c1} }

// Abs returns the absolute value of d.
func (d Double) Abs() Double {
	if d.IsSignNegative() {
		return d.Neg()
	}
	return d
}

// IsNaN reports whether d is NaN. Both components are inspected, since a
// NaN can in principle propagate into the trailing component alone.
func (d Double) IsNaN() bool { return math.IsNaN(d.c0) || math.IsNaN(d.c1) }

// IsInf reports whether d is positive or negative infinity. Only c0 is
// inspected.
func (d Double) IsInf() bool { return math.IsInf(d.c0, 0) }

// IsFinite reports whether d is neither NaN nor infinite.
func (d Double) IsFinite() bool { return !d.IsNaN() && !d.IsInf() }

// IsZero reports whether d is positive or negative zero.
func (d Double) IsZero() bool { return d.c0 == 0 }

// IsSignPositive reports whether d's sign bit is unset (covers +0 and NaN
// with a positive sign bit).
func (d Double) IsSignPositive() bool { return !math.Signbit(d.c0) }

// IsSignNegative reports whether d's sign bit is set.
func (d Double) IsSignNegative() bool { return math.Signbit(d.c0) }

// Equal reports whether d and o have identical components. Because
// canonical representations are unique for a given mathematical value,
// this is equivalent to mathematical equality for any two finite,
// non-NaN Doubles.
func (d Double) Equal(o Double) bool { return d.c0 == o.c0 && d.c1 == o.c1 }

// Cmp compares d and o, returning -1, 0, or 1 for less, equal, or greater,
// comparing c0 first and breaking ties on c1. ok is false if
// either operand is NaN, in which case the comparison is unordered.
func (d Double) Cmp(o Double) (cmp int, ok bool) {
	if d.IsNaN() || o.IsNaN() {
		return 0, false
	}
	if d.c0 != o.c0 {
		if d.c0 < o.c0 {
			return -1, true
		}
		return 1, true
	}
	if d.c1 != o.c1 {
		if d.c1 < o.c1 {
			return -1, true
		}
		return 1, true
	}
	return 0, true
}

// Less reports whether d < o. Unordered (NaN) comparisons report false.
func (d Double) Less(o Double) bool { c, ok := d.Cmp(o); return ok && c < 0 }

// Greater reports whether d > o. Unordered (NaN) comparisons report false.
func (d Double) Greater(o Double) bool { c, ok := d.Cmp(o); return ok && c > 0 }

// Min returns the smaller of d and o. If the comparison is unordered
// (either is NaN), o is returned, matching the deterministic tie-break
// used throughout this library.
func (d Double) Min(o Double) Double {
	c, ok := d.Cmp(o)
	if !ok {
		return o
	}
	if c <= 0 {
		return d
	}
	return o
}

// Max returns the larger of d and o, with the same NaN tie-break as Min.
func (d Double) Max(o Double) Double {
	c, ok := d.Cmp(o)
	if !ok {
		return o
	}
	if c >= 0 {
		return d
	}
	return o
}

func signOf(negative bool) float64 {
	if negative {
		return -1
	}
	return 1
}

// Add returns d+o using the IEEE-style ("sloppy") discipline: component-wise
// two_sum across aligned positions followed by renormalization. This is
// the default, ~2 ulp, addition.
func (d Double) Add(o Double) Double {
	if v, ok := addSpecialDouble(d, o); ok {
		return v
	}
	s0, e0 := twoSum(d.c0, o.c0)
	s1, e1 := twoSum(d.c1, o.c1)
	return renormalizeDouble3(s0, e0+s1, e1)
}

// AddAccurate returns d+o using full pairwise EFT accumulation (a Shewchuk/
// Priest-style distillation of all four raw components), yielding a 1 ulp
// result: sort by decreasing magnitude, then renormalize with the two-pass
// cascade. The
// transcendental layer uses Add, not AddAccurate.
func (d Double) AddAccurate(o Double) Double {
	if v, ok := addSpecialDouble(d, o); ok {
		return v
	}
	p := []float64{d.c0, d.c1, o.c0, o.c1}
	sortByDecreasingMagnitude(p)
	return renormalizeDoubleN(p)
}

// Sub returns d-o, defined as d + (-o).
func (d Double) Sub(o Double) Double { return d.Add(o.Neg()) }

// addSpecialDouble returns the incoming operand unchanged when it's NaN,
// rather than a freshly minted math.NaN(), so that a NaN's sign bit (and
// Format's "-NaN" rendering of it) survives arithmetic.
func addSpecialDouble(a, b Double) (Double, bool) {
	if a.IsNaN() {
		return Double{c0: a.c0}, true
	}
	if b.IsNaN() {
		return Double{c0: b.c0}, true
	}
	if a.IsInf() && b.IsInf() && a.IsSignPositive() != b.IsSignPositive() {
		return Double{c0: math.NaN()}, true
	}
	if a.IsInf() {
		return Double{c0: a.c0}, true
	}
	if b.IsInf() {
		return Double{c0: b.c0}, true
	}
	return Double{}, false
}

// Mul returns d*o. The relevant partial products two_prod(c_i, c_j) whose
// combined order is <= k-1 are gathered into a scratch tuple and
// renormalized; for Double, k-1 = 1, so only the leading
// product and the two order-1 cross products contribute.
func (d Double) Mul(o Double) Double {
	if v, ok := mulSpecialDouble(d, o); ok {
		return v
	}
	scratch := mulScratch([]float64{d.c0, d.c1}, []float64{o.c0, o.c1}, 1)
	return renormalizeDoubleN(scratch)
}

func mulSpecialDouble(a, b Double) (Double, bool) {
	if a.IsNaN() {
		return Double{c0: a.c0}, true
	}
	if b.IsNaN() {
		return Double{c0: b.c0}, true
	}
	aZero, bZero := a.IsZero(), b.IsZero()
	aInf, bInf := a.IsInf(), b.IsInf()
	negative := a.IsSignNegative() != b.IsSignNegative()
	switch {
	case (aZero && bInf) || (bZero && aInf):
		return Double{c0: math.NaN()}, true
	case aZero || bZero:
		return Double{c0: math.Copysign(0, signOf(negative))}, true
	case aInf || bInf:
		return Double{c0: math.Copysign(math.Inf(1), signOf(negative))}, true
	default:
		return Double{}, false
	}
}

// Div returns d/o, computed by long division on components: an initial
// quotient from the leading components, refined by two iterations of
// r <- a - q*b; q <- q + r.c0/b.c0, and the three quotient terms
// renormalized. Because
// float64 division already implements IEEE zero/infinity/NaN semantics
// exactly, seeding with the leading-component quotient and short-circuiting
// when that seed is non-finite reproduces every special case the wide
// division needs without separate guards. A finite q1 still short-circuits
// when o is infinite: q1 is already the correctly signed ±0 IEEE division
// gives a finite value divided by infinity, and letting it fall through to
// the refinement loop would multiply that 0 back against an infinite o and
// manufacture a spurious NaN.
func (d Double) Div(o Double) Double {
	q1 := d.c0 / o.c0
	if !isFiniteFloat(q1) || o.IsInf() {
		return Double{c0: q1}
	}
	r := d.Sub(NewDouble(q1).Mul(o))
	q2 := r.c0 / o.c0
	r = r.Sub(NewDouble(q2).Mul(o))
	q3 := r.c0 / o.c0
	return renormalizeDouble3(q1, q2, q3)
}

// Sqrt returns sqrt(d) by Heron iteration seeded with x0 = 1/sqrt(d.c0),
// refined by x' = x + x*(1-d*x^2)/2, with the final result d*x_k. Two
// refinement steps suffice for Double.
func (d Double) Sqrt() Double {
	if d.IsNaN() {
		return Double{c0: d.c0}
	}
	if d.IsZero() {
		return d
	}
	if d.IsSignNegative() {
		return Double{c0: math.NaN()}
	}
	if d.IsInf() {
		return d
	}
	half := NewDouble(0.5)
	one := NewDouble(1)
	x := NewDouble(1 / math.Sqrt(d.c0))
	for i := 0; i < 2; i++ {
		x = x.Add(x.Mul(one.Sub(d.Mul(x.Mul(x))).Mul(half)))
	}
	return d.Mul(x)
}

func isFiniteFloat(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// ScaleB returns d scaled by 2^n. Because scaling by a power of two never
// rounds, this is exact and is used by the transcendental layer instead of
// general multiplication wherever the scale factor is a power of two.
func (d Double) ScaleB(n int) Double {
	return Double{c0: math.Ldexp(d.c0, n), c1: math.Ldexp(d.c1, n)}
}

// Double-precision constants. The leading component of each is the
// correctly-rounded float64 constant from the standard library (math.Pi,
// math.E, math.Ln2, math.Ln10); the trailing correction component is the
// well-known double-double literal from the standard Dekker/Bailey
// constant tables. FracPi2/FracPi4/Frac3Pi4/FracPi3 are
// derived from Pi with the library's own arithmetic rather than
// transcribed, both to avoid additional hard-to-check literals and as an
// internal cross-check of Sub/Div.
var (
	Pi       = Double{c0: math.Pi, c1: 1.224646799147353207e-16}
	E        = Double{c0: math.E, c1: 1.445646891729250158e-16}
	Ln2      = Double{c0: math.Ln2, c1: 2.319046813846299558e-17}
	Ln10     = Double{c0: math.Ln10, c1: -2.170756223382249351e-16}
	FracPi2  = Double{c0: Pi.c0 / 2, c1: Pi.c1 / 2}
	FracPi4  = Double{c0: FracPi2.c0 / 2, c1: FracPi2.c1 / 2}
	Frac3Pi4 = Pi.Sub(FracPi4)
	FracPi3  = Pi.Div(NewDouble(3))
)
