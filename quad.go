// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import "math"

// quad.go: Quad, the quad-double type. A Quad represents the real number
// c0+c1+c2+c3 where the four components satisfy the non-overlap and
// magnitude-ordering invariants. As with Double, the zero value
// of Quad is a valid +0.
type Quad struct {
	c0, c1, c2, c3 float64
}

// NewQuad promotes a float64 to a Quad: (x, 0, 0, 0).
func NewQuad(x float64) Quad {
	return Quad{c0: x}
}

// QuadFromComponents builds a Quad from a raw 4-tuple, renormalizing it
// into canonical form.
func QuadFromComponents(c0, c1, c2, c3 float64) Quad {
	return renormalizeQuadN([]float64{c0, c1, c2, c3})
}

// Float64 returns the leading component of q (see Double.Float64: the sum
// is deliberately not taken).
func (q Quad) Float64() float64 { return q.c0 }

// Components returns the canonical (c0, c1, c2, c3) tuple.
func (q Quad) Components() (float64, float64, float64, float64) {
	return q.c0, q.c1, q.c2, q.c3
}

// ToDouble narrows q to a Double by discarding the least-significant
// component and renormalizing the leading three.
func (q Quad) ToDouble() Double { return renormalizeDouble3(q.c0, q.c1, q.c2) }

// Neg returns -q.
func (q Quad) Neg() Quad { return Quad{c0: -q.c0, c1: -q.c1, c2: -q.c2, c3: -q.c3} }

// Abs returns the absolute value of q.
func (q Quad) Abs() Quad {
	if q.IsSignNegative() {
		return q.Neg()
	}
	return q
}

// IsNaN reports whether q is NaN; all four components are inspected.
func (q Quad) IsNaN() bool {
	return math.IsNaN(q.c0) || math.IsNaN(q.c1) || math.IsNaN(q.c2) || math.IsNaN(q.c3)
}

// IsInf reports whether q is positive or negative infinity.
func (q Quad) IsInf() bool { return math.IsInf(q.c0, 0) }

// IsFinite reports whether q is neither NaN nor infinite.
func (q Quad) IsFinite() bool { return !q.IsNaN() && !q.IsInf() }

// IsZero reports whether q is positive or negative zero.
func (q Quad) IsZero() bool { return q.c0 == 0 }

// IsSignPositive reports whether q's sign bit is unset.
func (q Quad) IsSignPositive() bool { return !math.Signbit(q.c0) }

// IsSignNegative reports whether q's sign bit is set.
func (q Quad) IsSignNegative() bool { return math.Signbit(q.c0) }

// Equal reports whether q and o have identical components.
func (q Quad) Equal(o Quad) bool {
	return q.c0 == o.c0 && q.c1 == o.c1 && q.c2 == o.c2 && q.c3 == o.c3
}

// Cmp compares q and o lexicographically over the component tuple,
// breaking ties component by component. ok is false when
// either operand is NaN.
func (q Quad) Cmp(o Quad) (cmp int, ok bool) {
	if q.IsNaN() || o.IsNaN() {
		return 0, false
	}
	qc := [4]float64{q.c0, q.c1, q.c2, q.c3}
	oc := [4]float64{o.c0, o.c1, o.c2, o.c3}
	for i := range qc {
		if qc[i] != oc[i] {
			if qc[i] < oc[i] {
				return -1, true
			}
			return 1, true
		}
	}
	return 0, true
}

// Less reports whether q < o. Unordered (NaN) comparisons report false.
func (q Quad) Less(o Quad) bool { c, ok := q.Cmp(o); return ok && c < 0 }

// Greater reports whether q > o. Unordered (NaN) comparisons report false.
func (q Quad) Greater(o Quad) bool { c, ok := q.Cmp(o); return ok && c > 0 }

// Min returns the smaller of q and o, with o as the deterministic
// tie-break for an unordered (NaN) comparison.
func (q Quad) Min(o Quad) Quad {
	c, ok := q.Cmp(o)
	if !ok {
		return o
	}
	if c <= 0 {
		return q
	}
	return o
}

// Max returns the larger of q and o, with the same NaN tie-break as Min.
func (q Quad) Max(o Quad) Quad {
	c, ok := q.Cmp(o)
	if !ok {
		return o
	}
	if c >= 0 {
		return q
	}
	return o
}

// Add returns q+o using the IEEE-style ("sloppy") discipline: component-
// wise two_sum across all four aligned positions, each position's error
// carried into the next position down by further two_sums, then
// renormalization.
func (q Quad) Add(o Quad) Quad {
	if v, ok := addSpecialQuad(q, o); ok {
		return v
	}
	s0, t0 := twoSum(q.c0, o.c0)
	s1, t1 := twoSum(q.c1, o.c1)
	s2, t2 := twoSum(q.c2, o.c2)
	s3, t3 := twoSum(q.c3, o.c3)
	s1, t0 = twoSum(s1, t0)
	u, v := twoSum(s2, t0)
	s2, w := twoSum(t1, u)
	t0, t1 = twoSum(v, w)
	u, v = twoSum(s3, t0)
	s3, w = twoSum(t2, u)
	t0 = v + w + t1 + t3
	return renormalizeQuadN([]float64{s0, s1, s2, s3, t0})
}

// AddAccurate returns q+o using full pairwise EFT accumulation over all
// eight raw components, for a 1 ulp result, grounded on the same
// PriestSum distillation as Double.AddAccurate. The transcendental layer
// uses Add, not AddAccurate.
func (q Quad) AddAccurate(o Quad) Quad {
	if v, ok := addSpecialQuad(q, o); ok {
		return v
	}
	p := []float64{q.c0, q.c1, q.c2, q.c3, o.c0, o.c1, o.c2, o.c3}
	sortByDecreasingMagnitude(p)
	return renormalizeQuadN(p)
}

// Sub returns q-o, defined as q + (-o).
func (q Quad) Sub(o Quad) Quad { return q.Add(o.Neg()) }

func addSpecialQuad(a, b Quad) (Quad, bool) {
	if a.IsNaN() {
		return Quad{c0: a.c0}, true
	}
	if b.IsNaN() {
		return Quad{c0: b.c0}, true
	}
	if a.IsInf() && b.IsInf() && a.IsSignPositive() != b.IsSignPositive() {
		return Quad{c0: math.NaN()}, true
	}
	if a.IsInf() {
		return Quad{c0: a.c0}, true
	}
	if b.IsInf() {
		return Quad{c0: b.c0}, true
	}
	return Quad{}, false
}

// Mul returns q*o, gathering the partial products two_prod(c_i, c_j) of
// combined order <= k-1 = 3 into a scratch tuple and renormalizing.
func (q Quad) Mul(o Quad) Quad {
	if v, ok := mulSpecialQuad(q, o); ok {
		return v
	}
	a := []float64{q.c0, q.c1, q.c2, q.c3}
	b := []float64{o.c0, o.c1, o.c2, o.c3}
	scratch := mulScratch(a, b, 3)
	return renormalizeQuadN(scratch)
}

func mulSpecialQuad(a, b Quad) (Quad, bool) {
	if a.IsNaN() {
		return Quad{c0: a.c0}, true
	}
	if b.IsNaN() {
		return Quad{c0: b.c0}, true
	}
	aZero, bZero := a.IsZero(), b.IsZero()
	aInf, bInf := a.IsInf(), b.IsInf()
	negative := a.IsSignNegative() != b.IsSignNegative()
	switch {
	case (aZero && bInf) || (bZero && aInf):
		return Quad{c0: math.NaN()}, true
	case aZero || bZero:
		return Quad{c0: math.Copysign(0, signOf(negative))}, true
	case aInf || bInf:
		return Quad{c0: math.Copysign(math.Inf(1), signOf(negative))}, true
	default:
		return Quad{}, false
	}
}

// Div returns q/o by long division on components: four refinement
// iterations of r <- a - q*b; q <- q + r.c0/b.c0 after the initial
// quotient, then renormalization of the five quotient terms. Quad uses
// five quotient terms where Double uses three, for the extra digits of
// precision. As in Double.Div, a
// finite q1 still short-circuits when o is infinite, since that q1 is
// already the correctly signed ±0 and the refinement loop would otherwise
// multiply it back against an infinite o and manufacture a spurious NaN.
func (q Quad) Div(o Quad) Quad {
	q1 := q.c0 / o.c0
	if !isFiniteFloat(q1) || o.IsInf() {
		return Quad{c0: q1}
	}
	r := q.Sub(NewQuad(q1).Mul(o))
	quotients := make([]float64, 5)
	quotients[0] = q1
	for i := 1; i < 5; i++ {
		qi := r.c0 / o.c0
		quotients[i] = qi
		r = r.Sub(NewQuad(qi).Mul(o))
	}
	return renormalizeQuadN(quotients)
}

// Sqrt returns sqrt(q) by Heron iteration seeded with x0 = 1/sqrt(q.c0),
// refined by x' = x + x*(1-q*x^2)/2, with the final result q*x_k. Three
// refinement steps suffice for Quad.
func (q Quad) Sqrt() Quad {
	if q.IsNaN() {
		return Quad{c0: q.c0}
	}
	if q.IsZero() {
		return q
	}
	if q.IsSignNegative() {
		return Quad{c0: math.NaN()}
	}
	if q.IsInf() {
		return q
	}
	half := NewQuad(0.5)
	one := NewQuad(1)
	x := NewQuad(1 / math.Sqrt(q.c0))
	for i := 0; i < 3; i++ {
		x = x.Add(x.Mul(one.Sub(q.Mul(x.Mul(x))).Mul(half)))
	}
	return q.Mul(x)
}

// ScaleB returns q scaled by 2^n. Exact, since scaling by a power of two
// never rounds; used by the transcendental layer in place of general
// multiplication wherever the scale factor is a power of two.
func (q Quad) ScaleB(n int) Quad {
	return Quad{
		c0: math.Ldexp(q.c0, n),
		c1: math.Ldexp(q.c1, n),
		c2: math.Ldexp(q.c2, n),
		c3: math.Ldexp(q.c3, n),
	}
}

// Quad-precision constants, derived the same way as the Double ones (see
// double.go): the leading component is the stdlib's correctly-rounded
// float64 constant, the trailing components are the standard quad-double
// correction terms. Ln2 and Ln10 must also be literal rather than derived
// via Ln, since Ln's Newton step calls Exp, and Exp's range reduction
// needs Ln2 before Ln2 itself would exist.
var (
	QuadPi       = Quad{c0: math.Pi, c1: 1.224646799147353207e-16, c2: -2.994769809718339666e-33, c3: 1.112454220863365282e-49}
	QuadE        = Quad{c0: math.E, c1: 1.445646891729250158e-16, c2: -2.127717108038176765e-33, c3: 1.515630159841218954e-49}
	QuadLn2      = Quad{c0: math.Ln2, c1: 2.319046813846299558e-17, c2: 5.707708438416212066e-34, c3: -3.582432210601811423e-50}
	QuadLn10     = Quad{c0: math.Ln10, c1: -2.170756223382249351e-16, c2: -9.984262454465776570e-33, c3: -4.023357454450206379e-49}
	QuadFracPi2  = Quad{c0: QuadPi.c0 / 2, c1: QuadPi.c1 / 2, c2: QuadPi.c2 / 2, c3: QuadPi.c3 / 2}
	QuadFracPi4  = Quad{c0: QuadFracPi2.c0 / 2, c1: QuadFracPi2.c1 / 2, c2: QuadFracPi2.c2 / 2, c3: QuadFracPi2.c3 / 2}
	QuadFrac3Pi4 = QuadPi.Sub(QuadFracPi4)
	QuadFracPi3  = QuadPi.Div(NewQuad(3))
)
