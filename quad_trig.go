// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import "math"

// quad_trig.go: the transcendental layer for Quad, same algorithms as
// double_trig.go with deeper range reduction, more Taylor terms, and an
// extra Newton step, the constant factors needed to carry accuracy out to
// Quad's roughly 62 decimal digits instead of Double's 32.

const (
	quadSinCosHalvings = 11
	quadSinCosTerms    = 10
	quadExpScaleDown   = 11
	quadExpTerms       = 13
	quadLnNewtonIters  = 2
	quadSinhTerms      = 9
)

// SinCos returns sin(q) and cos(q) together. See Double.SinCos for the
// algorithm; Quad uses a deeper halving depth and more Taylor terms to
// reach full precision.
func (q Quad) SinCos() (sin, cos Quad) {
	if q.IsNaN() {
		nan := Quad{c0: q.c0}
		return nan, nan
	}
	if q.IsInf() {
		nan := Quad{c0: math.NaN()}
		return nan, nan
	}
	if q.IsZero() {
		return q, NewQuad(1)
	}

	twoPi := QuadPi.ScaleB(1)
	k := math.Round(q.Float64() / twoPi.Float64())
	r := q.Sub(twoPi.Mul(NewQuad(k)))

	theta := r.ScaleB(-quadSinCosHalvings)
	s, c := sinCosTaylorQuad(theta)

	one := NewQuad(1)
	v := one.Sub(c)
	for i := 0; i < quadSinCosHalvings; i++ {
		newS := s.Mul(one.Sub(v)).ScaleB(1)
		v = s.Mul(s).ScaleB(1)
		s = newS
	}
	return s, one.Sub(v)
}

func sinCosTaylorQuad(theta Quad) (sin, cos Quad) {
	thetaSq := theta.Mul(theta)
	sinSum := theta
	sinTerm := theta
	cosSum := NewQuad(1)
	cosTerm := NewQuad(1)
	for k := 1; k <= quadSinCosTerms; k++ {
		sinTerm = sinTerm.Mul(thetaSq).Neg().Div(NewQuad(float64(2 * k * (2*k + 1))))
		sinSum = sinSum.Add(sinTerm)
		cosTerm = cosTerm.Mul(thetaSq).Neg().Div(NewQuad(float64((2*k - 1) * (2 * k))))
		cosSum = cosSum.Add(cosTerm)
	}
	return sinSum, cosSum
}

// Sin returns sin(q).
func (q Quad) Sin() Quad { s, _ := q.SinCos(); return s }

// Cos returns cos(q).
func (q Quad) Cos() Quad { _, c := q.SinCos(); return c }

// Tan returns tan(q) as sin(q)/cos(q).
func (q Quad) Tan() Quad {
	s, c := q.SinCos()
	return s.Div(c)
}

// Atan returns the single-argument arctangent of q.
func (q Quad) Atan() Quad { return q.Atan2(NewQuad(1)) }

// Atan2 computes the 2-argument arctangent of q (the y coordinate) and o
// (the x coordinate). See Double.Atan2 for the algorithm and the special
// cases, including the +0 result for infinite x.
func (q Quad) Atan2(o Quad) Quad {
	switch {
	case q.IsNaN():
		return Quad{c0: q.c0}
	case o.IsNaN():
		return Quad{c0: o.c0}
	case o.IsZero():
		switch {
		case q.IsZero():
			return Quad{c0: math.NaN()}
		case q.IsSignPositive():
			return QuadFracPi2
		default:
			return QuadFracPi2.Neg()
		}
	case q.IsZero():
		if o.IsSignPositive() {
			return Quad{}
		}
		return QuadPi
	case q.IsInf():
		switch {
		case o.IsInf():
			return Quad{c0: math.NaN()}
		case q.IsSignPositive():
			return QuadFracPi2
		default:
			return QuadFracPi2.Neg()
		}
	case o.IsInf():
		return Quad{}
	case q.Equal(o):
		if q.IsSignPositive() {
			return QuadFracPi4
		}
		return QuadFrac3Pi4.Neg()
	case q.Equal(o.Neg()):
		if q.IsSignPositive() {
			return QuadFrac3Pi4
		}
		return QuadFracPi4.Neg()
	default:
		r := q.Mul(q).Add(o.Mul(o)).Sqrt()
		x := o.Div(r)
		y := q.Div(r)

		z := NewQuad(math.Atan2(q.Float64(), o.Float64()))
		sinZ, cosZ := z.SinCos()

		if math.Abs(x.Float64()) > math.Abs(y.Float64()) {
			z = z.Add(y.Sub(sinZ).Div(cosZ))
		} else {
			z = z.Sub(x.Sub(cosZ).Div(sinZ))
		}
		return z
	}
}

// Exp returns e^q. See Double.Exp for the algorithm.
func (q Quad) Exp() Quad {
	switch {
	case q.IsNaN():
		return Quad{c0: q.c0}
	case q.IsZero():
		return NewQuad(1)
	case q.IsInf():
		if q.IsSignPositive() {
			return q
		}
		return Quad{}
	case q.Float64() > 709:
		return Quad{c0: math.Inf(1)}
	case q.Float64() < -709:
		return Quad{}
	}

	m := math.Round(q.Float64() / math.Ln2)
	r := q.Sub(QuadLn2.Mul(NewQuad(m))).ScaleB(-quadExpScaleDown)

	term := r
	sum := NewQuad(1).Add(r)
	for k := 2; k <= quadExpTerms; k++ {
		term = term.Mul(r).Div(NewQuad(float64(k)))
		sum = sum.Add(term)
	}
	for i := 0; i < quadExpScaleDown; i++ {
		sum = sum.Mul(sum)
	}
	return sum.ScaleB(int(m))
}

// Ln returns the natural logarithm of q. See Double.Ln for the algorithm;
// Quad takes two Newton steps where Double takes one, since each step
// only doubles the correct digit count and Quad starts from the same
// ~16-digit hardware seed but needs to reach ~62 digits.
func (q Quad) Ln() Quad {
	switch {
	case q.IsNaN():
		return Quad{c0: q.c0}
	case q.IsZero():
		return Quad{c0: math.Inf(-1)}
	case q.IsSignNegative():
		return Quad{c0: math.NaN()}
	case q.IsInf():
		return q
	}
	if q.Equal(NewQuad(1)) {
		return Quad{}
	}
	x := NewQuad(math.Log(q.Float64()))
	for i := 0; i < quadLnNewtonIters; i++ {
		x = x.Add(q.Mul(x.Neg().Exp())).Sub(NewQuad(1))
	}
	return x
}

// Sinh returns the hyperbolic sine of q.
func (q Quad) Sinh() Quad {
	if q.IsZero() {
		return q
	}
	if math.Abs(q.Float64()) > 0.05 {
		e := q.Exp()
		return e.Sub(NewQuad(1).Div(e)).ScaleB(-1)
	}
	return sinhTaylorQuad(q)
}

func sinhTaylorQuad(x Quad) Quad {
	xSq := x.Mul(x)
	term := x
	sum := x
	for k := 1; k <= quadSinhTerms; k++ {
		term = term.Mul(xSq).Div(NewQuad(float64(2 * k * (2*k + 1))))
		sum = sum.Add(term)
	}
	return sum
}

// Cosh returns the hyperbolic cosine of q.
func (q Quad) Cosh() Quad {
	e := q.Exp()
	return e.Add(NewQuad(1).Div(e)).ScaleB(-1)
}

// Pow returns q raised to the (wide) power n, computed as exp(n*ln(q)).
func (q Quad) Pow(n Quad) Quad {
	if q.IsZero() {
		switch {
		case n.IsZero():
			return NewQuad(1)
		case n.IsSignPositive():
			return Quad{}
		default:
			return Quad{c0: math.Inf(1)}
		}
	}
	return n.Mul(q.Ln()).Exp()
}

// Powi returns q raised to the integer power n by exponentiation by
// squaring.
func (q Quad) Powi(n int) Quad {
	if n == 0 {
		return NewQuad(1)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := NewQuad(1)
	base := q
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return NewQuad(1).Div(result)
	}
	return result
}
