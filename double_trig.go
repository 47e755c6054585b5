// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import "math"

// double_trig.go: the transcendental layer for Double. Every function here
// follows the same shape: seed from the hardware (float64) approximation,
// then refine with one or two steps of wide-precision Newton iteration or,
// for Sin/Cos/Exp, a fixed-depth Taylor series combined with an exact
// range reduction by a power of two.

const (
	doubleSinCosHalvings = 9
	doubleSinCosTerms    = 7
	doubleExpScaleDown   = 9
	doubleExpTerms       = 9
	doubleLnNewtonIters  = 1
	doubleSinhTerms      = 6
)

// SinCos returns sin(d) and cos(d) together, sharing the range reduction
// and Taylor evaluation between them. d is reduced modulo 2*Pi using a
// hardware-precision quotient, then halved by 2^9 so the Taylor series
// converges in a handful of terms; sin and cos of the reduced angle are
// then reconstructed by repeated angle doubling.
func (d Double) SinCos() (sin, cos Double) {
	if d.IsNaN() {
		nan := Double{c0: d.c0}
		return nan, nan
	}
	if d.IsInf() {
		nan := Double{c0: math.NaN()}
		return nan, nan
	}
	if d.IsZero() {
		return d, NewDouble(1)
	}

	twoPi := Pi.ScaleB(1)
	k := math.Round(d.Float64() / twoPi.Float64())
	r := d.Sub(twoPi.Mul(NewDouble(k)))

	theta := r.ScaleB(-doubleSinCosHalvings)
	s, c := sinCosTaylorDouble(theta)

	// Doubling carries v = 1-cos rather than cos: 2c^2-1 would multiply
	// cos's absolute error by four at every step.
	one := NewDouble(1)
	v := one.Sub(c)
	for i := 0; i < doubleSinCosHalvings; i++ {
		newS := s.Mul(one.Sub(v)).ScaleB(1)
		v = s.Mul(s).ScaleB(1)
		s = newS
	}
	return s, one.Sub(v)
}

// sinCosTaylorDouble evaluates sin(theta) and cos(theta) by their Taylor
// series, assuming theta is small enough (a few thousandths of a radian)
// for a fixed number of terms to converge to full Double precision.
func sinCosTaylorDouble(theta Double) (sin, cos Double) {
	thetaSq := theta.Mul(theta)
	sinSum := theta
	sinTerm := theta
	cosSum := NewDouble(1)
	cosTerm := NewDouble(1)
	for k := 1; k <= doubleSinCosTerms; k++ {
		sinTerm = sinTerm.Mul(thetaSq).Neg().Div(NewDouble(float64(2 * k * (2*k + 1))))
		sinSum = sinSum.Add(sinTerm)
		cosTerm = cosTerm.Mul(thetaSq).Neg().Div(NewDouble(float64((2*k - 1) * (2 * k))))
		cosSum = cosSum.Add(cosTerm)
	}
	return sinSum, cosSum
}

// Sin returns sin(d).
func (d Double) Sin() Double { s, _ := d.SinCos(); return s }

// Cos returns cos(d).
func (d Double) Cos() Double { _, c := d.SinCos(); return c }

// Tan returns tan(d) as sin(d)/cos(d).
func (d Double) Tan() Double {
	s, c := d.SinCos()
	return s.Div(c)
}

// Atan returns the single-argument arctangent of d, equivalent to
// d.Atan2(NewDouble(1)) but spelled out for callers that don't need the
// two-argument form.
func (d Double) Atan() Double { return d.Atan2(NewDouble(1)) }

// Atan2 computes the 2-argument arctangent of d (the y coordinate) and o
// (the x coordinate), returning a value in [-Pi, Pi]. Special cases return
// exact constants: a NaN operand gives NaN (keeping its sign bit); x = 0
// gives NaN for y = 0 and ±Pi/2 otherwise; y = 0 gives +0 for positive x
// and Pi for negative x; an infinite y gives NaN for infinite x and ±Pi/2
// otherwise; an infinite x with finite y gives +0 whatever the signs, so
// x = -Inf does not give IEEE's ±Pi; y = x and y = -x give the matching
// multiple of Pi/4.
//
// For the general case the strategy is Newton's iteration on whichever of
//
//	sin z = y/r
//	cos z = x/r
//
// has the larger-magnitude denominator, where r = sqrt(x^2+y^2) and z is
// seeded from the hardware atan2.
func (d Double) Atan2(o Double) Double {
	switch {
	case d.IsNaN():
		return Double{c0: d.c0}
	case o.IsNaN():
		return Double{c0: o.c0}
	case o.IsZero():
		switch {
		case d.IsZero():
			return Double{c0: math.NaN()}
		case d.IsSignPositive():
			return FracPi2
		default:
			return FracPi2.Neg()
		}
	case d.IsZero():
		if o.IsSignPositive() {
			return Double{}
		}
		return Pi
	case d.IsInf():
		switch {
		case o.IsInf():
			return Double{c0: math.NaN()}
		case d.IsSignPositive():
			return FracPi2
		default:
			return FracPi2.Neg()
		}
	case o.IsInf():
		return Double{}
	case d.Equal(o):
		if d.IsSignPositive() {
			return FracPi4
		}
		return Frac3Pi4.Neg()
	case d.Equal(o.Neg()):
		if d.IsSignPositive() {
			return Frac3Pi4
		}
		return FracPi4.Neg()
	default:
		r := d.Mul(d).Add(o.Mul(o)).Sqrt()
		x := o.Div(r)
		y := d.Div(r)

		z := NewDouble(math.Atan2(d.Float64(), o.Float64()))
		sinZ, cosZ := z.SinCos()

		if math.Abs(x.Float64()) > math.Abs(y.Float64()) {
			z = z.Add(y.Sub(sinZ).Div(cosZ))
		} else {
			z = z.Sub(x.Sub(cosZ).Div(sinZ))
		}
		return z
	}
}

// Exp returns e^d. d is range-reduced to m*Ln2 + r with |r| small, r is
// scaled down by 2^9 and evaluated with a Taylor series, and the result is
// reconstructed by squaring 9 times and rescaling by the exact 2^m.
func (d Double) Exp() Double {
	switch {
	case d.IsNaN():
		return Double{c0: d.c0}
	case d.IsZero():
		return NewDouble(1)
	case d.IsInf():
		if d.IsSignPositive() {
			return d
		}
		return Double{}
	case d.Float64() > 709:
		return Double{c0: math.Inf(1)}
	case d.Float64() < -709:
		return Double{}
	}

	m := math.Round(d.Float64() / math.Ln2)
	r := d.Sub(Ln2.Mul(NewDouble(m))).ScaleB(-doubleExpScaleDown)

	term := r
	sum := NewDouble(1).Add(r)
	for k := 2; k <= doubleExpTerms; k++ {
		term = term.Mul(r).Div(NewDouble(float64(k)))
		sum = sum.Add(term)
	}
	for i := 0; i < doubleExpScaleDown; i++ {
		sum = sum.Mul(sum)
	}
	return sum.ScaleB(int(m))
}

// Ln returns the natural logarithm of d, computed by Newton's iteration
// x' = x + d*exp(-x) - 1 seeded from the hardware log, using Exp as the
// refinement's only moving part. Newton's iteration for log doubles the
// number of correct digits each step, so one iteration suffices to carry
// the ~16 correct digits of the seed to Double's ~32.
func (d Double) Ln() Double {
	switch {
	case d.IsNaN():
		return Double{c0: d.c0}
	case d.IsZero():
		return Double{c0: math.Inf(-1)}
	case d.IsSignNegative():
		return Double{c0: math.NaN()}
	case d.IsInf():
		return d
	}
	if d.Equal(NewDouble(1)) {
		return Double{}
	}
	x := NewDouble(math.Log(d.Float64()))
	for i := 0; i < doubleLnNewtonIters; i++ {
		x = x.Add(d.Mul(x.Neg().Exp())).Sub(NewDouble(1))
	}
	return x
}

// Sinh returns the hyperbolic sine of d.
func (d Double) Sinh() Double {
	if d.IsZero() {
		return d
	}
	if math.Abs(d.Float64()) > 0.05 {
		e := d.Exp()
		return e.Sub(NewDouble(1).Div(e)).ScaleB(-1)
	}
	// exp(x)-exp(-x) cancels too much of its own precision for small x;
	// the Taylor series has no such cancellation and converges quickly
	// here since |x| <= 0.05.
	return sinhTaylorDouble(d)
}

func sinhTaylorDouble(x Double) Double {
	xSq := x.Mul(x)
	term := x
	sum := x
	for k := 1; k <= doubleSinhTerms; k++ {
		term = term.Mul(xSq).Div(NewDouble(float64(2 * k * (2*k + 1))))
		sum = sum.Add(term)
	}
	return sum
}

// Cosh returns the hyperbolic cosine of d.
func (d Double) Cosh() Double {
	e := d.Exp()
	return e.Add(NewDouble(1).Div(e)).ScaleB(-1)
}

// Pow returns d raised to the (wide) power n, computed as exp(n*ln(d)).
func (d Double) Pow(n Double) Double {
	if d.IsZero() {
		switch {
		case n.IsZero():
			return NewDouble(1)
		case n.IsSignPositive():
			return Double{}
		default:
			return Double{c0: math.Inf(1)}
		}
	}
	return n.Mul(d.Ln()).Exp()
}

// Powi returns d raised to the integer power n by exponentiation by
// squaring, exact modulo the rounding of the underlying Mul calls.
func (d Double) Powi(n int) Double {
	if n == 0 {
		return NewDouble(1)
	}
	neg := n < 0
	if neg {
		n = -n
	}
	result := NewDouble(1)
	base := d
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	if neg {
		return NewDouble(1).Div(result)
	}
	return result
}
