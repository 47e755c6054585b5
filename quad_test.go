// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide_test

import (
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/soniakeys/wide"
)

func ExampleQuad_Add() {
	a := wide.NewQuad(1)
	b := wide.NewQuad(2)
	fmt.Println(a.Add(b))
	// Output: 3
}

func ExampleQuad_Div() {
	one := wide.NewQuad(1)
	seven := wide.NewQuad(7)
	fmt.Printf("%.20f\n", one.Div(seven))
	// Output: 0.14285714285714285714
}

func quadToBig(q wide.Quad) *big.Float {
	c0, c1, c2, c3 := q.Components()
	x := new(big.Float).SetPrec(300).SetFloat64(c0)
	x.Add(x, new(big.Float).SetPrec(300).SetFloat64(c1))
	x.Add(x, new(big.Float).SetPrec(300).SetFloat64(c2))
	x.Add(x, new(big.Float).SetPrec(300).SetFloat64(c3))
	return x
}

func TestQuadAddMatchesFloat64ForPlainValues(t *testing.T) {
	cases := [][2]float64{{1, 2}, {0.1, 0.2}, {1e300, 1e-300}, {-5, 3}}
	for _, c := range cases {
		got := wide.NewQuad(c[0]).Add(wide.NewQuad(c[1])).Float64()
		want := c[0] + c[1]
		if got != want {
			t.Errorf("NewQuad(%v).Add(NewQuad(%v)).Float64() = %v, want %v", c[0], c[1], got, want)
		}
	}
}

func TestQuadAddCommutative(t *testing.T) {
	a := wide.QuadFromComponents(1.0/3, 1e-20, 1e-40, 1e-60)
	b := wide.QuadFromComponents(2.0/7, -1e-19, 2e-39, -3e-59)
	if diff := cmp.Diff(a.Add(b), b.Add(a)); diff != "" {
		t.Errorf("Add not commutative (-got +want):\n%s", diff)
	}
}

func TestQuadSubIsAddInverse(t *testing.T) {
	for _, x := range []float64{1, 0.1, 1e100, -42.5} {
		q := wide.NewQuad(x)
		if !q.Sub(q).IsZero() {
			t.Errorf("NewQuad(%v).Sub(itself) is not zero: %v", x, q.Sub(q))
		}
	}
}

func TestQuadMulIdentity(t *testing.T) {
	one := wide.NewQuad(1)
	for _, x := range []float64{1, 0.1, 1e100, -42.5, 0} {
		q := wide.NewQuad(x)
		if diff := cmp.Diff(q.Mul(one), q); diff != "" {
			t.Errorf("Mul by one not identity for %v (-got +want):\n%s", x, diff)
		}
	}
}

func TestQuadDivByItself(t *testing.T) {
	for _, x := range []float64{1, 0.1, 1e100, -42.5, math.Pi} {
		q := wide.NewQuad(x)
		got := q.Div(q)
		diff := got.Sub(wide.NewQuad(1)).Abs().Float64()
		if diff > 1e-60 {
			t.Errorf("NewQuad(%v).Div(itself) = %v, want ~1", x, got)
		}
	}
}

func TestQuadAddAccurateReconstructsExactSum(t *testing.T) {
	a := wide.QuadFromComponents(1, 1e-16, 1e-33, 1e-50)
	b := wide.QuadFromComponents(1e-16, 1e-33, 1e-50, 1e-67)
	got := quadToBig(a.AddAccurate(b))
	want := new(big.Float).SetPrec(300).Add(quadToBig(a), quadToBig(b))
	relErr := new(big.Float).Sub(got, want)
	relErr.Quo(relErr, want)
	relErr.Abs(relErr)
	if f, _ := relErr.Float64(); f > 1e-58 {
		t.Errorf("AddAccurate relative error %v too large; got %v want %v", f, got, want)
	}
}

func TestQuadSqrtAccuracy(t *testing.T) {
	for _, x := range []float64{2, 3, 1e100, 1e-100, 0.5} {
		q := wide.NewQuad(x)
		root := q.Sqrt()
		back := root.Mul(root)
		diff := back.Sub(q).Abs().Div(q).Float64()
		if diff > 1e-60 {
			t.Errorf("Sqrt(%v)^2 relative error %v too large", x, diff)
		}
	}
}

func TestQuadSqrtSpecialCases(t *testing.T) {
	if !wide.NewQuad(-1).Sqrt().IsNaN() {
		t.Errorf("Sqrt(-1) should be NaN")
	}
	if !wide.NewQuad(0).Sqrt().IsZero() {
		t.Errorf("Sqrt(0) should be 0")
	}
	if !wide.NewQuad(math.Inf(1)).Sqrt().IsInf() {
		t.Errorf("Sqrt(+Inf) should be +Inf")
	}
}

func TestQuadNaNAndInf(t *testing.T) {
	nan := wide.NewQuad(math.NaN())
	one := wide.NewQuad(1)
	if !nan.Add(one).IsNaN() {
		t.Errorf("NaN + 1 is not NaN")
	}
	posInf := wide.NewQuad(math.Inf(1))
	negInf := wide.NewQuad(math.Inf(-1))
	if !posInf.Add(negInf).IsNaN() {
		t.Errorf("+Inf + -Inf should be NaN")
	}
	if !wide.NewQuad(0).Mul(posInf).IsNaN() {
		t.Errorf("0 * +Inf should be NaN")
	}
}

func TestQuadDivByInfinity(t *testing.T) {
	posInf := wide.NewQuad(math.Inf(1))
	negInf := wide.NewQuad(math.Inf(-1))
	five := wide.NewQuad(5)
	negFive := wide.NewQuad(-5)

	for _, c := range []struct {
		name string
		got  wide.Quad
		want bool
	}{
		{"5/+Inf signbit", five.Div(posInf), false},
		{"5/-Inf signbit", five.Div(negInf), true},
		{"-5/+Inf signbit", negFive.Div(posInf), true},
		{"-5/-Inf signbit", negFive.Div(negInf), false},
	} {
		if !c.got.IsZero() {
			t.Errorf("%s: Div(Inf) = %v, want zero", c.name, c.got)
		}
		if c.got.IsSignNegative() != c.want {
			t.Errorf("%s: Div(Inf) sign negative = %v, want %v", c.name, c.got.IsSignNegative(), c.want)
		}
	}
}

func TestQuadNaNSignPropagation(t *testing.T) {
	negNaN := wide.NewQuad(math.Copysign(math.NaN(), -1))
	one := wide.NewQuad(1)
	if got := negNaN.Add(one); !got.IsSignNegative() {
		t.Errorf("-NaN + 1 lost its sign bit: %#v", got)
	}
	if got := negNaN.Mul(one); !got.IsSignNegative() {
		t.Errorf("-NaN * 1 lost its sign bit: %#v", got)
	}
	if got := fmt.Sprintf("%v", negNaN); got != "-NaN" {
		t.Errorf("-NaN formats as %q, want %q", got, "-NaN")
	}
}

func TestQuadSumOfPiFractions(t *testing.T) {
	sum := wide.QuadFracPi2.AddAccurate(wide.QuadFracPi3).AddAccurate(wide.QuadFracPi4)
	want, _, err := big.ParseFloat("3.4033920413889426750011969985527947912136001826563646393895233083321", 10, 300, big.ToNearestEven)
	if err != nil {
		t.Fatalf("ParseFloat: %v", err)
	}
	got := quadToBig(sum)
	relErr := new(big.Float).Sub(got, want)
	relErr.Quo(relErr, want)
	relErr.Abs(relErr)
	if f, _ := relErr.Float64(); f > 1e-60 {
		t.Errorf("sum of pi fractions relative error %v too large; got %v want %v", f, got, want)
	}
}

func TestQuadConstants(t *testing.T) {
	sum := wide.QuadFracPi2.Add(wide.QuadFracPi2)
	if diff := cmp.Diff(sum, wide.QuadPi); diff != "" {
		t.Errorf("QuadFracPi2*2 != QuadPi (-got +want):\n%s", diff)
	}
}

func TestQuadToDouble(t *testing.T) {
	q := wide.QuadFromComponents(math.Pi, 1.2246467991473532e-16, -2.994769809718339666e-33, 1.112454220863365282e-49)
	d := q.ToDouble()
	diff := d.Sub(wide.Pi).Abs().Float64()
	if diff > 1e-30 {
		t.Errorf("Quad(Pi).ToDouble() diverges from Double Pi by %v", diff)
	}
}
