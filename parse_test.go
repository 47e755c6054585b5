// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/wide"
)

func ExampleParseDouble() {
	d, err := wide.ParseDouble("3.14159")
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 3.14159
}

func ExampleParseDouble_errSyntax() {
	_, err := wide.ParseDouble("not-a-number")
	fmt.Println(err)
	// Output: wide.ParseDouble: parsing "not-a-number": invalid syntax
}

func TestParseDoubleValid(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"1", 1},
		{"-1", -1},
		{"+1", 1},
		{"3.14159", 3.14159},
		{"1e10", 1e10},
		{"1E10", 1e10},
		{"1.5e-3", 1.5e-3},
		{"-2.5e+2", -2.5e2},
		{".5", .5},
		{"5.", 5},
	}
	for _, c := range cases {
		got, err := wide.ParseDouble(c.in)
		if err != nil {
			t.Errorf("ParseDouble(%q) error: %v", c.in, err)
			continue
		}
		if math.Abs(got.Float64()-c.want) > 1e-9 {
			t.Errorf("ParseDouble(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseDoubleSpecialValues(t *testing.T) {
	if d, err := wide.ParseDouble("inf"); err != nil || !d.IsInf() || !d.IsSignPositive() {
		t.Errorf("ParseDouble(\"inf\") = %v, %v", d, err)
	}
	if d, err := wide.ParseDouble("-infinity"); err != nil || !d.IsInf() || !d.IsSignNegative() {
		t.Errorf("ParseDouble(\"-infinity\") = %v, %v", d, err)
	}
	if d, err := wide.ParseDouble("NaN"); err != nil || !d.IsNaN() {
		t.Errorf("ParseDouble(\"NaN\") = %v, %v", d, err)
	}
}

func TestParseDoubleInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2.3", "1e", "-", ".", "1.5e"} {
		_, err := wide.ParseDouble(in)
		if err == nil {
			t.Errorf("ParseDouble(%q) should have failed", in)
			continue
		}
		if !errors.Is(err, wide.ErrSyntax) {
			t.Errorf("ParseDouble(%q) error %v does not wrap ErrSyntax", in, err)
		}
		var pe *wide.ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseDouble(%q) error is not a *ParseError", in)
		}
	}
}

func TestParseQuadValid(t *testing.T) {
	got, err := wide.ParseQuad("2.718281828")
	if err != nil {
		t.Fatalf("ParseQuad error: %v", err)
	}
	if math.Abs(got.Float64()-2.718281828) > 1e-9 {
		t.Errorf("ParseQuad(\"2.718281828\") = %v", got)
	}
}

func TestParseQuadInvalid(t *testing.T) {
	_, err := wide.ParseQuad("nonsense")
	if err == nil {
		t.Fatalf("ParseQuad(\"nonsense\") should have failed")
	}
	var pe *wide.ParseError
	if !errors.As(err, &pe) || pe.Func != "ParseQuad" {
		t.Errorf("ParseQuad error = %v, want *ParseError with Func=ParseQuad", err)
	}
}
