// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/wide"
)

func ExampleSumDoubles() {
	p := []wide.Double{wide.NewDouble(1), wide.NewDouble(2), wide.NewDouble(3)}
	fmt.Println(wide.SumDoubles(p))
	// Output: 6
}

func ExampleProductDoubles() {
	p := []wide.Double{wide.NewDouble(2), wide.NewDouble(3), wide.NewDouble(4)}
	fmt.Println(wide.ProductDoubles(p))
	// Output: 24
}

func ExampleSumDoubles_empty() {
	fmt.Println(wide.SumDoubles(nil))
	// Output: 0
}

func ExampleProductDoubles_empty() {
	fmt.Println(wide.ProductDoubles(nil))
	// Output: 1
}

func TestProductDoublesInfinityPropagation(t *testing.T) {
	p := []wide.Double{wide.NewDouble(math.Inf(1)), wide.NewDouble(math.Inf(-1))}
	got := wide.ProductDoubles(p)
	if !got.IsInf() || !got.IsSignNegative() {
		t.Errorf("Product([+Inf,-Inf]) = %v, want -Inf", got)
	}
}

func TestProductQuadsInfinityPropagation(t *testing.T) {
	p := []wide.Quad{wide.NewQuad(math.Inf(1)), wide.NewQuad(math.Inf(-1))}
	got := wide.ProductQuads(p)
	if !got.IsInf() || !got.IsSignNegative() {
		t.Errorf("ProductQuads([+Inf,-Inf]) = %v, want -Inf", got)
	}
}

func TestSumQuads(t *testing.T) {
	p := []wide.Quad{wide.NewQuad(1), wide.NewQuad(2), wide.NewQuad(3)}
	got := wide.SumQuads(p)
	if got.Float64() != 6 {
		t.Errorf("SumQuads = %v, want 6", got)
	}
}

func TestProductQuads(t *testing.T) {
	p := []wide.Quad{wide.NewQuad(2), wide.NewQuad(3), wide.NewQuad(4)}
	got := wide.ProductQuads(p)
	if got.Float64() != 24 {
		t.Errorf("ProductQuads = %v, want 24", got)
	}
}

func TestSumDoublesAccumulatesBeyondFloat64Precision(t *testing.T) {
	p := make([]wide.Double, 0, 10001)
	p = append(p, wide.NewDouble(1e16))
	for i := 0; i < 10000; i++ {
		p = append(p, wide.NewDouble(1))
	}
	got := wide.SumDoubles(p)
	want := wide.NewDouble(1e16).Add(wide.NewDouble(10000))
	diff := got.Sub(want).Abs().Float64()
	if diff != 0 {
		t.Errorf("SumDoubles diverged from incremental Add: diff %v", diff)
	}
}
