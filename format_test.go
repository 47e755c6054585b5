// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/wide"
)

func ExampleDouble_String() {
	fmt.Println(wide.NewDouble(3))
	// Output: 3
}

func ExampleDouble_Format_exponential() {
	fmt.Printf("%e\n", wide.NewDouble(1234.5))
	// Output: 1.2345e3
}

func ExampleDouble_Format_width() {
	fmt.Printf("[%10s]\n", wide.NewDouble(3))
	// Output: [         3]
}

func ExampleDouble_Format_zeroPad() {
	fmt.Printf("%010.2f\n", wide.NewDouble(-3.5))
	// Output: -000003.50
}

func ExampleDouble_Format_leftAlign() {
	fmt.Printf("[%-5s]\n", wide.NewDouble(3))
	// Output: [3    ]
}

func ExampleDouble_GoString() {
	fmt.Printf("%#v\n", wide.NewDouble(3))
	// Output: wide.Double{c0:3, c1:0}
}

func ExampleDouble_Format_nan() {
	fmt.Println(wide.NewDouble(math.NaN()))
	// Output: NaN
}

func ExampleDouble_Format_inf() {
	fmt.Println(wide.NewDouble(math.Inf(-1)))
	// Output: -inf
}

func ExampleQuad_String() {
	fmt.Println(wide.NewQuad(3))
	// Output: 3
}

func ExampleQuad_Format_pi() {
	fmt.Println(wide.QuadPi)
	// Output: 3.1415926535897932384626433832795028841971693993751058209749446
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, x := range []float64{3, 0.1, 1234.5, -42, 1e10, 1e-10} {
		d := wide.NewDouble(x)
		s := d.String()
		back, err := wide.ParseDouble(s)
		if err != nil {
			t.Fatalf("ParseDouble(%q) error: %v", s, err)
		}
		diff := back.Sub(d).Abs().Float64()
		if diff > 1e-12 {
			t.Errorf("round trip for %v: String() = %q, parsed back to %v (diff %v)", x, s, back, diff)
		}
	}
}

func TestFormatPrecisionZero(t *testing.T) {
	got := fmt.Sprintf("%.0f", wide.NewDouble(3.7))
	want := "4"
	if got != want {
		t.Errorf("%%.0f of 3.7 = %q, want %q", got, want)
	}
}

func ExampleDouble_Text() {
	fmt.Println(wide.NewDouble(1234.5).Text('e', 2))
	// Output: 1.23e3
}

func TestTextMatchesFormatAtGivenPrecision(t *testing.T) {
	for _, x := range []float64{3, 0.1, -42.5, 1234.5} {
		d := wide.NewDouble(x)
		want := fmt.Sprintf("%.3f", d)
		got := d.Text('f', 3)
		if got != want {
			t.Errorf("NewDouble(%v).Text('f', 3) = %q, want %q", x, got, want)
		}
	}
}

func TestTextNaturalPrecisionOmitsTrailingZeros(t *testing.T) {
	got := wide.NewDouble(3).Text('f', -1)
	if got != "3" {
		t.Errorf("Text('f', -1) of 3 = %q, want %q", got, "3")
	}
}

func TestFormattedCenterAlign(t *testing.T) {
	f := wide.Formatted{Text: wide.NewDouble(3).String(), Width: 5, Align: wide.AlignCenter}
	if got := f.String(); got != "  3  " {
		t.Errorf("center-aligned %q, want %q", got, "  3  ")
	}
}

func TestFormattedCustomFill(t *testing.T) {
	f := wide.Formatted{Text: "3", Width: 5, Fill: '*'}
	if got := f.String(); got != "****3" {
		t.Errorf("right-aligned fill %q, want %q", got, "****3")
	}
	f.Align = wide.AlignLeft
	if got := f.String(); got != "3****" {
		t.Errorf("left-aligned fill %q, want %q", got, "3****")
	}
}

func TestFormattedNoPaddingWhenWideEnough(t *testing.T) {
	f := wide.Formatted{Text: "12345", Width: 3}
	if got := f.String(); got != "12345" {
		t.Errorf("no padding needed: got %q, want %q", got, "12345")
	}
}

func TestFormatZeroValue(t *testing.T) {
	if got := fmt.Sprintf("%v", wide.Double{}); got != "0" {
		t.Errorf("zero Double formats as %q, want %q", got, "0")
	}
	if got := fmt.Sprintf("%.2f", wide.Double{}); got != "0.00" {
		t.Errorf("zero Double with precision formats as %q, want %q", got, "0.00")
	}
}
