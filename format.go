// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// format.go: fmt.Formatter implementations for Double and Quad. Digits are
// extracted one at a time (normalize to one digit before the point, walk
// digits by repeated truncate/subtract/multiply-by-ten), the extra
// trailing digit is rounded back in, and the result is trimmed or padded
// to the requested precision before the decimal point is placed. Go's
// fmt.State exposes width, a left/right align flag, and a sign-aware
// zero-pad flag, but no custom fill rune or center alignment; Text plus
// the Formatted wrapper cover that gap explicitly for callers who need it.

const (
	doubleMaxDigits = 32
	quadMaxDigits   = 62
)

// Format implements fmt.Formatter. Supported verbs are 'v'/'s'/'f' (fixed
// notation, trimming insignificant trailing digits unless a precision is
// given), and 'e'/'E' (scientific notation). Flags '+', '-', '0', and a
// width are honored; with '#', "%#v" writes GoString's component-level
// dump, and '#' has no effect on the other verbs.
func (d Double) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		io.WriteString(f, d.GoString())
		return
	}
	writeFormatted(f, verb, d.IsSignNegative(), d.IsNaN(), d.IsInf(), d.IsZero(), func() ([]byte, int) {
		return extractDigitsDouble(d.Abs())
	})
}

// Text renders d in the given notation ('f' for fixed, 'e'/'E' for
// scientific) with prec fractional digits, or full natural precision if
// prec < 0. Unlike Format, Text takes no fmt.State, so it has no width or
// alignment of its own; wrap its result in Formatted for center alignment
// or a custom fill rune, neither of which fmt.State can express.
func (d Double) Text(form byte, prec int) string {
	body, _ := formatBody(form, prec, prec >= 0, false, d.IsSignNegative(), d.IsNaN(), d.IsInf(), d.IsZero(), func() ([]byte, int) {
		return extractDigitsDouble(d.Abs())
	})
	return body
}

// String renders d as if formatted with "%v".
func (d Double) String() string { return fmt.Sprintf("%v", d) }

// GoString implements fmt.GoStringer, used by "%#v" to print the raw
// component pair rather than the decimal rendering.
func (d Double) GoString() string {
	return fmt.Sprintf("wide.Double{c0:%#v, c1:%#v}", d.c0, d.c1)
}

// Format implements fmt.Formatter for Quad; see Double.Format.
func (q Quad) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		io.WriteString(f, q.GoString())
		return
	}
	writeFormatted(f, verb, q.IsSignNegative(), q.IsNaN(), q.IsInf(), q.IsZero(), func() ([]byte, int) {
		return extractDigitsQuad(q.Abs())
	})
}

// Text renders q the same way as Double.Text.
func (q Quad) Text(form byte, prec int) string {
	body, _ := formatBody(form, prec, prec >= 0, false, q.IsSignNegative(), q.IsNaN(), q.IsInf(), q.IsZero(), func() ([]byte, int) {
		return extractDigitsQuad(q.Abs())
	})
	return body
}

// String renders q as if formatted with "%v".
func (q Quad) String() string { return fmt.Sprintf("%v", q) }

// GoString implements fmt.GoStringer for Quad; see Double.GoString.
func (q Quad) GoString() string {
	return fmt.Sprintf("wide.Quad{c0:%#v, c1:%#v, c2:%#v, c3:%#v}", q.c0, q.c1, q.c2, q.c3)
}

func extractDigitsDouble(v Double) ([]byte, int) {
	exp := int(math.Floor(math.Log10(v.Float64())))
	v = v.Div(NewDouble(10).Powi(exp))
	digits := make([]byte, doubleMaxDigits+1)
	ten := NewDouble(10)
	for i := range digits {
		digits[i] = truncDigit(v.Float64())
		v = v.Sub(NewDouble(float64(digits[i]))).Mul(ten)
	}
	return digits, exp
}

func extractDigitsQuad(v Quad) ([]byte, int) {
	exp := int(math.Floor(math.Log10(v.Float64())))
	v = v.Div(NewQuad(10).Powi(exp))
	digits := make([]byte, quadMaxDigits+1)
	ten := NewQuad(10)
	for i := range digits {
		digits[i] = truncDigit(v.Float64())
		v = v.Sub(NewQuad(float64(digits[i]))).Mul(ten)
	}
	return digits, exp
}

func truncDigit(x float64) byte {
	d := math.Trunc(x)
	switch {
	case d < 0:
		return 0
	case d > 9:
		return 9
	default:
		return byte(d)
	}
}

func writeFormatted(f fmt.State, verb rune, negative, isNaN, isInf, isZero bool, extract func() ([]byte, int)) {
	prec, hasPrec := f.Precision()
	body, signed := formatBody(byte(verb), prec, hasPrec, negative || f.Flag('+'), negative, isNaN, isInf, isZero, extract)
	writePadded(f, body, signed)
}

// formatBody builds the sign-and-digits text shared by Format and Text:
// everything except the fmt.State-specific width/alignment pass in
// writePadded.
func formatBody(verb byte, prec int, hasPrec, wantSign, negative, isNaN, isInf, isZero bool, extract func() ([]byte, int)) (body string, signed bool) {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
		signed = true
	} else if wantSign {
		b.WriteByte('+')
		signed = true
	}

	switch {
	case isNaN:
		b.WriteString("NaN")
	case isInf:
		b.WriteString("inf")
	case isZero:
		writeZeroBody(&b, rune(verb), prec, hasPrec)
	default:
		digits, exp := extract()
		switch verb {
		case 'e', 'E':
			var mantissa string
			var outExp int
			if hasPrec {
				mantissa, outExp = formatExpWithPrec(digits, exp, prec)
			} else {
				mantissa, outExp = formatExpNatural(digits, exp)
			}
			b.WriteString(mantissa)
			b.WriteByte(verb)
			fmt.Fprintf(&b, "%d", outExp)
		default:
			if hasPrec {
				b.WriteString(formatFixedWithPrec(digits, exp, prec))
			} else {
				b.WriteString(formatFixedNatural(digits, exp))
			}
		}
	}
	return b.String(), signed
}

func writeZeroBody(b *strings.Builder, verb rune, prec int, hasPrec bool) {
	b.WriteByte('0')
	if hasPrec && prec > 0 {
		b.WriteByte('.')
		b.WriteString(strings.Repeat("0", prec))
	}
	if verb == 'e' || verb == 'E' {
		b.WriteByte(byte(verb))
		b.WriteByte('0')
	}
}

// roundTo rounds digits (assumed to represent a value normalized so
// digits[0] sits in the 10^exp place) to keep leading digits, using the
// next digit to decide round-half-up, and returns the possibly
// incremented exponent if rounding carried out of the leading digit.
func roundTo(digits []byte, exp, keep int) ([]byte, int) {
	switch {
	case keep < 0:
		return nil, exp
	case keep == 0:
		if len(digits) > 0 && digits[0] >= 5 {
			return []byte{1}, exp + 1
		}
		return nil, exp
	case keep >= len(digits):
		return append([]byte(nil), digits...), exp
	}
	kept := append([]byte(nil), digits[:keep]...)
	if digits[keep] >= 5 {
		i := keep - 1
		for i >= 0 {
			kept[i]++
			if kept[i] < 10 {
				break
			}
			kept[i] = 0
			i--
		}
		if i < 0 {
			kept = append([]byte{1}, kept[:keep-1]...)
			exp++
		}
	}
	return kept, exp
}

func trimTrailingZeros(digits []byte, minKeep int) []byte {
	n := len(digits)
	for n > minKeep && digits[n-1] == 0 {
		n--
	}
	return digits[:n]
}

func digitByte(digits []byte, i int) byte {
	if i < 0 || i >= len(digits) {
		return '0'
	}
	return '0' + digits[i]
}

// formatFixedWithPrec renders digits (normalized to exponent exp) in
// fixed notation with exactly prec digits after the decimal point.
func formatFixedWithPrec(digits []byte, exp, prec int) string {
	keep := exp + 1 + prec
	kept, newExp := roundTo(digits, exp, keep)
	var b strings.Builder
	intLen := newExp + 1
	if intLen <= 0 {
		b.WriteByte('0')
	} else {
		for i := 0; i < intLen; i++ {
			b.WriteByte(digitByte(kept, i))
		}
	}
	if prec > 0 {
		b.WriteByte('.')
		leadingZeros := 0
		if newExp < 0 {
			leadingZeros = -newExp - 1
			if leadingZeros > prec {
				leadingZeros = prec
			}
		}
		b.WriteString(strings.Repeat("0", leadingZeros))
		start := intLen
		if start < 0 {
			start = 0
		}
		for i := 0; i < prec-leadingZeros; i++ {
			b.WriteByte(digitByte(kept, start+i))
		}
	}
	return b.String()
}

// formatFixedNatural renders digits in fixed notation at full precision,
// trimming insignificant trailing zeros.
func formatFixedNatural(digits []byte, exp int) string {
	kept, newExp := roundTo(digits, exp, len(digits)-1)
	intLen := newExp + 1
	minKeep := intLen
	if minKeep < 1 {
		minKeep = 1
	}
	kept = trimTrailingZeros(kept, minKeep)

	var b strings.Builder
	if intLen <= 0 {
		b.WriteByte('0')
	} else {
		for i := 0; i < intLen; i++ {
			b.WriteByte(digitByte(kept, i))
		}
	}
	fracStart := intLen
	if fracStart < 0 {
		fracStart = 0
	}
	if len(kept) > fracStart {
		b.WriteByte('.')
		if intLen < 0 {
			b.WriteString(strings.Repeat("0", -intLen))
		}
		for i := fracStart; i < len(kept); i++ {
			b.WriteByte('0' + kept[i])
		}
	}
	return b.String()
}

// formatExpWithPrec renders digits in scientific notation (one digit
// before the point) with exactly prec fractional digits, returning the
// mantissa text and the (possibly rounding-adjusted) exponent.
func formatExpWithPrec(digits []byte, exp, prec int) (mantissa string, outExp int) {
	keep := 1 + prec
	kept, newExp := roundTo(digits, exp, keep)
	var b strings.Builder
	b.WriteByte(digitByte(kept, 0))
	if prec > 0 {
		b.WriteByte('.')
		for i := 1; i <= prec; i++ {
			b.WriteByte(digitByte(kept, i))
		}
	}
	return b.String(), newExp
}

func formatExpNatural(digits []byte, exp int) (mantissa string, outExp int) {
	kept, newExp := roundTo(digits, exp, len(digits)-1)
	kept = trimTrailingZeros(kept, 1)
	var b strings.Builder
	b.WriteByte(digitByte(kept, 0))
	if len(kept) > 1 {
		b.WriteByte('.')
		for i := 1; i < len(kept); i++ {
			b.WriteByte('0' + kept[i])
		}
	}
	return b.String(), newExp
}

// Align selects how Formatted pads a value, including the center
// alignment fmt.State has no flag for.
type Align int

const (
	AlignRight Align = iota
	AlignLeft
	AlignCenter
)

// Formatted pads the output of Double.Text or Quad.Text to Width using
// Align and Fill, covering the one piece of formatting fmt.State can't
// do on its own: center alignment and a fill rune other than space.
type Formatted struct {
	Text  string
	Width int
	Align Align
	Fill  rune
}

// String implements fmt.Stringer, applying f.Align and f.Fill around f.Text.
func (f Formatted) String() string {
	fill := f.Fill
	if fill == 0 {
		fill = ' '
	}
	pad := f.Width - utf8.RuneCountInString(f.Text)
	if pad <= 0 {
		return f.Text
	}
	switch f.Align {
	case AlignLeft:
		return f.Text + strings.Repeat(string(fill), pad)
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(string(fill), left) + f.Text + strings.Repeat(string(fill), pad-left)
	default:
		return strings.Repeat(string(fill), pad) + f.Text
	}
}

// writePadded applies width and alignment to s using f's flags: '-' for
// left alignment, '0' for sign-aware zero padding, right alignment with
// spaces otherwise.
func writePadded(f fmt.State, s string, signed bool) {
	width, hasWidth := f.Width()
	if !hasWidth || width <= len(s) {
		io.WriteString(f, s)
		return
	}
	padLen := width - len(s)
	switch {
	case f.Flag('-'):
		io.WriteString(f, s)
		io.WriteString(f, strings.Repeat(" ", padLen))
	case f.Flag('0'):
		if signed {
			io.WriteString(f, s[:1])
			io.WriteString(f, strings.Repeat("0", padLen))
			io.WriteString(f, s[1:])
		} else {
			io.WriteString(f, strings.Repeat("0", padLen))
			io.WriteString(f, s)
		}
	default:
		io.WriteString(f, strings.Repeat(" ", padLen))
		io.WriteString(f, s)
	}
}
