// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// parse.go: decimal-string parsing, following strconv.ParseFloat's grammar
// (an optional sign, digits, an optional '.', more digits, an optional
// exponent) and strconv's own error-reporting convention. Digits are
// accumulated into the wide type by repeated multiply-by-ten-and-add, the
// inverse of the digit-extraction walk format.go uses to print them.

// ErrSyntax is the sentinel wrapped by ParseError when the input does not
// match the decimal grammar ParseDouble/ParseQuad accept.
var ErrSyntax = errors.New("invalid syntax")

// ParseError records a failed ParseDouble or ParseQuad call, in the same
// shape as strconv.NumError.
type ParseError struct {
	Func string // "ParseDouble" or "ParseQuad"
	Num  string // the input string
	Err  error  // the underlying sentinel, usually ErrSyntax
}

func (e *ParseError) Error() string {
	return "wide." + e.Func + ": parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseDouble parses s as a Double. The grammar is the same as
// strconv.ParseFloat's decimal form: an optional sign, decimal digits with
// an optional point, and an optional "e"/"E" exponent; "inf", "-inf", and
// "nan" (case-insensitive) are also accepted.
func ParseDouble(s string) (Double, error) {
	negative, digits, exp, special, err := parseDecimal(s)
	if err != nil {
		return Double{}, &ParseError{Func: "ParseDouble", Num: s, Err: err}
	}
	switch special {
	case specialInf:
		if negative {
			return Double{c0: math.Inf(-1)}, nil
		}
		return Double{c0: math.Inf(1)}, nil
	case specialNaN:
		return Double{c0: math.NaN()}, nil
	}
	v := accumulateDouble(digits)
	v = v.Mul(NewDouble(10).Powi(exp))
	if negative {
		v = v.Neg()
	}
	return v, nil
}

func accumulateDouble(digits []byte) Double {
	var sum Double
	ten := NewDouble(10)
	for _, dg := range digits {
		sum = sum.Mul(ten).Add(NewDouble(float64(dg)))
	}
	return sum
}

// ParseQuad parses s as a Quad, with the same grammar as ParseDouble.
func ParseQuad(s string) (Quad, error) {
	negative, digits, exp, special, err := parseDecimal(s)
	if err != nil {
		return Quad{}, &ParseError{Func: "ParseQuad", Num: s, Err: err}
	}
	switch special {
	case specialInf:
		if negative {
			return Quad{c0: math.Inf(-1)}, nil
		}
		return Quad{c0: math.Inf(1)}, nil
	case specialNaN:
		return Quad{c0: math.NaN()}, nil
	}
	v := accumulateQuad(digits)
	v = v.Mul(NewQuad(10).Powi(exp))
	if negative {
		v = v.Neg()
	}
	return v, nil
}

func accumulateQuad(digits []byte) Quad {
	var sum Quad
	ten := NewQuad(10)
	for _, dg := range digits {
		sum = sum.Mul(ten).Add(NewQuad(float64(dg)))
	}
	return sum
}

type specialValue int

const (
	specialNone specialValue = iota
	specialInf
	specialNaN
)

// parseDecimal splits s into a sign, a flat digit sequence, and an
// exponent adjustment such that the value equals
// (-1)^negative * digits(as integer) * 10^exp.
func parseDecimal(s string) (negative bool, digits []byte, exp int, special specialValue, err error) {
	if s == "" {
		return false, nil, 0, specialNone, ErrSyntax
	}
	rest := s
	if rest[0] == '+' || rest[0] == '-' {
		negative = rest[0] == '-'
		rest = rest[1:]
	}

	switch strings.ToLower(rest) {
	case "inf", "infinity":
		return negative, nil, 0, specialInf, nil
	case "nan":
		return negative, nil, 0, specialNaN, nil
	}
	if rest == "" {
		return false, nil, 0, specialNone, ErrSyntax
	}

	mantissa, exponentPart, hasExp := cutAny(rest, "eE")
	intPart, fracPart, hasPoint := cutByte(mantissa, '.')
	if !hasPoint {
		intPart = mantissa
		fracPart = ""
	}
	if intPart == "" && fracPart == "" {
		return false, nil, 0, specialNone, ErrSyntax
	}

	digits = make([]byte, 0, len(intPart)+len(fracPart))
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return false, nil, 0, specialNone, ErrSyntax
		}
		digits = append(digits, byte(r-'0'))
	}

	exp = -len(fracPart)
	if hasExp {
		if exponentPart == "" {
			return false, nil, 0, specialNone, ErrSyntax
		}
		e, convErr := strconv.Atoi(exponentPart)
		if convErr != nil {
			return false, nil, 0, specialNone, ErrSyntax
		}
		exp += e
	}

	return negative, digits, exp, specialNone, nil
}

func cutAny(s, chars string) (before, after string, found bool) {
	if i := strings.IndexAny(s, chars); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

func cutByte(s string, b byte) (before, after string, found bool) {
	if i := strings.IndexByte(s, b); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}
