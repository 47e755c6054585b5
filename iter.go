// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

// iter.go: aggregate reductions over slices of wide values, folding left
// to right with the type's own Add/Mul in place of the ordinary
// float64 '+'/'*'.

// SumDoubles returns the sum of p, folding left to right with Add. The
// sum of an empty slice is the zero value.
func SumDoubles(p []Double) Double {
	var sum Double
	for _, x := range p {
		sum = sum.Add(x)
	}
	return sum
}

// ProductDoubles returns the product of p, folding left to right with
// Mul. The product of an empty slice is one.
func ProductDoubles(p []Double) Double {
	if len(p) == 0 {
		return NewDouble(1)
	}
	prod := p[0]
	for _, x := range p[1:] {
		prod = prod.Mul(x)
	}
	return prod
}

// SumQuads returns the sum of p, folding left to right with Add.
func SumQuads(p []Quad) Quad {
	var sum Quad
	for _, x := range p {
		sum = sum.Add(x)
	}
	return sum
}

// ProductQuads returns the product of p, folding left to right with Mul.
func ProductQuads(p []Quad) Quad {
	if len(p) == 0 {
		return NewQuad(1)
	}
	prod := p[0]
	for _, x := range p[1:] {
		prod = prod.Mul(x)
	}
	return prod
}
