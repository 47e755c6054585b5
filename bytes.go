// Copyright 2024 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package wide

import (
	"encoding/binary"
	"math"
)

// bytes.go: raw bit-level conversions. Wide values are fixed-size arrays
// of float64 components rather than a stream, so byte order is chosen
// with a small enum instead of threading an encoding/binary.ByteOrder
// through every call; encoding/binary itself does the actual swap over
// each component's bit pattern.

// ByteOrder selects how Bytes and FromBytes lay out a wide value's
// components.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
	NativeEndian
)

func (o ByteOrder) impl() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case NativeEndian:
		return binary.NativeEndian
	default:
		return binary.BigEndian
	}
}

// Bits returns d's two components as their raw IEEE 754 bit patterns.
func (d Double) Bits() [2]uint64 {
	return [2]uint64{math.Float64bits(d.c0), math.Float64bits(d.c1)}
}

// DoubleFromBits builds a Double directly from raw IEEE 754 bit patterns,
// without renormalizing; callers are expected to pass bits already in
// canonical form (e.g. round-tripped from Bits).
func DoubleFromBits(b [2]uint64) Double {
	return Double{c0: math.Float64frombits(b[0]), c1: math.Float64frombits(b[1])}
}

// Bytes encodes d's components as 16 bytes in the given byte order.
func (d Double) Bytes(order ByteOrder) [16]byte {
	bo := order.impl()
	var out [16]byte
	bo.PutUint64(out[0:8], math.Float64bits(d.c0))
	bo.PutUint64(out[8:16], math.Float64bits(d.c1))
	return out
}

// DoubleFromBytes decodes a Double from 16 bytes in the given byte order.
func DoubleFromBytes(b [16]byte, order ByteOrder) Double {
	bo := order.impl()
	return Double{
		c0: math.Float64frombits(bo.Uint64(b[0:8])),
		c1: math.Float64frombits(bo.Uint64(b[8:16])),
	}
}

// Bits returns q's four components as their raw IEEE 754 bit patterns.
func (q Quad) Bits() [4]uint64 {
	return [4]uint64{
		math.Float64bits(q.c0), math.Float64bits(q.c1),
		math.Float64bits(q.c2), math.Float64bits(q.c3),
	}
}

// QuadFromBits builds a Quad directly from raw IEEE 754 bit patterns,
// without renormalizing.
func QuadFromBits(b [4]uint64) Quad {
	return Quad{
		c0: math.Float64frombits(b[0]), c1: math.Float64frombits(b[1]),
		c2: math.Float64frombits(b[2]), c3: math.Float64frombits(b[3]),
	}
}

// Bytes encodes q's components as 32 bytes in the given byte order.
func (q Quad) Bytes(order ByteOrder) [32]byte {
	bo := order.impl()
	var out [32]byte
	bo.PutUint64(out[0:8], math.Float64bits(q.c0))
	bo.PutUint64(out[8:16], math.Float64bits(q.c1))
	bo.PutUint64(out[16:24], math.Float64bits(q.c2))
	bo.PutUint64(out[24:32], math.Float64bits(q.c3))
	return out
}

// QuadFromBytes decodes a Quad from 32 bytes in the given byte order.
func QuadFromBytes(b [32]byte, order ByteOrder) Quad {
	bo := order.impl()
	return Quad{
		c0: math.Float64frombits(bo.Uint64(b[0:8])),
		c1: math.Float64frombits(bo.Uint64(b[8:16])),
		c2: math.Float64frombits(bo.Uint64(b[16:24])),
		c3: math.Float64frombits(bo.Uint64(b[24:32])),
	}
}
