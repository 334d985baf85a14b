// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/big"

	"github.com/avdva/ieee754/internal/wordutil"
)

const (
	signBit128  = 1 << 63
	expShift128 = 48
	expMask128  = 0x7fff
	highMask128 = 1<<expShift128 - 1
)

// Float128 is an IEEE-754 quadruple precision value.
// The high word holds the sign, 15 exponent bits and the upper 48 fraction bits,
// the low word holds the remaining 64 fraction bits. The zero value is +0.
type Float128 struct {
	hi, lo uint64
}

// Float128FromWords builds a value from its high and low words.
func Float128FromWords(hi, lo uint64) Float128 {
	return Float128{hi: hi, lo: lo}
}

// Float128FromBytes decodes a 16-byte memory image in host byte order.
func Float128FromBytes(b [16]byte) Float128 {
	order := wordutil.NativeOrder()
	w0, w1 := order.Uint64(b[:8]), order.Uint64(b[8:])
	if wordutil.IsBigEndian() {
		return Float128{hi: w0, lo: w1}
	}
	return Float128{hi: w1, lo: w0}
}

// Float128FromFloat64 returns x widened to quadruple precision. The conversion is exact.
func Float128FromFloat64(x float64) Float128 {
	return pack128(Binary128.fromFloat64(x))
}

// Float128FromFloat80 returns x widened to quadruple precision. The conversion is exact.
func Float128FromFloat80(x Float80) Float128 {
	p := unpack80(x)
	switch Extended80.classify(p) {
	case ClassNaN:
		m := Extended80.frac(p)
		m.SetBit(m, int(Extended80.FracBits()), 0)
		m.Lsh(m, Binary128.FracBits()-Extended80.FracBits())
		return pack128(Binary128.assemble(p.sign, Binary128.MaxExp(), m))
	case ClassInfinite:
		return pack128(Binary128.inf(p.sign))
	}
	return pack128(Binary128.fromBig(Extended80.toBig(p)))
}

// Inf128 returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf128(sign int) Float128 {
	return pack128(Binary128.inf(signOf(sign)))
}

// NaN128 returns the default quiet NaN.
func NaN128() Float128 {
	return pack128(Binary128.quiet(Binary128.inf(0)))
}

// MaxFloat128 returns the largest finite quadruple precision value.
func MaxFloat128() Float128 {
	return Float128{hi: (expMask128-1)<<expShift128 | highMask128, lo: math.MaxUint64}
}

// SmallestNonzeroFloat128 returns the smallest positive subnormal quadruple precision value.
func SmallestNonzeroFloat128() Float128 {
	return Float128{lo: 1}
}

func unpack128(x Float128) parts {
	return parts{
		sign: uint32(x.hi >> 63),
		exp:  uint32(x.hi >> expShift128 & expMask128),
		manh: x.hi & highMask128,
		manl: x.lo,
	}
}

func pack128(p parts) Float128 {
	return Float128{
		hi: uint64(p.sign)<<63 | uint64(p.exp&expMask128)<<expShift128 | p.manh&highMask128,
		lo: p.manl,
	}
}

// Words returns the high and low words of x.
func (x Float128) Words() (hi, lo uint64) {
	return x.hi, x.lo
}

// Bytes returns the 16-byte memory image of x in host byte order.
func (x Float128) Bytes() [16]byte {
	var b [16]byte
	order := wordutil.NativeOrder()
	first, second := x.lo, x.hi
	if wordutil.IsBigEndian() {
		first, second = x.hi, x.lo
	}
	order.PutUint64(b[:8], first)
	order.PutUint64(b[8:], second)
	return b
}

// Float64 returns x rounded to the nearest double, ties to even.
func (x Float128) Float64() float64 {
	return Binary128.toFloat64(unpack128(x))
}

// Big returns the exact value of x, or nil if x is a NaN.
func (x Float128) Big() *big.Float {
	return Binary128.bigValue(unpack128(x))
}

// Classify returns the class of x.
func (x Float128) Classify() Class {
	return Binary128.classify(unpack128(x))
}

// IsNaN returns true if x is a NaN.
func (x Float128) IsNaN() bool {
	return x.Classify() == ClassNaN
}

// IsInf reports whether x is an infinity, according to sign, see Float80.IsInf.
func (x Float128) IsInf(sign int) bool {
	if x.Classify() != ClassInfinite {
		return false
	}
	neg := x.hi&signBit128 != 0
	return sign == 0 || sign > 0 && !neg || sign < 0 && neg
}

// Neg returns x with the sign bit flipped.
func (x Float128) Neg() Float128 {
	x.hi ^= signBit128
	return x
}

// Abs returns x with the sign bit cleared.
func (x Float128) Abs() Float128 {
	x.hi &^= signBit128
	return x
}

// Equal returns x == y. NaNs are not equal to anything, +0 equals -0.
func (x Float128) Equal(y Float128) bool {
	px, py := unpack128(x), unpack128(y)
	if Binary128.isNaN(px) || Binary128.isNaN(py) {
		return false
	}
	return Binary128.equal(px, py)
}

// Less returns x < y. Comparisons with NaN are false.
func (x Float128) Less(y Float128) bool {
	px, py := unpack128(x), unpack128(y)
	if Binary128.isNaN(px) || Binary128.isNaN(py) {
		return false
	}
	return Binary128.less(px, py)
}

// Copysign returns a value with the magnitude of x and the sign of y.
func (x Float128) Copysign(y Float128) Float128 {
	x.hi = x.hi&^signBit128 | y.hi&signBit128
	return x
}

// Signbit returns true if the sign bit of x is set.
// It tests the value narrowed to double precision, narrowing keeps the sign.
func (x Float128) Signbit() bool {
	return Signbit(x.Float64())
}

// Nextafter returns the next representable value after x towards y.
func (x Float128) Nextafter(y Float128) Float128 {
	r, _ := x.NextafterStatus(y)
	return r
}

// NextafterStatus is like Nextafter, but also returns the exception flags.
func (x Float128) NextafterStatus(y Float128) (Float128, Status) {
	p, out, st := Binary128.nextafter(unpack128(x), unpack128(y))
	switch out {
	case propagate:
		return pack128(propagateNaN(Binary128, unpack128(x), unpack128(y))), st
	case same:
		return y, st
	case overflow:
		return pack128(Binary128.inf(p.sign)), st
	}
	return pack128(p), st
}

// String returns x in hexadecimal exponent notation.
func (x Float128) String() string {
	return Binary128.text(unpack128(x))
}

// GoString returns a debug representation with the raw words.
func (x Float128) GoString() string {
	return x.String() + fmt.Sprintf(" {%#016x, %#016x}", x.hi, x.lo)
}
