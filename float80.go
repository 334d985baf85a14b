// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/avdva/ieee754/internal/wordutil"
)

const (
	signBit80 = 1 << 15
	expMask80 = signBit80 - 1
)

// Float80 is an x87 80-bit extended precision value.
//   79 78            63 62                                                          0
//   s  eeeeeeeeeeeeeee  1 mmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmmm
// The leading significand bit is stored explicitly and must be set for
// normal values. The zero value is +0.
type Float80 struct {
	se   uint16
	mant uint64
}

// Float80FromWords builds a value from the sign-exponent word and two significand words.
func Float80FromWords(se uint16, manh, manl uint32) Float80 {
	return Float80{se: se, mant: wordutil.Join64(manh, manl)}
}

// Float80FromBits builds a value from the sign-exponent word and the 64-bit significand.
func Float80FromBits(se uint16, mant uint64) Float80 {
	return Float80{se: se, mant: mant}
}

// Float80FromBytes decodes a 10-byte x87 memory image.
func Float80FromBytes(b [10]byte) Float80 {
	return Float80{
		mant: binary.LittleEndian.Uint64(b[:8]),
		se:   binary.LittleEndian.Uint16(b[8:]),
	}
}

// Float80FromFloat64 returns x widened to extended precision. The conversion is exact.
func Float80FromFloat64(x float64) Float80 {
	return pack80(Extended80.fromFloat64(x))
}

// Inf80 returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf80(sign int) Float80 {
	return pack80(Extended80.inf(signOf(sign)))
}

// NaN80 returns the default quiet NaN.
func NaN80() Float80 {
	return pack80(Extended80.quiet(Extended80.inf(0)))
}

// MaxFloat80 returns the largest finite extended value.
func MaxFloat80() Float80 {
	return Float80{se: expMask80 - 1, mant: math.MaxUint64}
}

// SmallestNonzeroFloat80 returns the smallest positive subnormal extended value.
func SmallestNonzeroFloat80() Float80 {
	return Float80{mant: 1}
}

func signOf(sign int) uint32 {
	if sign < 0 {
		return 1
	}
	return 0
}

func unpack80(x Float80) parts {
	return parts{
		sign: uint32(x.se >> 15),
		exp:  uint32(x.se & expMask80),
		manh: x.mant >> 32,
		manl: x.mant & math.MaxUint32,
	}
}

func pack80(p parts) Float80 {
	return Float80{
		se:   uint16(p.sign<<15 | p.exp&expMask80),
		mant: (p.manh&math.MaxUint32)<<32 | p.manl&math.MaxUint32,
	}
}

// Words returns the sign-exponent word and the high and low significand words.
func (x Float80) Words() (se uint16, manh, manl uint32) {
	return x.se, wordutil.HighWord64(x.mant), wordutil.LowWord64(x.mant)
}

// Bits returns the sign-exponent word and the 64-bit significand.
func (x Float80) Bits() (se uint16, mant uint64) {
	return x.se, x.mant
}

// Bytes returns the 10-byte x87 memory image of x.
func (x Float80) Bytes() [10]byte {
	var b [10]byte
	binary.LittleEndian.PutUint64(b[:8], x.mant)
	binary.LittleEndian.PutUint16(b[8:], x.se)
	return b
}

// Float64 returns x rounded to the nearest double, ties to even.
func (x Float80) Float64() float64 {
	return Extended80.toFloat64(unpack80(x))
}

// Big returns the exact value of x, or nil if x is a NaN.
func (x Float80) Big() *big.Float {
	return Extended80.bigValue(unpack80(x))
}

// Classify returns the class of x.
func (x Float80) Classify() Class {
	return Extended80.classify(unpack80(x))
}

// IsNaN returns true if x is a NaN.
func (x Float80) IsNaN() bool {
	return x.Classify() == ClassNaN
}

// IsInf reports whether x is an infinity, according to sign.
// If sign > 0, IsInf reports whether x is positive infinity.
// If sign < 0, IsInf reports whether x is negative infinity.
// If sign == 0, IsInf reports whether x is either infinity.
func (x Float80) IsInf(sign int) bool {
	if x.Classify() != ClassInfinite {
		return false
	}
	neg := x.se&signBit80 != 0
	return sign == 0 || sign > 0 && !neg || sign < 0 && neg
}

// Neg returns x with the sign bit flipped.
func (x Float80) Neg() Float80 {
	x.se ^= signBit80
	return x
}

// Abs returns x with the sign bit cleared.
func (x Float80) Abs() Float80 {
	x.se &^= signBit80
	return x
}

// Equal returns x == y. NaNs are not equal to anything, +0 equals -0.
func (x Float80) Equal(y Float80) bool {
	px, py := Extended80.canonical(unpack80(x)), Extended80.canonical(unpack80(y))
	if Extended80.isNaN(px) || Extended80.isNaN(py) {
		return false
	}
	return Extended80.equal(px, py)
}

// Less returns x < y. Comparisons with NaN are false.
func (x Float80) Less(y Float80) bool {
	px, py := Extended80.canonical(unpack80(x)), Extended80.canonical(unpack80(y))
	if Extended80.isNaN(px) || Extended80.isNaN(py) {
		return false
	}
	return Extended80.less(px, py)
}

// Copysign returns a value with the magnitude of x and the sign of y.
func (x Float80) Copysign(y Float80) Float80 {
	x.se = x.se&expMask80 | y.se&signBit80
	return x
}

// Signbit returns true if the sign bit of x is set.
// It tests the value narrowed to double precision, narrowing keeps the sign.
func (x Float80) Signbit() bool {
	return Signbit(x.Float64())
}

// Nextafter returns the next representable value after x towards y.
func (x Float80) Nextafter(y Float80) Float80 {
	r, _ := x.NextafterStatus(y)
	return r
}

// NextafterStatus is like Nextafter, but also returns the exception flags.
func (x Float80) NextafterStatus(y Float80) (Float80, Status) {
	p, out, st := Extended80.nextafter(unpack80(x), unpack80(y))
	switch out {
	case propagate:
		return pack80(propagateNaN(Extended80, unpack80(x), unpack80(y))), st
	case same:
		return y, st
	case overflow:
		return pack80(Extended80.inf(p.sign)), st
	}
	return pack80(p), st
}

// String returns x in hexadecimal exponent notation, like "0x1.8p+01".
func (x Float80) String() string {
	return Extended80.text(unpack80(x))
}

// GoString returns a debug representation with the raw fields.
func (x Float80) GoString() string {
	return x.String() + fmt.Sprintf(" {%#04x, %#016x}", x.se, x.mant)
}
