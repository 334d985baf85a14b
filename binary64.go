// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"github.com/avdva/ieee754/internal/wordutil"
)

const (
	expShift64 = 20
	expMask64  = 0x7ff
	highMask64 = 1<<expShift64 - 1
)

func unpack64(x float64) parts {
	hi, lo := wordutil.Float64Words(x)
	return parts{
		sign: hi >> 31,
		exp:  hi >> expShift64 & expMask64,
		manh: uint64(hi & highMask64),
		manl: uint64(lo),
	}
}

func pack64(p parts) float64 {
	hi := p.sign<<31 | (p.exp&expMask64)<<expShift64 | uint32(p.manh)&highMask64
	return wordutil.Float64FromWords(hi, uint32(p.manl))
}

// Copysign returns a value with the magnitude of x and the sign of y.
// NaN payloads are preserved.
func Copysign(x, y float64) float64 {
	hx, hy := wordutil.Float64HighWord(x), wordutil.Float64HighWord(y)
	return wordutil.SetFloat64HighWord(x, hx&wordutil.AbsMask32|hy&wordutil.SignMask32)
}

// Signbit returns true if the sign bit of x is set, including -0 and negative NaNs.
func Signbit(x float64) bool {
	return wordutil.Float64HighWord(x)&wordutil.SignMask32 != 0
}

// Classify returns the class of x.
func Classify(x float64) Class {
	return Binary64.classify(unpack64(x))
}

// Nextafter returns the next representable value after x towards y.
// If x == y, y is returned.
func Nextafter(x, y float64) float64 {
	r, _ := NextafterStatus(x, y)
	return r
}

// NextafterStatus is like Nextafter, but also returns the exception flags the step raises.
func NextafterStatus(x, y float64) (float64, Status) {
	p, out, st := Binary64.nextafter(unpack64(x), unpack64(y))
	switch out {
	case propagate:
		return x + y, st
	case same:
		return y, st
	case overflow:
		return x + x, st
	}
	return pack64(p), st
}
