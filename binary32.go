// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"github.com/avdva/ieee754/internal/wordutil"
)

const (
	expShift32 = 23
	expMask32  = 0xff
	highMask32 = 1<<expShift32 - 1
)

func unpack32(x float32) parts {
	w := wordutil.Float32Word(x)
	return parts{
		sign: w >> 31,
		exp:  w >> expShift32 & expMask32,
		manh: uint64(w & highMask32),
	}
}

func pack32(p parts) float32 {
	return wordutil.Float32FromWord(p.sign<<31 | (p.exp&expMask32)<<expShift32 | uint32(p.manh)&highMask32)
}

// Copysign32 returns a value with the magnitude of x and the sign of y.
func Copysign32(x, y float32) float32 {
	hx, hy := wordutil.Float32Word(x), wordutil.Float32Word(y)
	return wordutil.Float32FromWord(hx&wordutil.AbsMask32 | hy&wordutil.SignMask32)
}

// Signbit32 returns true if the sign bit of x is set.
// The test is done on the widened value, the conversion keeps the sign of every input.
func Signbit32(x float32) bool {
	return Signbit(float64(x))
}

// Classify32 returns the class of x.
func Classify32(x float32) Class {
	return Binary32.classify(unpack32(x))
}

// Nextafter32 returns the next representable value after x towards y.
func Nextafter32(x, y float32) float32 {
	r, _ := Nextafter32Status(x, y)
	return r
}

// Nextafter32Status is like Nextafter32, but also returns the exception flags.
func Nextafter32Status(x, y float32) (float32, Status) {
	p, out, st := Binary32.nextafter(unpack32(x), unpack32(y))
	switch out {
	case propagate:
		return x + y, st
	case same:
		return y, st
	case overflow:
		return x + x, st
	}
	return pack32(p), st
}
