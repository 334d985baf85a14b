// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package wordutil extracts and injects raw bit patterns of floating-point values.
package wordutil

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

const (
	bitsInWord = unsafe.Sizeof(uint32(0)) * 8

	// SignMask32 selects the sign bit of a 32-bit word.
	SignMask32 = 1 << (bitsInWord - 1)
	// AbsMask32 selects everything but the sign bit of a 32-bit word.
	AbsMask32 = SignMask32 - 1
)

// Mask returns a mask with n lowest bits set.
func Mask(n uint) uint64 {
	if n >= 64 {
		return math.MaxUint64
	}
	return 1<<n - 1
}

// HighWord64 returns the upper 32 bits of v.
func HighWord64(v uint64) uint32 {
	return uint32(v >> bitsInWord)
}

// LowWord64 returns the lower 32 bits of v.
func LowWord64(v uint64) uint32 {
	return uint32(v)
}

// Join64 builds a 64-bit value from two halves.
func Join64(hi, lo uint32) uint64 {
	return uint64(hi)<<bitsInWord | uint64(lo)
}

// Float32Word returns the bit pattern of x.
func Float32Word(x float32) uint32 {
	return math.Float32bits(x)
}

// Float32FromWord is the inverse of Float32Word.
func Float32FromWord(w uint32) float32 {
	return math.Float32frombits(w)
}

// Float64Words splits x into its high and low words.
// hi always holds the sign, the exponent and the upper 20 fraction bits.
func Float64Words(x float64) (hi, lo uint32) {
	b := math.Float64bits(x)
	return HighWord64(b), LowWord64(b)
}

// Float64FromWords is the inverse of Float64Words.
func Float64FromWords(hi, lo uint32) float64 {
	return math.Float64frombits(Join64(hi, lo))
}

// Float64HighWord returns the word of x containing sign and exponent.
func Float64HighWord(x float64) uint32 {
	hi, _ := Float64Words(x)
	return hi
}

// SetFloat64HighWord replaces the high word of x.
func SetFloat64HighWord(x float64, hi uint32) float64 {
	_, lo := Float64Words(x)
	return Float64FromWords(hi, lo)
}

// IsBigEndian returns true on big-endian hosts.
func IsBigEndian() bool {
	return cpu.IsBigEndian
}

// NativeOrder returns the byte order of the host.
func NativeOrder() binary.ByteOrder {
	if cpu.IsBigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// NativeFloat64Words returns the two words of x in the order they are laid out
// in host memory: on little-endian hosts the low word comes first.
func NativeFloat64Words(x float64) [2]uint32 {
	hi, lo := Float64Words(x)
	if cpu.IsBigEndian {
		return [2]uint32{hi, lo}
	}
	return [2]uint32{lo, hi}
}

// Float64FromNativeWords is the inverse of NativeFloat64Words.
func Float64FromNativeWords(w [2]uint32) float64 {
	if cpu.IsBigEndian {
		return Float64FromWords(w[0], w[1])
	}
	return Float64FromWords(w[1], w[0])
}
