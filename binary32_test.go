// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	negZero32     = Copysign32(0, -1)
	minSubnormal  = math.Float32frombits(1)
	maxSubnormal  = math.Float32frombits(0x007fffff)
	minNormal32   = math.Float32frombits(0x00800000)
	inf32         = float32(math.Inf(1))
	signalingNaN  = math.Float32frombits(0x7f800001)
	quietNaN32    = float32(math.NaN())
	maxFloat32    = float32(math.MaxFloat32)
	negMaxFloat32 = -maxFloat32
)

func TestCopysign32(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res float32
	}{
		{3, -1, -3},
		{-3, 1, 3},
		{0, -1, negZero32},
		{inf32, -2, -inf32},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(math.Float32bits(test.res), math.Float32bits(Copysign32(test.x, test.y)))
		})
	}
	a.Equal(uint32(0xffc00001), math.Float32bits(Copysign32(math.Float32frombits(0x7fc00001), -1)))
}

func TestSignbit32(t *testing.T) {
	a := assert.New(t)
	a.True(Signbit32(negZero32))
	a.False(Signbit32(0))
	a.True(Signbit32(-minSubnormal))
	a.True(Signbit32(Copysign32(quietNaN32, -1)))
	a.False(Signbit32(quietNaN32))
	a.True(Signbit32(-inf32))
}

func TestNextafter32(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, res float32
		st        Status
	}{
		{0, 1, minSubnormal, FlagUnderflow | FlagInexact},
		{0, -1, -minSubnormal, FlagUnderflow | FlagInexact},
		{negZero32, 0, 0, 0},
		{0, negZero32, negZero32, 0},
		{1, 2, 1 + 0x1p-23, 0},
		{1, 0, 1 - 0x1p-24, 0},
		{-1, 0, -1 + 0x1p-24, 0},
		{-1, -inf32, -1 - 0x1p-23, 0},
		{maxFloat32, inf32, inf32, FlagOverflow | FlagInexact},
		{negMaxFloat32, -inf32, -inf32, FlagOverflow | FlagInexact},
		{inf32, 0, maxFloat32, 0},
		{minNormal32, 0, maxSubnormal, FlagUnderflow | FlagInexact},
		{maxSubnormal, 1, minNormal32, 0},
		{minSubnormal, -1, 0, FlagUnderflow | FlagInexact},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, st := Nextafter32Status(test.x, test.y)
			a.Equal(math.Float32bits(test.res), math.Float32bits(res))
			a.Equal(test.st, st)
		})
	}
}

func TestNextafter32NaN(t *testing.T) {
	a := assert.New(t)
	res, st := Nextafter32Status(quietNaN32, 1)
	a.True(math.IsNaN(float64(res)))
	a.Equal(Status(0), st)
	res, st = Nextafter32Status(1, signalingNaN)
	a.True(math.IsNaN(float64(res)))
	a.Equal(FlagInvalid, st)
}

func TestClassify32(t *testing.T) {
	a := assert.New(t)
	a.Equal(ClassZero, Classify32(negZero32))
	a.Equal(ClassSubnormal, Classify32(maxSubnormal))
	a.Equal(ClassNormal, Classify32(minNormal32))
	a.Equal(ClassInfinite, Classify32(-inf32))
	a.Equal(ClassNaN, Classify32(signalingNaN))
}

// TestNextafter32Sweep compares a strided sample of all bit patterns with the standard library.
func TestNextafter32Sweep(t *testing.T) {
	a := assert.New(t)
	const stride = 9973
	directions := []float32{inf32, -inf32, 0, 1, -1, maxSubnormal}
	for i := uint64(0); i <= math.MaxUint32; i += stride {
		x := math.Float32frombits(uint32(i))
		if math.IsNaN(float64(x)) {
			continue
		}
		for _, y := range directions {
			if x == y {
				a.Equal(math.Float32bits(y), math.Float32bits(Nextafter32(x, y)))
				continue
			}
			if !a.Equal(math.Float32bits(math.Nextafter32(x, y)), math.Float32bits(Nextafter32(x, y)), "%v -> %v", x, y) {
				return
			}
		}
	}
}
