// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	one128     = Float128FromWords(0x3fff000000000000, 0)
	two128     = Float128FromWords(0x4000000000000000, 0)
	negZero128 = Float128FromWords(1<<63, 0)
)

func TestFloat128FromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f      float64
		hi, lo uint64
	}{
		{0, 0, 0},
		{negZero, 1 << 63, 0},
		{1, 0x3fff000000000000, 0},
		{-2.5, 0xc000400000000000, 0},
		{math.SmallestNonzeroFloat64, 0x3bcd000000000000, 0},
		{math.MaxFloat64, 0x43feffffffffffff, 0xf000000000000000},
		{math.Inf(1), 0x7fff000000000000, 0},
		{math.Float64frombits(0x7ff8000000000123), 0x7fff800000000012, 0x3000000000000000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := Float128FromFloat64(test.f)
			hi, lo := x.Words()
			a.Equal(test.hi, hi)
			a.Equal(test.lo, lo)
			a.Equal(math.Float64bits(test.f), math.Float64bits(x.Float64()))
		})
	}
}

func TestFloat128FromFloat80(t *testing.T) {
	a := assert.New(t)
	a.Equal(one128, Float128FromFloat80(one80))
	a.Equal(negZero128, Float128FromFloat80(negZero80))
	a.Equal(Inf128(-1), Float128FromFloat80(Inf80(-1)))
	a.Equal(Float128FromWords(0x3fff000000000000, 1<<49), Float128FromFloat80(Float80FromBits(0x3fff, 0x8000000000000001)))
	a.Equal(Float128FromWords(0, 1<<49), Float128FromFloat80(SmallestNonzeroFloat80()))
	a.Equal(Float128FromWords(0x7ffeffffffffffff, 0xfffe000000000000), Float128FromFloat80(MaxFloat80()))
	a.True(Float128FromFloat80(NaN80()).IsNaN())
	for _, f := range []float64{1.5, -3.25, math.SmallestNonzeroFloat64, math.MaxFloat64, math.Pi} {
		a.Equal(Float128FromFloat64(f), Float128FromFloat80(Float80FromFloat64(f)), "%v", f)
	}
}

func TestFloat128Bytes(t *testing.T) {
	a := assert.New(t)
	x := Float128FromWords(0x0102030405060708, 0x090a0b0c0d0e0f10)
	a.Equal(x, Float128FromBytes(x.Bytes()))
	b := NaN128().Bytes()
	a.True(Float128FromBytes(b).IsNaN())
}

func TestFloat128Sign(t *testing.T) {
	a := assert.New(t)
	three := Float128FromFloat64(3)
	a.Equal(Float128FromFloat64(-3), three.Copysign(one128.Neg()))
	a.Equal(three, three.Neg().Copysign(one128))
	nan := NaN128().Copysign(one128.Neg())
	a.True(nan.IsNaN())
	a.True(nan.Signbit())
	a.True(negZero128.Signbit())
	a.False(Float128{}.Signbit())
	a.True(SmallestNonzeroFloat128().Neg().Signbit())
	a.Equal(three, three.Neg().Abs())
}

func TestFloat128Classify(t *testing.T) {
	a := assert.New(t)
	a.Equal(ClassZero, negZero128.Classify())
	a.Equal(ClassSubnormal, SmallestNonzeroFloat128().Classify())
	a.Equal(ClassSubnormal, Float128FromWords(0x0000ffffffffffff, math.MaxUint64).Classify())
	a.Equal(ClassNormal, MaxFloat128().Classify())
	a.Equal(ClassInfinite, Inf128(-1).Classify())
	a.Equal(ClassNaN, NaN128().Classify())
	a.True(Inf128(-1).IsInf(-1))
	a.False(Inf128(-1).IsInf(1))
}

func TestFloat128Nextafter(t *testing.T) {
	a := assert.New(t)
	maxSubnormal := Float128FromWords(0x0000ffffffffffff, math.MaxUint64)
	minNormal := Float128FromWords(0x0001000000000000, 0)
	tests := []struct {
		x, y, res Float128
		st        Status
	}{
		{Float128{}, one128, SmallestNonzeroFloat128(), FlagUnderflow | FlagInexact},
		{Float128{}, one128.Neg(), SmallestNonzeroFloat128().Neg(), FlagUnderflow | FlagInexact},
		{negZero128, Float128{}, Float128{}, 0},
		{one128, one128, one128, 0},
		{one128, two128, Float128FromWords(0x3fff000000000000, 1), 0},
		{one128, Float128{}, Float128FromWords(0x3ffeffffffffffff, math.MaxUint64), 0},
		{one128.Neg(), Float128{}, Float128FromWords(0xbffeffffffffffff, math.MaxUint64), 0},
		{Float128FromWords(0x3fff000000000000, math.MaxUint64), two128, Float128FromWords(0x3fff000000000001, 0), 0},
		{Float128FromWords(0x3fff000000000001, 0), Float128{}, Float128FromWords(0x3fff000000000000, math.MaxUint64), 0},
		{maxSubnormal, one128, minNormal, 0},
		{minNormal, Float128{}, maxSubnormal, FlagUnderflow | FlagInexact},
		{MaxFloat128(), Inf128(1), Inf128(1), FlagOverflow | FlagInexact},
		{Inf128(1), Float128{}, MaxFloat128(), 0},
		{Inf128(-1), one128, MaxFloat128().Neg(), 0},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res, st := test.x.NextafterStatus(test.y)
			a.Equal(test.res, res, "%#v != %#v", test.res, res)
			a.Equal(test.st, st)
		})
	}
	res, st := NaN128().NextafterStatus(one128)
	a.True(res.IsNaN())
	a.Equal(Status(0), st)
	res, st = one128.NextafterStatus(Float128FromWords(0x7fff000000000001, 0))
	a.Equal(Float128FromWords(0x7fff800000000001, 0), res)
	a.Equal(FlagInvalid, st)
}

func TestFloat128NextafterProperties(t *testing.T) {
	a := assert.New(t)
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	up, down := Inf128(1), Inf128(-1)
	for i := 0; i < 2000; i++ {
		x := Float128FromWords(r.Uint64(), r.Uint64())
		if x.IsNaN() || x.IsInf(0) || x.Abs() == MaxFloat128() {
			continue
		}
		next, prev := x.Nextafter(up), x.Nextafter(down)
		a.True(x.Less(next), "%#v", x)
		a.True(prev.Less(x), "%#v", x)
		a.True(x.Equal(next.Nextafter(down)), "%#v", x)
		a.True(x.Equal(prev.Nextafter(up)), "%#v", x)
		a.Equal(x, x.Nextafter(x))
	}
}

func TestFloat128Big(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Float128FromFloat64(math.Pi).Big().Cmp(big.NewFloat(math.Pi)))
	a.Nil(NaN128().Big())
	a.True(Inf128(1).Big().IsInf())
}
