// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"fmt"

	"github.com/avdva/ieee754/internal/wordutil"
)

// Class is the IEEE-754 class of a value.
type Class int

const (
	// ClassZero is a positive or negative zero.
	ClassZero Class = iota
	// ClassSubnormal is a nonzero value with a zero exponent field.
	ClassSubnormal
	// ClassNormal is a finite value with a regular exponent.
	ClassNormal
	// ClassInfinite is a positive or negative infinity.
	ClassInfinite
	// ClassNaN is a not-a-number value.
	ClassNaN
)

var classNames = [...]string{"zero", "subnormal", "normal", "infinite", "nan"}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Format describes the bit layout of a binary floating-point format.
// The significand is stored in up to two words: the high word holds HighBits
// fraction bits, the low word holds LowBits. LowBits == 0 means a single-word format.
// If ExplicitLead is set, the leading significand bit (NBIT) is stored
// in the high word right above the fraction bits.
//   sign | exponent (ExpBits) | [NBIT] manh (HighBits) | manl (LowBits)
type Format struct {
	Name         string
	ExpBits      uint
	HighBits     uint
	LowBits      uint
	ExplicitLead bool
}

var (
	// Binary32 is the IEEE-754 single precision layout.
	Binary32 = &Format{Name: "binary32", ExpBits: 8, HighBits: 23}
	// Binary64 is the IEEE-754 double precision layout.
	Binary64 = &Format{Name: "binary64", ExpBits: 11, HighBits: 20, LowBits: 32}
	// Extended80 is the x87 80-bit extended precision layout with an explicit leading bit.
	Extended80 = &Format{Name: "extended80", ExpBits: 15, HighBits: 31, LowBits: 32, ExplicitLead: true}
	// Binary128 is the IEEE-754 quadruple precision layout.
	Binary128 = &Format{Name: "binary128", ExpBits: 15, HighBits: 48, LowBits: 64}

	formats = []*Format{Binary32, Binary64, Extended80, Binary128}
)

// LookupFormat returns a predefined format by its name.
func LookupFormat(name string) (*Format, bool) {
	for _, f := range formats {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

func (f *Format) String() string {
	return f.Name
}

// MaxExp returns the biased exponent of infinities and NaNs.
func (f *Format) MaxExp() uint32 {
	return uint32(wordutil.Mask(f.ExpBits))
}

// Bias returns the exponent bias.
func (f *Format) Bias() int {
	return 1<<(f.ExpBits-1) - 1
}

// FracBits returns the number of stored significand bits below the leading bit.
func (f *Format) FracBits() uint {
	return f.HighBits + f.LowBits
}

// Precision returns the number of significand bits, including the leading one.
func (f *Format) Precision() uint {
	return f.FracBits() + 1
}

// parts is a decomposed value. manh includes NBIT for explicit layouts.
type parts struct {
	sign uint32
	exp  uint32
	manh uint64
	manl uint64
}

func (f *Format) highMask() uint64 {
	return wordutil.Mask(f.HighBits)
}

func (f *Format) lowMask() uint64 {
	return wordutil.Mask(f.LowBits)
}

func (f *Format) nbit() uint64 {
	if f.ExplicitLead {
		return 1 << f.HighBits
	}
	return 0
}

// quietBit is the most significant fraction bit.
func (f *Format) quietBit() (manh, manl uint64) {
	if f.HighBits > 0 {
		return 1 << (f.HighBits - 1), 0
	}
	return 0, 1 << (f.LowBits - 1)
}

// ulp returns the smallest positive subnormal with the given sign.
func (f *Format) ulp(sign uint32) parts {
	if f.LowBits > 0 {
		return parts{sign: sign, manl: 1}
	}
	return parts{sign: sign, manh: 1}
}

// canonical rewrites an explicit-NBIT pseudo-denormal as the equal exp=1 encoding.
func (f *Format) canonical(p parts) parts {
	if f.ExplicitLead && p.exp == 0 && p.manh&f.nbit() != 0 {
		p.exp = 1
	}
	return p
}

func (f *Format) fracZero(p parts) bool {
	return p.manh&f.highMask()|p.manl == 0
}

func (f *Format) isZero(p parts) bool {
	return p.exp == 0 && f.fracZero(p)
}

func (f *Format) isNaN(p parts) bool {
	return p.exp == f.MaxExp() && !f.fracZero(p)
}

func (f *Format) isSignaling(p parts) bool {
	qh, ql := f.quietBit()
	return f.isNaN(p) && p.manh&qh|p.manl&ql == 0
}

func (f *Format) quiet(p parts) parts {
	qh, ql := f.quietBit()
	p.manh |= qh
	p.manl |= ql
	return p
}

func (f *Format) inf(sign uint32) parts {
	return parts{sign: sign, exp: f.MaxExp(), manh: f.nbit()}
}

func (f *Format) classify(p parts) Class {
	p = f.canonical(p)
	switch p.exp {
	case f.MaxExp():
		if f.fracZero(p) {
			return ClassInfinite
		}
		return ClassNaN
	case 0:
		if f.fracZero(p) {
			return ClassZero
		}
		return ClassSubnormal
	default:
		return ClassNormal
	}
}

// cmpMag compares magnitudes of two canonical non-NaN values.
func cmpMag(x, y parts) int {
	switch {
	case x.exp != y.exp:
		return uint64Cmp(uint64(x.exp), uint64(y.exp))
	case x.manh != y.manh:
		return uint64Cmp(x.manh, y.manh)
	default:
		return uint64Cmp(x.manl, y.manl)
	}
}

func uint64Cmp(a, b uint64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// equal compares two non-NaN values by value, so +0 == -0.
func (f *Format) equal(x, y parts) bool {
	if f.isZero(x) && f.isZero(y) {
		return true
	}
	return x == y
}

// less returns x < y for two canonical non-NaN values.
func (f *Format) less(x, y parts) bool {
	if f.isZero(x) && f.isZero(y) {
		return false
	}
	if x.sign != y.sign {
		return x.sign != 0
	}
	c := cmpMag(x, y)
	if x.sign == 0 {
		return c < 0
	}
	return c > 0
}
