// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"math"
	"math/big"
)

var half = big.NewFloat(0.5)

// frac returns the stored significand of p, NBIT included for explicit layouts.
func (f *Format) frac(p parts) *big.Int {
	m := new(big.Int).SetUint64(p.manh & (f.highMask() | f.nbit()))
	m.Lsh(m, f.LowBits)
	return m.Or(m, new(big.Int).SetUint64(p.manl))
}

// assemble builds parts from a sign, a biased exponent and a significand
// of at most Precision bits. The leading bit is dropped or kept according to the layout.
func (f *Format) assemble(sign, exp uint32, m *big.Int) parts {
	lo := new(big.Int).SetUint64(f.lowMask())
	p := parts{sign: sign, exp: exp}
	p.manl = new(big.Int).And(m, lo).Uint64()
	p.manh = new(big.Int).Rsh(m, f.LowBits).Uint64() & f.highMask()
	if exp != 0 {
		p.manh |= f.nbit()
	}
	return p
}

// toBig returns the exact value of a finite p.
func (f *Format) toBig(p parts) *big.Float {
	p = f.canonical(p)
	m := f.frac(p)
	exp := int(p.exp)
	if exp == 0 {
		exp = 1
	} else if !f.ExplicitLead {
		m.SetBit(m, int(f.FracBits()), 1)
	}
	r := new(big.Float).SetInt(m)
	r.SetMantExp(r, exp-f.Bias()-int(f.FracBits()))
	if p.sign != 0 {
		r.Neg(r)
	}
	return r
}

// fromBig rounds x to the nearest value of the format, ties to even.
// Values beyond the finite range become infinities.
func (f *Format) fromBig(x *big.Float) parts {
	var sign uint32
	if x.Signbit() {
		sign = 1
	}
	if x.IsInf() {
		return f.inf(sign)
	}
	if x.Sign() == 0 {
		return parts{sign: sign}
	}
	// scale so that the smallest subnormal becomes 1, then round to an integer.
	emin := 1 - f.Bias()
	t := new(big.Float).Abs(x)
	t.SetMantExp(t, int(f.FracBits())-emin)
	e := t.MantExp(nil)
	if e <= 0 {
		if t.Cmp(half) <= 0 {
			return parts{sign: sign}
		}
		return f.ulp(sign)
	}
	prec := uint(e)
	if e > int(f.FracBits()) {
		prec = f.Precision()
	}
	t.SetMode(big.ToNearestEven).SetPrec(prec)
	shift := t.MantExp(nil) - int(f.Precision())
	if shift < 0 {
		m, _ := t.Int(nil)
		return f.assemble(sign, 0, m)
	}
	if shift+1 >= int(f.MaxExp()) {
		return f.inf(sign)
	}
	t.SetMantExp(t, -shift)
	m, _ := t.Int(nil)
	return f.assemble(sign, uint32(shift+1), m)
}

// fromFloat64 widens x exactly. NaN payloads are moved to the top of the fraction.
func (f *Format) fromFloat64(x float64) parts {
	p := unpack64(x)
	switch Binary64.classify(p) {
	case ClassNaN:
		m := Binary64.frac(p)
		m.Lsh(m, f.FracBits()-Binary64.FracBits())
		return f.assemble(p.sign, f.MaxExp(), m)
	case ClassInfinite:
		return f.inf(p.sign)
	}
	return f.fromBig(new(big.Float).SetFloat64(x))
}

// toFloat64 narrows p, rounding to nearest even.
func (f *Format) toFloat64(p parts) float64 {
	switch f.classify(p) {
	case ClassNaN:
		m := f.frac(p)
		m.SetBit(m, int(f.FracBits()), 0)
		m.Rsh(m, f.FracBits()-Binary64.FracBits())
		q := Binary64.quiet(Binary64.assemble(p.sign, Binary64.MaxExp(), m))
		return pack64(q)
	case ClassInfinite:
		return math.Inf(1 - 2*int(p.sign))
	case ClassZero:
		return pack64(parts{sign: p.sign})
	}
	r, _ := f.toBig(p).Float64()
	return r
}
