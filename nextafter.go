// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

// outcome tells a format wrapper how to materialize the result of a step.
type outcome int

const (
	// stepped means the returned parts are the result.
	stepped outcome = iota
	// same means the operands are equal, y is the result.
	same
	// propagate means one of the operands is a NaN, x + y is the result.
	propagate
	// overflow means the step left the finite range, x + x is the result.
	overflow
)

// nextafter computes the value adjacent to x in the direction of y.
// NaN results and infinities are not built here: the caller produces them
// with its own arithmetic, so that payloads and signs follow the host rules.
func (f *Format) nextafter(x, y parts) (parts, outcome, Status) {
	x, y = f.canonical(x), f.canonical(y)
	if f.isNaN(x) || f.isNaN(y) {
		var st Status
		if f.isSignaling(x) || f.isSignaling(y) {
			st = FlagInvalid
		}
		return x, propagate, st
	}
	if f.equal(x, y) {
		return y, same, 0
	}
	if f.isZero(x) {
		return f.ulp(y.sign), stepped, FlagUnderflow | FlagInexact
	}
	if (x.sign == 0) != f.less(x, y) {
		x = f.decrement(x)
	} else {
		x = f.increment(x)
	}
	switch x.exp {
	case f.MaxExp():
		return x, overflow, FlagOverflow | FlagInexact
	case 0:
		return x, stepped, FlagUnderflow | FlagInexact
	}
	return x, stepped, 0
}

// increment adds one ulp to the magnitude of p.
func (f *Format) increment(p parts) parts {
	lo, hi, nb := f.lowMask(), f.highMask(), f.nbit()
	p.manl = (p.manl + 1) & lo
	if p.manl == 0 {
		p.manh = (p.manh+1)&hi | p.manh&nb
		if p.manh&hi == 0 {
			p.exp++
		}
	}
	if p.exp != 0 {
		p.manh |= nb
	}
	return p
}

// decrement subtracts one ulp from the magnitude of p, which must not be zero.
func (f *Format) decrement(p parts) parts {
	lo, hi, nb := f.lowMask(), f.highMask(), f.nbit()
	if p.manl == 0 {
		if p.manh&hi == 0 {
			p.exp--
		}
		p.manh = (p.manh-1)&hi | p.manh&nb
	}
	p.manl = (p.manl - 1) & lo
	if p.exp == 0 {
		p.manh &^= nb
	}
	return p
}
