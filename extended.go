// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import "math/big"

// propagateNaN returns the NaN that adding x and y yields when done in software:
// the first NaN operand, quieted. Payload and sign are kept.
func propagateNaN(f *Format, x, y parts) parts {
	if f.isNaN(x) {
		return f.quiet(x)
	}
	return f.quiet(y)
}

func (f *Format) text(p parts) string {
	switch f.classify(p) {
	case ClassNaN:
		return "NaN"
	case ClassInfinite:
		if p.sign != 0 {
			return "-Inf"
		}
		return "+Inf"
	}
	return f.toBig(p).Text('x', -1)
}

func (f *Format) bigValue(p parts) *big.Float {
	switch f.classify(p) {
	case ClassNaN:
		return nil
	case ClassInfinite:
		return new(big.Float).SetInf(p.sign != 0)
	}
	return f.toBig(p)
}
