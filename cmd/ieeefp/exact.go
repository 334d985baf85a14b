// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var five = big.NewInt(5)

// exactDecimal returns the exact decimal expansion of a finite f.
// It returns false for nil and infinite values.
func exactDecimal(f *big.Float) (decimal.Decimal, bool) {
	if f == nil || f.IsInf() {
		return decimal.Decimal{}, false
	}
	if f.Sign() == 0 {
		return decimal.Zero, true
	}
	// f = m * 2^e with an integer m.
	mant := new(big.Float)
	e := f.MantExp(mant)
	prec := int(mant.MinPrec())
	mant.SetMantExp(mant, prec)
	m, _ := mant.Int(nil)
	e -= prec
	if e >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e)), 0), true
	}
	// 2^-n == 5^n * 10^-n
	m.Mul(m, new(big.Int).Exp(five, big.NewInt(int64(-e)), nil))
	return decimal.NewFromBigInt(m, int32(e)), true
}
