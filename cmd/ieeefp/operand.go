// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/avdva/ieee754"
)

// operand is a value of one of the supported formats.
type operand interface {
	String() string
	Bits() string
	Class() ieee754.Class
	Signbit() bool
	Big() *big.Float
	Next(y operand) (operand, ieee754.Status)
	Copysign(y operand) operand
}

type parseFunc func(s string) (operand, error)

var parsers = map[string]parseFunc{
	ieee754.Binary32.Name:   parse32,
	ieee754.Binary64.Name:   parse64,
	ieee754.Extended80.Name: parse80,
	ieee754.Binary128.Name:  parse128,
}

func lookupParser(format string) (parseFunc, error) {
	p, ok := parsers[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return p, nil
}

// parseNativeBits parses s as a "bits:" pattern or a Go float literal
// and returns the bit pattern of a bitSize-bit float.
// Out of range literals become infinities.
func parseNativeBits(s string, bitSize int) (uint64, error) {
	if strings.HasPrefix(s, "bits:") {
		return strconv.ParseUint(strings.TrimPrefix(strings.TrimPrefix(s, "bits:"), "0x"), 16, bitSize)
	}
	f, err := strconv.ParseFloat(s, bitSize)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	if bitSize == 32 {
		return uint64(math.Float32bits(float32(f))), nil
	}
	return math.Float64bits(f), nil
}

type f32 float32

func parse32(s string) (operand, error) {
	u, err := parseNativeBits(s, 32)
	return f32(math.Float32frombits(uint32(u))), err
}

func (x f32) String() string       { return strconv.FormatFloat(float64(x), 'g', -1, 32) }
func (x f32) Bits() string         { return fmt.Sprintf("%#08x", math.Float32bits(float32(x))) }
func (x f32) Class() ieee754.Class { return ieee754.Classify32(float32(x)) }
func (x f32) Signbit() bool        { return ieee754.Signbit32(float32(x)) }

func (x f32) Big() *big.Float {
	if math.IsNaN(float64(x)) {
		return nil
	}
	return big.NewFloat(float64(x))
}

func (x f32) Next(y operand) (operand, ieee754.Status) {
	r, st := ieee754.Nextafter32Status(float32(x), float32(y.(f32)))
	return f32(r), st
}

func (x f32) Copysign(y operand) operand {
	return f32(ieee754.Copysign32(float32(x), float32(y.(f32))))
}

type f64 float64

func parse64(s string) (operand, error) {
	u, err := parseNativeBits(s, 64)
	return f64(math.Float64frombits(u)), err
}

func (x f64) String() string       { return strconv.FormatFloat(float64(x), 'g', -1, 64) }
func (x f64) Bits() string         { return fmt.Sprintf("%#016x", math.Float64bits(float64(x))) }
func (x f64) Class() ieee754.Class { return ieee754.Classify(float64(x)) }
func (x f64) Signbit() bool        { return ieee754.Signbit(float64(x)) }

func (x f64) Big() *big.Float {
	if math.IsNaN(float64(x)) {
		return nil
	}
	return big.NewFloat(float64(x))
}

func (x f64) Next(y operand) (operand, ieee754.Status) {
	r, st := ieee754.NextafterStatus(float64(x), float64(y.(f64)))
	return f64(r), st
}

func (x f64) Copysign(y operand) operand {
	return f64(ieee754.Copysign(float64(x), float64(y.(f64))))
}

type f80 struct{ ieee754.Float80 }

func parse80(s string) (operand, error) {
	v, err := ieee754.ParseFloat80(s)
	return f80{v}, err
}

func (x f80) Bits() string {
	se, mant := x.Float80.Bits()
	return fmt.Sprintf("%#04x %#016x", se, mant)
}

func (x f80) Class() ieee754.Class { return x.Classify() }

func (x f80) Next(y operand) (operand, ieee754.Status) {
	r, st := x.NextafterStatus(y.(f80).Float80)
	return f80{r}, st
}

func (x f80) Copysign(y operand) operand {
	return f80{x.Float80.Copysign(y.(f80).Float80)}
}

type f128 struct{ ieee754.Float128 }

func parse128(s string) (operand, error) {
	v, err := ieee754.ParseFloat128(s)
	return f128{v}, err
}

func (x f128) Bits() string {
	hi, lo := x.Words()
	return fmt.Sprintf("%#016x %#016x", hi, lo)
}

func (x f128) Class() ieee754.Class { return x.Classify() }

func (x f128) Next(y operand) (operand, ieee754.Status) {
	r, st := x.NextafterStatus(y.(f128).Float128)
	return f128{r}, st
}

func (x f128) Copysign(y operand) operand {
	return f128{x.Float128.Copysign(y.(f128).Float128)}
}
