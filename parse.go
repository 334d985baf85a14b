// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

const (
	// bitsPrefix marks a raw hexadecimal bit pattern, like "bits:0x3fff8000000000000000".
	bitsPrefix = "bits:"
	// parsePrec is the precision decimal input is read with before it is rounded to the target format.
	parsePrec = 1024
	// loDigits is the number of hex digits in a low 64-bit word.
	loDigits = 16
)

var errRange = errors.New("value out of range")

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

// ParseFloat80 parses s into an extended value.
// s may be a Go floating-point literal (decimal or hexadecimal), "inf", "nan",
// optionally signed, or a raw bit pattern with the "bits:" prefix.
// For values out of range, ±Inf is returned along with an error.
func ParseFloat80(s string) (Float80, error) {
	s, offset, err := prepareString(s)
	if err != nil {
		return Float80{}, err
	}
	if strings.HasPrefix(s, bitsPrefix) {
		hi, lo, err := parseBits(s[len(bitsPrefix):], 4)
		if err != nil {
			return Float80{}, withOffset(err, offset+len(bitsPrefix))
		}
		return Float80FromBits(uint16(hi), lo), nil
	}
	p, err := parseValue(Extended80, s)
	return pack80(p), err
}

// ParseFloat128 parses s into a quadruple precision value, see ParseFloat80.
func ParseFloat128(s string) (Float128, error) {
	s, offset, err := prepareString(s)
	if err != nil {
		return Float128{}, err
	}
	if strings.HasPrefix(s, bitsPrefix) {
		hi, lo, err := parseBits(s[len(bitsPrefix):], loDigits)
		if err != nil {
			return Float128{}, withOffset(err, offset+len(bitsPrefix))
		}
		return Float128FromWords(hi, lo), nil
	}
	p, err := parseValue(Binary128, s)
	return pack128(p), err
}

// MustParseFloat80 is like ParseFloat80, but panics on errors.
func MustParseFloat80(s string) Float80 {
	v, err := ParseFloat80(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MustParseFloat128 is like ParseFloat128, but panics on errors.
func MustParseFloat128(s string) Float128 {
	v, err := ParseFloat128(s)
	if err != nil {
		panic(err)
	}
	return v
}

func withOffset(err error, offset int) error {
	var pe *posError
	if errors.As(err, &pe) {
		pe.pos += offset + 1 // +1 to start indices from 1.
		err = pe
	}
	return fmt.Errorf("parsing failed: %w", err)
}

func prepareString(s string) (prepared string, offset int, err error) {
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, fmt.Errorf("empty input")
	}
	return s, offset, nil
}

// parseBits parses a hex string of at most hiDigits+16 digits into two words.
// The low word takes the last 16 digits.
func parseBits(s string, hiDigits int) (hi, lo uint64, err error) {
	offset := 0
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		offset = 2
	}
	if len(s) == 0 {
		return 0, 0, newPosError("empty bit pattern", offset)
	}
	if len(s) > hiDigits+loDigits {
		return 0, 0, newPosError("bit pattern too long", offset+hiDigits+loDigits)
	}
	for i, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), offset+i)
		}
	}
	split := len(s) - loDigits
	if split < 0 {
		split = 0
	}
	if split > 0 {
		if hi, err = strconv.ParseUint(s[:split], 16, 64); err != nil {
			return 0, 0, err
		}
	}
	if lo, err = strconv.ParseUint(s[split:], 16, 64); err != nil {
		return 0, 0, err
	}
	return hi, lo, nil
}

func parseValue(f *Format, s string) (parts, error) {
	switch strings.ToLower(s) {
	case "nan", "+nan":
		return f.quiet(f.inf(0)), nil
	case "-nan":
		return f.quiet(f.inf(1)), nil
	}
	x, _, err := big.ParseFloat(s, 0, parsePrec, big.ToNearestEven)
	if err != nil {
		return parts{}, fmt.Errorf("parsing failed: %w", err)
	}
	p := f.fromBig(x)
	if !x.IsInf() && f.classify(p) == ClassInfinite {
		return p, errRange
	}
	return p, nil
}
