// Copyright 2020 Aleksandr Demakin. All rights reserved.

package ieee754

import "strings"

// Status is a set of IEEE-754 exception flags.
// Go gives no access to the hardware floating-point environment,
// so the operations of this package report the flags they would raise instead.
type Status uint8

const (
	// FlagInvalid is raised when an operand is a signaling NaN.
	FlagInvalid Status = 1 << iota
	// FlagOverflow is raised when a finite operand steps to an infinity.
	FlagOverflow
	// FlagUnderflow is raised when the result is subnormal or zero.
	FlagUnderflow
	// FlagInexact accompanies overflow and underflow.
	FlagInexact
)

var flagNames = []struct {
	flag Status
	name string
}{
	{FlagInvalid, "invalid"},
	{FlagOverflow, "overflow"},
	{FlagUnderflow, "underflow"},
	{FlagInexact, "inexact"},
}

// Has returns true, if all flags of other are set in s.
func (s Status) Has(other Status) bool {
	return s&other == other
}

// Raise sets the given flags. Flags stay set until cleared,
// so a single Status can accumulate the results of many operations.
func (s *Status) Raise(flags Status) {
	*s |= flags
}

// Clear resets the given flags.
func (s *Status) Clear(flags Status) {
	*s &^= flags
}

// String returns a list of the raised flags, like "underflow|inexact".
func (s Status) String() string {
	if s == 0 {
		return "none"
	}
	var b strings.Builder
	for _, fn := range flagNames {
		if s&fn.flag == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteRune('|')
		}
		b.WriteString(fn.name)
	}
	return b.String()
}
