// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package ieee754 implements bit-exact IEEE-754 sign and adjacent-value primitives:
// copysign, signbit and nextafter, for single, double and extended precision.
//
// All the operations work on raw bit patterns and never fail: NaNs, infinities,
// signed zeros and subnormals are ordinary results, as they are for the
// corresponding hardware instructions.
//
// Go has no native extended type, so two software value types are provided:
// Float80 with the x87 layout, where the leading significand bit is stored
// explicitly, and Float128 with the IEEE quadruple precision layout.
// A Format describes each layout, and a single algorithm serves all of them.
//
// Go does not expose the floating-point environment either, so the
// ...Status variants return the exception flags a step raises.
package ieee754
