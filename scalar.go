package polyroot

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types the solvers are generic over.
type Float interface {
	constraints.Float
}

const (
	// epsilon64 is the near-zero tolerance for 8-byte floats.
	epsilon64 = 1e-9

	// epsilon32 is the near-zero tolerance for 4-byte floats.
	epsilon32 = 1e-5
)

// Precision returns the width of T in bits: 32 or 64.
// A 24-bit mantissa cannot hold 1 + 2^-30, a 53-bit one can.
func Precision[T Float]() int {
	one := T(1)
	if one+T(0x1p-30) == one {
		return 32
	}
	return 64
}

// Epsilon returns the fixed near-zero tolerance used by every solver for T.
func Epsilon[T Float]() T {
	if Precision[T]() == 32 {
		return T(epsilon32)
	}
	return T(epsilon64)
}

// IsZero reports whether x lies strictly inside (-Epsilon, Epsilon).
// All solvers use it in place of comparisons against exact zero.
func IsZero[T Float](x T) bool {
	eps := Epsilon[T]()
	return x > -eps && x < eps
}

// The math package works in float64 only; these wrappers round-trip through it.

func sqrt[T Float](x T) T { return T(math.Sqrt(float64(x))) }

func cbrt[T Float](x T) T { return T(math.Cbrt(float64(x))) }

func acos[T Float](x T) T { return T(math.Acos(float64(x))) }

func cos[T Float](x T) T { return T(math.Cos(float64(x))) }
