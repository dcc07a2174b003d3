// Package algebra defines the capability contracts the rest of the module
// builds on (Group, FinGroup, Ring, Field, Integral, Sqrt) and the concrete
// modular-integer descriptors (Zn, Zp) that implement them.
//
// Every contract is a descriptor passed alongside bare values, not a method
// set on the value itself: a Zn descriptor knows the modulus and operates on
// plain *big.Int given a modulus. This keeps one value type (e.g. *big.Int,
// or Poly[T]) usable under several different structures without re-wrapping
// it.
package algebra

import "math/big"

// Group is an additive group descriptor over element type T: identity,
// addition, negation, subtraction, and the n-fold scalar action.
type Group[T any] interface {
	Zero() T
	Add(x, y T) T
	Neg(x T) T
	Sub(x, y T) T
	// ScalarMul computes the n-fold repeated addition of x (n·x).
	ScalarMul(n *big.Int, x T) T
	Equal(x, y T) bool
}

// FinGroup is a Group with a known finite order.
type FinGroup[T any] interface {
	Group[T]
	Order() *big.Int
}

// Ring is a Group with a multiplicative identity and multiplication.
type Ring[T any] interface {
	Group[T]
	One() T
	Mul(x, y T) T
}

// Field is a Ring in which every nonzero element has a multiplicative
// inverse.
type Field[T any] interface {
	Ring[T]
	// Inv panics if x is not invertible (e.g. x is the additive identity).
	Inv(x T) T
}

// Integral is a Ring with Euclidean division.
type Integral[T any] interface {
	Ring[T]
	// QuoRem returns (quotient, remainder) such that x = y*quotient + remainder.
	QuoRem(x, y T) (quotient, remainder T)
}

// Sqrt is the capability to attempt a square root.
type Sqrt[T any] interface {
	// SqrtOf returns (y, true) with y*y == x when a root exists, else
	// (zero-value, false).
	SqrtOf(x T) (T, bool)
}
