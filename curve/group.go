package curve

import "math/big"

// Group adapts Point[T]'s own methods to the algebra.FinGroup[Point[T]]
// descriptor shape the rest of the module builds on, the same way algebra.Zp
// adapts *big.Int's multiplicative structure to algebra.FinGroup[*big.Int].
// This is what lets elgamal.Scheme[T] run unmodified over either backend.
type Group[T any] struct {
	W Witness[T]
}

func (g Group[T]) Zero() Point[T] { return Identity(g.W) }
func (g Group[T]) Add(x, y Point[T]) Point[T] { return x.Add(y) }
func (g Group[T]) Neg(x Point[T]) Point[T]    { return x.Neg() }
func (g Group[T]) Sub(x, y Point[T]) Point[T] { return x.Add(y.Neg()) }
func (g Group[T]) ScalarMul(n *big.Int, x Point[T]) Point[T] { return x.ScalarMul(n) }
func (g Group[T]) Equal(x, y Point[T]) bool { return x.Equal(y) }
func (g Group[T]) Order() *big.Int { return g.W.Order }
