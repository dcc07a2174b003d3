package algebra

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrReducible is the contract violation PolyField.Inv panics with when the
// extended GCD with the modulus is not a nonzero constant, as happens for a
// modulus that factors. NewPolyField itself does not check irreducibility.
var ErrReducible = errors.New("algebra: modulus polynomial is reducible")

// PolyField is the quotient field F[x]/(mod) for an irreducible polynomial
// mod over field F. It implements Field[Poly[T]], letting the same generic
// ElGamal/curve machinery that runs over Zn/Zp also run over a binary- or
// prime-extension field, should a future backend need one.
type PolyField[T any] struct {
	ring PolyRing[T]
	mod  Poly[T]
}

// NewPolyField returns the quotient field F[x]/(mod). mod must be
// irreducible over F; this is a caller contract, not something checked here
// (checking irreducibility in general requires factoring, which this
// package does not implement).
func NewPolyField[T any](f Field[T], mod Poly[T]) PolyField[T] {
	if mod.IsZero() {
		panic("algebra: PolyField modulus must be nonzero")
	}
	return PolyField[T]{ring: PolyRing[T]{F: f}, mod: mod}
}

func (pf PolyField[T]) Reduce(p Poly[T]) Poly[T] {
	remainder, _ := p.DivRem(pf.mod)
	return remainder
}

func (pf PolyField[T]) Zero() Poly[T] { return pf.ring.Zero() }
func (pf PolyField[T]) One() Poly[T]  { return pf.ring.One() }

func (pf PolyField[T]) Add(x, y Poly[T]) Poly[T] { return pf.Reduce(pf.ring.Add(x, y)) }
func (pf PolyField[T]) Neg(x Poly[T]) Poly[T]    { return pf.Reduce(pf.ring.Neg(x)) }
func (pf PolyField[T]) Sub(x, y Poly[T]) Poly[T] { return pf.Reduce(pf.ring.Sub(x, y)) }
func (pf PolyField[T]) Mul(x, y Poly[T]) Poly[T] { return pf.Reduce(pf.ring.Mul(x, y)) }

func (pf PolyField[T]) Equal(x, y Poly[T]) bool {
	return pf.Reduce(x).Equal(pf.Reduce(y))
}

func (pf PolyField[T]) ScalarMul(n *big.Int, x Poly[T]) Poly[T] {
	return RepeatMonoid(pf.Add, n, x, pf.Zero())
}

// Inv computes the multiplicative inverse in F[x]/(mod) via extended GCD:
// a*x + b*mod = g, with g a nonzero constant when mod is irreducible and x
// is nonzero modulo mod. Normalizing g to 1 and scaling a accordingly
// yields the inverse. Panics (ErrReducible, wrapped) if g is not a nonzero
// constant, which signals mod was not actually irreducible or x reduces to
// zero.
func (pf PolyField[T]) Inv(x Poly[T]) Poly[T] {
	g, a, _ := ExtendedGCD[Poly[T]](pf.ring, pf.Reduce(x), pf.mod)
	if g.Degree() != 0 || g.IsZero() {
		panic(errors.Wrap(ErrReducible, "PolyField.Inv"))
	}
	inverseOfLead := pf.ring.F.Inv(g.Lead())
	return pf.Reduce(a.ScaleBy(inverseOfLead))
}

// QuoRem implements Integral[Poly[T]] in the quotient field by deferring to
// the underlying polynomial ring's division (used only if a caller needs
// Euclidean structure on field elements directly; ordinary field code
// should use Inv instead).
func (pf PolyField[T]) QuoRem(x, y Poly[T]) (quotient, remainder Poly[T]) {
	return pf.ring.QuoRem(x, y)
}
