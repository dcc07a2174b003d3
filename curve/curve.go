// Package curve implements a short-Weierstrass elliptic curve y² = x³ + a·x
// + b over a generic base field, in projective coordinates, with the curve
// point parameterized over the field's element type so the same addition
// law serves both the P-224 backend and any other field descriptor
// satisfying algebra.Field.
package curve

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/lavode/hybrid-elgamal/algebra"
)

// ErrNotOnCurve is returned by NewAffine when the supplied (x, y) pair does
// not satisfy the curve equation.
var ErrNotOnCurve = errors.New("curve: point is not on curve")

// Witness carries the curve coefficients and group order alongside the base
// field descriptor, the elliptic-curve analogue of the (P, Q, G) triple the
// big-prime backend's Schnorr subgroup carries.
type Witness[T any] struct {
	F     algebra.Field[T]
	Sqrt  algebra.Sqrt[T]
	A, B  T
	Order *big.Int
}

// Point is a projective point (x, y, z) on the curve described by W. The
// identity is (0, 1, 0); two points may be different representatives of the
// same projective point, so use Equal, never structural comparison.
type Point[T any] struct {
	W       Witness[T]
	X, Y, Z T
}

// Identity returns the point at infinity (0, 1, 0).
func Identity[T any](w Witness[T]) Point[T] {
	return Point[T]{W: w, X: w.F.Zero(), Y: w.F.One(), Z: w.F.Zero()}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point[T]) IsIdentity() bool {
	return p.W.F.Equal(p.Z, p.W.F.Zero())
}

// NewAffine builds the projective point (x, y, 1), validating that it
// satisfies y² = x³ + a·x + b. Returns ErrNotOnCurve otherwise.
func NewAffine[T any](w Witness[T], x, y T) (Point[T], error) {
	f := w.F
	lhs := f.Mul(y, y)
	rhs := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(w.A, x)), w.B)
	if !f.Equal(lhs, rhs) {
		return Point[T]{}, ErrNotOnCurve
	}
	return Point[T]{W: w, X: x, Y: y, Z: f.One()}, nil
}

// Equal compares two projective representatives: both identity, or
// x1·z2 = x2·z1 and y1·z2 = y2·z1.
func (p Point[T]) Equal(q Point[T]) bool {
	f := p.W.F
	if p.IsIdentity() && q.IsIdentity() {
		return true
	}
	if p.IsIdentity() != q.IsIdentity() {
		return false
	}
	return f.Equal(f.Mul(p.X, q.Z), f.Mul(q.X, p.Z)) &&
		f.Equal(f.Mul(p.Y, q.Z), f.Mul(q.Y, p.Z))
}

// Neg flips the sign of y.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{W: p.W, X: p.X, Y: p.W.F.Neg(p.Y), Z: p.Z}
}

// Add implements the full projective addition law:
// identity short-circuits, P = -Q returns the identity, P = Q uses the
// doubling formula, otherwise the general addition formula. Equality is
// tested via the projective comparison before branching.
func (p Point[T]) Add(q Point[T]) Point[T] {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}
	if p.Equal(q.Neg()) {
		return Identity(p.W)
	}
	if p.Equal(q) {
		return p.double()
	}
	return p.addGeneral(q)
}

// double implements q = 2yz, n = 3x²+az², p = 4xy²z, u = n²-2p,
// x' = uq, z' = q³, y' = n(p-u) - 8y⁴z².
func (p Point[T]) double() Point[T] {
	f := p.W.F
	two := big.NewInt(2)
	three := big.NewInt(3)
	four := big.NewInt(4)
	eight := big.NewInt(8)

	x, y, z, a := p.X, p.Y, p.Z, p.W.A

	q := f.ScalarMul(two, f.Mul(y, z))
	xSq := f.Mul(x, x)
	zSq := f.Mul(z, z)
	n := f.Add(f.ScalarMul(three, xSq), f.Mul(a, zSq))
	ySq := f.Mul(y, y)
	pp := f.ScalarMul(four, f.Mul(f.Mul(x, ySq), z))
	nSq := f.Mul(n, n)
	u := f.Sub(nSq, f.ScalarMul(two, pp))

	xOut := f.Mul(u, q)
	zOut := f.Mul(f.Mul(q, q), q)
	yFourth := f.Mul(ySq, ySq)
	yOut := f.Sub(f.Mul(n, f.Sub(pp, u)), f.ScalarMul(eight, f.Mul(yFourth, zSq)))

	return Point[T]{W: p.W, X: xOut, Y: yOut, Z: zOut}
}

// addGeneral implements u = yQ·zP - yP·zQ, v = xQ·zP - xP·zQ,
// w = u²·zP·zQ - v³ - 2v²·xP·zQ, x' = vw, z' = zP·zQ·v³,
// y' = u(v²xP·zQ - w) - v³yP·zQ.
func (p Point[T]) addGeneral(qPoint Point[T]) Point[T] {
	f := p.W.F
	two := big.NewInt(2)

	xP, yP, zP := p.X, p.Y, p.Z
	xQ, yQ, zQ := qPoint.X, qPoint.Y, qPoint.Z

	u := f.Sub(f.Mul(yQ, zP), f.Mul(yP, zQ))
	v := f.Sub(f.Mul(xQ, zP), f.Mul(xP, zQ))
	vSq := f.Mul(v, v)
	vCube := f.Mul(vSq, v)

	w := f.Sub(f.Sub(f.Mul(f.Mul(u, u), f.Mul(zP, zQ)), vCube),
		f.ScalarMul(two, f.Mul(vSq, f.Mul(xP, zQ))))

	xOut := f.Mul(v, w)
	zOut := f.Mul(f.Mul(zP, zQ), vCube)
	yOut := f.Sub(f.Mul(u, f.Sub(f.Mul(vSq, f.Mul(xP, zQ)), w)), f.Mul(vCube, f.Mul(yP, zQ)))

	return Point[T]{W: p.W, X: xOut, Y: yOut, Z: zOut}
}

// ScalarMul computes n·P via RepeatMonoid with Add as the operator.
// Negative scalars negate the point first.
func (p Point[T]) ScalarMul(n *big.Int) Point[T] {
	if n.Sign() < 0 {
		return p.Neg().ScalarMul(new(big.Int).Neg(n))
	}
	return algebra.RepeatMonoid(Point[T].Add, n, p, Identity(p.W))
}

// Affine returns the normalized (x/z, y/z) pair for a non-identity point.
// Panics if called on the identity, which has no affine representative.
func (p Point[T]) Affine() (T, T) {
	if p.IsIdentity() {
		panic("curve: identity has no affine representation")
	}
	f := p.W.F
	zInv := f.Inv(p.Z)
	return f.Mul(p.X, zInv), f.Mul(p.Y, zInv)
}

// RandomAffine samples a random point via rejection sampling: pick x,
// attempt sqrt(x³+ax+b), retry on failure.
func RandomAffine[T any](w Witness[T], sampleX func(io.Reader) T, rng io.Reader) Point[T] {
	f := w.F
	for {
		x := sampleX(rng)
		rhs := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(w.A, x)), w.B)
		y, ok := w.Sqrt.SqrtOf(rhs)
		if !ok {
			continue
		}
		pt, err := NewAffine(w, x, y)
		if err != nil {
			continue
		}
		return pt
	}
}
