package algebra

import "math/big"

// monome is a (coefficient, degree) pair, an internal helper for long
// division.
type monome[T any] struct {
	coeff  T
	degree int
}

// Poly is a dense polynomial over a field F, coefficients least-significant
// first, trailing zero-coefficients always trimmed. The zero polynomial is
// the empty coefficient slice; degree(0) = 0.
type Poly[T any] struct {
	f      Field[T]
	coeffs []T
}

// NewPoly builds a Poly from coefficients (least-significant first),
// trimming trailing zeros.
func NewPoly[T any](f Field[T], coeffs []T) Poly[T] {
	return Poly[T]{f: f, coeffs: trim(f, coeffs)}
}

func trim[T any](f Field[T], coeffs []T) []T {
	n := len(coeffs)
	for n > 0 && f.Equal(coeffs[n-1], f.Zero()) {
		n--
	}
	out := make([]T, n)
	copy(out, coeffs[:n])
	return out
}

// Degree returns len(coeffs)-1, or 0 for the zero polynomial.
func (p Poly[T]) Degree() int {
	if len(p.coeffs) == 0 {
		return 0
	}
	return len(p.coeffs) - 1
}

func (p Poly[T]) IsZero() bool { return len(p.coeffs) == 0 }

// Lead returns the leading (highest-degree) coefficient, or F's zero for
// the zero polynomial.
func (p Poly[T]) Lead() T {
	if p.IsZero() {
		return p.f.Zero()
	}
	return p.coeffs[len(p.coeffs)-1]
}

func (p Poly[T]) leadMonome() monome[T] {
	return monome[T]{coeff: p.Lead(), degree: p.Degree()}
}

// Coeff returns the coefficient of x^i, or F's zero if i exceeds the degree.
func (p Poly[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.coeffs) {
		return p.f.Zero()
	}
	return p.coeffs[i]
}

func (p Poly[T]) Field() Field[T] { return p.f }

func (p Poly[T]) Add(q Poly[T]) Poly[T] {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.f.Add(p.Coeff(i), q.Coeff(i))
	}
	return NewPoly(p.f, out)
}

func (p Poly[T]) Neg() Poly[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.f.Neg(c)
	}
	return NewPoly(p.f, out)
}

func (p Poly[T]) Sub(q Poly[T]) Poly[T] {
	return p.Add(q.Neg())
}

// ScaleBy multiplies every coefficient by a single field element (used by
// PolyField.Inv to normalize a Bezout coefficient).
func (p Poly[T]) ScaleBy(k T) Poly[T] {
	out := make([]T, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = p.f.Mul(c, k)
	}
	return NewPoly(p.f, out)
}

// Mul multiplies by schoolbook O(n*m): group addends by target degree, sum
// each bucket.
func (p Poly[T]) Mul(q Poly[T]) Poly[T] {
	if p.IsZero() || q.IsZero() {
		return NewPoly(p.f, nil)
	}
	out := make([]T, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = p.f.Zero()
	}
	for i, a := range p.coeffs {
		for j, b := range q.coeffs {
			out[i+j] = p.f.Add(out[i+j], p.f.Mul(a, b))
		}
	}
	return NewPoly(p.f, out)
}

func (p Poly[T]) Equal(q Poly[T]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.f.Equal(p.coeffs[i], q.coeffs[i]) {
			return false
		}
	}
	return true
}

// DivRem divides by divisor using repeated leading-monome elimination:
// while deg(self) >= deg(divisor), q = lead(self)/lead(divisor), push q to
// the quotient, subtract q*divisor*x^(shift) from self. Returns
// (remainder, quotient) in that order. divisor must be nonzero.
func (p Poly[T]) DivRem(divisor Poly[T]) (remainder, quotient Poly[T]) {
	if divisor.IsZero() {
		panic("algebra: polynomial division by zero")
	}
	f := p.f
	remainder = p
	quotientCoeffs := make([]T, 0)
	divisorLead := divisor.leadMonome()

	for !remainder.IsZero() && remainder.Degree() >= divisor.Degree() {
		shift := remainder.Degree() - divisor.Degree()
		q := f.Mul(remainder.Lead(), f.Inv(divisorLead.coeff))

		for len(quotientCoeffs) <= shift {
			quotientCoeffs = append(quotientCoeffs, f.Zero())
		}
		quotientCoeffs[shift] = q

		sub := divisor.shiftedScale(q, shift)
		remainder = remainder.Sub(sub)
	}

	return remainder, NewPoly(f, quotientCoeffs)
}

// shiftedScale computes divisor * k * x^shift.
func (p Poly[T]) shiftedScale(k T, shift int) Poly[T] {
	out := make([]T, len(p.coeffs)+shift)
	for i := range out {
		out[i] = p.f.Zero()
	}
	for i, c := range p.coeffs {
		out[i+shift] = p.f.Mul(c, k)
	}
	return NewPoly(p.f, out)
}

// PolyRing adapts Poly[T] arithmetic to the Ring/Integral[Poly[T]]
// descriptor contracts, so generic algorithms like ExtendedGCD can operate
// on polynomials the same way they operate on *big.Int via Zn.
type PolyRing[T any] struct {
	F Field[T]
}

func (r PolyRing[T]) Zero() Poly[T] { return NewPoly(r.F, nil) }
func (r PolyRing[T]) One() Poly[T]  { return NewPoly(r.F, []T{r.F.One()}) }
func (r PolyRing[T]) Add(a, b Poly[T]) Poly[T] { return a.Add(b) }
func (r PolyRing[T]) Neg(a Poly[T]) Poly[T]    { return a.Neg() }
func (r PolyRing[T]) Sub(a, b Poly[T]) Poly[T] { return a.Sub(b) }
func (r PolyRing[T]) Mul(a, b Poly[T]) Poly[T] { return a.Mul(b) }
func (r PolyRing[T]) Equal(a, b Poly[T]) bool  { return a.Equal(b) }

func (r PolyRing[T]) ScalarMul(n *big.Int, a Poly[T]) Poly[T] {
	return RepeatMonoid(r.Add, n, a, r.Zero())
}

// QuoRem implements Integral[Poly[T]] using DivRem, reordered to the
// (quotient, remainder) shape the Integral contract expects.
func (r PolyRing[T]) QuoRem(a, b Poly[T]) (quotient, remainder Poly[T]) {
	remainder, quotient = a.DivRem(b)
	return
}
