package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// x^2 + 3 is irreducible over Z5: 5's quadratic residues are {0,1,4}, and
// a root would require x^2 = -3 = 2, a non-residue.
func irreducibleMod() Poly[*big.Int] {
	z5 := NewZn(bi(5))
	return NewPoly(z5, []*big.Int{bi(3), bi(0), bi(1)})
}

func TestPolyFieldInvIsInverse(t *testing.T) {
	z5 := NewZn(bi(5))
	pf := NewPolyField[*big.Int](z5, irreducibleMod())

	elems := []Poly[*big.Int]{
		NewPoly(z5, []*big.Int{bi(1), bi(1)}),
		NewPoly(z5, []*big.Int{bi(2), bi(3)}),
		NewPoly(z5, []*big.Int{bi(4)}),
	}
	for _, e := range elems {
		inv := pf.Inv(e)
		got := pf.Mul(e, inv)
		assert.True(t, got.Equal(pf.One()), "element %v", e)
	}
}

func TestPolyFieldAddSubRoundtrip(t *testing.T) {
	z5 := NewZn(bi(5))
	pf := NewPolyField[*big.Int](z5, irreducibleMod())

	a := NewPoly(z5, []*big.Int{bi(2), bi(4)})
	b := NewPoly(z5, []*big.Int{bi(3), bi(1)})

	sum := pf.Add(a, b)
	back := pf.Sub(sum, b)
	assert.True(t, back.Equal(pf.Reduce(a)))
}

func TestPolyFieldMulReducesModulo(t *testing.T) {
	z5 := NewZn(bi(5))
	pf := NewPolyField[*big.Int](z5, irreducibleMod())

	x := NewPoly(z5, []*big.Int{bi(0), bi(1)}) // the element x
	xSquared := pf.Mul(x, x)

	// x^2 = -3 = 2 in the quotient, since x^2 + 3 = 0.
	want := NewPoly(z5, []*big.Int{bi(2)})
	assert.True(t, xSquared.Equal(want))
}

func TestPolyFieldInvPanicsOnReducibleModulus(t *testing.T) {
	z5 := NewZn(bi(5))
	// x^2 - 1 = (x-1)(x+1) is reducible: dividing by x-1 (a zero divisor
	// representative) should fail to invert.
	reducible := NewPoly(z5, []*big.Int{bi(4), bi(0), bi(1)})
	pf := NewPolyField[*big.Int](z5, reducible)

	zeroDivisor := NewPoly(z5, []*big.Int{bi(4), bi(1)}) // x - 1
	assert.Panics(t, func() { pf.Inv(zeroDivisor) })
}
