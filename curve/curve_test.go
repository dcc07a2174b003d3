package curve

import (
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavode/hybrid-elgamal/algebra"
)

// A small test curve: y² = x³ + 2x + 2 over Z17, a well-known textbook
// example with order 19 and generator (5, 1).
func testWitness() Witness[*big.Int] {
	z17 := algebra.NewZn(big.NewInt(17))
	return Witness[*big.Int]{
		F:     z17,
		Sqrt:  algebra.FullSqrt{Zn: z17},
		A:     big.NewInt(2),
		B:     big.NewInt(2),
		Order: big.NewInt(19),
	}
}

func testGenerator(t *testing.T, w Witness[*big.Int]) Point[*big.Int] {
	g, err := NewAffine(w, big.NewInt(5), big.NewInt(1))
	require.NoError(t, err)
	return g
}

func TestNewAffineRejectsOffCurve(t *testing.T) {
	w := testWitness()
	_, err := NewAffine(w, big.NewInt(1), big.NewInt(1))
	assert.ErrorIs(t, err, ErrNotOnCurve)
}

func TestIdentityIsAdditiveIdentity(t *testing.T) {
	w := testWitness()
	g := testGenerator(t, w)
	id := Identity(w)

	assert.True(t, g.Add(id).Equal(g))
	assert.True(t, id.Add(g).Equal(g))
}

func TestPointPlusNegIsIdentity(t *testing.T) {
	w := testWitness()
	g := testGenerator(t, w)
	assert.True(t, g.Add(g.Neg()).Equal(Identity(w)))
}

func TestDoublingMatchesRepeatedAddition(t *testing.T) {
	w := testWitness()
	g := testGenerator(t, w)
	doubled := g.Add(g)
	scaled := g.ScalarMul(big.NewInt(2))
	assert.True(t, doubled.Equal(scaled))
}

func TestScalarMulByGroupOrderIsIdentity(t *testing.T) {
	w := testWitness()
	g := testGenerator(t, w)
	assert.True(t, g.ScalarMul(w.Order).Equal(Identity(w)))
}

func TestScalarMulComplementIsNegation(t *testing.T) {
	// k·P + (order-k)·P = 0, for several k.
	w := testWitness()
	g := testGenerator(t, w)
	for k := int64(1); k < 19; k++ {
		kp := g.ScalarMul(big.NewInt(k))
		rest := g.ScalarMul(new(big.Int).Sub(w.Order, big.NewInt(k)))
		assert.True(t, kp.Add(rest).Equal(Identity(w)), "k=%d", k)
	}
}

func TestAffineRoundtrip(t *testing.T) {
	w := testWitness()
	g := testGenerator(t, w)
	x, y := g.Affine()
	assert.Equal(t, 0, x.Cmp(big.NewInt(5)))
	assert.Equal(t, 0, y.Cmp(big.NewInt(1)))
}

func TestAffinePanicsOnIdentity(t *testing.T) {
	w := testWitness()
	assert.Panics(t, func() { Identity(w).Affine() })
}

func TestRandomAffineProducesValidPoints(t *testing.T) {
	w := testWitness()
	sampleX := func(r io.Reader) *big.Int {
		buf := make([]byte, 1)
		r.Read(buf)
		return new(big.Int).SetInt64(int64(buf[0]) % 17)
	}
	rng := deterministicReader{seed: 3}
	pt := RandomAffine[*big.Int](w, sampleX, rng)
	x, y := pt.Affine()
	_, err := NewAffine(w, x, y)
	assert.NoError(t, err)
}

type deterministicReader struct{ seed byte }

func (r deterministicReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.seed
		r.seed++
	}
	return len(p), nil
}
