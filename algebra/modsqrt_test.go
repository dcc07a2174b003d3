package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullSqrtHandlesOneModFourModulus(t *testing.T) {
	// 13 ≡ 1 (mod 4): Zn.SqrtOf's shortcut would panic on this modulus.
	s := FullSqrt{Zn: NewZn(bi(13))}

	root, ok := s.SqrtOf(bi(4))
	assert.True(t, ok)
	assert.Equal(t, 0, new(big.Int).Mul(root, root).Mod(new(big.Int).Mul(root, root), bi(13)).Cmp(bi(4)))
}

func TestFullSqrtRejectsNonResidue(t *testing.T) {
	s := FullSqrt{Zn: NewZn(bi(13))}

	// 2 is not a quadratic residue mod 13.
	_, ok := s.SqrtOf(bi(2))
	assert.False(t, ok)
}

func TestFullSqrtPanicsOnCompositeModulus(t *testing.T) {
	s := FullSqrt{Zn: NewZn(bi(15))}
	assert.Panics(t, func() { s.SqrtOf(bi(4)) })
}
