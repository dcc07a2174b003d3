package elgamal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavode/hybrid-elgamal/algebra"
)

func testVectorMask() VectorMask[*big.Int] {
	p := big.NewInt(23)
	zp := algebra.NewZp(p)
	q := big.NewInt(11)
	return VectorMask[*big.Int]{
		Group: fixedOrderGroup{Zp: zp, order: q},
		Base:  big.NewInt(4),
	}
}

func TestVectorMaskRoundTrip(t *testing.T) {
	vm := testVectorMask()
	key := []byte("a shared kem-derived symmetric key")

	msg := []*big.Int{big.NewInt(1), big.NewInt(9), big.NewInt(16), big.NewInt(2)}
	ct := vm.Encrypt(key, msg)
	require.Len(t, ct, len(msg))

	got := vm.Decrypt(key, ct)
	for i := range msg {
		assert.True(t, vm.Group.Equal(got[i], msg[i]), "index %d", i)
	}
}

func TestVectorMaskDifferentIndicesMaskDifferently(t *testing.T) {
	vm := testVectorMask()
	key := []byte("another key")

	same := big.NewInt(7)
	msg := []*big.Int{same, same, same}
	ct := vm.Encrypt(key, msg)

	// Same plaintext at every index must not produce the same ciphertext
	// element, or the per-index masks would be colliding.
	assert.False(t, ct[0].Cmp(ct[1]) == 0 && ct[1].Cmp(ct[2]) == 0)
}
