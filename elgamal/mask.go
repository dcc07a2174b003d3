package elgamal

import (
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/lavode/hybrid-elgamal/algebra"
)

// VectorMask is the private-key scheme that compose.Hybrid actually pairs
// with the KEM for the production Stringer(Hybrid(...)) topology (see
// SPEC_FULL.md's "Production topology resolution"). It masks each element
// of a vector by adding scalar_i·Base, with scalar_i derived from the
// KEM-shared key via HKDF keyed on the element's index, so no two elements
// of one ciphertext ever share a mask the way a stateless, index-unaware
// compose.Vectorize applied to a symmetric scheme would. Base is the same
// generator the surrounding ElGamal-KEM uses, since it is already agreed
// between sender and receiver as part of the public key.
type VectorMask[T any] struct {
	Group algebra.FinGroup[T]
	Base  T
}

const maskScalarBytes = 32

func (v VectorMask[T]) maskScalar(key []byte, index int) *big.Int {
	info := []byte(fmt.Sprintf("hybrid-elgamal-vecmask/%d", index))
	reader := hkdf.New(sha256.New, key, nil, info)
	buf := make([]byte, maskScalarBytes)
	if _, err := io.ReadFull(reader, buf); err != nil {
		panic("elgamal: hkdf expansion failed, which should be impossible for a fixed-size read")
	}
	n := new(big.Int).SetBytes(buf)
	return n.Mod(n, v.Group.Order())
}

func (v VectorMask[T]) mask(key []byte, index int) T {
	return v.Group.ScalarMul(v.maskScalar(key, index), v.Base)
}

// Encrypt masks each element of msg with a fresh per-index keystream
// element derived from key.
func (v VectorMask[T]) Encrypt(key []byte, msg []T) []T {
	out := make([]T, len(msg))
	for i, m := range msg {
		out[i] = v.Group.Add(m, v.mask(key, i))
	}
	return out
}

// Decrypt is the inverse of Encrypt: infallible, like ElGamal's own Decrypt,
// since masking/unmasking with the same derived keystream always round-trips.
func (v VectorMask[T]) Decrypt(key []byte, ctxt []T) []T {
	out := make([]T, len(ctxt))
	for i, c := range ctxt {
		out[i] = v.Group.Sub(c, v.mask(key, i))
	}
	return out
}
