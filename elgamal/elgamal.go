// Package elgamal implements the ElGamal public-key primitive and its KEM
// variant generically over any algebra.FinGroup, plus the vector-masking
// private-key scheme that the hybrid composition pairs with the KEM. The
// KeyGen/Encrypt/Decrypt shape follows classic ElGamal (schnorr.go's
// GenerateSchnorrGroup supplies one concrete group; this package runs atop
// any group satisfying algebra.FinGroup rather than fixing it to a Schnorr
// subgroup of Zp*).
package elgamal

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/lavode/hybrid-elgamal/algebra"
)

// ErrRandomSource wraps RandomBits's failures reading from the
// caller-supplied random source, and sampleScalar's rejection of a group
// order too small to sample a nonzero scalar from. sampleScalar's own read
// failures are wrapped with a plain message instead.
var ErrRandomSource = errors.New("elgamal: failed to sample randomness")

// PublicKey is (g, h = s·g), carried together so the scheme need not
// thread the generator separately.
type PublicKey[T any] struct {
	G T
	H T
}

// SecretKey is the scalar s such that h = s·g.
type SecretKey[T any] struct {
	S *big.Int
}

// Ciphertext is the ElGamal pair (alpha, beta) = (y·g, y·h + m).
type Ciphertext[T any] struct {
	Alpha T
	Beta  T
}

// Scheme is ElGamal over a fixed finite group, with a generator-producer
// Gen supplying g given a random source. Both backends' Gen return a fixed
// generator: the P-224 base point, or the G of the Schnorr subgroup the
// big-prime backend samples once when it builds the scheme.
type Scheme[T any] struct {
	Group algebra.FinGroup[T]
	Gen   func(rng io.Reader) (T, error)
}

// sampleScalar draws a scalar in [1, order) uniformly, excluding zero.
func sampleScalar(rng io.Reader, order *big.Int) (*big.Int, error) {
	bound := new(big.Int).Sub(order, big.NewInt(1))
	if bound.Sign() <= 0 {
		return nil, errors.Wrap(ErrRandomSource, "group order too small")
	}
	for {
		n, err := cryptorand.Int(rng, bound)
		if err != nil {
			return nil, errors.Wrap(err, "elgamal: sampling scalar")
		}
		n.Add(n, big.NewInt(1)) // shift [0, order-1) to [1, order)
		if n.Sign() != 0 {
			return n, nil
		}
	}
}

// KeyGen samples g via Gen, a secret scalar s in [1, order(G)), and returns
// the public key (g, s·g) alongside the secret s.
func (s Scheme[T]) KeyGen(rng io.Reader) (PublicKey[T], SecretKey[T], error) {
	g, err := s.Gen(rng)
	if err != nil {
		return PublicKey[T]{}, SecretKey[T]{}, errors.Wrap(err, "elgamal: generating group element")
	}
	secret, err := sampleScalar(rng, s.Group.Order())
	if err != nil {
		return PublicKey[T]{}, SecretKey[T]{}, err
	}
	h := s.Group.ScalarMul(secret, g)
	return PublicKey[T]{G: g, H: h}, SecretKey[T]{S: secret}, nil
}

// Encrypt samples y in [1, order(G)) and returns (y·g, y·h + m).
func (s Scheme[T]) Encrypt(rng io.Reader, pk PublicKey[T], m T) (Ciphertext[T], error) {
	y, err := sampleScalar(rng, s.Group.Order())
	if err != nil {
		return Ciphertext[T]{}, err
	}
	alpha := s.Group.ScalarMul(y, pk.G)
	beta := s.Group.Add(s.Group.ScalarMul(y, pk.H), m)
	return Ciphertext[T]{Alpha: alpha, Beta: beta}, nil
}

// Decrypt computes beta - s·alpha. Infallible: ElGamal decryption cannot
// fail given a well-formed ciphertext.
func (s Scheme[T]) Decrypt(sk SecretKey[T], c Ciphertext[T]) T {
	return s.Group.Sub(c.Beta, s.Group.ScalarMul(sk.S, c.Alpha))
}
