// Package facade type-erases the two generic backends behind a single
// Cipher interface: callers pick a backend once at construction and never
// see a type parameter afterwards.
package facade

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/lavode/hybrid-elgamal/backend"
	"github.com/lavode/hybrid-elgamal/compose"
	"github.com/lavode/hybrid-elgamal/curve"
	"github.com/lavode/hybrid-elgamal/elgamal"
)

// Cipher is a public-key string cryptosystem with its key pair already
// generated and bound in: Encrypt/Decrypt need only a random source and the
// plaintext or hex ciphertext.
type Cipher interface {
	Encrypt(rng io.Reader, msg string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// ErrUnsupportedMode names an encryption mode this library does not
// implement. Neither NewP224 nor NewBigPrime returns it.
var ErrUnsupportedMode = errors.New("facade: unsupported encryption mode")

type p224Cipher struct {
	stringer compose.Stringer[
		elgamal.PublicKey[curve.Point[*big.Int]],
		elgamal.SecretKey[curve.Point[*big.Int]],
		[]curve.Point[*big.Int],
		compose.HybridCiphertext[curve.Point[*big.Int], []curve.Point[*big.Int]],
	]
	pub  elgamal.PublicKey[curve.Point[*big.Int]]
	priv elgamal.SecretKey[curve.Point[*big.Int]]
}

// NewP224 generates a fresh P-224 key pair, sourcing randomness from rng,
// and returns a Cipher bound to it.
func NewP224(rng io.Reader) (Cipher, error) {
	stringer := backend.P224Cipher()
	pub, priv, err := stringer.KeyGen(rng)
	if err != nil {
		return nil, errors.Wrap(err, "facade: P-224 key generation")
	}
	return p224Cipher{stringer: stringer, pub: pub, priv: priv}, nil
}

func (c p224Cipher) Encrypt(rng io.Reader, msg string) (string, error) {
	return c.stringer.Encrypt(rng, c.pub, msg)
}

func (c p224Cipher) Decrypt(ciphertext string) (string, error) {
	return c.stringer.Decrypt(c.priv, ciphertext)
}

type bigPrimeCipher struct {
	stringer compose.Stringer[
		elgamal.PublicKey[*big.Int],
		elgamal.SecretKey[*big.Int],
		[]*big.Int,
		compose.HybridCiphertext[*big.Int, []*big.Int],
	]
	pub  elgamal.PublicKey[*big.Int]
	priv elgamal.SecretKey[*big.Int]
}

// NewBigPrime samples a fresh Schnorr subgroup of the given bit lengths and
// a key pair within it, sourcing all randomness from rng, and returns a
// Cipher bound to it.
func NewBigPrime(rng io.Reader, pBits, qBits int) (Cipher, error) {
	stringer, err := backend.BigPrimeCipher(rng, pBits, qBits)
	if err != nil {
		return nil, errors.Wrap(err, "facade: big-prime group generation")
	}
	pub, priv, err := stringer.KeyGen(rng)
	if err != nil {
		return nil, errors.Wrap(err, "facade: big-prime key generation")
	}
	return bigPrimeCipher{stringer: stringer, pub: pub, priv: priv}, nil
}

func (c bigPrimeCipher) Encrypt(rng io.Reader, msg string) (string, error) {
	return c.stringer.Encrypt(rng, c.pub, msg)
}

func (c bigPrimeCipher) Decrypt(ciphertext string) (string, error) {
	return c.stringer.Decrypt(c.priv, ciphertext)
}
