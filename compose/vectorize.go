// Package compose implements three scheme composers: Vectorize
// (element-wise lift to vectors), Hybrid (KEM + private-key scheme ->
// public-key scheme), and Stringer (byte-codec-backed scheme -> String ->
// String). Vectorize stays a fully standalone, stateless composer; the
// production pipeline's actual vector masking lives in elgamal.VectorMask.
package compose

import "io"

// Scheme is the minimal public-key scheme shape Stringer lifts and Hybrid
// provides: a key pair over types PK/SK, encrypting M to C.
type Scheme[PK, SK, M, C any] interface {
	KeyGen(rng io.Reader) (PK, SK, error)
	Encrypt(rng io.Reader, pk PK, m M) (C, error)
	Decrypt(sk SK, c C) (M, error)
}

// Vectorize lifts an innerScheme over M/C mechanically to vectors []M/[]C:
// every key is an inner key (keys are not vectors), encryption maps
// element-wise with an independent inner encryption call per element, and
// decryption maps element-wise. The inner Decrypt must be infallible, so
// Vectorize does not accept a scheme whose Decrypt returns an error, and
// its own Decrypt returns no error (it does not satisfy Scheme).
type Vectorize[PK, SK, M, C any] struct {
	Inner innerScheme[PK, SK, M, C]
}

// innerScheme matches the infallible-decrypt shape ElGamal itself has,
// which is the scheme Vectorize is most directly exercised over in this
// module (vectorized bare ElGamal).
type innerScheme[PK, SK, M, C any] interface {
	KeyGen(rng io.Reader) (PK, SK, error)
	Encrypt(rng io.Reader, pk PK, m M) (C, error)
	Decrypt(sk SK, c C) M
}

func (v Vectorize[PK, SK, M, C]) KeyGen(rng io.Reader) (PK, SK, error) {
	return v.Inner.KeyGen(rng)
}

// Encrypt encrypts each element of msg independently under the same public
// key, consuming fresh randomness per element from rng.
func (v Vectorize[PK, SK, M, C]) Encrypt(rng io.Reader, pk PK, msg []M) ([]C, error) {
	out := make([]C, len(msg))
	for i, m := range msg {
		c, err := v.Inner.Encrypt(rng, pk, m)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// Decrypt decrypts each ciphertext element independently; since the inner
// scheme's own Decrypt is infallible, so is this one.
func (v Vectorize[PK, SK, M, C]) Decrypt(sk SK, ctxt []C) []M {
	out := make([]M, len(ctxt))
	for i, c := range ctxt {
		out[i] = v.Inner.Decrypt(sk, c)
	}
	return out
}
