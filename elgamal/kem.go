package elgamal

import (
	"io"

	"golang.org/x/crypto/hkdf"

	"crypto/sha256"
)

// KDF converts a serialized group element into a fixed-length symmetric
// key via HKDF-SHA256, grounded in the corpus's use of golang.org/x/crypto
// for key derivation.
type KDF struct {
	Serialize func(elem []byte) []byte
	KeyLen    int
	Info      []byte
}

func (k KDF) derive(secret []byte) ([]byte, error) {
	reader := hkdf.New(sha256.New, secret, nil, k.Info)
	key := make([]byte, k.KeyLen)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// KEM is ElGamal-KEM: same key-generation skeleton as
// Scheme, but Encapsulate/Decapsulate exchange a derived symmetric key
// instead of embedding a plaintext group element.
type KEM[T any] struct {
	Scheme    Scheme[T]
	Serialize func(T) []byte
	KeyLen    int
}

func (kem KEM[T]) kdf() KDF {
	return KDF{KeyLen: kem.KeyLen, Info: []byte("hybrid-elgamal-kem")}
}

// KeyGen delegates to the underlying ElGamal scheme.
func (kem KEM[T]) KeyGen(rng io.Reader) (PublicKey[T], SecretKey[T], error) {
	return kem.Scheme.KeyGen(rng)
}

// Encapsulate returns (kdf(y·h), y·g): a fresh symmetric key and the KEM
// ciphertext element that lets the holder of the secret key recompute it.
func (kem KEM[T]) Encapsulate(rng io.Reader, pk PublicKey[T]) (key []byte, c1 T, err error) {
	y, err := sampleScalar(rng, kem.Scheme.Group.Order())
	if err != nil {
		return nil, c1, err
	}
	shared := kem.Scheme.Group.ScalarMul(y, pk.H)
	key, err = kem.kdf().derive(kem.Serialize(shared))
	if err != nil {
		return nil, c1, err
	}
	c1 = kem.Scheme.Group.ScalarMul(y, pk.G)
	return key, c1, nil
}

// Decapsulate recomputes kdf(s·c1).
func (kem KEM[T]) Decapsulate(sk SecretKey[T], c1 T) ([]byte, error) {
	shared := kem.Scheme.Group.ScalarMul(sk.S, c1)
	return kem.kdf().derive(kem.Serialize(shared))
}
