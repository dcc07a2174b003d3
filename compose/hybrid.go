package compose

import (
	"io"

	"github.com/pkg/errors"
)

// ErrDecapsulation is the error arm for a failed KEM decapsulation.
var ErrDecapsulation = errors.New("compose: hybrid decapsulation failed")

// ErrDecryption is the error arm for a failed private-key decryption once
// decapsulation has already succeeded.
var ErrDecryption = errors.New("compose: hybrid private-key decryption failed")

// KEM is the capability Hybrid needs from its key-encapsulation half: a key
// pair over PK/SK, encapsulating to a symmetric key K plus a KEM-cipher C1.
type KEM[PK, SK, K, C1 any] interface {
	KeyGen(rng io.Reader) (PK, SK, error)
	Encapsulate(rng io.Reader, pk PK) (key K, c1 C1, err error)
	Decapsulate(sk SK, c1 C1) (K, error)
}

// PrivateScheme is the capability Hybrid needs from its symmetric half: a
// scheme keyed by K, encrypting M to C2.
type PrivateScheme[K, M, C2 any] interface {
	Encrypt(key K, msg M) C2
	Decrypt(key K, ctxt C2) (M, error)
}

// HybridCiphertext is the pair (KEM-cipher, symmetric-cipher).
type HybridCiphertext[C1, C2 any] struct {
	C1 C1
	C2 C2
}

// Hybrid combines a KEM and a symmetric PrivateScheme it keys into a
// public-key encryption scheme over M.
type Hybrid[PK, SK, K, C1, M, C2 any] struct {
	Kem     KEM[PK, SK, K, C1]
	Private PrivateScheme[K, M, C2]
}

func (h Hybrid[PK, SK, K, C1, M, C2]) KeyGen(rng io.Reader) (PK, SK, error) {
	return h.Kem.KeyGen(rng)
}

// Encrypt encapsulates a fresh symmetric key, then encrypts m under it.
func (h Hybrid[PK, SK, K, C1, M, C2]) Encrypt(rng io.Reader, pk PK, m M) (HybridCiphertext[C1, C2], error) {
	var zero HybridCiphertext[C1, C2]
	key, c1, err := h.Kem.Encapsulate(rng, pk)
	if err != nil {
		return zero, errors.Wrap(err, "compose: hybrid encapsulation")
	}
	c2 := h.Private.Encrypt(key, m)
	return HybridCiphertext[C1, C2]{C1: c1, C2: c2}, nil
}

// Decrypt decapsulates the symmetric key, then decrypts the body under it.
// The two failure arms are distinguishable via errors.Is against
// ErrDecapsulation and ErrDecryption.
func (h Hybrid[PK, SK, K, C1, M, C2]) Decrypt(sk SK, c HybridCiphertext[C1, C2]) (M, error) {
	var zero M
	key, err := h.Kem.Decapsulate(sk, c.C1)
	if err != nil {
		return zero, errors.Wrapf(ErrDecapsulation, "%v", err)
	}
	m, err := h.Private.Decrypt(key, c.C2)
	if err != nil {
		return zero, errors.Wrapf(ErrDecryption, "%v", err)
	}
	return m, nil
}

// HybridSerializer concatenates the KEM-cipher and symmetric-cipher wire
// encodings, in that order.
type HybridSerializer[C1, C2 any] struct {
	C1 serializer[C1]
	C2 serializer[C2]
}

func (s HybridSerializer[C1, C2]) Serialize(c HybridCiphertext[C1, C2]) []byte {
	out := s.C1.Serialize(c.C1)
	out = append(out, s.C2.Serialize(c.C2)...)
	return out
}

// HybridDeserializer is the inverse of HybridSerializer: graceful end of
// stream if the KEM-cipher field never starts, hard error if it starts but
// the symmetric-cipher field is truncated.
type HybridDeserializer[C1, C2 any] struct {
	C1 deserializer[C1]
	C2 deserializer[C2]
}

func (d HybridDeserializer[C1, C2]) Deserialize(data []byte) (c HybridCiphertext[C1, C2], consumed int, ok bool, err error) {
	c1, n1, ok1, err1 := d.C1.Deserialize(data)
	if err1 != nil {
		return c, 0, true, err1
	}
	if !ok1 {
		return c, 0, false, nil
	}
	rest := data[n1:]
	c2, n2, ok2, err2 := d.C2.Deserialize(rest)
	if err2 != nil {
		return c, 0, true, err2
	}
	if !ok2 {
		return c, 0, true, ErrNotEnoughBytesHybrid
	}
	return HybridCiphertext[C1, C2]{C1: c1, C2: c2}, n1 + n2, true, nil
}

// ErrNotEnoughBytesHybrid mirrors codec.ErrNotEnoughBytes for the case where
// a HybridCiphertext's symmetric-cipher field is truncated on the wire.
// Kept local to compose so this package never needs to import codec just
// for a sentinel.
var ErrNotEnoughBytesHybrid = errors.New("compose: hybrid ciphertext truncated")

// InfallibleAdapter lifts a private-key scheme whose Decrypt cannot fail
// (like elgamal.VectorMask) to the fallible PrivateScheme shape Hybrid
// expects.
type InfallibleAdapter[K, M, C2 any] struct {
	EncryptFn func(key K, msg M) C2
	DecryptFn func(key K, ctxt C2) M
}

func (a InfallibleAdapter[K, M, C2]) Encrypt(key K, msg M) C2 {
	return a.EncryptFn(key, msg)
}

func (a InfallibleAdapter[K, M, C2]) Decrypt(key K, ctxt C2) (M, error) {
	return a.DecryptFn(key, ctxt), nil
}
