package compose

import (
	"encoding/hex"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ErrTooLong is returned by Stringer.Encrypt when the plaintext does not
// fit into a single encoded message value M.
var ErrTooLong = errors.New("compose: message too long to encode")

// ErrNotAHex is returned by Stringer.Decrypt when the input is not valid
// hex.
var ErrNotAHex = errors.New("compose: ciphertext is not valid hex")

// ErrDeserialization is returned by Stringer.Decrypt when the decoded bytes
// do not deserialize to a well-formed ciphertext.
var ErrDeserialization = errors.New("compose: ciphertext deserialization failed")

// ErrDecoding is returned by Stringer.Decrypt when the decrypted message
// element cannot be decoded back to a byte payload.
var ErrDecoding = errors.New("compose: message decoding failed")

// ErrNotUtf8 is returned by Stringer.Decrypt when the decoded bytes are not
// valid UTF-8.
var ErrNotUtf8 = errors.New("compose: decoded payload is not valid UTF-8")

type encoder[M any] interface {
	Encode(payload []byte) (elem M, consumed int, ok bool)
}

type decoder[M any] interface {
	Decode(elem M) ([]byte, error)
}

type serializer[C any] interface {
	Serialize(elem C) []byte
}

type deserializer[C any] interface {
	Deserialize(data []byte) (elem C, consumed int, ok bool, err error)
}

// Stringer lifts a Scheme[PK,SK,M,C], with M byte-embeddable and C
// byte-serializable, to a String -> String public-key scheme: hex-encoded
// ciphertext in, plaintext UTF-8 string out.
type Stringer[PK, SK, M, C any] struct {
	Inner       Scheme[PK, SK, M, C]
	Encoder     encoder[M]
	Decoder     decoder[M]
	Serializer  serializer[C]
	Deserialize deserializer[C]
}

func (s Stringer[PK, SK, M, C]) KeyGen(rng io.Reader) (PK, SK, error) {
	return s.Inner.KeyGen(rng)
}

// Encrypt embeds the UTF-8 bytes of msg into a single M, encrypts it, then
// serializes and hex-encodes the resulting ciphertext.
func (s Stringer[PK, SK, M, C]) Encrypt(rng io.Reader, pk PK, msg string) (string, error) {
	payload := []byte(msg)
	elem, consumed, ok := s.Encoder.Encode(payload)
	if !ok || consumed != len(payload) {
		return "", ErrTooLong
	}

	c, err := s.Inner.Encrypt(rng, pk, elem)
	if err != nil {
		return "", errors.Wrap(err, "compose: stringer encryption")
	}

	wire := s.Serializer.Serialize(c)
	return hex.EncodeToString(wire), nil
}

// Decrypt hex-decodes, deserializes the ciphertext, decrypts, decodes the
// resulting element back to bytes, and validates the bytes as UTF-8.
func (s Stringer[PK, SK, M, C]) Decrypt(sk SK, hexCiphertext string) (string, error) {
	wire, err := hex.DecodeString(hexCiphertext)
	if err != nil {
		return "", errors.Wrap(ErrNotAHex, err.Error())
	}

	c, _, ok, err := s.Deserialize.Deserialize(wire)
	if err != nil {
		return "", errors.Wrap(ErrDeserialization, err.Error())
	}
	if !ok {
		return "", errors.Wrap(ErrDeserialization, "empty ciphertext")
	}

	elem, err := s.Inner.Decrypt(sk, c)
	if err != nil {
		return "", errors.Wrap(ErrDecryption, err.Error())
	}

	payload, err := s.Decoder.Decode(elem)
	if err != nil {
		return "", errors.Wrap(ErrDecoding, err.Error())
	}

	if !utf8.Valid(payload) {
		return "", ErrNotUtf8
	}
	return string(payload), nil
}
