// Package codec implements the two byte-level contract families used
// throughout the module: Encoding/Decoding (bytes embedded into a group
// element, for plaintext) and Serialize/Deserialize (an element's canonical
// wire form, for ciphertexts). The distinction matters: Decoding may reject
// an out-of-range element, while Deserialize must round-trip every element
// exactly.
package codec

import "github.com/pkg/errors"

// ErrNotOnCurve mirrors curve.ErrNotOnCurve for deserialization contexts
// that revalidate the curve equation after reading x and y off the wire.
var ErrNotOnCurve = errors.New("codec: deserialized point is not on curve")

// ErrNotEnoughBytes is a hard failure: a composite value's second (or
// later) sub-field started but the byte stream ran out before it finished.
// Contrast with a graceful end-of-stream before any field has started.
var ErrNotEnoughBytes = errors.New("codec: not enough bytes to deserialize")

// ErrTooBig is returned by Decoding when an element falls outside the
// embeddable byte-payload subset.
var ErrTooBig = errors.New("codec: element out of embeddable range")

// ErrNotFound is returned by Decoding when no embedded payload can be
// recovered from an element (e.g. a bucket-search embedding whose bucket
// marker does not correspond to any payload).
var ErrNotFound = errors.New("codec: no payload found in element")

// Encoding embeds a byte payload into an element of M, consuming some
// prefix of the input stream. ok is false only at a graceful end-of-stream
// (no more payload to embed), never on a hard error.
type Encoding[M any] interface {
	Encode(payload []byte) (elem M, consumed int, ok bool)
}

// Decoding recovers a byte payload from an element of M.
type Decoding[M any] interface {
	Decode(elem M) (payload []byte, err error)
}

// Serialize writes the canonical wire form of an element of C.
type Serialize[C any] interface {
	Serialize(elem C) []byte
}

// Deserialize reads one element of C off the front of a byte stream,
// returning the element and the number of bytes consumed. ok is false only
// on a graceful end-of-stream before any byte of this element was read.
type Deserialize[C any] interface {
	Deserialize(data []byte) (elem C, consumed int, ok bool, err error)
}
