package codec

// Pair is a generic two-element composite with its own wire codec. The
// ElGamal and hybrid ciphertexts do not use it: they have their own types
// (elgamal.Ciphertext, compose.HybridCiphertext).
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairSerializer serializes a Pair by concatenating the serialized fields.
type PairSerializer[A, B any] struct {
	A Serialize[A]
	B Serialize[B]
}

func (s PairSerializer[A, B]) Serialize(p Pair[A, B]) []byte {
	out := s.A.Serialize(p.First)
	out = append(out, s.B.Serialize(p.Second)...)
	return out
}

// PairDeserializer deserializes a Pair, with graceful end-of-stream if the
// first field never starts, and a hard ErrNotEnoughBytes if the first field
// deserializes but the second is truncated.
type PairDeserializer[A, B any] struct {
	A Deserialize[A]
	B Deserialize[B]
}

func (d PairDeserializer[A, B]) Deserialize(data []byte) (p Pair[A, B], consumed int, ok bool, err error) {
	a, ca, oka, erra := d.A.Deserialize(data)
	if erra != nil {
		return p, 0, true, erra
	}
	if !oka {
		return p, 0, false, nil
	}
	rest := data[ca:]
	b, cb, okb, errb := d.B.Deserialize(rest)
	if errb != nil {
		return p, 0, true, errb
	}
	if !okb {
		return p, 0, true, ErrNotEnoughBytes
	}
	return Pair[A, B]{First: a, Second: b}, ca + cb, true, nil
}

// VectorSerializer concatenates each element's serialization with no length
// prefix; termination on deserialize is by stream exhaustion.
type VectorSerializer[C any] struct {
	Elem Serialize[C]
}

func (s VectorSerializer[C]) Serialize(v []C) []byte {
	out := []byte{}
	for _, c := range v {
		out = append(out, s.Elem.Serialize(c)...)
	}
	return out
}

// VectorDeserializer reads elements until the stream is exhausted. A
// truncated final element is a hard error (ErrNotEnoughBytes), not treated
// as a graceful end.
type VectorDeserializer[C any] struct {
	Elem Deserialize[C]
}

func (d VectorDeserializer[C]) Deserialize(data []byte) ([]C, error) {
	var out []C
	for len(data) > 0 {
		elem, consumed, ok, err := d.Elem.Deserialize(data)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		out = append(out, elem)
		data = data[consumed:]
	}
	return out, nil
}

// VectorEncoding repeatedly applies an element Encoding across a payload
// until the payload is exhausted, producing the vector of elements a
// Stringer layer serializes as a single message.
type VectorEncoding[M any] struct {
	Elem Encoding[M]
}

func (e VectorEncoding[M]) Encode(payload []byte) []M {
	var out []M
	for len(payload) > 0 {
		elem, consumed, ok := e.Elem.Encode(payload)
		if !ok {
			break
		}
		out = append(out, elem)
		payload = payload[consumed:]
	}
	return out
}

// VectorAsDeserialize adapts a VectorDeserializer, which greedily consumes
// an entire buffer into a slice of elements, to the single-value
// Deserialize[[]C] shape. Only correct when the vector is the terminal
// field of whatever composite wraps it: it always reports ok=true, even for
// a zero-byte remainder, since an empty vector is this field's legitimate
// empty-message representation rather than a sign the field never started.
type VectorAsDeserialize[C any] struct {
	Vector VectorDeserializer[C]
}

func (v VectorAsDeserialize[C]) Deserialize(data []byte) ([]C, int, bool, error) {
	elems, err := v.Vector.Deserialize(data)
	if err != nil {
		return nil, 0, true, err
	}
	return elems, len(data), true, nil
}

// VectorAsEncoding adapts a VectorEncoding, which greedily encodes an entire
// payload into a slice of elements, to the single-value Encoding[[]M] shape:
// for schemes whose message type is itself a vector (one curve point per
// payload byte, say), the whole payload is "one message", consumed in a
// single Encode call. Always reports ok=true, even for an empty payload
// (the empty string encodes as the empty vector), since there is no
// subsequent call this adapter would need to signal "no more" to.
type VectorAsEncoding[M any] struct {
	Vector VectorEncoding[M]
}

func (v VectorAsEncoding[M]) Encode(payload []byte) ([]M, int, bool) {
	return v.Vector.Encode(payload), len(payload), true
}

// VectorDecoding decodes a vector of elements back to a single payload by
// concatenating each element's decoded bytes, short-circuiting on the first
// inner error.
type VectorDecoding[M any] struct {
	Elem Decoding[M]
}

func (d VectorDecoding[M]) Decode(elems []M) ([]byte, error) {
	var out []byte
	for _, elem := range elems {
		chunk, err := d.Elem.Decode(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}
