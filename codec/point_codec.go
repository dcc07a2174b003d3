package codec

import (
	"math/big"

	"github.com/lavode/hybrid-elgamal/curve"
)

// PointSerializer implements Serialize/Deserialize for curve.Point[T]: 0x00
// for infinity, or 0x01 followed by the serialized x and y field elements.
// Deserialize revalidates the curve equation, since an
// arbitrary (x, y) pair read off the wire need not be a point at all.
type PointSerializer[T any] struct {
	W    curve.Witness[T]
	Elem interface {
		Serialize[T]
		Deserialize[T]
	}
}

func (s PointSerializer[T]) Serialize(p curve.Point[T]) []byte {
	if p.IsIdentity() {
		return []byte{0x00}
	}
	x, y := p.Affine()
	out := append([]byte{0x01}, s.Elem.Serialize(x)...)
	out = append(out, s.Elem.Serialize(y)...)
	return out
}

func (s PointSerializer[T]) Deserialize(data []byte) (p curve.Point[T], consumed int, ok bool, err error) {
	var zero curve.Point[T]
	if len(data) == 0 {
		return zero, 0, false, nil
	}
	switch data[0] {
	case 0x00:
		return curve.Identity(s.W), 1, true, nil
	case 0x01:
		rest := data[1:]
		x, cx, okx, errx := s.Elem.Deserialize(rest)
		if errx != nil {
			return zero, 0, true, errx
		}
		if !okx {
			return zero, 0, true, ErrNotEnoughBytes
		}
		rest = rest[cx:]
		y, cy, oky, erry := s.Elem.Deserialize(rest)
		if erry != nil {
			return zero, 0, true, erry
		}
		if !oky {
			return zero, 0, true, ErrNotEnoughBytes
		}
		pt, err := curve.NewAffine(s.W, x, y)
		if err != nil {
			return zero, 0, true, ErrNotOnCurve
		}
		return pt, 1 + cx + cy, true, nil
	default:
		return zero, 0, true, ErrNotEnoughBytes
	}
}

// PointEncoding implements bucket-search plaintext embedding: a byte chunk
// becomes x0 = chunk, scaled by Bucket; then
// x0, x0+1, x0+2, ... are tried until x³+ax+b has a square root (probability
// ≈ 1/2 per candidate). Decode recovers the chunk by integer division by
// Bucket. Exhausting the bucket without finding a root is a contract
// violation (panics), not a data error: it would require essentially every
// candidate in an entire bucket to be a non-residue, astronomically
// unlikely for any honestly-sized bucket.
type PointEncoding struct {
	W          curve.Witness[*big.Int]
	Bucket     *big.Int
	PayloadLen int
}

func (e PointEncoding) Encode(payload []byte) (elem curve.Point[*big.Int], consumed int, ok bool) {
	if len(payload) == 0 {
		return curve.Point[*big.Int]{}, 0, false
	}
	n := e.PayloadLen
	if n > len(payload) {
		n = len(payload)
	}
	chunk := payload[:n]

	x0 := new(big.Int).SetBytes(chunk)
	x0.Mul(x0, e.Bucket)

	f := e.W.F
	for i := int64(0); new(big.Int).SetInt64(i).Cmp(e.Bucket) < 0; i++ {
		x := new(big.Int).Add(x0, big.NewInt(i))
		rhs := f.Add(f.Add(f.Mul(f.Mul(x, x), x), f.Mul(e.W.A, x)), e.W.B)
		y, found := e.W.Sqrt.SqrtOf(rhs)
		if !found {
			continue
		}
		pt, err := curve.NewAffine(e.W, x, y)
		if err != nil {
			continue
		}
		return pt, n, true
	}
	panic("codec: bucket-search embedding exhausted its bucket")
}

func (e PointEncoding) Decode(elem curve.Point[*big.Int]) ([]byte, error) {
	if elem.IsIdentity() {
		return nil, ErrNotFound
	}
	x, _ := elem.Affine()
	x0 := new(big.Int).Div(x, e.Bucket)

	raw := x0.Bytes()
	if len(raw) > e.PayloadLen {
		return nil, ErrTooBig
	}
	out := make([]byte, e.PayloadLen)
	copy(out[e.PayloadLen-len(raw):], raw)
	return out, nil
}
