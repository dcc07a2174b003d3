package codec

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavode/hybrid-elgamal/algebra"
	"github.com/lavode/hybrid-elgamal/curve"
)

func zn(n int64) algebra.Zn { return algebra.NewZn(big.NewInt(n)) }

func TestZnSerializerRoundTrip(t *testing.T) {
	z := zn(1009)
	s := NewZnSerializer(z.ByteLen())

	for _, v := range []int64{0, 1, 500, 1008} {
		wire := s.Serialize(big.NewInt(v))
		got, consumed, ok, err := s.Deserialize(wire)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, len(wire), consumed)
		assert.Equal(t, 0, got.Cmp(big.NewInt(v)))
	}
}

func TestZnSerializerGracefulEOF(t *testing.T) {
	s := NewZnSerializer(4)
	_, consumed, ok, err := s.Deserialize(nil)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, consumed)
}

func TestZnSerializerHardErrorOnTruncation(t *testing.T) {
	s := NewZnSerializer(4)
	_, _, ok, err := s.Deserialize([]byte{1, 2})
	assert.True(t, ok)
	assert.ErrorIs(t, err, ErrNotEnoughBytes)
}

// A textbook curve for exercising the point codec: y² = x³ + 2x + 2 over
// Z17, order 19, generator (5, 1).
func testWitness() curve.Witness[*big.Int] {
	z17 := zn(17)
	return curve.Witness[*big.Int]{
		F: z17, Sqrt: z17,
		A: big.NewInt(2), B: big.NewInt(2), Order: big.NewInt(19),
	}
}

func TestPointSerializerRoundTrip(t *testing.T) {
	w := testWitness()
	elemCodec := NewZnSerializer(w.F.(algebra.Zn).ByteLen())
	ps := PointSerializer[*big.Int]{W: w, Elem: elemCodec}

	g, err := curve.NewAffine(w, big.NewInt(5), big.NewInt(1))
	require.NoError(t, err)

	for k := int64(0); k < 19; k++ {
		pt := g.ScalarMul(big.NewInt(k))
		wire := ps.Serialize(pt)
		got, consumed, ok, err := ps.Deserialize(wire)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, len(wire), consumed)
		assert.True(t, got.Equal(pt), "k=%d", k)
	}
}

func TestPointSerializerIdentity(t *testing.T) {
	w := testWitness()
	elemCodec := NewZnSerializer(w.F.(algebra.Zn).ByteLen())
	ps := PointSerializer[*big.Int]{W: w, Elem: elemCodec}

	wire := ps.Serialize(curve.Identity(w))
	assert.Equal(t, []byte{0x00}, wire)

	got, consumed, ok, err := ps.Deserialize(wire)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, consumed)
	assert.True(t, got.IsIdentity())
}

func TestVectorSerializerRoundTrip(t *testing.T) {
	z := zn(1009)
	elem := NewZnSerializer(z.ByteLen())
	vs := VectorSerializer[*big.Int]{Elem: elem}
	vd := VectorDeserializer[*big.Int]{Elem: elem}

	values := []*big.Int{big.NewInt(1), big.NewInt(500), big.NewInt(999)}
	wire := vs.Serialize(values)

	got, err := vd.Deserialize(wire)
	require.NoError(t, err)
	require.Len(t, got, len(values))
	for i := range values {
		assert.Equal(t, 0, got[i].Cmp(values[i]))
	}
}

// bigFieldWitness uses a 61-bit Mersenne prime (2^61-1, ≡ 3 mod 4) so the
// bucket-search embedding's x0*Bucket+i candidates never wrap around the
// modulus — the same margin the real P-224 field gives the production
// encoder, just at test scale. The curve coefficients are arbitrary: the
// bucket-search embedding needs only a field and A/B to evaluate the curve
// equation, not an actual known point on it.
func bigFieldWitness() curve.Witness[*big.Int] {
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1))
	z := algebra.NewZn(p)
	return curve.Witness[*big.Int]{
		F: z, Sqrt: z,
		A: big.NewInt(2), B: big.NewInt(3), Order: nil,
	}
}

func TestPointEncodingRoundTrip(t *testing.T) {
	w := bigFieldWitness()
	e := PointEncoding{W: w, Bucket: big.NewInt(1 << 16), PayloadLen: 4}

	for _, payload := range [][]byte{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{0xff, 0xff, 0xff, 0xff},
		{0, 0, 0, 7},
	} {
		elem, consumed, ok := e.Encode(payload)
		require.True(t, ok)
		assert.Equal(t, 4, consumed)

		decoded, err := e.Decode(elem)
		require.NoError(t, err)
		assert.Equal(t, payload, decoded)
	}
}

func TestPointEncodingGracefulEOF(t *testing.T) {
	w := bigFieldWitness()
	e := PointEncoding{W: w, Bucket: big.NewInt(1 << 16), PayloadLen: 4}
	_, _, ok := e.Encode(nil)
	assert.False(t, ok)
}

func TestVectorEncodingDecodingRoundTrip(t *testing.T) {
	w := bigFieldWitness()
	e := PointEncoding{W: w, Bucket: big.NewInt(1 << 16), PayloadLen: 4}
	ve := VectorEncoding[curve.Point[*big.Int]]{Elem: e}
	vd := VectorDecoding[curve.Point[*big.Int]]{Elem: e}

	payload := []byte{3, 9, 1, 0, 0, 0, 0, 200}
	elems := ve.Encode(payload)
	require.Len(t, elems, 2)

	got, err := vd.Decode(elems)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}
