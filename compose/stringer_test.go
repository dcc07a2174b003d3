package compose

import (
	cryptorand "crypto/rand"
	"io"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lavode/hybrid-elgamal/algebra"
)

// byteElementEncoding embeds a single byte per call as value+1 (never
// zero), round-tripping through Decode by subtracting 1. Used to exercise
// Stringer's own plumbing in isolation from the full hybrid backend wiring
// (those round trips are exercised end-to-end in backend/facade tests).
type byteElementEncoding struct{}

var errByteOutOfRange = errors.New("compose test: element out of byte range")

func (byteElementEncoding) Encode(payload []byte) (*big.Int, int, bool) {
	if len(payload) == 0 {
		return nil, 0, false
	}
	return big.NewInt(int64(payload[0]) + 1), 1, true
}

func (byteElementEncoding) Decode(elem *big.Int) ([]byte, error) {
	n := new(big.Int).Sub(elem, big.NewInt(1)).Int64()
	if n < 0 || n > 255 {
		return nil, errByteOutOfRange
	}
	return []byte{byte(n)}, nil
}

// znWire is a fixed-width big.Int wire serializer/deserializer for a
// 257-modulus toy field, wide enough to carry byteElementEncoding's 1..256
// range.
type znWire struct{ width int }

func (w znWire) Serialize(elem *big.Int) []byte {
	out := make([]byte, w.width)
	b := elem.Bytes()
	for i, j := 0, len(b)-1; j >= 0 && i < w.width; i, j = i+1, j-1 {
		out[i] = b[j]
	}
	return out
}

func (w znWire) Deserialize(data []byte) (*big.Int, int, bool, error) {
	if len(data) == 0 {
		return nil, 0, false, nil
	}
	if len(data) < w.width {
		return nil, 0, true, errByteOutOfRange
	}
	be := make([]byte, w.width)
	for i, j := 0, w.width-1; i < w.width; i, j = i+1, j-1 {
		be[j] = data[i]
	}
	return new(big.Int).SetBytes(be), w.width, true, nil
}

// toyScheme is a minimal Scheme[PK,SK,M,C] over Z257*'s additive-as-product
// vocabulary, standing in for a real public-key scheme purely to exercise
// Stringer's hex/codec plumbing end to end.
type toyScheme struct{ zp algebra.Zp }

func (t toyScheme) KeyGen(rng io.Reader) (*big.Int, *big.Int, error) {
	k, err := cryptorand.Int(rng, big.NewInt(256))
	if err != nil {
		return nil, nil, err
	}
	k.Add(k, big.NewInt(1))
	return k, k, nil
}

func (t toyScheme) Encrypt(rng io.Reader, pk *big.Int, m *big.Int) (*big.Int, error) {
	return t.zp.Add(pk, m), nil
}

func (t toyScheme) Decrypt(sk *big.Int, c *big.Int) (*big.Int, error) {
	return t.zp.Sub(c, sk), nil
}

func testStringer() Stringer[*big.Int, *big.Int, *big.Int, *big.Int] {
	zp := algebra.NewZp(big.NewInt(257))
	return Stringer[*big.Int, *big.Int, *big.Int, *big.Int]{
		Inner:       toyScheme{zp: zp},
		Encoder:     byteElementEncoding{},
		Decoder:     byteElementEncoding{},
		Serializer:  znWire{width: 2},
		Deserialize: znWire{width: 2},
	}
}

func TestStringerRoundTrip(t *testing.T) {
	s := testStringer()
	pub, priv, err := s.KeyGen(cryptorand.Reader)
	require.NoError(t, err)

	for _, msg := range []string{"a", "Z", "\x00", "\x7f"} {
		hexCt, err := s.Encrypt(cryptorand.Reader, pub, msg)
		require.NoError(t, err)

		got, err := s.Decrypt(priv, hexCt)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestStringerRejectsTooLongMessage(t *testing.T) {
	s := testStringer()
	pub, _, err := s.KeyGen(cryptorand.Reader)
	require.NoError(t, err)

	_, err = s.Encrypt(cryptorand.Reader, pub, "ab")
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestStringerRejectsNonHex(t *testing.T) {
	s := testStringer()
	_, priv, err := s.KeyGen(cryptorand.Reader)
	require.NoError(t, err)

	_, err = s.Decrypt(priv, "not-hex!!")
	assert.ErrorIs(t, err, ErrNotAHex)
}

func TestStringerRejectsEmptyCiphertext(t *testing.T) {
	s := testStringer()
	_, priv, err := s.KeyGen(cryptorand.Reader)
	require.NoError(t, err)

	_, err = s.Decrypt(priv, "")
	assert.ErrorIs(t, err, ErrDeserialization)
}
