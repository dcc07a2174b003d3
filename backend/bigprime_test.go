package backend

import (
	cryptorand "crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test-scale bit lengths, deliberately far below DefaultPBits/DefaultQBits
// so the Schnorr group generation in these tests stays fast; production
// callers should use the defaults or larger.
const (
	testPBits = 128
	testQBits = 40
)

func TestBigPrimeSchemeGroupProperties(t *testing.T) {
	scheme, sg, err := BigPrimeScheme(cryptorand.Reader, testPBits, testQBits)
	require.NoError(t, err)
	assert.True(t, sg.P.ProbablyPrime(32))
	assert.True(t, sg.Q.ProbablyPrime(32))
	assert.Equal(t, 0, scheme.Group.Order().Cmp(sg.Q))
}

func TestBigPrimeCipherRoundTrip(t *testing.T) {
	cipher, err := BigPrimeCipher(cryptorand.Reader, testPBits, testQBits)
	require.NoError(t, err)

	pub, priv, err := cipher.KeyGen(cryptorand.Reader)
	require.NoError(t, err)

	for _, msg := range []string{"hi", "", "exactly sixteen!", "longer than one chunk of sixteen bytes"} {
		hexCt, err := cipher.Encrypt(cryptorand.Reader, pub, msg)
		require.NoError(t, err)

		got, err := cipher.Decrypt(priv, hexCt)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

// Regression test: a non-ASCII payload sets the high bit of some chunk
// bytes. With a chunk size not properly derived from the modulus's byte
// length, the embedding's x+1 can equal or exceed P and get silently
// reduced, corrupting the round trip.
func TestBigPrimeCipherRoundTripNonASCII(t *testing.T) {
	cipher, err := BigPrimeCipher(cryptorand.Reader, testPBits, testQBits)
	require.NoError(t, err)

	pub, priv, err := cipher.KeyGen(cryptorand.Reader)
	require.NoError(t, err)

	for _, msg := range []string{"héllo wörld", "日本語のテスト", "ÿÿÿÿÿÿÿÿÿÿÿÿÿÿÿÿ"} {
		hexCt, err := cipher.Encrypt(cryptorand.Reader, pub, msg)
		require.NoError(t, err)

		got, err := cipher.Decrypt(priv, hexCt)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestBigPrimeCipherRejectsInvalidGroupParameters(t *testing.T) {
	_, err := BigPrimeCipher(cryptorand.Reader, 10, 10)
	assert.Error(t, err)
}
