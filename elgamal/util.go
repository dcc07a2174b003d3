package elgamal

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

// RandomBits returns bits random bits suitable for cryptographic usage, read
// from rng.
//
// Bits must be > 2. If bits is not a multiple of 8, the leading bits of the
// first byte (at index 0) will be forced to 0.
//
// It is also ensured that the two most significant bits are 1. This costs two
// bits of randomness, but helps with multiplying such numbers together. As
// such it is not suitable for use with low bit counts.
func RandomBits(rng io.Reader, bits int) ([]byte, error) {
	if bits <= 2 {
		return nil, errors.New("elgamal: bits must be > 2")
	}

	bytes := int(math.Ceil(float64(bits) / 8))
	out := make([]byte, bytes)

	if _, err := io.ReadFull(rng, out); err != nil {
		return out, errors.Wrap(ErrRandomSource, err.Error())
	}

	zeroLeadingBits := 8*bytes - bits
	// Zero leading bits, if requested not a multiple of eight
	out[0] = out[0] & (0xFF >> zeroLeadingBits)
	// Set leading two (requested) bits to 1
	out[0] = out[0] | (0xC0 >> zeroLeadingBits)

	return out, nil
}
