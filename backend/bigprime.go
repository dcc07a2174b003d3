package backend

import (
	"io"
	"math/big"

	"github.com/lavode/hybrid-elgamal/algebra"
	"github.com/lavode/hybrid-elgamal/codec"
	"github.com/lavode/hybrid-elgamal/compose"
	"github.com/lavode/hybrid-elgamal/elgamal"
)

// Default bit lengths for the big-prime backend's Schnorr subgroup.
const (
	DefaultPBits = 1024
	DefaultQBits = 128
)

// schnorrGroup presents a Schnorr subgroup's multiplicative structure as an
// algebra.FinGroup[*big.Int]: Zp's own Order() is P-1 (the whole unit
// group), but the subgroup generated by G has the smaller prime order Q.
type schnorrGroup struct {
	algebra.Zp
	q *big.Int
}

func (g schnorrGroup) Order() *big.Int { return g.q }

// BigPrimeScheme generates a fresh Schnorr subgroup of the requested bit
// lengths from rng, and returns the raw generic ElGamal scheme over it
// alongside the group itself (callers need G and P beyond what
// elgamal.Scheme exposes, to size wire codecs and the vector mask's base
// point).
func BigPrimeScheme(rng io.Reader, pBits, qBits int) (elgamal.Scheme[*big.Int], elgamal.SchnorrGroup, error) {
	sg, err := elgamal.GenerateSchnorrGroup(rng, pBits, qBits)
	if err != nil {
		return elgamal.Scheme[*big.Int]{}, sg, err
	}
	group := schnorrGroup{Zp: algebra.NewZp(sg.P), q: sg.Q}
	scheme := elgamal.Scheme[*big.Int]{
		Group: group,
		Gen:   func(io.Reader) (*big.Int, error) { return sg.G, nil },
	}
	return scheme, sg, nil
}

// BigPrimeCipher generates a fresh Schnorr subgroup from rng and returns the
// fully assembled Stringer(Hybrid(KEM, VectorMask)) cryptosystem over it.
func BigPrimeCipher(rng io.Reader, pBits, qBits int) (compose.Stringer[
	elgamal.PublicKey[*big.Int],
	elgamal.SecretKey[*big.Int],
	[]*big.Int,
	compose.HybridCiphertext[*big.Int, []*big.Int],
], error) {
	var zero compose.Stringer[
		elgamal.PublicKey[*big.Int],
		elgamal.SecretKey[*big.Int],
		[]*big.Int,
		compose.HybridCiphertext[*big.Int, []*big.Int],
	]

	scheme, sg, err := BigPrimeScheme(rng, pBits, qBits)
	if err != nil {
		return zero, err
	}

	znWire := codec.NewZnSerializer(algebra.NewZn(sg.P).ByteLen())

	kem := elgamal.KEM[*big.Int]{
		Scheme:    scheme,
		Serialize: znWire.Serialize,
		KeyLen:    32,
	}
	mask := elgamal.VectorMask[*big.Int]{Group: scheme.Group, Base: sg.G}

	hybrid := compose.Hybrid[
		elgamal.PublicKey[*big.Int],
		elgamal.SecretKey[*big.Int],
		[]byte,
		*big.Int,
		[]*big.Int,
		[]*big.Int,
	]{
		Kem: kem,
		Private: compose.InfallibleAdapter[[]byte, []*big.Int, []*big.Int]{
			EncryptFn: mask.Encrypt,
			DecryptFn: mask.Decrypt,
		},
	}

	// Chunk size must leave room for the embedding's +1: ByteLen(P)-1 bytes
	// can never reach P even when every byte is 0xFF, regardless of pBits.
	chunkLen := algebra.NewZn(sg.P).ByteLen() - 1
	encoding := codec.ZpEncoding{ChunkLen: chunkLen}
	vecSerializer := codec.VectorSerializer[*big.Int]{Elem: znWire}
	vecDeserializer := codec.VectorDeserializer[*big.Int]{Elem: znWire}

	return compose.Stringer[
		elgamal.PublicKey[*big.Int],
		elgamal.SecretKey[*big.Int],
		[]*big.Int,
		compose.HybridCiphertext[*big.Int, []*big.Int],
	]{
		Inner:   hybrid,
		Encoder: codec.VectorAsEncoding[*big.Int]{Vector: codec.VectorEncoding[*big.Int]{Elem: encoding}},
		Decoder: codec.VectorDecoding[*big.Int]{Elem: encoding},
		Serializer: compose.HybridSerializer[*big.Int, []*big.Int]{
			C1: znWire,
			C2: vecSerializer,
		},
		Deserialize: compose.HybridDeserializer[*big.Int, []*big.Int]{
			C1: znWire,
			C2: codec.VectorAsDeserialize[*big.Int]{Vector: vecDeserializer},
		},
	}, nil
}
