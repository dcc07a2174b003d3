// Package backend wires the generic algebra/curve/elgamal/compose layers
// into two concrete, end-to-end usable cryptosystems: NIST P-224 elliptic
// curve ElGamal, and big-prime Schnorr-subgroup ElGamal, each presented as
// a Stringer(Hybrid(...)) composition (see SPEC_FULL.md's production
// topology resolution for why the hybrid body uses elgamal.VectorMask
// rather than a plain Vectorize).
package backend

import (
	"io"
	"math/big"

	"github.com/lavode/hybrid-elgamal/algebra"
	"github.com/lavode/hybrid-elgamal/codec"
	"github.com/lavode/hybrid-elgamal/compose"
	"github.com/lavode/hybrid-elgamal/curve"
	"github.com/lavode/hybrid-elgamal/elgamal"
)

// P-224 field and curve parameters, FIPS 186-4 D.1.2.2.
var (
	p224P  = mustHex("ffffffffffffffffffffffffffffffff000000000000000000000001")
	p224A  = mustHex("fffffffffffffffffffffffffffffffefffffffffffffffffffffffe")
	p224B  = mustHex("b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4")
	p224N  = mustHex("ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d")
	p224Gx = mustHex("b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21")
	p224Gy = mustHex("bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34")
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("backend: invalid hex constant")
	}
	return n
}

// P224Witness returns the curve.Witness describing NIST P-224:
// y² = x³ - 3x + b over the prime field of order p224P. The field modulus
// is ≡ 1 (mod 4), so it uses algebra.FullSqrt rather than Zn's own
// N ≡ 3 (mod 4) shortcut.
func P224Witness() curve.Witness[*big.Int] {
	fieldZn := algebra.NewZn(p224P)
	return curve.Witness[*big.Int]{
		F:     fieldZn,
		Sqrt:  algebra.FullSqrt{Zn: fieldZn},
		A:     p224A,
		B:     p224B,
		Order: p224N,
	}
}

// P224BasePoint returns the standard P-224 base point G for witness w.
func P224BasePoint(w curve.Witness[*big.Int]) curve.Point[*big.Int] {
	g, err := curve.NewAffine(w, p224Gx, p224Gy)
	if err != nil {
		panic("backend: P-224 base point does not satisfy curve equation")
	}
	return g
}

// P224Scheme returns the raw generic ElGamal scheme over P-224 points, with
// a fixed base-point generator: the curve parameters are public constants,
// unlike the big-prime backend's Schnorr subgroup, which is generated afresh
// on every BigPrimeScheme call.
func P224Scheme() elgamal.Scheme[curve.Point[*big.Int]] {
	w := P224Witness()
	g := P224BasePoint(w)
	return elgamal.Scheme[curve.Point[*big.Int]]{
		Group: curve.Group[*big.Int]{W: w},
		Gen:   func(rng io.Reader) (curve.Point[*big.Int], error) { return g, nil },
	}
}

// P224PointSerializer serializes/deserializes P-224 curve points over the
// wire, tagged and curve-equation-revalidating.
func P224PointSerializer(w curve.Witness[*big.Int]) codec.PointSerializer[*big.Int] {
	return codec.PointSerializer[*big.Int]{
		W:    w,
		Elem: codec.NewZnSerializer(algebra.NewZn(p224P).ByteLen()),
	}
}

// P224Cipher returns the fully assembled Stringer(Hybrid(KEM, VectorMask))
// cryptosystem over NIST P-224, mapping UTF-8 strings to hex ciphertexts and
// back.
func P224Cipher() compose.Stringer[
	elgamal.PublicKey[curve.Point[*big.Int]],
	elgamal.SecretKey[curve.Point[*big.Int]],
	[]curve.Point[*big.Int],
	compose.HybridCiphertext[curve.Point[*big.Int], []curve.Point[*big.Int]],
] {
	w := P224Witness()
	g := P224BasePoint(w)
	scheme := P224Scheme()
	pointWire := P224PointSerializer(w)

	kem := elgamal.KEM[curve.Point[*big.Int]]{
		Scheme:    scheme,
		Serialize: pointWire.Serialize,
		KeyLen:    32,
	}
	mask := elgamal.VectorMask[curve.Point[*big.Int]]{Group: scheme.Group, Base: g}

	hybrid := compose.Hybrid[
		elgamal.PublicKey[curve.Point[*big.Int]],
		elgamal.SecretKey[curve.Point[*big.Int]],
		[]byte,
		curve.Point[*big.Int],
		[]curve.Point[*big.Int],
		[]curve.Point[*big.Int],
	]{
		Kem: kem,
		Private: compose.InfallibleAdapter[[]byte, []curve.Point[*big.Int], []curve.Point[*big.Int]]{
			EncryptFn: mask.Encrypt,
			DecryptFn: mask.Decrypt,
		},
	}

	// One chunk = one curve point, 1 payload byte per point; bucket size
	// 2^16 per the embedding's published constant, comfortably inside
	// P-224's ~2^224 margin.
	pointEncoding := codec.PointEncoding{W: w, Bucket: big.NewInt(1 << 16), PayloadLen: 1}
	vecSerializer := codec.VectorSerializer[curve.Point[*big.Int]]{Elem: pointWire}
	vecDeserializer := codec.VectorDeserializer[curve.Point[*big.Int]]{Elem: pointWire}

	return compose.Stringer[
		elgamal.PublicKey[curve.Point[*big.Int]],
		elgamal.SecretKey[curve.Point[*big.Int]],
		[]curve.Point[*big.Int],
		compose.HybridCiphertext[curve.Point[*big.Int], []curve.Point[*big.Int]],
	]{
		Inner:   hybrid,
		Encoder: codec.VectorAsEncoding[curve.Point[*big.Int]]{Vector: codec.VectorEncoding[curve.Point[*big.Int]]{Elem: pointEncoding}},
		Decoder: codec.VectorDecoding[curve.Point[*big.Int]]{Elem: pointEncoding},
		Serializer: compose.HybridSerializer[curve.Point[*big.Int], []curve.Point[*big.Int]]{
			C1: pointWire,
			C2: vecSerializer,
		},
		Deserialize: compose.HybridDeserializer[curve.Point[*big.Int], []curve.Point[*big.Int]]{
			C1: pointWire,
			C2: codec.VectorAsDeserialize[curve.Point[*big.Int]]{Vector: vecDeserializer},
		},
	}
}
