package codec

import "math/big"

// ZpEncoding embeds a byte chunk into a Zp residue by interpreting it as an
// integer and shifting by one, so the all-zero chunk never collides with
// the additive identity 1 that Zp.Zero() represents. Safe only when
// ChunkLen <= ByteLen(P)-1, so even the all-0xFF chunk plus one stays below
// P; callers are responsible for sizing ChunkLen against the modulus they
// embed into (the big-prime backend derives it from the generated modulus
// as algebra.NewZn(sg.P).ByteLen()-1).
type ZpEncoding struct {
	ChunkLen int
}

func (e ZpEncoding) Encode(payload []byte) (elem *big.Int, consumed int, ok bool) {
	if len(payload) == 0 {
		return nil, 0, false
	}
	n := e.ChunkLen
	if n > len(payload) {
		n = len(payload)
	}
	x := new(big.Int).SetBytes(payload[:n])
	x.Add(x, big.NewInt(1))
	return x, n, true
}

func (e ZpEncoding) Decode(elem *big.Int) ([]byte, error) {
	x := new(big.Int).Sub(elem, big.NewInt(1))
	if x.Sign() < 0 {
		return nil, ErrTooBig
	}
	raw := x.Bytes()
	if len(raw) > e.ChunkLen {
		return nil, ErrTooBig
	}
	out := make([]byte, e.ChunkLen)
	copy(out[e.ChunkLen-len(raw):], raw)
	return out, nil
}
