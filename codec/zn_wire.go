package codec

import "math/big"

// ZnSerializer implements Serialize/Deserialize for *big.Int residues as
// little-endian fixed-width byte strings of Width bytes (callers pass
// algebra.Zn.ByteLen() of the modulus).
// It serves both Zn and Zp elements, since both represent
// values as plain *big.Int residues modulo the same kind of bound.
type ZnSerializer struct {
	Width int
}

// NewZnSerializer returns a ZnSerializer of the given fixed width, usually
// the ByteLen() of the modulus's Zn descriptor.
func NewZnSerializer(byteLen int) ZnSerializer {
	return ZnSerializer{Width: byteLen}
}

func (s ZnSerializer) Serialize(elem *big.Int) []byte {
	out := make([]byte, s.Width)
	b := elem.Bytes() // big-endian, no leading zeros
	for i, j := 0, len(b)-1; j >= 0 && i < s.Width; i, j = i+1, j-1 {
		out[i] = b[j]
	}
	return out
}

func (s ZnSerializer) Deserialize(data []byte) (elem *big.Int, consumed int, ok bool, err error) {
	if len(data) == 0 {
		return nil, 0, false, nil
	}
	if len(data) < s.Width {
		return nil, 0, true, ErrNotEnoughBytes
	}
	be := make([]byte, s.Width)
	for i, j := 0, s.Width-1; i < s.Width; i, j = i+1, j-1 {
		be[j] = data[i]
	}
	return new(big.Int).SetBytes(be), s.Width, true, nil
}
