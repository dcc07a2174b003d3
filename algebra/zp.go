package algebra

import "math/big"

// Zp is the multiplicative group of units modulo a prime P, presented under
// the Group[T] contract's additive vocabulary via the standard log
// isomorphism: Zero() is the multiplicative identity 1, Add is the product,
// Neg is the inverse, and ScalarMul(n, x) is x^n. This reads as surprising
// next to Zn (where the vocabulary's literal meaning holds), but it lets the
// same generic ElGamal construction run over both a prime-field subgroup and
// an additively-written elliptic curve group without two copies of KeyGen/
// Encrypt/Decrypt.
type Zp struct {
	zn Zn
	p  *big.Int
}

// NewZp returns the Zp descriptor for the prime P.
func NewZp(p *big.Int) Zp {
	return Zp{zn: NewZn(p), p: new(big.Int).Set(p)}
}

func (z Zp) Underlying() Zn { return z.zn }

// Zero is the multiplicative identity 1.
func (z Zp) Zero() *big.Int { return big.NewInt(1) }

// One, confusingly under the additive vocabulary, is also 1: Zp has no
// second constant distinct from the identity, so One and Zero coincide.
func (z Zp) One() *big.Int { return big.NewInt(1) }

// Add is the group product.
func (z Zp) Add(x, y *big.Int) *big.Int { return z.zn.Mul(x, y) }

// Mul, required by the Ring embedding, coincides with Add: Zp has no
// separate ring multiplication distinct from its group operation.
func (z Zp) Mul(x, y *big.Int) *big.Int { return z.zn.Mul(x, y) }

// Neg is the multiplicative inverse.
func (z Zp) Neg(x *big.Int) *big.Int { return z.zn.Inv(x) }

func (z Zp) Sub(x, y *big.Int) *big.Int { return z.Add(x, z.Neg(y)) }

// ScalarMul(n, x) computes x^n via fast exponentiation: the group's n-fold
// "addition" of x is literal exponentiation under the log isomorphism.
func (z Zp) ScalarMul(n *big.Int, x *big.Int) *big.Int {
	return z.zn.Pow(x, n)
}

func (z Zp) Equal(x, y *big.Int) bool { return z.zn.Equal(x, y) }

// Order returns P-1, the order of the full unit group. Callers working in a
// prime-order subgroup of Zp* (the usual ElGamal setup) should use that
// subgroup's own order for scalar sampling, not this one.
func (z Zp) Order() *big.Int {
	return new(big.Int).Sub(z.p, big.NewInt(1))
}

// Element validates and returns x as a Zp element: any residue other than
// 0 is a unit when P is prime. Returns ErrIsZero for the zero residue, which
// has no place in the multiplicative group.
func (z Zp) Element(x *big.Int) (*big.Int, error) {
	r := z.zn.Reduce(x)
	if r.Sign() == 0 {
		return nil, ErrIsZero
	}
	return r, nil
}
