package algebra

import "math/big"

// Zn is the ring of integers modulo N, represented by canonical residues in
// [0, N). It is a descriptor, not a value: construct one per modulus and
// call its methods on bare *big.Int values (e.g. zn.Mul(x, y)) rather than
// wrapping each value in its own modulus-aware type.
type Zn struct {
	N *big.Int
}

// NewZn returns the Zn descriptor for modulus n. n must be positive.
func NewZn(n *big.Int) Zn {
	if n.Sign() <= 0 {
		panic("algebra: Zn modulus must be positive")
	}
	return Zn{N: new(big.Int).Set(n)}
}

// ByteLen returns (BitLen(N)+7)/8, the byte length of N itself, which is
// enough for a fixed-width encoding of any residue. This equals
// ceil(log2(N)/8) except when log2(N) is a multiple of 8: N = 256 gives 2.
func (z Zn) ByteLen() int {
	bits := z.N.BitLen()
	if bits == 0 {
		return 1
	}
	return (bits + 7) / 8
}

// Reduce returns the canonical representative of x modulo N.
func (z Zn) Reduce(x *big.Int) *big.Int {
	r := new(big.Int).Mod(x, z.N)
	return r
}

func (z Zn) Zero() *big.Int { return big.NewInt(0) }
func (z Zn) One() *big.Int  { return big.NewInt(1) }

func (z Zn) Add(x, y *big.Int) *big.Int {
	return z.Reduce(new(big.Int).Add(x, y))
}

func (z Zn) Neg(x *big.Int) *big.Int {
	return z.Reduce(new(big.Int).Sub(z.N, z.Reduce(x)))
}

func (z Zn) Sub(x, y *big.Int) *big.Int {
	return z.Add(x, z.Neg(y))
}

func (z Zn) Mul(x, y *big.Int) *big.Int {
	return z.Reduce(new(big.Int).Mul(x, y))
}

// ScalarMul computes n*x mod N via fast doubling (RepeatMonoid over Add).
func (z Zn) ScalarMul(n *big.Int, x *big.Int) *big.Int {
	if n.Sign() < 0 {
		return z.ScalarMul(new(big.Int).Neg(n), z.Neg(x))
	}
	return RepeatMonoid(z.Add, n, x, z.Zero())
}

// Pow computes x^n mod N via fast exponentiation (RepeatMonoid over Mul).
func (z Zn) Pow(x *big.Int, n *big.Int) *big.Int {
	if n.Sign() < 0 {
		return z.Pow(z.Inv(x), new(big.Int).Neg(n))
	}
	return RepeatMonoid(z.Mul, n, x, z.One())
}

func (z Zn) Equal(x, y *big.Int) bool {
	return z.Reduce(x).Cmp(z.Reduce(y)) == 0
}

// Inv computes the multiplicative inverse of x modulo N via extended GCD.
// Panics if x shares a nontrivial factor with N (x is not a unit) — a
// contract violation, not a data error.
func (z Zn) Inv(x *big.Int) *big.Int {
	g, a, _ := ExtendedGCD(bigIntegral{}, z.Reduce(x), z.N)
	one := big.NewInt(1)
	switch {
	case g.Cmp(one) == 0:
		// a*x + b*N = 1, a is already the inverse.
	case g.Cmp(new(big.Int).Neg(one)) == 0:
		// a*x + b*N = -1, negate both sides.
		a = new(big.Int).Neg(a)
	default:
		panic("algebra: value has no inverse mod N (not a unit)")
	}
	return z.Reduce(a)
}

// QuoRem implements Integral[*big.Int]: ordinary integer division and
// remainder (not reduced mod N — Zn's Euclidean structure is that of the
// integers it was built from; used only by ExtendedGCD).
func (z Zn) QuoRem(x, y *big.Int) (quotient, remainder *big.Int) {
	quotient = new(big.Int)
	remainder = new(big.Int)
	quotient.QuoRem(x, y, remainder)
	return
}

// SqrtOf implements the Tonelli-shortcut square root x^((N+1)/4), valid only
// when N is prime and N ≡ 3 (mod 4). It panics if N ≢ 3 (mod 4) or N is not
// prime. The candidate root is verified by squaring before being returned:
// (nil, false) means x is not a quadratic residue mod N.
func (z Zn) SqrtOf(x *big.Int) (*big.Int, bool) {
	four := big.NewInt(4)
	mod4 := new(big.Int).Mod(z.N, four)
	if mod4.Cmp(big.NewInt(3)) != 0 {
		panic("algebra: SqrtOf requires N ≡ 3 (mod 4)")
	}
	if !z.N.ProbablyPrime(32) {
		panic("algebra: SqrtOf requires a prime modulus")
	}
	exp := new(big.Int).Add(z.N, big.NewInt(1))
	exp.Div(exp, four)
	candidate := z.Pow(z.Reduce(x), exp)
	check := z.Mul(candidate, candidate)
	if z.Equal(check, x) {
		return candidate, true
	}
	return nil, false
}

// bigIntegral adapts plain *big.Int arithmetic (not reduced mod anything) to
// the Integral[*big.Int] contract, for use by ExtendedGCD when computing
// Bezout coefficients over the integers rather than over Zn.
type bigIntegral struct{}

func (bigIntegral) Zero() *big.Int { return big.NewInt(0) }
func (bigIntegral) One() *big.Int  { return big.NewInt(1) }
func (bigIntegral) Add(x, y *big.Int) *big.Int {
	return new(big.Int).Add(x, y)
}
func (bigIntegral) Neg(x *big.Int) *big.Int { return new(big.Int).Neg(x) }
func (bigIntegral) Sub(x, y *big.Int) *big.Int {
	return new(big.Int).Sub(x, y)
}
func (bigIntegral) Mul(x, y *big.Int) *big.Int {
	return new(big.Int).Mul(x, y)
}
func (bigIntegral) ScalarMul(n, x *big.Int) *big.Int {
	return new(big.Int).Mul(n, x)
}
func (bigIntegral) Equal(x, y *big.Int) bool { return x.Cmp(y) == 0 }
func (bigIntegral) QuoRem(x, y *big.Int) (quotient, remainder *big.Int) {
	quotient = new(big.Int)
	remainder = new(big.Int)
	quotient.QuoRem(x, y, remainder)
	return
}
