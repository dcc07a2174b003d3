package algebra

import "math/big"

// FullSqrt wraps a Zn descriptor with a general Tonelli-Shanks square root,
// valid for any odd prime modulus rather than only the N ≡ 3 (mod 4) case
// Zn.SqrtOf shortcuts. NIST P-224's field modulus is ≡ 1 (mod 4)
// (2^224 - 2^96 + 1), so its curve.Witness must use this descriptor instead
// of the bare Zn shortcut. Delegates to math/big.Int.ModSqrt, which already
// implements full Tonelli-Shanks as part of the same big.Int type this
// module threads everywhere; no corpus example reimplements it, and there is
// no ecosystem reason to hand-roll what the standard library already gets
// right for the type we are already using.
type FullSqrt struct {
	Zn Zn
}

// SqrtOf returns (y, true) with y*y == x (mod N) when x is a quadratic
// residue, else (nil, false). Panics if N is not prime.
func (s FullSqrt) SqrtOf(x *big.Int) (*big.Int, bool) {
	if !s.Zn.N.ProbablyPrime(32) {
		panic("algebra: FullSqrt requires a prime modulus")
	}
	root := new(big.Int).ModSqrt(s.Zn.Reduce(x), s.Zn.N)
	if root == nil {
		return nil, false
	}
	return root, true
}
