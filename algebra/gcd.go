package algebra

import "math/big"

// ExtendedGCD computes (g, x, y) such that a*x + b*y = g = gcd(a, b), over
// any Integral[T]. Standard iterative form.
func ExtendedGCD[T any](ring Integral[T], a, b T) (g, x, y T) {
	oldR, r := a, b
	oldS, s := ring.One(), ring.Zero()
	oldT, t := ring.Zero(), ring.One()

	for !isRingZero(ring, r) {
		quotient, _ := ring.QuoRem(oldR, r)
		oldR, r = r, ring.Sub(oldR, ring.Mul(quotient, r))
		oldS, s = s, ring.Sub(oldS, ring.Mul(quotient, s))
		oldT, t = t, ring.Sub(oldT, ring.Mul(quotient, t))
	}

	return oldR, oldS, oldT
}

func isRingZero[T any](ring Ring[T], x T) bool {
	return ring.Equal(x, ring.Zero())
}

// RepeatMonoid computes result ∘ value ∘ value ∘ ... (n copies of value,
// folded via op) using the doubling-while-squaring idiom: at each step the
// low bit of n selects whether to fold the current value into the result,
// then the value is squared (doubled, for additive notation) and n is
// halved. Correct for n = 0 (returns result unchanged). Used for both
// elliptic-curve scalar multiplication and field exponentiation.
func RepeatMonoid[T any](op func(a, b T) T, n *big.Int, value T, result T) T {
	n = new(big.Int).Set(n)
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			result = op(result, value)
		}
		value = op(value, value)
		n.Rsh(n, 1)
	}
	return result
}
