package prime

import (
	"context"
	"math"
	"math/big"
)

// DeterministicTester implements the AKS-style deterministic large-number
// test used for the highest magnitude tier. In order, each step
// short-circuiting to Composite on failure:
//
//  1. Small-case re-check.
//  2. Perfect-power rejection.
//  3. Order search: scan successive primes r > 2 until the maximal value of
//     n^k mod r for k in [1, floor(sqrt(r))], a proxy for the multiplicative
//     order of n mod r, exceeds (log2 n)^2.
//  4. GCD screen: any a in [2, min(r, n)-1] sharing a factor with n proves
//     compositeness.
//  5. Early acceptance when n ≤ r.
//  6. Residue check: with n-1 = d·2^s and d odd, every a in
//     [2, floor(sqrt(r))·log2 n) must satisfy the strong Fermat congruence
//     a^d ≡ 1 (mod n) or a^(d·2^i) ≡ n-1 (mod n) for some i < s.
//  7. Acceptance.
//
// Perfect powers are rejected with exact integer root extraction rather than
// the floating-point root comparison of the historical formulation. The
// approximate check is a known source of misclassification near perfect
// powers of large candidates; this implementation deliberately takes the
// exact-arithmetic fix instead of replicating the hazard.
//
// Every prime satisfies the strong congruence for every base coprime to it,
// so the residue step can only reject composites. The order search guarantees
// r > (log2 n)^2, which places the base range past 2·(ln n)^2, the classical
// deterministic witness bound for composites under the extended Riemann
// hypothesis.
type DeterministicTester struct{}

// Name returns the name of the algorithm.
func (t *DeterministicTester) Name() string {
	return "AKS"
}

// TestCore decides the primality of n with the deterministic step sequence
// described on the type.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (unused; the test has no tunable
//     parameters).
//
// Returns:
//   - bool: true if n is prime.
//   - error: An error if the context was cancelled mid-run.
func (t *DeterministicTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	if prime, decided := ScreenSmall(n); decided {
		return prime, nil
	}

	power, err := isPerfectPower(ctx, n)
	if err != nil {
		return false, err
	}
	if power {
		return false, nil
	}

	r, err := findOrderBound(ctx, n)
	if err != nil {
		return false, err
	}

	// GCD screen over [2, min(r, n)-1]. Any shared factor is a nontrivial
	// divisor of n.
	screenTop := r
	if n.IsUint64() && n.Uint64() < r {
		screenTop = n.Uint64()
	}
	a := new(big.Int)
	g := new(big.Int)
	for v := uint64(2); v < screenTop; v++ {
		if v&trialCtxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if g.GCD(nil, nil, a.SetUint64(v), n).Cmp(bigOne) > 0 {
			return false, nil
		}
	}

	// n survived every screen below r; nothing larger can divide it.
	rBig := new(big.Int).SetUint64(r)
	if n.Cmp(rBig) <= 0 {
		return true, nil
	}

	// Residue check over [2, floor(sqrt(r))·log2 n). The GCD screen already
	// proved every base below r coprime to n, and the base bound stays below
	// r because the order search forced sqrt(r) > log2(n).
	upper := isqrt64(r) * uint64(n.BitLen())
	nMinus1 := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinus1)
	s := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		s++
	}
	x := new(big.Int)
	for v := uint64(2); v < upper; v++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !strongResidue(x, a.SetUint64(v), d, nMinus1, n, s) {
			return false, nil
		}
	}
	return true, nil
}

// strongResidue reports whether the base a satisfies the strong Fermat
// congruence for n, given the decomposition n-1 = d·2^s with d odd. Primes
// satisfy the congruence for every base coprime to them; a base that fails
// it proves n composite. The scratch value x is overwritten.
func strongResidue(x, a, d, nMinus1, n *big.Int, s int) bool {
	expMod(x, a, d, n)
	if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
		return true
	}
	for i := 1; i < s; i++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nMinus1) == 0 {
			return true
		}
	}
	return false
}

// findOrderBound scans successive primes r above 2 and returns the first
// whose order proxy exceeds (log2 n)^2.
// Invariant: the loop terminates only when the proxy exceeds the threshold,
// guaranteeing the retained r is large enough for the subsequent steps. A
// prime dividing n always yields a zero proxy and is therefore never
// retained.
func findOrderBound(ctx context.Context, n *big.Int) (uint64, error) {
	l := log2(n)
	maxOrder := l * l

	scan := newPrimeScanner()
	rMod := new(big.Int)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		r := scan.next()
		if r <= 2 {
			continue
		}

		// Proxy for the multiplicative order of n mod r: the maximum of
		// n^k mod r over k in [1, floor(sqrt(r))], built incrementally.
		// All arithmetic stays in uint64 because r is small.
		nModR := rMod.Mod(n, rMod.SetUint64(r)).Uint64()
		var best uint64
		cur := uint64(1)
		for k, top := uint64(1), isqrt64(r); k <= top; k++ {
			cur = cur * nModR % r
			if cur > best {
				best = cur
			}
		}
		if float64(best) > maxOrder {
			return r, nil
		}
	}
}

// isPerfectPower reports whether n = m^b for integers m ≥ 2, b ≥ 2, using
// exact integer root extraction. Exponents beyond bit length of n cannot
// yield an integer root ≥ 2, so the scan stops there.
func isPerfectPower(ctx context.Context, n *big.Int) (bool, error) {
	maxB := n.BitLen()
	e := new(big.Int)
	check := new(big.Int)
	for b := 2; b <= maxB; b++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		root := integerRoot(n, b)
		if check.Exp(root, e.SetInt64(int64(b)), nil).Cmp(n) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// integerRoot returns floor(n^(1/b)) for n ≥ 0 and b ≥ 1, computed by binary
// search on x^b ≤ n.
func integerRoot(n *big.Int, b int) *big.Int {
	if b == 1 || n.Sign() == 0 {
		return new(big.Int).Set(n)
	}
	e := big.NewInt(int64(b))
	lo := big.NewInt(1)
	// 2^ceil(bitlen/b) is always an upper bound for the root.
	hi := new(big.Int).Lsh(bigOne, uint((n.BitLen()+b-1)/b))
	mid := new(big.Int)
	pow := new(big.Int)
	for lo.Cmp(hi) < 0 {
		// mid = (lo + hi + 1) / 2, biased up so the search makes progress.
		mid.Add(lo, hi).Add(mid, bigOne).Rsh(mid, 1)
		if pow.Exp(mid, e, nil).Cmp(n) <= 0 {
			lo.Set(mid)
		} else {
			hi.Sub(mid, bigOne)
		}
	}
	return new(big.Int).Set(lo)
}

// log2 returns an upper approximation of log2(n) derived from the bit
// length. The order-search threshold only grows with it, so approximating
// upward can at most select a slightly larger r, which is the safe
// direction.
func log2(n *big.Int) float64 {
	return float64(n.BitLen())
}

// isqrt64 returns floor(sqrt(v)) with correction for the float rounding at
// the top of the uint64 range. The comparisons are written with division so
// they cannot overflow when v approaches 2^64.
func isqrt64(v uint64) uint64 {
	r := uint64(math.Sqrt(float64(v)))
	for r > 0 && r > v/r {
		r--
	}
	for r+1 <= v/(r+1) {
		r++
	}
	return r
}
