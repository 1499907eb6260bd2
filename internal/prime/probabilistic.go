package prime

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

// FermatTester implements the Fermat compositeness test.
// For k rounds it draws a random witness a in [2, n-2] and checks Fermat's
// little theorem: a^(n-1) ≡ 1 (mod n). Any violation is a proof of
// compositeness and short-circuits. If every round passes, n is reported
// prime: a probabilistic verdict with known pathological failure classes
// (Carmichael numbers pass every coprime witness), which is why the
// dispatcher never relies on Fermat alone.
type FermatTester struct{}

// Name returns the name of the algorithm.
func (t *FermatTester) Name() string {
	return "Fermat"
}

// TestCore runs opts.Rounds independent Fermat rounds against n.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (round count, witness source).
//
// Returns:
//   - bool: false on a definitive compositeness proof, true if every round
//     passed (probably prime).
//   - error: An error if the witness source failed or the context was
//     cancelled.
func (t *FermatTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	opts = normalizeOptions(opts)
	if prime, decided := ScreenSmall(n); decided {
		return prime, nil
	}

	nMinus1 := new(big.Int).Sub(n, bigOne)
	x := new(big.Int)
	for round := 0; round < opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		a, err := opts.Witnesses.Witness(n)
		if err != nil {
			return false, apperrors.WrapError(err, "fermat round %d", round)
		}
		if expMod(x, a, nMinus1, n).Cmp(bigOne) != 0 {
			return false, nil
		}
	}
	return true, nil
}

// MillerRabinTester implements the Miller-Rabin compositeness test.
// It decomposes n-1 as d·2^r with d odd, then for k rounds draws a random
// witness a and checks the square chain of a^d mod n. A round passes when
// a^d is 1 or n-1, or when one of the r-1 subsequent squarings reaches n-1;
// otherwise a is a witness to compositeness and the test short-circuits.
//
// A Prime verdict carries a false-positive probability of at most 4^-k; a
// Composite verdict is always exact. The test never rejects a true prime.
type MillerRabinTester struct{}

// Name returns the name of the algorithm.
func (t *MillerRabinTester) Name() string {
	return "Miller-Rabin"
}

// TestCore runs opts.Rounds independent Miller-Rabin rounds against n.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (round count, witness source).
//
// Returns:
//   - bool: false on a definitive compositeness proof, true if every round
//     passed (probably prime, bound ≤ 4^-k).
//   - error: An error if the witness source failed or the context was
//     cancelled.
func (t *MillerRabinTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	opts = normalizeOptions(opts)
	if prime, decided := ScreenSmall(n); decided {
		return prime, nil
	}

	// Decompose n-1 = d * 2^r with d odd.
	nMinus1 := new(big.Int).Sub(n, bigOne)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	x := new(big.Int)
	for round := 0; round < opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		a, err := opts.Witnesses.Witness(n)
		if err != nil {
			return false, apperrors.WrapError(err, "miller-rabin round %d", round)
		}
		expMod(x, a, d, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		passed := false
		for i := 0; i < r-1; i++ {
			x.Mul(x, x).Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				passed = true
				break
			}
		}
		if !passed {
			return false, nil
		}
	}
	return true, nil
}

// ChainedProbabilisticTester combines the Fermat and Miller-Rabin tests:
// both must independently report "probably prime" before the candidate is
// accepted, and a Composite verdict from either is definitive and
// short-circuits. Chaining is defense in depth, not a proof: Fermat is cheap
// but blind to Carmichael numbers, Miller-Rabin carries the tighter 4^-k
// bound. A residual false-positive probability remains and is an accepted,
// documented property of this tier.
type ChainedProbabilisticTester struct {
	fermat      FermatTester
	millerRabin MillerRabinTester
}

// Name returns the name of the combined algorithm.
func (t *ChainedProbabilisticTester) Name() string {
	return "Fermat+Miller-Rabin"
}

// TestCore runs the Fermat test and, only if it passes, the Miller-Rabin
// test.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (round count, witness source).
//
// Returns:
//   - bool: true only if both sub-tests report probably prime.
//   - error: An error from either sub-test.
func (t *ChainedProbabilisticTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	prime, err := t.fermat.TestCore(ctx, n, opts)
	if err != nil || !prime {
		return false, err
	}
	return t.millerRabin.TestCore(ctx, n, opts)
}
