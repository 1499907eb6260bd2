package prime

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

// SieveTester decides primality with a Sieve of Eratosthenes membership test.
// It builds an ephemeral boolean table up to n and reads off the entry for n.
// The algorithm is exact and deterministic at any size; the sieve tier
// boundary exists only because memory grows linearly with n. Invoking it far
// outside its tier is a configuration error, not a recoverable condition.
type SieveTester struct{}

// Name returns the name of the algorithm.
func (t *SieveTester) Name() string {
	return "Sieve of Eratosthenes"
}

// TestCore decides the primality of n by sieving the interval [0, n].
// Invariant: after processing divisor x, composite[i] is true for every i
// with a discovered proper divisor ≤ x. Multiples are marked starting at x*x
// because smaller multiples were already marked by smaller divisors.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (unused; the sieve has no parameters).
//
// Returns:
//   - bool: true if n is prime.
//   - error: An error if n does not fit in a uint64 (out-of-tier invocation)
//     or the context was cancelled.
func (t *SieveTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	if prime, decided := ScreenSmall(n); decided {
		return prime, nil
	}
	if !n.IsUint64() {
		return false, apperrors.NewValidationError("n", "candidate exceeds the sieve engine's addressable range", n.String())
	}
	m := n.Uint64()

	composite := make([]bool, m+1)
	// The bound is written x <= m/x rather than x*x <= m so it cannot
	// overflow when m approaches 2^64.
	for x := uint64(2); x <= m/x; x++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if composite[x] {
			continue
		}
		for i := x * x; i <= m; i += x {
			composite[i] = true
		}
	}
	return !composite[m], nil
}
