package prime

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

// trialCtxCheckMask controls how often the divisor loop polls the context.
// A power-of-two mask keeps the check essentially free.
const trialCtxCheckMask = 1<<16 - 1

// TrialDivisionTester decides primality by scanning candidate divisors from
// 2 up to floor(sqrt(n)). Exact and deterministic, O(sqrt n) time, O(1)
// space. The trial tier boundary exists only because of the time cost for
// large candidates.
type TrialDivisionTester struct{}

// Name returns the name of the algorithm.
func (t *TrialDivisionTester) Name() string {
	return "Trial Division"
}

// TestCore decides the primality of n by exhaustive divisor search.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (unused; trial division has no parameters).
//
// Returns:
//   - bool: true if n is prime.
//   - error: An error if n does not fit in a uint64 (out-of-tier invocation)
//     or the context was cancelled.
func (t *TrialDivisionTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	if prime, decided := ScreenSmall(n); decided {
		return prime, nil
	}
	if !n.IsUint64() {
		return false, apperrors.NewValidationError("n", "candidate exceeds the trial-division engine's addressable range", n.String())
	}
	m := n.Uint64()

	// The bound is written i <= m/i rather than i*i <= m so it cannot
	// overflow when m approaches 2^64.
	for i := uint64(2); i <= m/i; i++ {
		if i&trialCtxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return false, err
			}
		}
		if m%i == 0 {
			return false, nil
		}
	}
	return true, nil
}
