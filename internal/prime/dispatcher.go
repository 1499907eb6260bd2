package prime

import (
	"context"
	"math/big"
)

// TieredTester is the default decision engine. It runs the small-case filter
// first, then routes the candidate to exactly one magnitude tier:
//
//	n < SieveLimit               -> Sieve of Eratosthenes
//	SieveLimit ≤ n < TrialLimit  -> trial division
//	TrialLimit ≤ n < ProbLimit   -> Fermat AND Miller-Rabin (both must pass)
//	n ≥ ProbLimit                -> Miller-Rabin pre-filter, then AKS
//
// Each tier runs exactly once per call; there are no cycles or retries. The
// Miller-Rabin pre-filter in the deterministic tier is a compositeness
// screen: a failed round is definitive, so the deterministic run only sees
// candidates that survive it.
type TieredTester struct {
	sieve         SieveTester
	trial         TrialDivisionTester
	probabilistic ChainedProbabilisticTester
	prefilter     MillerRabinTester
	deterministic DeterministicTester
}

// Name returns the name of the dispatching engine.
func (t *TieredTester) Name() string {
	return "Tiered"
}

// TestCore decides the primality of n via small-case filtering and magnitude
// dispatch.
//
// Parameters:
//   - ctx: The context for managing cancellation.
//   - n: The candidate integer.
//   - opts: Configuration options (tier limits, rounds, witness source).
//
// Returns:
//   - bool: true if n is (probably) prime; verdicts from the probabilistic
//     tier carry the documented residual false-positive bound.
//   - error: An error if a sub-engine failed or the context was cancelled.
func (t *TieredTester) TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error) {
	opts = normalizeOptions(opts)
	if prime, decided := ScreenSmall(n); decided {
		return prime, nil
	}

	switch TierFor(n, opts) {
	case TierSieve:
		return t.sieve.TestCore(ctx, n, opts)
	case TierTrial:
		return t.trial.TestCore(ctx, n, opts)
	case TierProbabilistic:
		return t.probabilistic.TestCore(ctx, n, opts)
	default:
		prime, err := t.prefilter.TestCore(ctx, n, opts)
		if err != nil || !prime {
			return false, err
		}
		return t.deterministic.TestCore(ctx, n, opts)
	}
}
