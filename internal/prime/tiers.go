package prime

import "math/big"

// Tier identifies the magnitude bucket that decides a candidate once the
// small-case filter is inconclusive. Modeling the dispatch as an explicit
// enumeration with a total mapping function keeps the boundaries
// unit-testable in isolation.
type Tier int

const (
	// TierSieve covers candidates below Options.SieveLimit.
	TierSieve Tier = iota
	// TierTrial covers candidates in [SieveLimit, TrialLimit).
	TierTrial
	// TierProbabilistic covers candidates in [TrialLimit, ProbabilisticLimit).
	TierProbabilistic
	// TierDeterministic covers candidates at or above ProbabilisticLimit.
	TierDeterministic
)

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierSieve:
		return "sieve"
	case TierTrial:
		return "trial"
	case TierProbabilistic:
		return "probabilistic"
	case TierDeterministic:
		return "deterministic"
	default:
		return "unknown"
	}
}

// TierFor maps a candidate's magnitude to the tier responsible for deciding
// it. The mapping is total: every non-negative n falls into exactly one
// tier. Boundaries are half-open: a candidate equal to a limit belongs to
// the next tier up, so exactly 10^8 is decided by the probabilistic tier
// under the default thresholds.
//
// Parameters:
//   - n: The candidate integer.
//   - opts: Options carrying the configured tier limits (zero values mean
//     defaults).
//
// Returns:
//   - Tier: The tier that handles n.
func TierFor(n *big.Int, opts Options) Tier {
	opts = normalizeOptions(opts)
	if n.IsUint64() {
		v := n.Uint64()
		switch {
		case v < opts.SieveLimit:
			return TierSieve
		case v < opts.TrialLimit:
			return TierTrial
		case v < opts.ProbabilisticLimit:
			return TierProbabilistic
		}
		return TierDeterministic
	}
	// Beyond uint64 the candidate is past every configurable boundary.
	return TierDeterministic
}
