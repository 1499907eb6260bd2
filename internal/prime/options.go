// Package prime provides implementations for deciding the primality of
// non-negative integers. This file contains configuration options shared by
// all testers.
package prime

import "math/big"

// Default configuration values for the decision engine.
const (
	// DefaultRounds is the default number of independent random witnesses
	// drawn by each probabilistic test. Each additional Miller-Rabin round
	// divides the worst-case false-positive probability by 4.
	DefaultRounds = 5
	// DefaultSieveLimit is the exclusive upper bound of the sieve tier.
	// Candidates below this value are decided with a Sieve of Eratosthenes.
	DefaultSieveLimit uint64 = 10_000
	// DefaultTrialLimit is the exclusive upper bound of the trial-division
	// tier.
	DefaultTrialLimit uint64 = 100_000_000
	// DefaultProbabilisticLimit is the exclusive upper bound of the
	// probabilistic tier. Candidates at or above this value are routed to the
	// deterministic large-number test.
	DefaultProbabilisticLimit uint64 = 10_000_000_000_000_000
)

// Options configures a primality test.
// The tier limits are exposed for testability; they are performance
// boundaries, not correctness boundaries: every engine is exact (or
// explicitly probabilistic) at any magnitude, merely inefficient outside its
// intended tier.
type Options struct {
	// Rounds is the witness round count k for the probabilistic tests.
	// If 0, DefaultRounds is used.
	Rounds int
	// SieveLimit is the exclusive upper bound of the sieve tier.
	// If 0, DefaultSieveLimit is used.
	SieveLimit uint64
	// TrialLimit is the exclusive upper bound of the trial-division tier.
	// If 0, DefaultTrialLimit is used.
	TrialLimit uint64
	// ProbabilisticLimit is the exclusive upper bound of the probabilistic
	// tier. If 0, DefaultProbabilisticLimit is used.
	ProbabilisticLimit uint64
	// Witnesses supplies the random witnesses drawn by the probabilistic
	// tests. If nil, a crypto/rand-backed source is used. Injecting a seeded
	// source makes probabilistic tests reproducible; the source only affects
	// the false-positive bound, never the correctness of a Composite verdict.
	Witnesses WitnessSource
}

// normalizeOptions returns a copy of opts with default values filled in for
// zero values. This ensures consistent handling across all tester
// implementations.
//
// Parameters:
//   - opts: The options to normalize.
//
// Returns:
//   - Options: A normalized copy of opts with defaults applied.
func normalizeOptions(opts Options) Options {
	normalized := opts
	if normalized.Rounds == 0 {
		normalized.Rounds = DefaultRounds
	}
	if normalized.SieveLimit == 0 {
		normalized.SieveLimit = DefaultSieveLimit
	}
	if normalized.TrialLimit == 0 {
		normalized.TrialLimit = DefaultTrialLimit
	}
	if normalized.ProbabilisticLimit == 0 {
		normalized.ProbabilisticLimit = DefaultProbabilisticLimit
	}
	if normalized.Witnesses == nil {
		normalized.Witnesses = CryptoWitnessSource()
	}
	return normalized
}

// Shared small constants used throughout the package.
var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFour  = big.NewInt(4)
)
