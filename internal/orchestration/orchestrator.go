// Package orchestration coordinates batch primality runs over ranges of
// candidates. The decision core stays free of concurrency concerns; this
// package owns the worker fan-out and result aggregation.
package orchestration

import (
	"context"
	"errors"
	"math/big"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/primecheck/internal/prime"
)

// RangeResult is the verdict for a single candidate within a batch run.
type RangeResult struct {
	// N is the candidate tested.
	N uint64
	// Prime is the verdict. Meaningless if Err is non-nil.
	Prime bool
	// Err contains any error that occurred while testing N.
	Err error
}

// errCompositeFound is the internal sentinel used to stop an AllPrime run
// early once the aggregate verdict is determined.
var errCompositeFound = errors.New("composite found")

// DefaultWorkers returns the default batch parallelism: one worker per
// available CPU.
func DefaultWorkers() int {
	return runtime.GOMAXPROCS(0)
}

// AllPrime tests every integer in [2, upper) and returns the logical AND of
// the verdicts, true only when every candidate in the range is prime.
//
// This aggregate contract is deliberate: it mirrors the all-or-nothing batch
// semantics of the historical interface, so any range containing a composite
// (which is every range with upper > 5) yields false. Callers that want
// individual verdicts should use CheckRange instead.
//
// The range is embarrassingly parallel: each candidate is tested
// independently with no shared mutable state. Because a single composite
// determines the aggregate, the run short-circuits as soon as one is found.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - tester: The decision engine to invoke per candidate.
//   - upper: The exclusive upper bound of the range.
//   - workers: The worker count; values < 1 mean DefaultWorkers().
//   - opts: Options forwarded to every test.
//
// Returns:
//   - bool: true if every integer in [2, upper) is prime.
//   - error: An error if a test failed or the context was cancelled.
func AllPrime(ctx context.Context, tester prime.Tester, upper uint64, workers int, opts prime.Options) (bool, error) {
	if upper <= 2 {
		// Empty range: the AND over no verdicts is vacuously true.
		return true, nil
	}
	if workers < 1 {
		workers = DefaultWorkers()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var allPrime atomic.Bool
	allPrime.Store(true)

	for i := uint64(2); i < upper; i++ {
		if ctx.Err() != nil {
			break
		}
		candidate := i
		g.Go(func() error {
			isPrime, err := tester.Test(ctx, new(big.Int).SetUint64(candidate), opts)
			if err != nil {
				return err
			}
			if !isPrime {
				allPrime.Store(false)
				return errCompositeFound
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, errCompositeFound) {
		return false, err
	}
	return allPrime.Load(), nil
}

// CheckRange tests every integer in [2, upper) and returns one RangeResult
// per candidate, ordered by candidate. Unlike AllPrime it never
// short-circuits: a result is produced for every input, with per-candidate
// errors recorded in the corresponding RangeResult rather than aborting the
// batch.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - tester: The decision engine to invoke per candidate.
//   - upper: The exclusive upper bound of the range.
//   - workers: The worker count; values < 1 mean DefaultWorkers().
//   - opts: Options forwarded to every test.
//
// Returns:
//   - []RangeResult: One result per integer in [2, upper), in order.
func CheckRange(ctx context.Context, tester prime.Tester, upper uint64, workers int, opts prime.Options) []RangeResult {
	if upper <= 2 {
		return nil
	}
	if workers < 1 {
		workers = DefaultWorkers()
	}

	results := make([]RangeResult, upper-2)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := uint64(2); i < upper; i++ {
		candidate := i
		g.Go(func() error {
			isPrime, err := tester.Test(ctx, new(big.Int).SetUint64(candidate), opts)
			results[candidate-2] = RangeResult{N: candidate, Prime: isPrime, Err: err}
			return nil
		})
	}
	// Workers never return errors; failures are recorded per result.
	_ = g.Wait()

	return results
}
