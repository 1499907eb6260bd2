// Package prime provides implementations for deciding the primality of
// non-negative integers. It exposes a `Tester` interface that abstracts the
// underlying decision algorithm, allowing different strategies (sieve, trial
// division, probabilistic tests, deterministic AKS-style test) to be used
// interchangeably. A tiered dispatcher selects the engine appropriate to the
// magnitude of the candidate.
package prime

import (
	"context"
	"math/big"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

var (
	testsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "primecheck_tests_total",
			Help: "The total number of primality tests processed",
		},
		[]string{"algorithm", "status"},
	)
	testDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "primecheck_test_duration_seconds",
			Help: "The duration of primality tests in seconds",
		},
		[]string{"algorithm"},
	)
	verdictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "primecheck_verdicts_total",
			Help: "The total number of verdicts returned, by outcome",
		},
		[]string{"algorithm", "verdict"},
	)
)

// Tester defines the public interface for a primality tester.
// It is the primary abstraction used by the application's orchestration layer
// to interact with different primality decision algorithms.
type Tester interface {
	// Test decides whether the candidate n is prime. It is designed for safe
	// concurrent execution and supports cancellation through the provided
	// context. The verdict is always definitive-looking (never "unknown");
	// probabilistic algorithms return true with a bounded residual
	// false-positive probability, documented per algorithm.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - n: The candidate integer. Must be non-negative.
	//   - opts: Configuration options for the test.
	//
	// Returns:
	//   - bool: true if n is (probably) prime, false if n is composite.
	//   - error: An error if one occurred (e.g., invalid input, cancellation).
	Test(ctx context.Context, n *big.Int, opts Options) (bool, error)

	// Name returns the display name of the decision algorithm (e.g., "Tiered").
	//
	// Returns:
	//   - string: The name of the algorithm.
	Name() string
}

// coreTester defines the internal interface for a pure decision algorithm.
type coreTester interface {
	TestCore(ctx context.Context, n *big.Int, opts Options) (bool, error)
	Name() string
}

// PrimeTester is an implementation of the Tester interface that uses the
// Decorator design pattern.
// It wraps a coreTester to add cross-cutting concerns: input validation,
// tracing, metrics, and structured logging of each completed test.
type PrimeTester struct {
	core coreTester
}

// NewTester is a factory function that constructs and returns a new
// PrimeTester.
// It takes a coreTester as input, which represents the specific decision
// algorithm to be used. This function panics if the core tester is nil,
// ensuring system integrity.
//
// Parameters:
//   - core: The core tester to be wrapped.
//
// Returns:
//   - Tester: A new PrimeTester instance implementing the Tester interface.
func NewTester(core coreTester) Tester {
	if core == nil {
		panic("prime: the `coreTester` implementation cannot be nil")
	}
	return &PrimeTester{core: core}
}

// Name returns the name of the encapsulated coreTester, fulfilling the
// Tester interface by delegating the call.
//
// Returns:
//   - string: The name of the algorithm.
func (t *PrimeTester) Name() string {
	return t.core.Name()
}

// Test validates the candidate and delegates the decision to the wrapped
// coreTester.
// Negative or nil candidates are rejected with an explicit ValidationError
// before dispatch; they are never silently coerced to a Composite verdict.
// The method records per-algorithm metrics and emits a debug log entry for
// every completed test.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - n: The candidate integer. Must be non-negative.
//   - opts: Configuration options for the test.
//
// Returns:
//   - bool: true if n is (probably) prime.
//   - error: An error if validation failed or the test was interrupted.
func (t *PrimeTester) Test(ctx context.Context, n *big.Int, opts Options) (prime bool, err error) {
	if n == nil {
		return false, apperrors.NewValidationError("n", "candidate must not be nil", nil)
	}
	if n.Sign() < 0 {
		return false, apperrors.NewValidationError("n", "candidate must be non-negative", n.String())
	}

	tracer := otel.Tracer("prime")
	ctx, span := tracer.Start(ctx, "Test")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		algoName := t.core.Name()
		testsTotal.WithLabelValues(algoName, status).Inc()
		testDuration.WithLabelValues(algoName).Observe(duration)
		if err == nil {
			verdict := "composite"
			if prime {
				verdict = "prime"
			}
			verdictsTotal.WithLabelValues(algoName, verdict).Inc()
		}

		log.Debug().
			Str("algo", algoName).
			Str("n", n.String()).
			Float64("duration", duration).
			Str("status", status).
			Bool("prime", prime).
			Msg("primality test completed")
	}()

	return t.core.TestCore(ctx, n, normalizeOptions(opts))
}
