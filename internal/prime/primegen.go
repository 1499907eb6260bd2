package prime

// This file contains the small-prime scanner used by the deterministic
// large-number test's order search. The scanner replaces the naive approach
// of re-testing every scan candidate through the full dispatcher with a
// cached, growing sieve, avoiding redundant recomputation and unbounded
// recursion into the engine itself.

// initialScanLimit is the first sieve ceiling for the prime scanner. The
// order search for realistic candidates terminates well below it; the
// scanner doubles the ceiling on demand if not.
const initialScanLimit = 1 << 12

// primeScanner yields successive small primes in increasing order, backed by
// a cached Sieve of Eratosthenes that grows geometrically when exhausted.
// A scanner is created fresh per test invocation; no state persists across
// candidates.
type primeScanner struct {
	limit  uint64
	primes []uint64
	idx    int
}

// newPrimeScanner returns a scanner positioned before the first prime.
func newPrimeScanner() *primeScanner {
	return &primeScanner{
		limit:  initialScanLimit,
		primes: sievePrimesUpTo(initialScanLimit),
	}
}

// next returns the next prime in increasing order, starting with 2,
// regenerating the backing sieve at double the ceiling whenever the cache is
// exhausted.
func (s *primeScanner) next() uint64 {
	for s.idx >= len(s.primes) {
		s.limit *= 2
		s.primes = sievePrimesUpTo(s.limit)
	}
	p := s.primes[s.idx]
	s.idx++
	return p
}

// sievePrimesUpTo returns all primes ≤ limit in increasing order.
func sievePrimesUpTo(limit uint64) []uint64 {
	if limit < 2 {
		return nil
	}
	composite := make([]bool, limit+1)
	for x := uint64(2); x <= limit/x; x++ {
		if composite[x] {
			continue
		}
		for i := x * x; i <= limit; i += x {
			composite[i] = true
		}
	}
	var primes []uint64
	for i := uint64(2); i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, i)
		}
	}
	return primes
}
