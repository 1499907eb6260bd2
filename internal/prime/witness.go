package prime

import (
	"crypto/rand"
	"fmt"
	"math/big"
	mathrand "math/rand"
	"sync"
)

// WitnessSource supplies the random witnesses drawn by the probabilistic
// primality tests. Abstracting the randomness behind an interface enables
// dependency injection: production code uses a crypto/rand-backed source,
// while tests inject a seeded pseudo-random source for reproducibility.
//
// The source never affects the correctness of a Composite verdict (a failed
// witness is a proof of compositeness regardless of how it was drawn); it
// only influences the residual false-positive probability of a Prime verdict.
type WitnessSource interface {
	// Witness draws a uniformly random witness a in [2, n-2].
	// The candidate n must satisfy n ≥ 5 so that the interval is non-empty.
	//
	// Parameters:
	//   - n: The candidate under test.
	//
	// Returns:
	//   - *big.Int: A freshly allocated witness in [2, n-2].
	//   - error: An error if the underlying randomness source failed.
	Witness(n *big.Int) (*big.Int, error)
}

// cryptoSource draws witnesses from crypto/rand. It is stateless and safe
// for concurrent use.
type cryptoSource struct{}

// CryptoWitnessSource returns the default, crypto/rand-backed witness source.
//
// Returns:
//   - WitnessSource: A source safe for concurrent use across testers.
func CryptoWitnessSource() WitnessSource {
	return cryptoSource{}
}

// Witness draws a uniformly random witness a in [2, n-2] from crypto/rand.
func (cryptoSource) Witness(n *big.Int) (*big.Int, error) {
	span := witnessSpan(n)
	if span == nil {
		return nil, fmt.Errorf("prime: witness interval [2, n-2] is empty for n=%s", n.String())
	}
	a, err := rand.Int(rand.Reader, span)
	if err != nil {
		return nil, fmt.Errorf("prime: drawing random witness: %w", err)
	}
	return a.Add(a, bigTwo), nil
}

// pseudoSource draws witnesses from a seeded math/rand generator.
// A mutex guards the generator because math/rand.Rand is not safe for
// concurrent use.
type pseudoSource struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

// NewPseudoWitnessSource returns a deterministic witness source seeded with
// the given value. It is intended for tests that need reproducible witness
// sequences.
//
// Parameters:
//   - seed: The seed for the underlying math/rand generator.
//
// Returns:
//   - WitnessSource: A deterministic, seedable source.
func NewPseudoWitnessSource(seed int64) WitnessSource {
	return &pseudoSource{r: mathrand.New(mathrand.NewSource(seed))}
}

// Witness draws a pseudo-random witness a in [2, n-2].
func (s *pseudoSource) Witness(n *big.Int) (*big.Int, error) {
	span := witnessSpan(n)
	if span == nil {
		return nil, fmt.Errorf("prime: witness interval [2, n-2] is empty for n=%s", n.String())
	}
	s.mu.Lock()
	a := new(big.Int).Rand(s.r, span)
	s.mu.Unlock()
	return a.Add(a, bigTwo), nil
}

// witnessSpan returns the size of the witness interval [2, n-2], i.e. n-3,
// or nil for n < 5, where the interval holds fewer than two values and no
// uniform draw is possible.
func witnessSpan(n *big.Int) *big.Int {
	span := new(big.Int).Sub(n, bigThree)
	if span.Cmp(bigTwo) < 0 {
		return nil
	}
	return span
}
