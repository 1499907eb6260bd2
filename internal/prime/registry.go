package prime

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// TesterFactory is an interface for creating Tester instances.
// It allows for flexible tester instantiation and registration, enabling
// dependency injection and easier testing.
type TesterFactory interface {
	// Create creates a new Tester instance by name.
	// Returns an error if the tester type is not registered.
	Create(name string) (Tester, error)

	// Get returns an existing Tester instance by name.
	// Returns an error if the tester type is not registered.
	Get(name string) (Tester, error)

	// List returns a sorted list of registered tester names.
	List() []string

	// Register adds a new tester type to the factory.
	Register(name string, creator func() coreTester) error

	// GetAll returns a map of all registered testers.
	GetAll() map[string]Tester
}

// DefaultFactory is the default implementation of TesterFactory.
// It maintains a thread-safe registry of tester creators and caches Tester
// instances for reuse.
type DefaultFactory struct {
	mu       sync.RWMutex
	creators map[string]func() coreTester
	testers  map[string]Tester
}

// NewDefaultFactory creates a new DefaultFactory with the standard decision
// engines pre-registered.
//
// Pre-registered testers:
//   - "auto": TieredTester (magnitude dispatch, the default engine)
//   - "sieve": Sieve of Eratosthenes (exact, small candidates)
//   - "trial": trial division (exact, medium candidates)
//   - "fermat": Fermat test (probabilistic)
//   - "miller-rabin": Miller-Rabin test (probabilistic, 4^-k bound)
//   - "probabilistic": Fermat chained with Miller-Rabin
//   - "aks": deterministic AKS-style large-number test
//
// Returns:
//   - *DefaultFactory: A new factory with default testers registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators: make(map[string]func() coreTester),
		testers:  make(map[string]Tester),
	}

	_ = f.Register("auto", func() coreTester { return &TieredTester{} })
	_ = f.Register("sieve", func() coreTester { return &SieveTester{} })
	_ = f.Register("trial", func() coreTester { return &TrialDivisionTester{} })
	_ = f.Register("fermat", func() coreTester { return &FermatTester{} })
	_ = f.Register("miller-rabin", func() coreTester { return &MillerRabinTester{} })
	_ = f.Register("probabilistic", func() coreTester { return &ChainedProbabilisticTester{} })
	_ = f.Register("aks", func() coreTester { return &DeterministicTester{} })

	return f
}

// Register adds a new tester type to the factory.
// The creator function is called lazily when the tester is first requested.
// If a tester with the same name already exists, it will be replaced.
//
// Parameters:
//   - name: The unique identifier for the tester type.
//   - creator: A function that creates a new coreTester instance.
func (f *DefaultFactory) Register(name string, creator func() coreTester) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	// Clear the cached instance so it is recreated with the new creator.
	delete(f.testers, name)
	return nil
}

// Create creates a new Tester instance by name.
// Unlike Get(), this always creates a fresh instance without caching.
//
// Parameters:
//   - name: The name of the tester type to create.
//
// Returns:
//   - Tester: A new Tester instance.
//   - error: An error if the tester type is not registered.
func (f *DefaultFactory) Create(name string) (Tester, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown tester: %s", name)
	}
	return NewTester(creator()), nil
}

// Get returns a Tester instance by name.
// Instances are cached and reused for subsequent calls with the same name.
// This is the preferred method for most use cases.
//
// Parameters:
//   - name: The name of the tester to retrieve.
//
// Returns:
//   - Tester: The Tester instance.
//   - error: An error if the tester type is not registered.
func (f *DefaultFactory) Get(name string) (Tester, error) {
	f.mu.RLock()
	if tester, exists := f.testers[name]; exists {
		f.mu.RUnlock()
		return tester, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring the write lock.
	if tester, exists := f.testers[name]; exists {
		return tester, nil
	}

	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown tester: %s", name)
	}

	tester := NewTester(creator())
	f.testers[name] = tester
	return tester, nil
}

// List returns a sorted list of all registered tester names.
// The list is sorted alphabetically for consistent ordering.
//
// Returns:
//   - []string: A sorted slice of tester names.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a map of all registered testers.
// This method lazily initializes all testers that haven't been created yet.
//
// Returns:
//   - map[string]Tester: A map of tester names to Tester instances.
func (f *DefaultFactory) GetAll() map[string]Tester {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.testers[name]; !exists {
			f.testers[name] = NewTester(creator())
		}
	}

	// Return a copy to prevent external modifications.
	result := make(map[string]Tester, len(f.testers))
	for name, tester := range f.testers {
		result[name] = tester
	}
	return result
}

// MustGet is like Get but panics if the tester is not found.
// This is useful in initialization code where missing testers should be
// considered a programming error.
//
// Parameters:
//   - name: The name of the tester to retrieve.
//
// Returns:
//   - Tester: The Tester instance.
//
// Panics:
//   - If the tester type is not registered.
func (f *DefaultFactory) MustGet(name string) Tester {
	tester, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("prime: required tester not found: %s", name))
	}
	return tester
}

// Has checks if a tester with the given name is registered.
//
// Parameters:
//   - name: The name of the tester to check.
//
// Returns:
//   - bool: true if the tester is registered, false otherwise.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the default global factory instance.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance.
// This is a convenience for applications that don't need multiple factory
// instances.
//
// Returns:
//   - *DefaultFactory: The global factory instance.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterTester registers a tester in the global factory.
// This is a convenience function for adding custom testers.
//
// Parameters:
//   - name: The unique identifier for the tester type.
//   - creator: A function that creates a new coreTester instance.
func RegisterTester(name string, creator func() coreTester) error {
	return globalFactory.Register(name, creator)
}

// IsPrime is the primary single-integer entry point. It decides the
// primality of n with the default tiered engine and default options.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - n: The candidate integer. Must be non-negative.
//
// Returns:
//   - bool: true if n is (probably) prime.
//   - error: An error for invalid input or cancellation.
func IsPrime(ctx context.Context, n *big.Int) (bool, error) {
	return globalFactory.MustGet("auto").Test(ctx, n, Options{})
}
