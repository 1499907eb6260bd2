package prime

import "math/big"

// ScreenSmall applies the cheap small-case filter shared by every tier.
// It is a pure, total function with no failure modes.
//
// The filter is definitive for:
//   - n < 2: composite (0 and 1 are not prime)
//   - n == 2 or n == 3: prime
//   - n ≥ 4 divisible by 2 or 3: composite
//
// For every other candidate the filter is inconclusive and the caller must
// continue with a full test.
//
// Parameters:
//   - n: The candidate integer. Must be non-negative.
//
// Returns:
//   - prime: The verdict, meaningful only when decided is true.
//   - decided: true if the filter reached a definitive verdict.
func ScreenSmall(n *big.Int) (prime, decided bool) {
	if n.Cmp(bigTwo) < 0 {
		return false, true
	}
	if n.Cmp(bigFour) < 0 {
		return true, true
	}
	if n.Bit(0) == 0 {
		return false, true
	}
	if new(big.Int).Mod(n, bigThree).Sign() == 0 {
		return false, true
	}
	return false, false
}
