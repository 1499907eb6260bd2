//go:build !gmp

package prime

import "math/big"

// expMod sets z = a^e mod m and returns z, using math/big.
// This is the portable default; build with -tags=gmp to route large moduli
// through libgmp instead.
func expMod(z, a, e, m *big.Int) *big.Int {
	return z.Exp(a, e, m)
}
