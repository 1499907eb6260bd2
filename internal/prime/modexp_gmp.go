//go:build gmp

// This file provides GMP-backed modular exponentiation, conditionally
// compiled with the "gmp" build tag. The build tag architecture ensures that:
//   - Projects can build without GMP (the default, using math/big)
//   - GMP support is opt-in, requiring: go build -tags=gmp
//   - The codebase remains portable across systems without libgmp installed
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp
//   - Windows: Requires MinGW or WSL with libgmp
//
// Architectural Decision:
// Modular exponentiation dominates the probabilistic and deterministic tiers,
// so it is the single operation worth routing through GMP's assembly-optimized
// routines. Small moduli stay on math/big because the CGO call and byte
// conversion overhead would outweigh any gain.

package prime

import (
	"math/big"

	"github.com/ncw/gmp"
)

// gmpMinModBits is the modulus size below which math/big is used directly.
// Below this size the big.Int <-> gmp.Int conversion costs more than GMP saves.
const gmpMinModBits = 2048

// expMod sets z = a^e mod m and returns z, delegating large moduli to GMP.
// All operands are expected to be non-negative, which holds throughout this
// package.
func expMod(z, a, e, m *big.Int) *big.Int {
	if m.BitLen() < gmpMinModBits {
		return z.Exp(a, e, m)
	}
	var ga, ge, gm, gz gmp.Int
	ga.SetBytes(a.Bytes())
	ge.SetBytes(e.Bytes())
	gm.SetBytes(m.Bytes())
	gz.Exp(&ga, &ge, &gm)
	return z.SetBytes(gz.Bytes())
}
