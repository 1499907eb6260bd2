package prime

import (
	"math/big"
	"testing"
)

// TestTierFor verifies the magnitude dispatch mapping, including the
// half-open boundary behavior: a candidate exactly at a limit belongs to the
// next tier up.
func TestTierFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		n    string
		want Tier
	}{
		{"small candidate", "17", TierSieve},
		{"just below sieve limit", "9999", TierSieve},
		{"exactly at sieve limit", "10000", TierTrial},
		{"just above sieve limit", "10001", TierTrial},
		{"just below trial limit", "99999999", TierTrial},
		{"exactly at trial limit", "100000000", TierProbabilistic},
		{"mid probabilistic tier", "100000007", TierProbabilistic},
		{"just below probabilistic limit", "9999999999999999", TierProbabilistic},
		{"exactly at probabilistic limit", "10000000000000000", TierDeterministic},
		{"beyond uint64", "170141183460469231731687303715884105727", TierDeterministic},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			n, ok := new(big.Int).SetString(tt.n, 10)
			if !ok {
				t.Fatalf("invalid test candidate %q", tt.n)
			}
			if got := TierFor(n, Options{}); got != tt.want {
				t.Errorf("TierFor(%s) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

// TestTierFor_CustomLimits verifies that configured limits shift the
// boundaries.
func TestTierFor_CustomLimits(t *testing.T) {
	t.Parallel()
	opts := Options{SieveLimit: 100, TrialLimit: 1000, ProbabilisticLimit: 10000}

	cases := []struct {
		n    int64
		want Tier
	}{
		{50, TierSieve},
		{100, TierTrial},
		{999, TierTrial},
		{1000, TierProbabilistic},
		{10000, TierDeterministic},
	}
	for _, c := range cases {
		c := c
		if got := TierFor(big.NewInt(c.n), opts); got != c.want {
			t.Errorf("TierFor(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

// TestTierString verifies the human-readable tier names.
func TestTierString(t *testing.T) {
	t.Parallel()
	cases := map[Tier]string{
		TierSieve:         "sieve",
		TierTrial:         "trial",
		TierProbabilistic: "probabilistic",
		TierDeterministic: "deterministic",
		Tier(99):          "unknown",
	}
	for tier, want := range cases {
		want := want
		if got := tier.String(); got != want {
			t.Errorf("Tier(%d).String() = %q, want %q", tier, got, want)
		}
	}
}
