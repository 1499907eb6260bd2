package config

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primecheck/internal/prime"
)

var testAlgos = []string{"aks", "auto", "fermat", "miller-rabin", "probabilistic", "sieve", "trial"}

// TestParseConfig_Defaults verifies the default values for an otherwise
// minimal invocation.
func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig("primecheck", []string{"-n", "17"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.N != "17" {
		t.Errorf("N = %q, want %q", cfg.N, "17")
	}
	if cfg.Algo != DefaultAlgo {
		t.Errorf("Algo = %q, want %q", cfg.Algo, DefaultAlgo)
	}
	if cfg.Rounds != prime.DefaultRounds {
		t.Errorf("Rounds = %d, want %d", cfg.Rounds, prime.DefaultRounds)
	}
	if cfg.SieveLimit != prime.DefaultSieveLimit {
		t.Errorf("SieveLimit = %d, want %d", cfg.SieveLimit, prime.DefaultSieveLimit)
	}
	if cfg.TrialLimit != prime.DefaultTrialLimit {
		t.Errorf("TrialLimit = %d, want %d", cfg.TrialLimit, prime.DefaultTrialLimit)
	}
	if cfg.ProbabilisticLimit != prime.DefaultProbabilisticLimit {
		t.Errorf("ProbabilisticLimit = %d, want %d", cfg.ProbabilisticLimit, prime.DefaultProbabilisticLimit)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %q, want %q", cfg.Port, DefaultPort)
	}
	if cfg.JSONOutput || cfg.Quiet || cfg.Verbose || cfg.ServerMode || cfg.NoColor {
		t.Error("boolean flags should default to false")
	}
}

// TestParseConfig_Flags verifies explicit flag parsing, including the
// lowercasing of the algorithm name.
func TestParseConfig_Flags(t *testing.T) {
	args := []string{
		"-n", "100000007",
		"-algo", "Miller-Rabin",
		"-rounds", "25",
		"-sieve-limit", "5000",
		"-trial-limit", "1000000",
		"-prob-limit", "100000000",
		"-timeout", "30s",
		"-json",
		"-v",
		"-no-color",
	}
	cfg, err := ParseConfig("primecheck", args, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Algo != "miller-rabin" {
		t.Errorf("Algo = %q, want lowercased %q", cfg.Algo, "miller-rabin")
	}
	if cfg.Rounds != 25 {
		t.Errorf("Rounds = %d, want 25", cfg.Rounds)
	}
	if cfg.SieveLimit != 5000 || cfg.TrialLimit != 1000000 || cfg.ProbabilisticLimit != 100000000 {
		t.Errorf("tier limits = %d/%d/%d, want 5000/1000000/100000000",
			cfg.SieveLimit, cfg.TrialLimit, cfg.ProbabilisticLimit)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if !cfg.JSONOutput || !cfg.Verbose || !cfg.NoColor {
		t.Error("boolean flags were not applied")
	}
}

// TestParseConfig_BatchMode verifies that batch runs need no candidate.
func TestParseConfig_BatchMode(t *testing.T) {
	cfg, err := ParseConfig("primecheck", []string{"-batch", "1000", "-workers", "4"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}
	if cfg.BatchUpper != 1000 {
		t.Errorf("BatchUpper = %d, want 1000", cfg.BatchUpper)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

// TestParseConfig_InvalidFlag verifies that unknown flags fail parsing.
func TestParseConfig_InvalidFlag(t *testing.T) {
	var buf bytes.Buffer
	if _, err := ParseConfig("primecheck", []string{"-bogus"}, &buf, testAlgos); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}

// TestValidate verifies the semantic checks on the parsed configuration.
func TestValidate(t *testing.T) {
	t.Parallel()
	valid := AppConfig{
		N:                  "17",
		Algo:               "auto",
		Rounds:             prime.DefaultRounds,
		SieveLimit:         prime.DefaultSieveLimit,
		TrialLimit:         prime.DefaultTrialLimit,
		ProbabilisticLimit: prime.DefaultProbabilisticLimit,
		Timeout:            time.Minute,
	}

	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{"valid", func(c *AppConfig) {}, ""},
		{"zero timeout", func(c *AppConfig) { c.Timeout = 0 }, "timeout"},
		{"negative rounds", func(c *AppConfig) { c.Rounds = -1 }, "round count"},
		{"negative workers", func(c *AppConfig) { c.Workers = -2 }, "worker count"},
		{"sieve above trial", func(c *AppConfig) { c.SieveLimit = c.TrialLimit + 1 }, "sieve limit"},
		{"trial above probabilistic", func(c *AppConfig) { c.TrialLimit = c.ProbabilisticLimit + 1 }, "trial-division limit"},
		{"missing candidate", func(c *AppConfig) { c.N = "" }, "invalid candidate"},
		{"malformed candidate", func(c *AppConfig) { c.N = "12x3" }, "invalid candidate"},
		{"negative candidate", func(c *AppConfig) { c.N = "-7" }, "invalid candidate"},
		{"unknown algorithm", func(c *AppConfig) { c.Algo = "oracle" }, "unrecognized algorithm"},
		{"server mode skips candidate", func(c *AppConfig) { c.N = ""; c.ServerMode = true }, ""},
		{"batch mode skips candidate", func(c *AppConfig) { c.N = ""; c.BatchUpper = 100 }, ""},
		{"completion skips everything", func(c *AppConfig) { *c = AppConfig{Completion: "bash"} }, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate(testAlgos)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate returned unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

// TestCandidate verifies parsing of the candidate string, including values
// beyond uint64.
func TestCandidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		n       string
		wantErr bool
	}{
		{"small", "17", false},
		{"zero", "0", false},
		{"beyond uint64", "170141183460469231731687303715884105727", false},
		{"empty", "", true},
		{"malformed", "17a", true},
		{"hex prefix rejected", "0x11", true},
		{"negative", "-17", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := AppConfig{N: tt.n}
			n, err := cfg.Candidate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Candidate(%q) should fail", tt.n)
				}
				return
			}
			if err != nil {
				t.Fatalf("Candidate(%q) returned error: %v", tt.n, err)
			}
			if n.String() != tt.n {
				t.Errorf("Candidate(%q) = %s", tt.n, n.String())
			}
		})
	}
}

// TestToTestOptions verifies the mapping into engine options.
func TestToTestOptions(t *testing.T) {
	t.Parallel()
	cfg := AppConfig{Rounds: 15, SieveLimit: 100, TrialLimit: 200, ProbabilisticLimit: 300}
	opts := cfg.ToTestOptions()

	if opts.Rounds != 15 || opts.SieveLimit != 100 || opts.TrialLimit != 200 || opts.ProbabilisticLimit != 300 {
		t.Errorf("ToTestOptions() = %+v, want fields copied through", opts)
	}
}

// TestEnvOverrides verifies the environment fallback for flags that were not
// set on the command line.
func TestEnvOverrides(t *testing.T) {
	t.Setenv("PRIMECHECK_N", "9973")
	t.Setenv("PRIMECHECK_ALGO", "sieve")
	t.Setenv("PRIMECHECK_ROUNDS", "30")
	t.Setenv("PRIMECHECK_TIMEOUT", "90s")
	t.Setenv("PRIMECHECK_JSON", "yes")
	t.Setenv("PRIMECHECK_PORT", "9090")

	cfg, err := ParseConfig("primecheck", nil, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.N != "9973" {
		t.Errorf("N = %q, want env value %q", cfg.N, "9973")
	}
	if cfg.Algo != "sieve" {
		t.Errorf("Algo = %q, want env value %q", cfg.Algo, "sieve")
	}
	if cfg.Rounds != 30 {
		t.Errorf("Rounds = %d, want env value 30", cfg.Rounds)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want env value 90s", cfg.Timeout)
	}
	if !cfg.JSONOutput {
		t.Error("JSONOutput should be enabled by PRIMECHECK_JSON=yes")
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want env value %q", cfg.Port, "9090")
	}
}

// TestEnvOverrides_FlagPrecedence verifies that explicit flags beat the
// environment.
func TestEnvOverrides_FlagPrecedence(t *testing.T) {
	t.Setenv("PRIMECHECK_N", "9973")
	t.Setenv("PRIMECHECK_ROUNDS", "30")

	cfg, err := ParseConfig("primecheck", []string{"-n", "21", "-rounds", "5"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.N != "21" {
		t.Errorf("N = %q, flag should override env", cfg.N)
	}
	if cfg.Rounds != 5 {
		t.Errorf("Rounds = %d, flag should override env", cfg.Rounds)
	}
}

// TestEnvOverrides_InvalidValues verifies that malformed environment values
// fall back to the defaults instead of failing the run.
func TestEnvOverrides_InvalidValues(t *testing.T) {
	t.Setenv("PRIMECHECK_ROUNDS", "many")
	t.Setenv("PRIMECHECK_TIMEOUT", "soon")
	t.Setenv("PRIMECHECK_JSON", "maybe")

	cfg, err := ParseConfig("primecheck", []string{"-n", "17"}, io.Discard, testAlgos)
	if err != nil {
		t.Fatalf("ParseConfig returned error: %v", err)
	}

	if cfg.Rounds != prime.DefaultRounds {
		t.Errorf("Rounds = %d, want default %d", cfg.Rounds, prime.DefaultRounds)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want default %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.JSONOutput {
		t.Error("JSONOutput should stay false for an unrecognized value")
	}
}

// TestParseConfig_ValidationFailure verifies that an invalid configuration
// reports the error and prints usage.
func TestParseConfig_ValidationFailure(t *testing.T) {
	var buf bytes.Buffer
	if _, err := ParseConfig("primecheck", []string{"-n", "17", "-algo", "oracle"}, &buf, testAlgos); err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(buf.String(), "Configuration error") {
		t.Errorf("output %q should report the configuration error", buf.String())
	}
}
