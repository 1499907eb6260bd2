package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primecheck/internal/config"
	"github.com/agbru/primecheck/internal/prime"
	"github.com/agbru/primecheck/internal/testutil"
)

// TestTesterToRun verifies resolution of the configured engine.
func TestTesterToRun(t *testing.T) {
	t.Parallel()
	factory := prime.NewDefaultFactory()

	tester := TesterToRun(config.AppConfig{Algo: "miller-rabin"}, factory)
	if tester == nil {
		t.Fatal("TesterToRun returned nil for a registered algorithm")
	}
	if tester.Name() != "Miller-Rabin" {
		t.Errorf("Name() = %q, want %q", tester.Name(), "Miller-Rabin")
	}

	if tester := TesterToRun(config.AppConfig{Algo: "oracle"}, factory); tester != nil {
		t.Errorf("TesterToRun should return nil for an unknown algorithm, got %v", tester.Name())
	}
}

// TestPrintExecutionConfig verifies the configuration banner for both
// single-check and batch runs.
func TestPrintExecutionConfig(t *testing.T) {
	t.Parallel()
	cfg := config.AppConfig{
		N:                  "100000007",
		Timeout:            30 * time.Second,
		SieveLimit:         prime.DefaultSieveLimit,
		TrialLimit:         prime.DefaultTrialLimit,
		ProbabilisticLimit: prime.DefaultProbabilisticLimit,
	}

	var buf bytes.Buffer
	PrintExecutionConfig(cfg, &buf)
	got := testutil.StripAnsiCodes(buf.String())

	for _, want := range []string{
		"--- Execution Configuration ---",
		"Testing 100000007 with a timeout of 30s",
		"logical processors",
		"Tier boundaries",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	cfg.BatchUpper = 1000
	buf.Reset()
	PrintExecutionConfig(cfg, &buf)
	got = testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(got, "Testing every integer in [2, 1000)") {
		t.Errorf("batch banner missing the range:\n%s", got)
	}
}

// TestPrintExecutionMode verifies the mode line for both run shapes.
func TestPrintExecutionMode(t *testing.T) {
	t.Parallel()
	factory := prime.NewDefaultFactory()
	tester := factory.MustGet("auto")

	var buf bytes.Buffer
	PrintExecutionMode(config.AppConfig{}, tester, &buf)
	got := testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(got, "Single decision with the Tiered engine") {
		t.Errorf("single mode banner wrong:\n%s", got)
	}
	if !strings.Contains(got, "--- Starting Execution ---") {
		t.Errorf("banner missing the execution marker:\n%s", got)
	}

	buf.Reset()
	PrintExecutionMode(config.AppConfig{BatchUpper: 100}, tester, &buf)
	got = testutil.StripAnsiCodes(buf.String())
	if !strings.Contains(got, "Batch aggregate verdict with the Tiered engine") {
		t.Errorf("batch mode banner wrong:\n%s", got)
	}
}
