package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"testing"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/testutil"
	"github.com/agbru/primecheck/pkg/models"
)

func newApp(t *testing.T, args ...string) *Application {
	t.Helper()
	application, err := New(append([]string{"primecheck"}, args...), io.Discard)
	if err != nil {
		t.Fatalf("New(%v) returned error: %v", args, err)
	}
	return application
}

// TestNew verifies argument parsing into an application instance.
func TestNew(t *testing.T) {
	application := newApp(t, "-n", "17", "-algo", "sieve")

	if application.Config.N != "17" {
		t.Errorf("Config.N = %q, want %q", application.Config.N, "17")
	}
	if application.Config.Algo != "sieve" {
		t.Errorf("Config.Algo = %q, want %q", application.Config.Algo, "sieve")
	}
	if application.Factory == nil {
		t.Error("Factory should be populated")
	}
}

// TestNew_InvalidConfig verifies that configuration errors surface from New.
func TestNew_InvalidConfig(t *testing.T) {
	if _, err := New([]string{"primecheck", "-n", "17", "-algo", "oracle"}, io.Discard); err == nil {
		t.Error("expected an error for an unknown algorithm")
	}
	if _, err := New([]string{"primecheck"}, io.Discard); err == nil {
		t.Error("expected an error when no candidate is given")
	}
}

// TestRun_SingleCheck verifies the default CLI mode end to end.
func TestRun_SingleCheck(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantSubstrs []string
	}{
		{"prime", []string{"-n", "17", "-no-color"}, []string{"17 is PRIME"}},
		{"composite", []string{"-n", "21", "-no-color"}, []string{"21 is COMPOSITE"}},
		{"verbose", []string{"-n", "9973", "-v", "-no-color"}, []string{"9973 is PRIME", "--- Decision details ---"}},
		{"explicit algorithm", []string{"-n", "97", "-algo", "trial", "-no-color"}, []string{"97 is PRIME"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := newApp(t, tt.args...)
			var out bytes.Buffer
			if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
				t.Fatalf("Run returned exit code %d, output:\n%s", code, out.String())
			}
			got := testutil.StripAnsiCodes(out.String())
			for _, want := range tt.wantSubstrs {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

// TestRun_JSONOutput verifies the machine-readable output mode.
func TestRun_JSONOutput(t *testing.T) {
	application := newApp(t, "-n", "100000007", "-json")
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	var result models.CheckResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if result.N != "100000007" {
		t.Errorf("n = %q, want %q", result.N, "100000007")
	}
	if !result.Prime {
		t.Error("100000007 should be reported prime")
	}
	if result.Tier == "" {
		t.Error("JSON output should carry the magnitude tier")
	}
}

// TestRun_QuietOutput verifies the single-word script mode.
func TestRun_QuietOutput(t *testing.T) {
	tests := []struct {
		n    string
		want string
	}{
		{"17", "prime\n"},
		{"21", "composite\n"},
	}

	for _, tt := range tests {
		application := newApp(t, "-n", tt.n, "-q")
		var out bytes.Buffer
		if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
			t.Fatalf("Run returned exit code %d", code)
		}
		if out.String() != tt.want {
			t.Errorf("quiet output for %s = %q, want %q", tt.n, out.String(), tt.want)
		}
	}
}

// TestRun_Batch verifies the aggregate batch mode.
func TestRun_Batch(t *testing.T) {
	tests := []struct {
		name  string
		upper string
		want  string
	}{
		{"all prime", "4", "prime\n"},
		{"contains composite", "100", "composite\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			application := newApp(t, "-batch", tt.upper, "-q")
			var out bytes.Buffer
			if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
				t.Fatalf("Run returned exit code %d", code)
			}
			if out.String() != tt.want {
				t.Errorf("batch output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

// TestRun_BatchJSON verifies the batch JSON payload.
func TestRun_BatchJSON(t *testing.T) {
	application := newApp(t, "-batch", "1000", "-json", "-workers", "2")
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}

	var result models.BatchResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if result.Upper != 1000 {
		t.Errorf("upper = %d, want 1000", result.Upper)
	}
	if result.AllPrime {
		t.Error("[2, 1000) contains composites")
	}
	if result.Workers != 2 {
		t.Errorf("workers = %d, want 2", result.Workers)
	}
}

// TestRun_Completion verifies completion generation and its error path.
func TestRun_Completion(t *testing.T) {
	application := newApp(t, "-completion", "bash")
	var out bytes.Buffer
	if code := application.Run(context.Background(), &out); code != apperrors.ExitSuccess {
		t.Fatalf("Run returned exit code %d", code)
	}
	if !strings.Contains(out.String(), "_primecheck_completions") {
		t.Error("bash completion output looks wrong")
	}

	bad := newApp(t, "-completion", "tcsh")
	out.Reset()
	if code := bad.Run(context.Background(), &out); code != apperrors.ExitErrorConfig {
		t.Errorf("unsupported shell should exit with %d, got %d", apperrors.ExitErrorConfig, code)
	}
}

// TestRun_Timeout verifies that an expired context maps to the timeout exit
// code.
func TestRun_Timeout(t *testing.T) {
	application := newApp(t, "-n", "170141183460469231731687303715884105727", "-timeout", "1ns", "-q")
	var out bytes.Buffer
	code := application.Run(context.Background(), &out)
	if code != apperrors.ExitErrorTimeout && code != apperrors.ExitErrorCanceled {
		t.Errorf("expired run should exit with timeout or cancel code, got %d", code)
	}
}

// TestIsHelpError verifies recognition of the flag package help sentinel.
func TestIsHelpError(t *testing.T) {
	if !IsHelpError(flag.ErrHelp) {
		t.Error("flag.ErrHelp should be recognized")
	}
	if !IsHelpError(fmt.Errorf("wrapped: %w", flag.ErrHelp)) {
		t.Error("wrapped flag.ErrHelp should be recognized")
	}
	if IsHelpError(errors.New("boom")) {
		t.Error("unrelated errors should not be recognized")
	}
	if IsHelpError(nil) {
		t.Error("nil should not be recognized")
	}
}
