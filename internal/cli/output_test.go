package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/agbru/primecheck/internal/testutil"
	"github.com/agbru/primecheck/pkg/models"
)

// TestFormatExecutionDuration verifies the unit selection per magnitude.
func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{999 * time.Microsecond, "999µs"},
		{time.Millisecond, "1ms"},
		{250 * time.Millisecond, "250ms"},
		{time.Second, "1s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		tt := tt
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestTruncateCandidate verifies the long-candidate display truncation.
func TestTruncateCandidate(t *testing.T) {
	t.Parallel()
	short := strings.Repeat("7", TruncationLimit)
	if got := truncateCandidate(short); got != short {
		t.Errorf("candidates at the limit should pass through unchanged")
	}

	long := strings.Repeat("7", TruncationLimit+1)
	got := truncateCandidate(long)
	want := strings.Repeat("7", DisplayEdges) + "..." + strings.Repeat("7", DisplayEdges)
	if got != want {
		t.Errorf("truncateCandidate = %q, want %q", got, want)
	}
}

// TestFormatNumberString verifies thousand-separator insertion.
func TestFormatNumberString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"7", "7"},
		{"999", "999"},
		{"1000", "1,000"},
		{"100000007", "100,000,007"},
		{"1234567890", "1,234,567,890"},
		{"-1234", "-1,234"},
	}

	for _, tt := range tests {
		tt := tt
		if got := formatNumberString(tt.in); got != tt.want {
			t.Errorf("formatNumberString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestDisplayCheckResult verifies the standard and verbose renditions of a
// single verdict. Color codes are stripped so the assertions hold under any
// theme.
func TestDisplayCheckResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		res         models.CheckResult
		verbose     bool
		wantSubstrs []string
		notSubstrs  []string
	}{
		{
			name:        "prime standard",
			res:         models.CheckResult{N: "17", Prime: true, Algorithm: "Tiered", Duration: "12µs"},
			wantSubstrs: []string{"17 is PRIME"},
			notSubstrs:  []string{"Decision details"},
		},
		{
			name:        "composite standard",
			res:         models.CheckResult{N: "21", Prime: false, Algorithm: "Tiered", Duration: "10µs"},
			wantSubstrs: []string{"21 is COMPOSITE"},
		},
		{
			name:    "prime verbose",
			res:     models.CheckResult{N: "100000007", Prime: true, Algorithm: "Tiered", Tier: "probabilistic", Rounds: 20, Duration: "3ms"},
			verbose: true,
			wantSubstrs: []string{
				"100000007 is PRIME",
				"--- Decision details ---",
				"Algorithm       : Tiered",
				"Magnitude tier  : probabilistic",
				"Witness rounds  : 20",
				"Candidate digits: 9",
				"Decision time   : 3ms",
			},
		},
		{
			name:        "error result",
			res:         models.CheckResult{N: "17", Error: "context deadline exceeded"},
			wantSubstrs: []string{"error", "context deadline exceeded"},
			notSubstrs:  []string{"PRIME"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayCheckResult(&buf, tt.res, tt.verbose)
			got := testutil.StripAnsiCodes(buf.String())

			for _, want := range tt.wantSubstrs {
				want := want
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, not := range tt.notSubstrs {
				not := not
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q:\n%s", not, got)
				}
			}
		})
	}
}

// TestDisplayCheckResult_TruncatesLongCandidates verifies that only the
// verbose rendition prints the full candidate.
func TestDisplayCheckResult_TruncatesLongCandidates(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("9", 150)
	res := models.CheckResult{N: long, Prime: false, Algorithm: "Tiered", Duration: "1s"}

	var buf bytes.Buffer
	DisplayCheckResult(&buf, res, false)
	if strings.Contains(testutil.StripAnsiCodes(buf.String()), long) {
		t.Error("standard output should truncate very long candidates")
	}

	buf.Reset()
	DisplayCheckResult(&buf, res, true)
	if !strings.Contains(testutil.StripAnsiCodes(buf.String()), long) {
		t.Error("verbose output should print the full candidate")
	}
}

// TestDisplayBatchResult verifies the aggregate verdict renditions.
func TestDisplayBatchResult(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		res         models.BatchResult
		verbose     bool
		wantSubstrs []string
		notSubstrs  []string
	}{
		{
			name:        "all prime",
			res:         models.BatchResult{Upper: 4, AllPrime: true, Workers: 2, Duration: "1ms"},
			wantSubstrs: []string{"Batch [2, 4): all prime"},
			notSubstrs:  []string{"Batch details"},
		},
		{
			name:        "not all prime",
			res:         models.BatchResult{Upper: 1000, AllPrime: false, Workers: 4, Duration: "2ms"},
			wantSubstrs: []string{"Batch [2, 1,000): not all prime"},
		},
		{
			name:    "verbose",
			res:     models.BatchResult{Upper: 100, AllPrime: false, Workers: 8, Duration: "5ms"},
			verbose: true,
			wantSubstrs: []string{
				"--- Batch details ---",
				"Workers   : 8",
				"Batch time: 5ms",
			},
		},
		{
			name:        "error",
			res:         models.BatchResult{Upper: 100, Error: "context canceled"},
			wantSubstrs: []string{"error", "context canceled"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayBatchResult(&buf, tt.res, tt.verbose)
			got := testutil.StripAnsiCodes(buf.String())

			for _, want := range tt.wantSubstrs {
				want := want
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, not := range tt.notSubstrs {
				not := not
				if strings.Contains(got, not) {
					t.Errorf("output should not contain %q:\n%s", not, got)
				}
			}
		})
	}
}

// TestQuietVerdict verifies the script-friendly single-word output.
func TestQuietVerdict(t *testing.T) {
	t.Parallel()
	if got := FormatQuietVerdict(true); got != "prime" {
		t.Errorf("FormatQuietVerdict(true) = %q, want %q", got, "prime")
	}
	if got := FormatQuietVerdict(false); got != "composite" {
		t.Errorf("FormatQuietVerdict(false) = %q, want %q", got, "composite")
	}

	var buf bytes.Buffer
	DisplayQuietVerdict(&buf, true)
	if buf.String() != "prime\n" {
		t.Errorf("DisplayQuietVerdict(true) wrote %q, want %q", buf.String(), "prime\n")
	}
}
