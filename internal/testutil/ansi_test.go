package testutil

import "testing"

// TestStripAnsiCodes verifies escape-code removal across styling variants.
func TestStripAnsiCodes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "17 is PRIME", "17 is PRIME"},
		{"simple color", "\x1b[31mCOMPOSITE\x1b[0m", "COMPOSITE"},
		{"256 color", "\x1b[38;5;82mPRIME\x1b[0m", "PRIME"},
		{"bold", "\x1b[1m--- Decision details ---\x1b[0m", "--- Decision details ---"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripAnsiCodes(tt.in); got != tt.want {
				t.Errorf("StripAnsiCodes(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
