// The cli package provides the terminal presentation layer for the
// primality checker. It handles the asynchronous display of run progress
// and formats verdicts for a clear and readable presentation.
package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agbru/primecheck/internal/ui"
	"github.com/agbru/primecheck/pkg/models"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

const (
	// TruncationLimit is the digit threshold from which a candidate is
	// truncated in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated candidate.
	DisplayEdges = 25
)

// verdictString renders a colored Prime/Composite verdict word.
func verdictString(prime bool) string {
	if prime {
		return fmt.Sprintf("%sPRIME%s", ui.ColorGreen(), ui.ColorReset())
	}
	return fmt.Sprintf("%sCOMPOSITE%s", ui.ColorRed(), ui.ColorReset())
}

// truncateCandidate shortens very long candidates for terminal display,
// keeping DisplayEdges digits at each end.
func truncateCandidate(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:]
}

// DisplayCheckResult formats and prints the verdict for a single candidate.
// It provides different levels of detail based on the verbose flag,
// including the tier that decided the candidate, the digit count, and the
// execution time. Very long candidates are truncated unless verbose is true.
//
// Parameters:
//   - out: The io.Writer for the output.
//   - res: The decision result to display.
//   - verbose: If true, prints tier and timing details and the full candidate.
func DisplayCheckResult(out io.Writer, res models.CheckResult, verbose bool) {
	candidate := res.N
	if !verbose {
		candidate = truncateCandidate(candidate)
	}

	if res.Error != "" {
		fmt.Fprintf(out, "%s%s%s: %serror%s (%s)\n",
			ui.ColorMagenta(), candidate, ui.ColorReset(),
			ui.ColorRed(), ui.ColorReset(), res.Error)
		return
	}

	fmt.Fprintf(out, "%s%s%s is %s\n",
		ui.ColorMagenta(), candidate, ui.ColorReset(), verdictString(res.Prime))

	if !verbose {
		return
	}

	fmt.Fprintf(out, "\n%s--- Decision details ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Algorithm       : %s%s%s\n", ui.ColorCyan(), res.Algorithm, ui.ColorReset())
	if res.Tier != "" {
		fmt.Fprintf(out, "Magnitude tier  : %s%s%s\n", ui.ColorCyan(), res.Tier, ui.ColorReset())
	}
	if res.Rounds > 0 {
		fmt.Fprintf(out, "Witness rounds  : %s%d%s\n", ui.ColorCyan(), res.Rounds, ui.ColorReset())
	}
	fmt.Fprintf(out, "Candidate digits: %s%s%s\n",
		ui.ColorCyan(), formatNumberString(fmt.Sprintf("%d", len(res.N))), ui.ColorReset())
	fmt.Fprintf(out, "Decision time   : %s%s%s\n", ui.ColorGreen(), res.Duration, ui.ColorReset())
}

// DisplayBatchResult formats and prints the aggregate verdict for a batch
// run over [2, Upper).
//
// Parameters:
//   - out: The io.Writer for the output.
//   - res: The batch result to display.
//   - verbose: If true, prints worker and timing details.
func DisplayBatchResult(out io.Writer, res models.BatchResult, verbose bool) {
	if res.Error != "" {
		fmt.Fprintf(out, "Batch [2, %s%d%s): %serror%s (%s)\n",
			ui.ColorMagenta(), res.Upper, ui.ColorReset(),
			ui.ColorRed(), ui.ColorReset(), res.Error)
		return
	}

	verdict := fmt.Sprintf("%snot all prime%s", ui.ColorRed(), ui.ColorReset())
	if res.AllPrime {
		verdict = fmt.Sprintf("%sall prime%s", ui.ColorGreen(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Batch [2, %s%s%s): %s\n",
		ui.ColorMagenta(), formatNumberString(fmt.Sprintf("%d", res.Upper)), ui.ColorReset(), verdict)

	if !verbose {
		return
	}

	fmt.Fprintf(out, "\n%s--- Batch details ---%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "Workers   : %s%d%s\n", ui.ColorCyan(), res.Workers, ui.ColorReset())
	fmt.Fprintf(out, "Batch time: %s%s%s\n", ui.ColorGreen(), res.Duration, ui.ColorReset())
}

// FormatQuietVerdict formats a verdict for quiet mode output.
// Returns a single word suitable for scripting.
//
// Parameters:
//   - prime: The verdict.
//
// Returns:
//   - string: "prime" or "composite".
func FormatQuietVerdict(prime bool) string {
	if prime {
		return "prime"
	}
	return "composite"
}

// DisplayQuietVerdict outputs a verdict in quiet mode (minimal output).
//
// Parameters:
//   - out: The output writer.
//   - prime: The verdict.
func DisplayQuietVerdict(out io.Writer, prime bool) {
	fmt.Fprintln(out, FormatQuietVerdict(prime))
}

// formatNumberString inserts thousand separators into a numeric string.
//
// Parameters:
//   - s: The numeric string to format.
//
// Returns:
//   - string: The formatted string with comma separators.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	numSeparators := (n - 1) / 3
	var builder strings.Builder
	builder.Grow(len(prefix) + n + numSeparators)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])

	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
