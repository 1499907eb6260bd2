package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/primecheck/internal/config"
	"github.com/agbru/primecheck/internal/prime"
	"github.com/agbru/primecheck/internal/ui"
)

// TesterToRun resolves the decision engine selected by the configuration.
//
// Parameters:
//   - cfg: The application configuration containing the algorithm selection.
//   - factory: The tester factory to retrieve implementations from.
//
// Returns:
//   - prime.Tester: The selected engine, or nil if the name is unknown.
func TesterToRun(cfg config.AppConfig, factory prime.TesterFactory) prime.Tester {
	if tester, err := factory.Get(cfg.Algo); err == nil {
		return tester
	}
	return nil
}

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the candidate (or batch range), timeout, environment
// details, and the configured tier boundaries.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	writeOut(out, "--- Execution Configuration ---\n")
	if cfg.BatchUpper > 0 {
		writeOut(out, "Testing every integer in %s[2, %d)%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), cfg.BatchUpper, ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	} else {
		writeOut(out, "Testing %s%s%s with a timeout of %s%s%s.\n",
			ui.ColorMagenta(), truncateCandidate(cfg.N), ui.ColorReset(), ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	}
	writeOut(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	writeOut(out, "Tier boundaries: sieve<%s%d%s, trial<%s%d%s, probabilistic<%s%d%s.\n",
		ui.ColorCyan(), cfg.SieveLimit, ui.ColorReset(),
		ui.ColorCyan(), cfg.TrialLimit, ui.ColorReset(),
		ui.ColorCyan(), cfg.ProbabilisticLimit, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single check vs batch).
//
// Parameters:
//   - cfg: The application configuration.
//   - tester: The engine that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(cfg config.AppConfig, tester prime.Tester, out io.Writer) {
	var modeDesc string
	if cfg.BatchUpper > 0 {
		modeDesc = fmt.Sprintf("Batch aggregate verdict with the %s%s%s engine",
			ui.ColorGreen(), tester.Name(), ui.ColorReset())
	} else {
		modeDesc = fmt.Sprintf("Single decision with the %s%s%s engine",
			ui.ColorGreen(), tester.Name(), ui.ColorReset())
	}
	writeOut(out, "Execution mode: %s.\n", modeDesc)
	writeOut(out, "\n--- Starting Execution ---\n")
}

// writeOut writes a formatted string to the output writer.
//
// Parameters:
//   - out: The destination writer.
//   - format: The format string (see fmt.Printf).
//   - a: Arguments for the format string.
func writeOut(out io.Writer, format string, a ...any) {
	fmt.Fprintf(out, format, a...)
}
