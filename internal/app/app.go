package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/agbru/primecheck/internal/cli"
	"github.com/agbru/primecheck/internal/config"
	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/orchestration"
	"github.com/agbru/primecheck/internal/prime"
	"github.com/agbru/primecheck/internal/server"
	"github.com/agbru/primecheck/internal/ui"
	"github.com/agbru/primecheck/pkg/models"
)

// Application represents the primecheck application instance.
// It encapsulates the configuration and provides methods to run
// the application in various modes (CLI, batch, server).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Factory provides access to the primality decision engines.
	// Uses the interface type for better testability and dependency injection.
	Factory prime.TesterFactory
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	factory := prime.GlobalFactory()
	availableAlgos := factory.List()

	// args[0] is program name, args[1:] are the actual arguments
	programName := "primecheck"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Factory:   factory,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// It dispatches to the appropriate handler (completion, server, batch, or
// single check).
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Handle completion script generation
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	// Initialize CLI theme (respects -no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Server mode
	if a.Config.ServerMode {
		return a.runServer()
	}

	// Batch mode
	if a.Config.BatchUpper > 0 {
		return a.runBatch(ctx, out)
	}

	// Standard single-candidate mode
	return a.runCheck(ctx, out)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	availableAlgos := a.Factory.List()
	if err := cli.GenerateCompletion(out, a.Config.Completion, availableAlgos); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// runServer starts the HTTP server mode.
func (a *Application) runServer() int {
	srv := server.NewServer(a.Factory, a.Config)
	if err := srv.Start(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runCheck orchestrates a single-candidate decision on the CLI.
func (a *Application) runCheck(ctx context.Context, out io.Writer) int {
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	candidate, err := a.Config.Candidate()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	tester := cli.TesterToRun(a.Config, a.Factory)
	if tester == nil {
		fmt.Fprintf(a.ErrWriter, "Error: unknown algorithm %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, tester, out)
	}

	isPrime, duration, err := a.runWithProgress(ctx, out, "Deciding", func(ctx context.Context) (bool, error) {
		return tester.Test(ctx, candidate, a.Config.ToTestOptions())
	})
	if err != nil {
		return apperrors.HandleTestError(err, duration, a.ErrWriter)
	}

	result := models.CheckResult{
		N:         candidate.String(),
		Prime:     isPrime,
		Algorithm: tester.Name(),
		Tier:      prime.TierFor(candidate, a.Config.ToTestOptions()).String(),
		Rounds:    a.Config.Rounds,
		Duration:  cli.FormatExecutionDuration(duration),
	}

	switch {
	case a.Config.JSONOutput:
		return printJSON(result, out)
	case a.Config.Quiet:
		cli.DisplayQuietVerdict(out, isPrime)
	default:
		cli.DisplayCheckResult(out, result, a.Config.Verbose)
	}
	return apperrors.ExitSuccess
}

// runBatch orchestrates a batch run over [2, BatchUpper) on the CLI.
func (a *Application) runBatch(ctx context.Context, out io.Writer) int {
	ctx, cancels := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancels.Cleanup()

	tester := cli.TesterToRun(a.Config, a.Factory)
	if tester == nil {
		fmt.Fprintf(a.ErrWriter, "Error: unknown algorithm %q\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.JSONOutput && !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, tester, out)
	}

	workers := a.Config.Workers
	if workers < 1 {
		workers = orchestration.DefaultWorkers()
	}

	allPrime, duration, err := a.runWithProgress(ctx, out, "Testing range", func(ctx context.Context) (bool, error) {
		return orchestration.AllPrime(ctx, tester, a.Config.BatchUpper, workers, a.Config.ToTestOptions())
	})
	if err != nil {
		return apperrors.HandleTestError(err, duration, a.ErrWriter)
	}

	result := models.BatchResult{
		Upper:    a.Config.BatchUpper,
		AllPrime: allPrime,
		Workers:  workers,
		Duration: cli.FormatExecutionDuration(duration),
	}

	switch {
	case a.Config.JSONOutput:
		return printJSON(result, out)
	case a.Config.Quiet:
		cli.DisplayQuietVerdict(out, allPrime)
	default:
		cli.DisplayBatchResult(out, result, a.Config.Verbose)
	}
	return apperrors.ExitSuccess
}

// runWithProgress executes fn while a spinner is displayed, unless quiet or
// JSON mode suppresses terminal decoration. It returns the verdict, the
// elapsed wall time, and any error from fn.
func (a *Application) runWithProgress(ctx context.Context, out io.Writer, label string, fn func(context.Context) (bool, error)) (bool, time.Duration, error) {
	showProgress := !a.Config.JSONOutput && !a.Config.Quiet

	var wg sync.WaitGroup
	done := make(chan struct{})
	if showProgress {
		wg.Add(1)
		go cli.DisplayProgress(&wg, done, label, out)
	}

	start := time.Now()
	verdict, err := fn(ctx)
	duration := time.Since(start)

	close(done)
	wg.Wait()

	return verdict, duration, err
}

// printJSON encodes v to out with indentation, for scripting consumption.
func printJSON(v any, out io.Writer) int {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: True if the error indicates help was requested.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
