// Package config provides the configuration management for the primecheck
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"strings"
	"time"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/prime"
)

const (
	// EnvPrefix is the prefix for all environment variables used by primecheck.
	// Environment variables provide an alternative to CLI flags for configuration,
	// following the 12-Factor App methodology.
	EnvPrefix = "PRIMECHECK_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout is the default test timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultAlgo is the default algorithm selection.
	DefaultAlgo = "auto"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the candidate to test, to the tier boundaries of the
// decision engine.
type AppConfig struct {
	// N is the decimal representation of the candidate to test. It is kept
	// as a string because candidates may exceed the range of any fixed-width
	// integer type.
	N string
	// Algo specifies the decision algorithm to use ("auto", "sieve",
	// "trial", "fermat", "miller-rabin", "probabilistic", "aks").
	Algo string
	// Rounds is the witness round count k for the probabilistic tests.
	// Higher values lower the false-positive probability at a linear cost.
	Rounds int
	// SieveLimit is the exclusive upper bound of the sieve tier.
	SieveLimit uint64
	// TrialLimit is the exclusive upper bound of the trial-division tier.
	TrialLimit uint64
	// ProbabilisticLimit is the exclusive upper bound of the probabilistic tier.
	ProbabilisticLimit uint64
	// BatchUpper, if nonzero, runs the batch mode: every integer in
	// [2, BatchUpper) is tested and the aggregate verdict reported.
	BatchUpper uint64
	// Workers is the worker count for batch mode. 0 means one worker per
	// available CPU.
	Workers int
	// Timeout sets the maximum duration for a run.
	Timeout time.Duration
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// Quiet mode - minimal output for scripting purposes.
	Quiet bool
	// Verbose, if true, includes tier and timing details in the output.
	Verbose bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
	// NoColor disables colored terminal output.
	NoColor bool
	// Completion, if non-empty, generates a shell completion script for the
	// named shell and exits.
	Completion string
}

// ToTestOptions converts the application configuration into prime.Options
// for use by the decision engines.
func (c AppConfig) ToTestOptions() prime.Options {
	return prime.Options{
		Rounds:             c.Rounds,
		SieveLimit:         c.SieveLimit,
		TrialLimit:         c.TrialLimit,
		ProbabilisticLimit: c.ProbabilisticLimit,
	}
}

// Candidate parses the configured candidate into a big integer.
//
// Returns:
//   - *big.Int: The parsed candidate.
//   - error: A ValidationError if N is empty, malformed, or negative.
func (c AppConfig) Candidate() (*big.Int, error) {
	if c.N == "" {
		return nil, apperrors.NewValidationError("n", "no candidate specified", nil)
	}
	n, ok := new(big.Int).SetString(c.N, 10)
	if !ok {
		return nil, apperrors.NewValidationError("n", "candidate must be a decimal integer", c.N)
	}
	if n.Sign() < 0 {
		return nil, apperrors.NewValidationError("n", "candidate must be non-negative", c.N)
	}
	return n, nil
}

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges, that the tier
// boundaries are ordered, and that the chosen algorithm is supported.
//
// Parameters:
//   - availableAlgos: A slice of strings listing the valid algorithm names
//     (e.g., ["auto", "sieve", "trial"]).
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Completion != "" {
		// Completion generation needs no further configuration.
		return nil
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Rounds < 0 {
		return apperrors.NewConfigError("witness round count cannot be negative: %d", c.Rounds)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count cannot be negative: %d", c.Workers)
	}
	if c.SieveLimit > c.TrialLimit {
		return apperrors.NewConfigError("sieve limit (%d) cannot exceed trial-division limit (%d)", c.SieveLimit, c.TrialLimit)
	}
	if c.TrialLimit > c.ProbabilisticLimit {
		return apperrors.NewConfigError("trial-division limit (%d) cannot exceed probabilistic limit (%d)", c.TrialLimit, c.ProbabilisticLimit)
	}
	if !c.ServerMode && c.BatchUpper == 0 {
		if _, err := c.Candidate(); err != nil {
			return apperrors.NewConfigError("invalid candidate: %v", err)
		}
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: [%s]", c.Algo, strings.Join(availableAlgos, ", "))
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values, and
// handles the parsing process. After parsing, it performs validation on the
// resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//   - availableAlgos: A slice of valid algorithm names for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to use: one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.N, "n", "", "Candidate integer to test (decimal, arbitrary size).")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.IntVar(&config.Rounds, "rounds", prime.DefaultRounds, "Witness rounds k for the probabilistic tests.")
	fs.Uint64Var(&config.SieveLimit, "sieve-limit", prime.DefaultSieveLimit, "Exclusive upper bound of the sieve tier.")
	fs.Uint64Var(&config.TrialLimit, "trial-limit", prime.DefaultTrialLimit, "Exclusive upper bound of the trial-division tier.")
	fs.Uint64Var(&config.ProbabilisticLimit, "prob-limit", prime.DefaultProbabilisticLimit, "Exclusive upper bound of the probabilistic tier.")
	fs.Uint64Var(&config.BatchUpper, "batch", 0, "Batch mode: test every integer in [2, batch) and report the aggregate verdict.")
	fs.IntVar(&config.Workers, "workers", 0, "Worker count for batch mode (0 = one per CPU).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the run.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Include tier and timing details in the output.")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script for the given shell (bash, zsh, fish, powershell).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)
	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
