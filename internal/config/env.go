// Package config provides the configuration management for the primecheck
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given key
// (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvUint64 returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as uint64, or the default value if not set
// or invalid.
func getEnvUint64(key string, defaultVal uint64) uint64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseUint(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as time.Duration, or the default value if not
// set or invalid. Accepts formats like "5m", "30s", "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables:
//   - PRIMECHECK_N: Candidate integer to test (decimal string)
//   - PRIMECHECK_ALGO: Algorithm to use (string: auto, sieve, trial, ...)
//   - PRIMECHECK_ROUNDS: Witness rounds for the probabilistic tests (int)
//   - PRIMECHECK_SIEVE_LIMIT: Sieve tier upper bound (uint64)
//   - PRIMECHECK_TRIAL_LIMIT: Trial-division tier upper bound (uint64)
//   - PRIMECHECK_PROB_LIMIT: Probabilistic tier upper bound (uint64)
//   - PRIMECHECK_BATCH: Batch mode upper bound (uint64)
//   - PRIMECHECK_WORKERS: Batch worker count (int)
//   - PRIMECHECK_TIMEOUT: Run timeout (duration: "5m", "30s")
//   - PRIMECHECK_PORT: Port for server mode (string)
//   - PRIMECHECK_SERVER: Enable server mode (bool: true/false, 1/0, yes/no)
//   - PRIMECHECK_JSON: Enable JSON output (bool)
//   - PRIMECHECK_QUIET: Enable quiet mode (bool)
//   - PRIMECHECK_VERBOSE: Enable verbose output (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	applyNumericOverrides(config, fs)
	applyStringOverrides(config, fs)
	applyBooleanOverrides(config, fs)
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
}

func applyNumericOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "rounds") {
		config.Rounds = getEnvInt("ROUNDS", config.Rounds)
	}
	if !isFlagSet(fs, "sieve-limit") {
		config.SieveLimit = getEnvUint64("SIEVE_LIMIT", config.SieveLimit)
	}
	if !isFlagSet(fs, "trial-limit") {
		config.TrialLimit = getEnvUint64("TRIAL_LIMIT", config.TrialLimit)
	}
	if !isFlagSet(fs, "prob-limit") {
		config.ProbabilisticLimit = getEnvUint64("PROB_LIMIT", config.ProbabilisticLimit)
	}
	if !isFlagSet(fs, "batch") {
		config.BatchUpper = getEnvUint64("BATCH", config.BatchUpper)
	}
	if !isFlagSet(fs, "workers") {
		config.Workers = getEnvInt("WORKERS", config.Workers)
	}
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "n") {
		config.N = getEnvString("N", config.N)
	}
	if !isFlagSet(fs, "algo") {
		config.Algo = getEnvString("ALGO", config.Algo)
	}
	if !isFlagSet(fs, "port") {
		config.Port = getEnvString("PORT", config.Port)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "server") {
		config.ServerMode = getEnvBool("SERVER", config.ServerMode)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "v") {
		config.Verbose = getEnvBool("VERBOSE", config.Verbose)
	}
}
