package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// HandleTestError formats and prints error messages related to failed
// primality tests. It distinguishes between different error types (timeout,
// cancellation, generic) to provide the user with specific feedback.
//
// Parameters:
//   - err: The error that occurred.
//   - duration: The duration of the test before it failed.
//   - out: The io.Writer to which the error message will be written.
//
// Returns:
//   - int: The appropriate exit code for the error type.
func HandleTestError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}

	msgSuffix := ""
	if duration > 0 {
		msgSuffix = fmt.Sprintf(" after %s", duration)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached%s.\n", msgSuffix)
		return ExitErrorTimeout
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(out, "Status: Canceled%s.\n", msgSuffix)
		return ExitErrorCanceled
	}
	var cfgErr ConfigError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(out, "Status: Failure. Configuration error: %v\n", err)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "Status: Failure. An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
