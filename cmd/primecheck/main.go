// Command primecheck decides the primality of arbitrary-size integers from
// the command line, as a batch over a range, or as an HTTP service.
package main

import (
	"context"
	"os"

	"github.com/agbru/primecheck/internal/app"
	apperrors "github.com/agbru/primecheck/internal/errors"
)

func main() {
	// Version flag works in any position and short-circuits everything else.
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(apperrors.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(apperrors.ExitSuccess)
		}
		os.Exit(apperrors.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
