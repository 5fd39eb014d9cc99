// Command chainopt computes the optimal multiplication order for a chain of
// matrices, minimizing the total number of scalar multiplications.
package main

import (
	"context"
	"os"

	"github.com/parsaz/chainopt/internal/app"
	apperrors "github.com/parsaz/chainopt/internal/errors"
)

func main() {
	os.Exit(run(os.Args))
}

// run builds and executes the application, translating its outcome into an
// exit code. Kept separate from main so it is testable.
func run(args []string) int {
	if app.HasVersionFlag(args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	return application.Run(context.Background(), os.Stdout)
}
