package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies terminal color codes to error formatting without
// importing the ui package, which would create an import cycle.
type ColorProvider interface {
	Yellow() string
	Reset() string
}

// DefaultColorProvider emits no color codes.
type DefaultColorProvider struct{}

func (DefaultColorProvider) Yellow() string { return "" }
func (DefaultColorProvider) Reset() string  { return "" }

// HandleSolveError prints a user-facing message for a failed solve and maps
// the failure class to an exit code: timeout, cancellation, invalid input,
// or generic.
//
// Parameters:
//   - err: The error from the solve. Nil returns ExitSuccess silently.
//   - duration: How long the solve ran before failing (0 omits it).
//   - out: The writer for the message, typically stderr.
//   - colors: Color codes for highlighting; nil disables colors.
//
// Returns:
//   - int: The exit code matching the failure class.
func HandleSolveError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}
	if colors == nil {
		colors = DefaultColorProvider{}
	}

	elapsed := ""
	if duration > 0 {
		elapsed = fmt.Sprintf(" after %s%s%s", colors.Yellow(), duration, colors.Reset())
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "Timeout: the solve exceeded its time limit%s.\n", elapsed)
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled%s%s.\n", colors.Yellow(), elapsed, colors.Reset())
		return ExitErrorCanceled
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(out, "Invalid input: %v\n", err)
		return ExitErrorConfig
	}
	fmt.Fprintf(out, "An unexpected error occurred: %v\n", err)
	return ExitErrorGeneric
}
