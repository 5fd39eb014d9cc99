package apperrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()

	err := NewConfigError("invalid timeout: %s", "-5s")
	if got, want := err.Error(), "invalid timeout: -5s"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var cerr ConfigError
	if !errors.As(err, &cerr) {
		t.Error("errors.As failed to match ConfigError")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("with field", func(t *testing.T) {
		t.Parallel()
		err := NewValidationError("dims", "must contain at least two values", []int{10})
		want := "validation error for 'dims': must contain at least two values"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("without field", func(t *testing.T) {
		t.Parallel()
		err := NewValidationError("", "something went wrong", nil)
		want := "validation error: something went wrong"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("matches through wrapping", func(t *testing.T) {
		t.Parallel()
		wrapped := WrapError(NewValidationError("n", "too large", 99), "parsing input")
		var verr ValidationError
		if !errors.As(wrapped, &verr) {
			t.Error("errors.As failed to match wrapped ValidationError")
		}
		if verr.Field != "n" {
			t.Errorf("Field = %q, want %q", verr.Field, "n")
		}
	})
}

func TestReportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("permission denied")
	err := NewReportError("/tmp/out.txt", cause)

	if !strings.Contains(err.Error(), "/tmp/out.txt") {
		t.Errorf("Error() = %q, want path included", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is failed to find the underlying cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		if got := WrapError(nil, "context"); got != nil {
			t.Errorf("WrapError(nil) = %v, want nil", got)
		}
	})

	t.Run("preserves chain", func(t *testing.T) {
		t.Parallel()
		base := errors.New("base failure")
		wrapped := WrapError(base, "while doing %s", "work")
		if !errors.Is(wrapped, base) {
			t.Error("errors.Is failed to find the base error")
		}
		if got, want := wrapped.Error(), "while doing work: base failure"; got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})
}

func TestIsContextError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("solve: %w", context.Canceled), true},
		{"generic error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tc.err); got != tc.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestHandleSolveError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantText string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"validation", NewValidationError("dims", "bad", nil), ExitErrorConfig, "Invalid input"},
		{"generic", errors.New("boom"), ExitErrorGeneric, "unexpected error"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf strings.Builder
			code := HandleSolveError(tc.err, 0, &buf, nil)
			if code != tc.wantCode {
				t.Errorf("exit code = %d, want %d", code, tc.wantCode)
			}
			if tc.wantText != "" && !strings.Contains(buf.String(), tc.wantText) {
				t.Errorf("output %q does not contain %q", buf.String(), tc.wantText)
			}
		})
	}
}

func TestHandleSolveError_IncludesDuration(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	HandleSolveError(context.DeadlineExceeded, 1500000000, &buf, DefaultColorProvider{})
	if !strings.Contains(buf.String(), "1.5s") {
		t.Errorf("output %q does not mention the elapsed duration", buf.String())
	}
}
