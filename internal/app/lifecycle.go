package app

import (
	"context"
	"os/signal"
	"syscall"
	"time"
)

// SetupSignals derives a context that is canceled when the process receives
// SIGINT or SIGTERM. The returned stop function releases the signal
// registration and must be called when the run finishes.
//
// Parameters:
//   - ctx: The parent context.
//
// Returns:
//   - context.Context: A context canceled on SIGINT or SIGTERM.
//   - context.CancelFunc: The function releasing the signal registration.
func SetupSignals(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// SolveContext bounds a single solve with the configured timeout. The
// deadline starts here rather than at process start, so time spent typing at
// the interactive prompt is not counted against the solve.
//
// Parameters:
//   - ctx: The parent context (typically signal-aware).
//   - timeout: The maximum duration allowed for the solve.
//
// Returns:
//   - context.Context: A context with the solve deadline applied.
//   - context.CancelFunc: The function releasing the deadline's resources.
func SolveContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
