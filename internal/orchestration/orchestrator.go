// Package orchestration coordinates a solve with its asynchronous progress
// display. The DP kernel itself is synchronous; this package owns the
// goroutine handshake between the solver and the UI.
package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/parsaz/chainopt/internal/cli"
	"github.com/parsaz/chainopt/internal/matchain"
)

// SolveResult encapsulates the outcome of one chain optimization.
// It serves as a standardized container for reporting and persistence.
type SolveResult struct {
	// Tables holds the populated cost and split tables. Nil if an error occurred.
	Tables *matchain.Tables
	// Catalan is the number of distinct parenthesizations for the chain.
	Catalan int64
	// Duration is the time taken to complete the solve.
	Duration time.Duration
	// Err contains any error that occurred during the solve.
	Err error
}

// ProgressBufferSize is the capacity of the progress channel. A buffer
// prevents the solver from blocking when the UI is slow to consume updates.
const ProgressBufferSize = 8

// ExecuteSolve runs one chain optimization under the given context while a
// display goroutine renders progress to out.
//
// It starts the display goroutine, runs the solve in an errgroup, forwards
// solver progress over a buffered channel with non-blocking sends, and tears
// the display down once the solve finishes. Pass io.Discard as out to
// suppress the progress UI (quiet and JSON modes).
//
// Parameters:
//   - ctx: The context for cancellation and timeout.
//   - dims: The dimension sequence to optimize.
//   - out: The io.Writer for progress display.
//
// Returns:
//   - SolveResult: The result of the solve, including the Catalan count.
func ExecuteSolve(ctx context.Context, dims []int, out io.Writer) SolveResult {
	g, ctx := errgroup.WithContext(ctx)
	progressChan := make(chan matchain.ProgressUpdate, ProgressBufferSize)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go cli.DisplayProgress(&displayWg, progressChan, out)

	var result SolveResult
	g.Go(func() error {
		startTime := time.Now()
		tables, err := matchain.Solve(ctx, dims, func(progress float64) {
			// Non-blocking send; the UI catches up on the next update.
			select {
			case progressChan <- matchain.ProgressUpdate{Value: progress}:
			default:
			}
		})
		result.Duration = time.Since(startTime)
		result.Tables = tables
		result.Err = err
		if err == nil {
			// A blocking send: individual updates may be dropped, but the
			// completion update must reach the display. The display drains
			// the channel until it is closed, so this cannot deadlock.
			progressChan <- matchain.ProgressUpdate{Value: 1.0}
			result.Catalan, result.Err = matchain.Catalan(tables.N())
		}
		return nil
	})

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	return result
}
