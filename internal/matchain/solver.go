// Package matchain implements the matrix chain multiplication optimizer.
// It computes, for a sequence of matrix dimensions, the parenthesization that
// minimizes the total number of scalar multiplications, using dynamic
// programming over interval lengths, and counts the distinct full
// parenthesizations via the Catalan recurrence.
//
// The package is pure and deterministic: solving the same dimension sequence
// twice yields byte-identical tables and expressions. All randomness (for the
// generated-input mode) is injected by the caller.
package matchain

import (
	"context"
	"math"

	apperrors "github.com/parsaz/chainopt/internal/errors"
)

// Solve computes the optimal multiplication order for the chain described by
// dims. A sequence of n+1 dimensions describes n matrices: matrix k has
// dimensions dims[k-1] x dims[k].
//
// The computation fills the cost and split tables in order of increasing
// chain length L, from 2 up to n; shorter intervals must be finalized before
// any longer interval reads them, so this iteration order is a correctness
// invariant rather than a stylistic choice. Ties between splits of equal cost
// are resolved toward the lowest k (strict less-than update on an ascending
// scan), which fixes one canonical parenthesization.
//
// Runs in O(n³) time and O(n²) space. Cancellation is honored between chain
// lengths; the optional reporter is invoked once per completed length.
//
// Parameters:
//   - ctx: The context for cancellation. Checked once per chain length.
//   - dims: The dimension sequence (length >= 2, all entries > 0).
//   - report: Optional progress callback (may be nil).
//
// Returns:
//   - *Tables: The populated cost and split tables.
//   - error: A ValidationError for a degenerate sequence, or the context
//     error if the solve was canceled.
func Solve(ctx context.Context, dims []int, report ProgressReporter) (*Tables, error) {
	if err := ValidateDims(dims); err != nil {
		return nil, err
	}

	t := newTables(dims)
	n := t.n

	// Cost[i][i] is zero: a single matrix needs no multiplications.
	// newTables zero-fills, so only the interval entries are computed below.
	for length := 2; length <= n; length++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 1; i <= n-length+1; i++ {
			j := i + length - 1
			best := int64(math.MaxInt64)
			bestSplit := i
			for k := i; k < j; k++ {
				q := t.Cost[i][k] + t.Cost[k+1][j] +
					int64(dims[i-1])*int64(dims[k])*int64(dims[j])
				if q < best {
					best = q
					bestSplit = k
				}
			}
			t.Cost[i][j] = best
			t.Split[i][j] = bestSplit
		}
		if report != nil {
			report(float64(length) / float64(n))
		}
	}

	// A single matrix has nothing to scan; still signal completion.
	if n == 1 && report != nil {
		report(1.0)
	}

	return t, nil
}

// ValidateDims checks that dims is a usable dimension sequence: at least two
// entries (one matrix) and every entry strictly positive.
//
// Parameters:
//   - dims: The dimension sequence to validate.
//
// Returns:
//   - error: A ValidationError describing the first violation, or nil.
func ValidateDims(dims []int) error {
	if len(dims) < 2 {
		return apperrors.NewValidationError("dims",
			"a chain needs at least two dimensions (one matrix)", len(dims))
	}
	for i, d := range dims {
		if d <= 0 {
			return apperrors.NewValidationError("dims",
				"all dimensions must be strictly positive", dims[i])
		}
	}
	return nil
}
