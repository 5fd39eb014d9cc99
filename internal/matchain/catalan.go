package matchain

import (
	"fmt"

	apperrors "github.com/parsaz/chainopt/internal/errors"
)

// MaxCatalanIndex is the largest n for which Catalan(n) fits in an int64.
// C(36) = 11,959,798,385,860,453,492 exceeds math.MaxInt64.
const MaxCatalanIndex = 35

// Catalan returns the number of distinct full parenthesizations of a product
// of n matrices, the nth Catalan number, computed bottom-up from the
// convolution recurrence
//
//	C(0) = C(1) = 1,  C(i) = Σ_{j=0}^{i-1} C(j)·C(i-1-j).
//
// The count depends only on n, never on the matrix dimensions. Values grow
// combinatorially; indices beyond MaxCatalanIndex are rejected rather than
// silently wrapping around.
//
// Parameters:
//   - n: The number of matrices (n >= 0).
//
// Returns:
//   - int64: The nth Catalan number.
//   - error: A ValidationError if n is negative or exceeds MaxCatalanIndex.
func Catalan(n int) (int64, error) {
	if n < 0 {
		return 0, apperrors.NewValidationError("n", "must be non-negative", n)
	}
	if n > MaxCatalanIndex {
		return 0, apperrors.NewValidationError("n",
			fmt.Sprintf("Catalan number overflows int64 beyond n = %d", MaxCatalanIndex), n)
	}
	if n <= 1 {
		return 1, nil
	}

	cat := make([]int64, n+1)
	cat[0], cat[1] = 1, 1
	for i := 2; i <= n; i++ {
		for j := 0; j < i; j++ {
			cat[i] += cat[j] * cat[i-1-j]
		}
	}
	return cat[n], nil
}
