package matchain

// ─────────────────────────────────────────────────────────────────────────────
// Core Data Types
// ─────────────────────────────────────────────────────────────────────────────

// Tables holds the dynamic-programming state of one solved matrix chain.
// Both tables are square with a 1-indexed usable range 1..n, mirroring the
// textbook formulation; row and column 0 are allocated but unused.
//
// Cost[i][j] is the minimum number of scalar multiplications needed to
// compute the product of matrices i..j. Split[i][j] is the index k at which
// that optimal product is split, meaningful only for j > i. Once Solve
// returns, the tables are never mutated again.
type Tables struct {
	// Dims is the dimension sequence the tables were computed from.
	// Matrix k (1-indexed) has dimensions Dims[k-1] x Dims[k].
	Dims []int
	// Cost is the minimum-cost table m.
	Cost [][]int64
	// Split is the optimal split-point table s.
	Split [][]int

	n int
}

// N returns the number of matrices in the chain.
func (t *Tables) N() int { return t.n }

// MinCost returns the minimum number of scalar multiplications for the
// full chain, i.e. Cost[1][n].
func (t *Tables) MinCost() int64 { return t.Cost[1][t.n] }

// ProgressReporter is a callback invoked by the solver as the computation
// advances, with a normalized progress value in [0.0, 1.0]. A nil reporter
// disables progress reporting.
type ProgressReporter func(progress float64)

// ProgressUpdate carries a progress notification across a channel.
// It decouples the solver from the UI goroutine that renders progress.
type ProgressUpdate struct {
	// Value is the normalized progress (0.0 to 1.0).
	Value float64
}

func newTables(dims []int) *Tables {
	n := len(dims) - 1
	cost := make([][]int64, n+1)
	split := make([][]int, n+1)
	for i := range cost {
		cost[i] = make([]int64, n+1)
		split[i] = make([]int, n+1)
	}
	return &Tables{Dims: dims, Cost: cost, Split: split, n: n}
}
