package matchain

import "math/rand"

// Bounds for the generated-input mode. The chain length is drawn uniformly
// from [MinRandomMatrices, MaxRandomMatrices]; each dimension defaults to the
// range [DefaultMinDim, DefaultMaxDim].
const (
	MinRandomMatrices = 5
	MaxRandomMatrices = 15
	DefaultMinDim     = 1
	DefaultMaxDim     = 1000
)

// RandomChainLength draws a matrix count uniformly from
// [MinRandomMatrices, MaxRandomMatrices].
//
// The random source is supplied by the caller so the package itself stays
// seed-free and deterministic under test.
func RandomChainLength(rng *rand.Rand) int {
	return MinRandomMatrices + rng.Intn(MaxRandomMatrices-MinRandomMatrices+1)
}

// RandomDims generates a dimension sequence for n matrices: n+1 values drawn
// uniformly from [minDim, maxDim].
//
// Parameters:
//   - rng: The random source.
//   - n: The number of matrices (n >= 1).
//   - minDim: The inclusive lower bound for each dimension (> 0).
//   - maxDim: The inclusive upper bound for each dimension (>= minDim).
//
// Returns:
//   - []int: A sequence of n+1 dimensions.
func RandomDims(rng *rand.Rand, n, minDim, maxDim int) []int {
	dims := make([]int, n+1)
	for i := range dims {
		dims[i] = minDim + rng.Intn(maxDim-minDim+1)
	}
	return dims
}
