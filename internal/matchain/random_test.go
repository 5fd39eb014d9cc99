package matchain

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestRandomChainLength_WithinBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		n := RandomChainLength(rng)
		if n < MinRandomMatrices || n > MaxRandomMatrices {
			t.Fatalf("RandomChainLength() = %d, want within [%d, %d]",
				n, MinRandomMatrices, MaxRandomMatrices)
		}
	}
}

func TestRandomDims_LengthAndBounds(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		n := RandomChainLength(rng)
		dims := RandomDims(rng, n, DefaultMinDim, DefaultMaxDim)

		if len(dims) != n+1 {
			t.Fatalf("RandomDims(n=%d) produced %d values, want %d", n, len(dims), n+1)
		}
		for _, d := range dims {
			if d < DefaultMinDim || d > DefaultMaxDim {
				t.Fatalf("dimension %d outside [%d, %d]", d, DefaultMinDim, DefaultMaxDim)
			}
		}
		if err := ValidateDims(dims); err != nil {
			t.Fatalf("RandomDims produced invalid sequence %v: %v", dims, err)
		}
	}
}

func TestRandomDims_CustomRange(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(3))
	dims := RandomDims(rng, 50, 7, 9)
	for _, d := range dims {
		if d < 7 || d > 9 {
			t.Fatalf("dimension %d outside [7, 9]", d)
		}
	}
}

func TestRandomDims_Deterministic(t *testing.T) {
	t.Parallel()

	first := RandomDims(rand.New(rand.NewSource(42)), 10, 1, 1000)
	second := RandomDims(rand.New(rand.NewSource(42)), 10, 1, 1000)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different sequences: %v vs %v", first, second)
	}
}
