package matchain

import (
	"testing"
)

func TestCatalan_KnownValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 5},
		{4, 14},
		{5, 42},
		{10, 16796},
		{15, 9694845},
		{20, 6564120420},
		{MaxCatalanIndex, 3116285494907301262},
	}

	for _, tc := range cases {
		got, err := Catalan(tc.n)
		if err != nil {
			t.Errorf("Catalan(%d) returned error: %v", tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Catalan(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestCatalan_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-1, -10, MaxCatalanIndex + 1, 100} {
		if _, err := Catalan(n); err == nil {
			t.Errorf("Catalan(%d) succeeded, want error", n)
		}
	}
}

func TestCatalan_MatchesParenthesizationCount(t *testing.T) {
	t.Parallel()

	// C(n-1) counts the distinct parenthesizations of an n-matrix chain.
	// Enumerate them for small n and compare.
	for n := 1; n <= 8; n++ {
		want, err := Catalan(n - 1)
		if err != nil {
			t.Fatalf("Catalan(%d) returned error: %v", n-1, err)
		}
		if got := countParenthesizations(1, n); got != want {
			t.Errorf("chain of %d matrices: counted %d parenthesizations, Catalan gives %d",
				n, got, want)
		}
	}
}

func countParenthesizations(i, j int) int64 {
	if i == j {
		return 1
	}
	var total int64
	for k := i; k < j; k++ {
		total += countParenthesizations(i, k) * countParenthesizations(k+1, j)
	}
	return total
}

func TestCatalan_SequenceIsNonDecreasing(t *testing.T) {
	t.Parallel()

	prev := int64(0)
	for n := 0; n <= MaxCatalanIndex; n++ {
		c, err := Catalan(n)
		if err != nil {
			t.Fatalf("Catalan(%d) returned error: %v", n, err)
		}
		if c < prev {
			t.Fatalf("Catalan(%d) = %d decreased below %d", n, c, prev)
		}
		prev = c
	}
}
