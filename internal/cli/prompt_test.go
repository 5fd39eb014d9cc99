package cli

import (
	"bytes"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	apperrors "github.com/parsaz/chainopt/internal/errors"
	"github.com/parsaz/chainopt/internal/matchain"
)

func newTestPrompt(input string, out *bytes.Buffer) *Prompt {
	return NewPrompt(strings.NewReader(input), out, rand.New(rand.NewSource(7)),
		matchain.DefaultMinDim, matchain.DefaultMaxDim)
}

func TestCollectDims_Manual(t *testing.T) {
	disableColors(t)

	var out bytes.Buffer
	p := newTestPrompt("1\n3\n10 20 30 40\n", &out)

	dims, err := p.CollectDims()
	if err != nil {
		t.Fatalf("CollectDims returned error: %v", err)
	}
	if want := []int{10, 20, 30, 40}; !reflect.DeepEqual(dims, want) {
		t.Errorf("dims = %v, want %v", dims, want)
	}
	if !strings.Contains(out.String(), "Enter number of matrices:") {
		t.Errorf("prompt output missing matrix count question:\n%s", out.String())
	}
}

func TestCollectDims_Random(t *testing.T) {
	disableColors(t)

	var out bytes.Buffer
	p := newTestPrompt("2\n", &out)

	dims, err := p.CollectDims()
	if err != nil {
		t.Fatalf("CollectDims returned error: %v", err)
	}
	n := len(dims) - 1
	if n < matchain.MinRandomMatrices || n > matchain.MaxRandomMatrices {
		t.Errorf("random chain has %d matrices, want within [%d, %d]",
			n, matchain.MinRandomMatrices, matchain.MaxRandomMatrices)
	}
	if !strings.Contains(out.String(), "Randomly generated") {
		t.Errorf("prompt output missing generation echo:\n%s", out.String())
	}
	if !strings.Contains(out.String(), FormatDims(dims)) {
		t.Errorf("prompt output does not echo the dimensions:\n%s", out.String())
	}
}

func TestCollectDims_InvalidInput(t *testing.T) {
	disableColors(t)

	cases := []struct {
		name  string
		input string
	}{
		{"unknown mode", "3\n"},
		{"non-numeric mode", "abc\n"},
		{"empty input", ""},
		{"zero matrices", "1\n0\n"},
		{"too many matrices", "1\n99\n"},
		{"truncated dimensions", "1\n3\n10 20\n"},
		{"non-positive dimension", "1\n2\n10 0 30\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newTestPrompt(tc.input, &out)
			_, err := p.CollectDims()
			var verr apperrors.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("CollectDims(%q) = %v, want ValidationError", tc.input, err)
			}
		})
	}
}

func TestConfirmTables(t *testing.T) {
	disableColors(t)

	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase yes", "Y\n", true},
		{"no", "n\n", false},
		{"anything else", "maybe\n", false},
		{"end of input", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newTestPrompt(tc.input, &out)
			got, err := p.ConfirmTables()
			if err != nil {
				t.Fatalf("ConfirmTables returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ConfirmTables(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}
