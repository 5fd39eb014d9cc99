package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	apperrors "github.com/parsaz/chainopt/internal/errors"
	"github.com/parsaz/chainopt/internal/matchain"
	"github.com/parsaz/chainopt/internal/ui"
)

// Prompt drives the interactive input mode: the user chooses between manual
// dimension entry and random generation, and may ask to see the DP tables
// after the solve. Reader and writer are injectable for tests.
type Prompt struct {
	in     *bufio.Reader
	out    io.Writer
	rng    *rand.Rand
	minDim int
	maxDim int
}

// NewPrompt creates a Prompt reading from in and writing to out.
//
// Parameters:
//   - in: The input stream (typically os.Stdin).
//   - out: The output stream (typically os.Stdout).
//   - rng: The random source for the generated-input path.
//   - minDim: The lower bound for random dimensions.
//   - maxDim: The upper bound for random dimensions.
//
// Returns:
//   - *Prompt: A new prompt instance.
func NewPrompt(in io.Reader, out io.Writer, rng *rand.Rand, minDim, maxDim int) *Prompt {
	return &Prompt{
		in:     bufio.NewReader(in),
		out:    out,
		rng:    rng,
		minDim: minDim,
		maxDim: maxDim,
	}
}

// CollectDims displays the input menu and returns a validated dimension
// sequence, either entered manually or generated pseudorandomly with the
// chain length drawn from the standard range.
//
// Returns:
//   - []int: The dimension sequence (n+1 values).
//   - error: A ValidationError for malformed input, or a read error.
func (p *Prompt) CollectDims() ([]int, error) {
	fmt.Fprintf(p.out, "%s\n", ui.Colorize(ui.ColorBold(), "Matrix Chain Multiplication"))
	fmt.Fprintln(p.out, "1. Manual input")
	fmt.Fprintln(p.out, "2. Random input")
	fmt.Fprint(p.out, "Choose input mode (1 or 2): ")

	var mode int
	if _, err := fmt.Fscan(p.in, &mode); err != nil {
		return nil, apperrors.NewValidationError("mode", "expected 1 or 2", nil)
	}

	switch mode {
	case 1:
		return p.collectManualDims()
	case 2:
		return p.generateRandomDims(), nil
	default:
		return nil, apperrors.NewValidationError("mode", "expected 1 or 2", mode)
	}
}

// collectManualDims reads a matrix count followed by n+1 dimensions.
func (p *Prompt) collectManualDims() ([]int, error) {
	fmt.Fprint(p.out, "Enter number of matrices: ")
	var n int
	if _, err := fmt.Fscan(p.in, &n); err != nil {
		return nil, apperrors.NewValidationError("matrices", "expected an integer", nil)
	}
	if n < 1 {
		return nil, apperrors.NewValidationError("matrices", "need at least one matrix", n)
	}
	if n > matchain.MaxCatalanIndex {
		return nil, apperrors.NewValidationError("matrices",
			fmt.Sprintf("chains beyond %d matrices overflow the parenthesization count", matchain.MaxCatalanIndex), n)
	}

	fmt.Fprintf(p.out, "Enter dimensions array P (size = %d):\n", n+1)
	dims := make([]int, n+1)
	for i := range dims {
		if _, err := fmt.Fscan(p.in, &dims[i]); err != nil {
			return nil, apperrors.NewValidationError("dims",
				fmt.Sprintf("expected %d integers", n+1), nil)
		}
	}
	if err := matchain.ValidateDims(dims); err != nil {
		return nil, err
	}
	return dims, nil
}

// generateRandomDims draws a chain length from the standard range and fills
// the sequence from the configured dimension bounds, echoing the result.
func (p *Prompt) generateRandomDims() []int {
	n := matchain.RandomChainLength(p.rng)
	dims := matchain.RandomDims(p.rng, n, p.minDim, p.maxDim)
	fmt.Fprintf(p.out, "Randomly generated %s matrices.\n", ui.Colorize(ui.ColorCyan(), fmt.Sprintf("%d", n)))
	fmt.Fprintf(p.out, "Dimensions P: %s\n", ui.Colorize(ui.ColorCyan(), FormatDims(dims)))
	return dims
}

// ConfirmTables asks whether the DP tables should be displayed.
// EOF counts as "no" so piped sessions terminate cleanly.
//
// Returns:
//   - bool: True if the user answered yes.
//   - error: A read error other than EOF.
func (p *Prompt) ConfirmTables() (bool, error) {
	fmt.Fprint(p.out, "\nShow DP tables? (y/n): ")
	var answer string
	if _, err := fmt.Fscan(p.in, &answer); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
