// Package cli provides functions for building the command-line interface of
// the matrix chain optimizer. It formats solve results for a clear and
// readable presentation, renders the DP tables, and exports the plain-text
// report.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/parsaz/chainopt/internal/errors"
	"github.com/parsaz/chainopt/internal/matchain"
	"github.com/parsaz/chainopt/internal/ui"
)

// DefaultReportFile is the report path used by the interactive mode when no
// explicit output path was configured.
const DefaultReportFile = "matrix_chain_output.txt"

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatDims renders a dimension sequence as space-separated values.
func FormatDims(dims []int) string {
	var b strings.Builder
	for i, d := range dims {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", d)
	}
	return b.String()
}

// DisplayResult formats and prints the final solve result: the dimension
// sequence, the minimum multiplication cost, the optimal parenthesization,
// and the Catalan number for the chain length.
//
// Parameters:
//   - out: The io.Writer for the output.
//   - t: The solved tables.
//   - catalan: The Catalan number for the chain length.
//   - duration: The time taken by the solve.
func DisplayResult(out io.Writer, t *matchain.Tables, catalan int64, duration time.Duration) {
	fmt.Fprintf(out, "\n%s\n", ui.Colorize(ui.ColorBold(), "--- Optimal Multiplication Order ---"))
	fmt.Fprintf(out, "Matrix dimensions (P)     : %s\n", ui.Colorize(ui.ColorCyan(), FormatDims(t.Dims)))
	fmt.Fprintf(out, "Matrices in chain         : %s\n", ui.Colorize(ui.ColorCyan(), fmt.Sprintf("%d", t.N())))
	fmt.Fprintf(out, "Minimum multiplications   : %s\n",
		ui.Colorize(ui.ColorGreen(), formatNumberString(fmt.Sprintf("%d", t.MinCost()))))
	fmt.Fprintf(out, "Optimal parenthesization  : %s\n", ui.Colorize(ui.ColorGreen(), t.Parenthesization()))
	fmt.Fprintf(out, "Catalan number            : %s (n = %d)\n",
		ui.Colorize(ui.ColorMagenta(), formatNumberString(fmt.Sprintf("%d", catalan))), t.N())
	fmt.Fprintf(out, "Solve time                : %s\n",
		ui.Colorize(ui.ColorYellow(), FormatExecutionDuration(duration)))
}

// DisplayQuietResult outputs a result in quiet mode: a single line holding
// the minimum cost and the parenthesization, suitable for scripting.
//
// Parameters:
//   - out: The output writer.
//   - t: The solved tables.
func DisplayQuietResult(out io.Writer, t *matchain.Tables) {
	fmt.Fprintf(out, "%d %s\n", t.MinCost(), t.Parenthesization())
}

// WriteReportToFile writes the plain-text report for a solved chain: the
// dimension sequence space-separated, a blank line, the minimum cost, the
// optimal parenthesization, and the Catalan number. The file handle is
// released on all exit paths.
//
// Parameters:
//   - t: The solved tables.
//   - catalan: The Catalan number for the chain length.
//   - path: The output file path.
//
// Returns:
//   - error: A ReportError if the file cannot be created or written.
func WriteReportToFile(t *matchain.Tables, catalan int64, path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewReportError(path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewReportError(path, err)
	}
	defer file.Close()

	fmt.Fprintf(file, "Matrix dimensions (P): %s\n", FormatDims(t.Dims))
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "Minimum multiplication cost: %d\n", t.MinCost())
	fmt.Fprintf(file, "Optimal parenthesization: %s\n", t.Parenthesization())
	fmt.Fprintf(file, "Catalan number (n = %d): %d\n", t.N(), catalan)

	if err := file.Sync(); err != nil {
		return apperrors.NewReportError(path, err)
	}
	return nil
}

// formatNumberString inserts thousand separators into a numeric string.
//
// Parameters:
//   - s: The numeric string to format.
//
// Returns:
//   - string: The formatted string with comma separators.
func formatNumberString(s string) string {
	if len(s) == 0 {
		return ""
	}
	prefix := ""
	if s[0] == '-' {
		prefix = "-"
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		return prefix + s
	}

	numSeparators := (n - 1) / 3
	var builder strings.Builder
	builder.Grow(len(prefix) + n + numSeparators)
	builder.WriteString(prefix)

	firstGroupLen := n % 3
	if firstGroupLen == 0 {
		firstGroupLen = 3
	}
	builder.WriteString(s[:firstGroupLen])

	for i := firstGroupLen; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}
