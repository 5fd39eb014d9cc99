package matchain

import (
	"fmt"
	"io"
	"strings"

	apperrors "github.com/parsaz/chainopt/internal/errors"
)

// WriteParenthesization emits the fully parenthesized product expression for
// matrices i..j to w, guided by the split table. A single matrix is rendered
// as its label ("A" plus its 1-based index); an interval is rendered as
// "(left × right)" split at Split[i][j].
//
// The traversal performs no cost computation of its own and terminates
// because every recursive call strictly shrinks the interval.
//
// Parameters:
//   - w: The sink for the expression (console, file, or buffer).
//   - i: The first matrix of the interval (1-based).
//   - j: The last matrix of the interval (1-based, >= i).
//
// Returns:
//   - error: A ValidationError for an out-of-range interval, or a write error
//     from the sink.
func (t *Tables) WriteParenthesization(w io.Writer, i, j int) error {
	if i < 1 || j > t.n || i > j {
		return apperrors.NewValidationError("interval",
			fmt.Sprintf("invalid interval [%d,%d] for a chain of %d matrices", i, j, t.n), nil)
	}
	return t.writeInterval(w, i, j)
}

func (t *Tables) writeInterval(w io.Writer, i, j int) error {
	if i == j {
		_, err := fmt.Fprintf(w, "A%d", i)
		return err
	}
	k := t.Split[i][j]
	if _, err := io.WriteString(w, "("); err != nil {
		return err
	}
	if err := t.writeInterval(w, i, k); err != nil {
		return err
	}
	if _, err := io.WriteString(w, " × "); err != nil {
		return err
	}
	if err := t.writeInterval(w, k+1, j); err != nil {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

// Parenthesization returns the optimal parenthesization of the full chain as
// a string. It is a convenience wrapper over WriteParenthesization for the
// interval [1, n].
func (t *Tables) Parenthesization() string {
	var b strings.Builder
	// strings.Builder never returns a write error, and [1,n] is always valid.
	_ = t.WriteParenthesization(&b, 1, t.n)
	return b.String()
}
