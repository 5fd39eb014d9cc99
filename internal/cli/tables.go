package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/parsaz/chainopt/internal/matchain"
	"github.com/parsaz/chainopt/internal/ui"
)

// DisplayTables renders the cost table m and the split table s as aligned
// text tables. Cells outside the meaningful triangle are shown as "-":
// m[i][j] is meaningful for i <= j, s[i][j] only for i < j.
//
// Parameters:
//   - out: The io.Writer for the rendered tables.
//   - t: The solved tables.
func DisplayTables(out io.Writer, t *matchain.Tables) {
	n := t.N()

	fmt.Fprintf(out, "\n%s\n", ui.Colorize(ui.ColorBold(), "Table m (costs):"))
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	writeHeader(tw, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(tw, "%d\t", i)
		for j := 1; j <= n; j++ {
			if i > j {
				fmt.Fprint(tw, "-\t")
			} else {
				fmt.Fprintf(tw, "%d\t", t.Cost[i][j])
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	fmt.Fprintf(out, "\n%s\n", ui.Colorize(ui.ColorBold(), "Table s (splits):"))
	tw = tabwriter.NewWriter(out, 0, 0, 3, ' ', tabwriter.AlignRight)
	writeHeader(tw, n)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(tw, "%d\t", i)
		for j := 1; j <= n; j++ {
			if i >= j {
				fmt.Fprint(tw, "-\t")
			} else {
				fmt.Fprintf(tw, "%d\t", t.Split[i][j])
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

// writeHeader writes the column index header row for a DP table.
func writeHeader(w io.Writer, n int) {
	fmt.Fprint(w, "\t")
	for j := 1; j <= n; j++ {
		fmt.Fprintf(w, "%d\t", j)
	}
	fmt.Fprintln(w)
}
