package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/parsaz/chainopt/internal/errors"
	"github.com/parsaz/chainopt/internal/matchain"
	"github.com/parsaz/chainopt/internal/ui"
)

// disableColors switches to the colorless theme for deterministic output
// assertions and restores the previous theme afterwards.
func disableColors(t *testing.T) {
	t.Helper()
	saved := ui.GetCurrentTheme()
	ui.SetCurrentTheme(ui.NoColorTheme)
	t.Cleanup(func() { ui.SetCurrentTheme(saved) })
}

func solveFixture(t *testing.T, dims []int) *matchain.Tables {
	t.Helper()
	tables, err := matchain.Solve(context.Background(), dims, nil)
	if err != nil {
		t.Fatalf("Solve(%v) returned error: %v", dims, err)
	}
	return tables
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{250 * time.Millisecond, "250ms"},
		{2 * time.Second, "2s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tc := range cases {
		if got := FormatExecutionDuration(tc.d); got != tc.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatDims(t *testing.T) {
	t.Parallel()

	if got := FormatDims([]int{10, 20, 30}); got != "10 20 30" {
		t.Errorf("FormatDims = %q, want %q", got, "10 20 30")
	}
	if got := FormatDims(nil); got != "" {
		t.Errorf("FormatDims(nil) = %q, want empty", got)
	}
}

func TestFormatNumberString(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"7", "7"},
		{"999", "999"},
		{"1000", "1,000"},
		{"6000", "6,000"},
		{"123456789", "123,456,789"},
		{"-1234", "-1,234"},
	}

	for _, tc := range cases {
		if got := formatNumberString(tc.in); got != tc.want {
			t.Errorf("formatNumberString(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplayResult(t *testing.T) {
	disableColors(t)

	tables := solveFixture(t, []int{10, 20, 30})

	var buf bytes.Buffer
	DisplayResult(&buf, tables, 2, 42*time.Microsecond)
	got := buf.String()

	for _, want := range []string{
		"Matrix dimensions (P)     : 10 20 30",
		"Matrices in chain         : 2",
		"Minimum multiplications   : 6,000",
		"Optimal parenthesization  : (A1 × A2)",
		"Catalan number            : 2 (n = 2)",
		"Solve time                : 42µs",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestDisplayQuietResult(t *testing.T) {
	disableColors(t)

	tables := solveFixture(t, []int{10, 20, 30})

	var buf bytes.Buffer
	DisplayQuietResult(&buf, tables)
	if got, want := buf.String(), "6000 (A1 × A2)\n"; got != want {
		t.Errorf("quiet output = %q, want %q", got, want)
	}
}

func TestWriteReportToFile(t *testing.T) {
	t.Parallel()

	tables := solveFixture(t, []int{10, 20, 30, 40, 30})
	catalan, err := matchain.Catalan(tables.N())
	if err != nil {
		t.Fatalf("Catalan returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "report", "out.txt")
	if err := WriteReportToFile(tables, catalan, path); err != nil {
		t.Fatalf("WriteReportToFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) < 5 {
		t.Fatalf("report has %d lines, want at least 5:\n%s", len(lines), data)
	}
	if want := "Matrix dimensions (P): 10 20 30 40 30"; lines[0] != want {
		t.Errorf("line 1 = %q, want %q", lines[0], want)
	}
	if lines[1] != "" {
		t.Errorf("line 2 = %q, want blank", lines[1])
	}
	if want := "Minimum multiplication cost: 30000"; lines[2] != want {
		t.Errorf("line 3 = %q, want %q", lines[2], want)
	}
	if !strings.HasPrefix(lines[3], "Optimal parenthesization: (") {
		t.Errorf("line 4 = %q, want a parenthesized expression", lines[3])
	}
	if want := "Catalan number (n = 4): 14"; lines[4] != want {
		t.Errorf("line 5 = %q, want %q", lines[4], want)
	}
}

func TestWriteReportToFile_UnwritablePath(t *testing.T) {
	t.Parallel()

	tables := solveFixture(t, []int{10, 20, 30})

	// A regular file used as a path component makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("creating blocker file: %v", err)
	}

	err := WriteReportToFile(tables, 1, filepath.Join(blocker, "sub", "out.txt"))
	var rerr apperrors.ReportError
	if !errors.As(err, &rerr) {
		t.Errorf("WriteReportToFile = %v, want ReportError", err)
	}
}
