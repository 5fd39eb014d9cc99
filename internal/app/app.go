package app

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/parsaz/chainopt/internal/cli"
	"github.com/parsaz/chainopt/internal/config"
	apperrors "github.com/parsaz/chainopt/internal/errors"
	"github.com/parsaz/chainopt/internal/logging"
	"github.com/parsaz/chainopt/internal/matchain"
	"github.com/parsaz/chainopt/internal/orchestration"
	"github.com/parsaz/chainopt/internal/ui"
)

// Application represents the chainopt application instance.
// It encapsulates the configuration and provides methods to run the
// application in its various modes (direct solve, interactive prompt).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Log is the structured logger for diagnostics.
	Log logging.Logger
	// In is the reader for interactive input (typically os.Stdin).
	In io.Reader
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	// args[0] is program name, args[1:] are the actual arguments
	programName := "chainopt"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Log:       logging.NewDefaultLogger(cfg.Debug),
		In:        os.Stdin,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
// With neither -dims nor -random supplied, it falls back to the interactive
// prompt, matching the tool's original menu-driven behavior.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	// Signal cancellation spans the whole run; the solve timeout is applied
	// around ExecuteSolve only, so prompt time never counts against it.
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()

	if a.Config.Interactive || (!a.Config.HasManualDims() && !a.Config.Random) {
		return a.runInteractive(ctx, out)
	}
	return a.runSolve(ctx, out)
}

// runSolve handles the direct (non-interactive) mode: resolve the dimension
// sequence, execute the solve, report, and optionally persist.
func (a *Application) runSolve(ctx context.Context, out io.Writer) int {
	dims := a.Config.Dims
	if a.Config.Random {
		rng := a.newRNG()
		n := a.Config.Matrices
		if n == 0 {
			n = matchain.RandomChainLength(rng)
		}
		dims = matchain.RandomDims(rng, n, a.Config.MinDim, a.Config.MaxDim)
		if !a.Config.Quiet && !a.Config.JSONOutput {
			fmt.Fprintf(out, "Randomly generated %s matrices.\n", ui.Colorize(ui.ColorCyan(), fmt.Sprintf("%d", n)))
			fmt.Fprintf(out, "Dimensions P: %s\n", ui.Colorize(ui.ColorCyan(), cli.FormatDims(dims)))
		}
	}

	a.Log.Debug("starting solve", logging.Ints("dims", dims), logging.Int("matrices", len(dims)-1))

	// In quiet and JSON modes, discard the progress display
	progressOut := out
	if a.Config.Quiet || a.Config.JSONOutput {
		progressOut = io.Discard
	}

	solveCtx, cancel := SolveContext(ctx, a.Config.Timeout)
	defer cancel()
	result := orchestration.ExecuteSolve(solveCtx, dims, progressOut)
	if result.Err != nil {
		a.Log.Error("solve failed", result.Err, logging.Dur("duration", result.Duration))
		return apperrors.HandleSolveError(result.Err, result.Duration, a.ErrWriter, themeColors{})
	}
	a.Log.Debug("solve finished",
		logging.Int64("min_cost", result.Tables.MinCost()),
		logging.Dur("duration", result.Duration))

	if a.Config.JSONOutput {
		return printJSONResult(result, out)
	}

	if a.Config.Quiet {
		cli.DisplayQuietResult(out, result.Tables)
	} else {
		cli.DisplayResult(out, result.Tables, result.Catalan, result.Duration)
		if a.Config.ShowTables {
			cli.DisplayTables(out, result.Tables)
		}
	}

	return a.saveReportIfNeeded(result, a.Config.OutputFile, out)
}

// runInteractive handles the prompt-driven mode: menu choice, dimension
// collection, solve, optional table display, and report persistence.
func (a *Application) runInteractive(ctx context.Context, out io.Writer) int {
	prompt := cli.NewPrompt(a.In, out, a.newRNG(), a.Config.MinDim, a.Config.MaxDim)

	dims, err := prompt.CollectDims()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%s %v\n", ui.Colorize(ui.ColorRed(), "Input error:"), err)
		return apperrors.ExitErrorConfig
	}

	solveCtx, cancel := SolveContext(ctx, a.Config.Timeout)
	defer cancel()
	result := orchestration.ExecuteSolve(solveCtx, dims, out)
	if result.Err != nil {
		return apperrors.HandleSolveError(result.Err, result.Duration, a.ErrWriter, themeColors{})
	}

	cli.DisplayResult(out, result.Tables, result.Catalan, result.Duration)

	showTables, err := prompt.ConfirmTables()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "%s %v\n", ui.Colorize(ui.ColorRed(), "Input error:"), err)
		return apperrors.ExitErrorGeneric
	}
	if showTables {
		cli.DisplayTables(out, result.Tables)
	}

	// The interactive mode always persists a report, as the original
	// menu-driven tool did; -output overrides the default path.
	path := a.Config.OutputFile
	if path == "" {
		path = cli.DefaultReportFile
	}
	return a.saveReportIfNeeded(result, path, out)
}

// saveReportIfNeeded writes the plain-text report when a path is configured.
// A write failure is reported but does not invalidate the displayed result.
func (a *Application) saveReportIfNeeded(result orchestration.SolveResult, path string, out io.Writer) int {
	if path == "" {
		return apperrors.ExitSuccess
	}
	if err := cli.WriteReportToFile(result.Tables, result.Catalan, path); err != nil {
		a.Log.Error("report write failed", err, logging.String("path", path))
		fmt.Fprintf(a.ErrWriter, "%s %v\n", ui.Colorize(ui.ColorRed(), "Error saving report:"), err)
		return apperrors.ExitErrorGeneric
	}
	if !a.Config.Quiet && !a.Config.JSONOutput {
		fmt.Fprintf(out, "\n%s %s\n",
			ui.Colorize(ui.ColorGreen(), "✓ Results saved to:"), ui.Colorize(ui.ColorCyan(), path))
	}
	return apperrors.ExitSuccess
}

// newRNG builds the random source for generated input. A zero seed selects a
// time-based seed; any other value gives reproducible sequences.
func (a *Application) newRNG() *rand.Rand {
	seed := a.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.Log.Debug("seeding random source", logging.Int64("seed", seed))
	return rand.New(rand.NewSource(seed))
}

// themeColors adapts the ui theme to the apperrors.ColorProvider interface.
type themeColors struct{}

func (themeColors) Yellow() string { return ui.ColorYellow() }
func (themeColors) Reset() string  { return ui.ColorReset() }

// IsHelpError checks if the error is a help flag error (--help was used).
// This is useful for determining if the application should exit with success
// after displaying help text.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// jsonResult represents a solve result in JSON format.
type jsonResult struct {
	Dims             []int  `json:"dims"`
	Matrices         int    `json:"matrices"`
	MinCost          int64  `json:"min_cost"`
	Parenthesization string `json:"parenthesization"`
	Catalan          int64  `json:"catalan"`
	Duration         string `json:"duration"`
}

// printJSONResult formats the solve result as JSON and writes it to the
// output. This is useful for programmatic consumption of the results.
func printJSONResult(result orchestration.SolveResult, out io.Writer) int {
	output := jsonResult{
		Dims:             result.Tables.Dims,
		Matrices:         result.Tables.N(),
		MinCost:          result.Tables.MinCost(),
		Parenthesization: result.Tables.Parenthesization(),
		Catalan:          result.Catalan,
		Duration:         result.Duration.String(),
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
