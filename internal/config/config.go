// Package config provides the configuration management for the chainopt
// application. It defines the data structure for the configuration, handles
// the parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/parsaz/chainopt/internal/errors"
	"github.com/parsaz/chainopt/internal/matchain"
)

const (
	// EnvPrefix is the prefix for all environment variables used by chainopt.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "CHAINOPT_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTimeout is the default solve timeout. The DP kernel finishes in
	// microseconds for realistic chain sizes; the timeout exists to bound the
	// whole run, prompt included.
	DefaultTimeout = 30 * time.Second
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control one run,
// from the dimension sequence to optimize, to output formatting.
type AppConfig struct {
	// Dims is the parsed dimension sequence for manual mode.
	// Empty when the sequence comes from random generation or the prompt.
	Dims []int
	// DimsRaw is the raw -dims flag value before parsing.
	DimsRaw string
	// Matrices is the matrix count for random mode. Zero means the count is
	// drawn uniformly from the standard range.
	Matrices int
	// Random, if true, generates the dimension sequence pseudorandomly.
	Random bool
	// MinDim is the inclusive lower bound for random dimensions.
	MinDim int
	// MaxDim is the inclusive upper bound for random dimensions.
	MaxDim int
	// Seed seeds the random generator. Zero selects a time-based seed.
	Seed int64
	// ShowTables, if true, displays the cost and split DP tables.
	ShowTables bool
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// OutputFile, if specified, saves the plain-text report to this path.
	OutputFile string
	// Quiet mode - minimal output for scripting purposes.
	Quiet bool
	// Interactive, if true, starts the prompt-driven mode.
	Interactive bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Timeout sets the maximum duration for the run.
	Timeout time.Duration
	// Debug enables debug-level logging.
	Debug bool
}

// HasManualDims reports whether an explicit dimension sequence was supplied.
func (c AppConfig) HasManualDims() bool { return len(c.Dims) > 0 }

// Validate checks the semantic consistency of the configuration parameters.
// It ensures that numerical values are within valid ranges and that the
// selected input modes do not conflict.
//
// Returns:
//   - error: An error of type ConfigError if the configuration is invalid,
//     nil otherwise.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Random && c.DimsRaw != "" {
		return apperrors.NewConfigError("-dims and -random are mutually exclusive")
	}
	if c.Matrices < 0 {
		return apperrors.NewConfigError("matrix count cannot be negative: %d", c.Matrices)
	}
	if c.Matrices > 0 && !c.Random {
		return apperrors.NewConfigError("-n only applies to random mode; pass -random or -dims")
	}
	if c.Matrices > matchain.MaxCatalanIndex {
		return apperrors.NewConfigError("chains beyond %d matrices overflow the parenthesization count", matchain.MaxCatalanIndex)
	}
	if c.MinDim < 1 {
		return apperrors.NewConfigError("minimum dimension must be at least 1: %d", c.MinDim)
	}
	if c.MaxDim < c.MinDim {
		return apperrors.NewConfigError("maximum dimension %d is below minimum %d", c.MaxDim, c.MinDim)
	}
	if c.DimsRaw != "" {
		if err := matchain.ValidateDims(c.Dims); err != nil {
			return apperrors.NewConfigError("invalid -dims value %q: %v", c.DimsRaw, err)
		}
		if len(c.Dims)-1 > matchain.MaxCatalanIndex {
			return apperrors.NewConfigError("chains beyond %d matrices overflow the parenthesization count", matchain.MaxCatalanIndex)
		}
	}
	return nil
}

// ParseDims parses a dimension sequence from a string. Values may be
// separated by commas, spaces, or any mix of the two, e.g. "10,20,30" or
// "10 20 30".
//
// Parameters:
//   - raw: The string to parse.
//
// Returns:
//   - []int: The parsed dimension sequence.
//   - error: An error if any token is not a valid integer.
func ParseDims(raw string) ([]int, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, apperrors.NewConfigError("empty dimension sequence")
	}
	dims := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, apperrors.NewConfigError("dimension %q is not an integer", f)
		}
		dims = append(dims, v)
	}
	return dims, nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it applies environment
// variable overrides and performs validation on the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: A slice of strings representing the command-line arguments
//     (typically os.Args[1:]).
//   - errorWriter: An io.Writer where parsing errors and usage information
//     will be printed.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing fails or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.DimsRaw, "dims", "", "Dimension sequence, e.g. \"10,20,30\" (n+1 values for n matrices).")
	fs.IntVar(&config.Matrices, "n", 0, "Matrix count for random mode (0 draws uniformly from [5,15]).")
	fs.BoolVar(&config.Random, "random", false, "Generate the dimension sequence pseudorandomly.")
	fs.IntVar(&config.MinDim, "min-dim", matchain.DefaultMinDim, "Lower bound for random dimensions.")
	fs.IntVar(&config.MaxDim, "max-dim", matchain.DefaultMaxDim, "Upper bound for random dimensions.")
	fs.Int64Var(&config.Seed, "seed", 0, "Random seed (0 uses a time-based seed).")
	fs.BoolVar(&config.ShowTables, "tables", false, "Display the cost and split DP tables.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output the result in JSON format.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the plain-text report.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive prompt mode.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the run.")
	fs.BoolVar(&config.Debug, "debug", false, "Enable debug logging.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	if config.DimsRaw != "" {
		dims, err := ParseDims(config.DimsRaw)
		if err != nil {
			fmt.Fprintln(errorWriter, "Configuration error:", err)
			fs.Usage()
			return AppConfig{}, errors.New("invalid configuration")
		}
		config.Dims = dims
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
