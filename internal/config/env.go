// Package config provides the configuration management for the chainopt
// application. This file contains environment variable utilities for
// configuration override.
package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Environment Variable Utilities
// ─────────────────────────────────────────────────────────────────────────────

// getEnvString returns the value of the environment variable with the given
// key (prefixed with EnvPrefix), or the default value if not set.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as int, or the default value if not set
// or invalid.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvInt64 returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as int64, or the default value if not
// set or invalid.
func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := strconv.ParseInt(val, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// getEnvBool returns the value of the environment variable with the given key
// (prefixed with EnvPrefix) parsed as bool, or the default value if not set.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false
// (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// getEnvDuration returns the value of the environment variable with the given
// key (prefixed with EnvPrefix) parsed as time.Duration, or the default value
// if not set or invalid. Accepts formats like "5m", "30s", "1h30m".
func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables:
//   - CHAINOPT_DIMS: Dimension sequence (string, e.g. "10,20,30")
//   - CHAINOPT_N: Matrix count for random mode (int)
//   - CHAINOPT_RANDOM: Enable random input mode (bool)
//   - CHAINOPT_MIN_DIM / CHAINOPT_MAX_DIM: Random dimension bounds (int)
//   - CHAINOPT_SEED: Random seed (int64)
//   - CHAINOPT_TABLES: Display DP tables (bool)
//   - CHAINOPT_JSON: Enable JSON output (bool)
//   - CHAINOPT_OUTPUT: Report file path (string)
//   - CHAINOPT_QUIET: Enable quiet mode (bool)
//   - CHAINOPT_INTERACTIVE: Enable interactive prompt mode (bool)
//   - CHAINOPT_NO_COLOR: Disable colored output (bool)
//   - CHAINOPT_TIMEOUT: Run timeout (duration: "30s", "5m")
//   - CHAINOPT_DEBUG: Enable debug logging (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "dims") {
		config.DimsRaw = getEnvString("DIMS", config.DimsRaw)
	}
	if !isFlagSet(fs, "n") {
		config.Matrices = getEnvInt("N", config.Matrices)
	}
	if !isFlagSet(fs, "random") {
		config.Random = getEnvBool("RANDOM", config.Random)
	}
	if !isFlagSet(fs, "min-dim") {
		config.MinDim = getEnvInt("MIN_DIM", config.MinDim)
	}
	if !isFlagSet(fs, "max-dim") {
		config.MaxDim = getEnvInt("MAX_DIM", config.MaxDim)
	}
	if !isFlagSet(fs, "seed") {
		config.Seed = getEnvInt64("SEED", config.Seed)
	}
	if !isFlagSet(fs, "tables") {
		config.ShowTables = getEnvBool("TABLES", config.ShowTables)
	}
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "interactive") {
		config.Interactive = getEnvBool("INTERACTIVE", config.Interactive)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
	if !isFlagSet(fs, "timeout") {
		config.Timeout = getEnvDuration("TIMEOUT", config.Timeout)
	}
	if !isFlagSet(fs, "debug") {
		config.Debug = getEnvBool("DEBUG", config.Debug)
	}
}
