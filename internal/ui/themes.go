// Package ui provides theme and color support for the optimizer's terminal
// output. It defines color schemes and ANSI escape code helpers so the result
// display, the DP tables, and the interactive prompt style their output
// consistently without depending on each other.
package ui

import (
	"fmt"
	"os"
	"sync"
)

// Theme is one color scheme. Each field holds the ANSI escape code for a
// display role; empty codes render as plain text.
type Theme struct {
	// Name identifies the theme ("dark", "light", "none").
	Name string
	// Primary styles prominent elements such as flag names in usage text.
	Primary string
	// Secondary styles echoed input values.
	Secondary string
	// Success styles solved results.
	Success string
	// Warning styles durations and caution messages.
	Warning string
	// Error styles failures.
	Error string
	// Info styles auxiliary values such as the Catalan count.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

// fg256 returns the foreground escape code for a 256-color palette index.
func fg256(index int) string { return fmt.Sprintf("\033[38;5;%dm", index) }

const (
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   fg256(39),  // bright blue
		Secondary: fg256(245), // grey
		Success:   fg256(82),  // bright green
		Warning:   fg256(220), // yellow
		Error:     fg256(196), // red
		Info:      fg256(141), // purple
		Bold:      ansiBold,
		Reset:     ansiReset,
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   fg256(27),  // dark blue
		Secondary: fg256(240), // dark grey
		Success:   fg256(28),  // dark green
		Warning:   fg256(130), // orange
		Error:     fg256(124), // dark red
		Info:      fg256(54),  // dark purple
		Bold:      ansiBold,
		Reset:     ansiReset,
	}

	// NoColorTheme renders everything as plain text. Active when NO_COLOR is
	// set or -no-color is passed.
	NoColorTheme = Theme{Name: "none"}
)

var themesByName = map[string]Theme{
	DarkTheme.Name:    DarkTheme,
	LightTheme.Name:   LightTheme,
	NoColorTheme.Name: NoColorTheme,
}

var (
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Primarily used by tests to
// restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme selects the active theme by name. Unknown names fall back to the
// dark theme.
func SetTheme(name string) {
	t, ok := themesByName[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme initializes the theme from the noColor flag and the environment.
// Any presence of the NO_COLOR variable disables colors, per
// https://no-color.org/.
func InitTheme(noColor bool) {
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}
