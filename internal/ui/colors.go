package ui

// Shorthand accessors for the active theme's palette. The optimizer's CLI
// uses a fixed role assignment: bold for section headings, cyan for echoed
// input (dimension sequences, counts), green for the solved results, magenta
// for the Catalan count, yellow for durations and warnings, red for errors.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return GetCurrentTheme().Error }

// Colorize wraps s in the given escape code followed by the current theme's
// reset code. With the colorless theme active it returns s unchanged, which
// keeps formatted output byte-stable for redirection and tests.
func Colorize(color, s string) string {
	if color == "" {
		return s
	}
	return color + s + GetCurrentTheme().Reset
}
