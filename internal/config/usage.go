package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/parsaz/chainopt/internal/ui"
)

// setCustomUsage installs a colored usage function on the flag set.
// NO_COLOR is honored here directly because usage can print before the app
// initializes the theme.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		theme := ui.GetCurrentTheme()
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			theme = ui.NoColorTheme
		}

		out := fs.Output()
		fmt.Fprintf(out, "\n%sMatrix Chain Multiplication Optimizer%s\n", theme.Bold, theme.Reset)
		fmt.Fprint(out, "Computes the cheapest order in which to multiply a chain of matrices.\n\n")
		fmt.Fprintf(out, "%sUsage:%s\n  %s [flags]\n\n", theme.Warning, theme.Reset, fs.Name())
		fmt.Fprintf(out, "%sFlags:%s\n", theme.Warning, theme.Reset)

		fs.VisitAll(func(f *flag.Flag) {
			valueName, usage := flag.UnquoteUsage(f)
			signature := "-" + f.Name
			if valueName != "" {
				signature += " " + valueName
			}
			fmt.Fprintf(out, "  %s%-25s%s %s", theme.Primary, signature, theme.Reset, usage)
			if f.DefValue != "" && f.DefValue != "0" && f.DefValue != "false" {
				fmt.Fprintf(out, " %s(default %s)%s", theme.Secondary, f.DefValue, theme.Reset)
			}
			fmt.Fprintln(out)
		})
		fmt.Fprintln(out)
	}
}
