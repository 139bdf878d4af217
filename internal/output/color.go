package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme provides color functions for the listing output.
type ColorScheme struct {
	Header  func(format string, a ...interface{}) string
	Active  func(format string, a ...interface{}) string
	Warning func(format string, a ...interface{}) string

	// Disabled indicates if colors are disabled.
	Disabled bool
}

// NewColorScheme creates a color scheme. Colors are automatically
// disabled for non-TTY outputs or when noColor is true.
func NewColorScheme(w io.Writer, noColor bool) *ColorScheme {
	useColor := !noColor && isTTY(w)

	if !useColor {
		plain := color.New().Sprintf
		return &ColorScheme{
			Header:   plain,
			Active:   plain,
			Warning:  plain,
			Disabled: true,
		}
	}

	return &ColorScheme{
		Header:  color.New(color.FgCyan, color.Bold).Sprintf,
		Active:  color.New(color.FgGreen).Sprintf,
		Warning: color.New(color.FgYellow).Sprintf,
	}
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
