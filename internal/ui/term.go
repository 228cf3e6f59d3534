package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Available slots: green
	colorAvailable = color.New(color.FgGreen)

	// Preferred slots: bold yellow so the best windows pop
	colorPreferred = color.New(color.FgYellow, color.Bold)

	// Unavailable slots: red
	colorUnavailable = color.New(color.FgRed)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatAvailable(s string) string {
	return colorAvailable.Sprint(s)
}

func formatPreferred(s string) string {
	return colorPreferred.Sprint(s)
}

func formatUnavailable(s string) string {
	return colorUnavailable.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
