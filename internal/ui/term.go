package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Movie titles: bold cyan
	colorTitle = color.New(color.FgCyan, color.Bold)

	// Meta lines (year, rating, runtime): dim/grey
	colorMeta = color.New(color.FgWhite, color.Faint)

	// Links (poster and IMDb URLs): underlined blue
	colorLink = color.New(color.FgBlue, color.Underline)

	// Headers and labels: bold
	colorHeader = color.New(color.Bold)

	// Ratings: green to make scores pop
	colorRating = color.New(color.FgGreen)

	// Errors and warnings
	colorError = color.New(color.FgRed, color.Bold)

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

// formatTitle formats text as a movie title.
func formatTitle(s string) string {
	return colorTitle.Sprint(s)
}

// formatMeta formats a year/rating/runtime line.
func formatMeta(s string) string {
	return colorMeta.Sprint(s)
}

// formatLink formats a URL.
func formatLink(s string) string {
	return colorLink.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatRating formats a review score.
func formatRating(s string) string {
	return colorRating.Sprint(s)
}

// formatError formats failure text.
func formatError(s string) string {
	return colorError.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
