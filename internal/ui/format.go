package ui

import (
	"fmt"
	"strings"

	"github.com/Dorantes98/movie-info-search/internal/movie"
)

// printSearchRow prints one numbered search result line.
func printSearchRow(n int, r movie.SearchResult) {
	poster := formatMuted("No Poster")
	if r.HasPoster() {
		poster = formatLink(r.PosterURL)
	}
	id := r.ID
	if id == "" {
		id = formatMuted("(no id)")
	}
	fmt.Printf("  %2d. %s %s\n", n, formatTitle(r.Title), formatMeta("("+r.Year+")"))
	fmt.Printf("      %s  %s\n", formatMuted(id), poster)
}

// printLabeled prints an aligned "Label: value" line.
func printLabeled(label, value string) {
	fmt.Printf("%-11s %s\n", formatHeader(label+":"), value)
}

// joinMeta joins the non-empty parts with a separator for meta lines
// like "2005 | PG-13 | 140 min".
func joinMeta(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" && part != "N/A" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, " | ")
}

// printWrapped word-wraps text to width and prints it indented.
func printWrapped(text string, width int) {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return
	}

	line := ""
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			fmt.Println("  " + line)
			line = word
		}
	}
	if line != "" {
		fmt.Println("  " + line)
	}
}
