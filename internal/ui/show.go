package ui

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dorantes98/movie-info-search/internal/movie"
	"github.com/Dorantes98/movie-info-search/internal/omdb"
)

// imdbIDPattern matches service identifiers like tt0372784.
var imdbIDPattern = regexp.MustCompile(`^tt\d+$`)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <imdb-id | title>",
		Short: "Show the full record for one movie",
		Long: `Display the full record for a movie: plot, directors, and review
scores from every reporting source.

Accepts an IMDb identifier directly, or a title to look up; a title
resolves to the first search match.

Examples:
  movie-info-search show tt0372784
  movie-info-search show "batman begins"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.newSource()
			if err != nil {
				return err
			}

			arg := strings.TrimSpace(strings.Join(args, " "))
			id := arg
			if !imdbIDPattern.MatchString(arg) {
				results, err := source.Search(cmd.Context(), arg)
				if err != nil {
					var apiErr *omdb.APIError
					if errors.As(err, &apiErr) {
						fmt.Println(formatMuted("No results - try another search?"))
						return nil
					}
					return fmt.Errorf("resolving %q: %w", arg, err)
				}
				if len(results) == 0 {
					fmt.Println(formatMuted("No results - try another search?"))
					return nil
				}
				id = results[0].ID
			}

			detail, err := source.Get(cmd.Context(), id)
			if err != nil {
				var apiErr *omdb.APIError
				if errors.As(err, &apiErr) {
					fmt.Println(formatError(apiErr.Message))
					return nil
				}
				return fmt.Errorf("loading details for %q: %w", id, err)
			}

			printDetail(detail)
			return nil
		},
	}
}

func printDetail(d *movie.Detail) {
	fmt.Printf("%s\n", formatTitle(d.Title))
	fmt.Printf("%s\n\n", formatMeta(joinMeta(d.Year, d.Rated, d.Runtime)))

	if d.Genre != "" && d.Genre != "N/A" {
		printLabeled("Genre", d.Genre)
	}
	printLabeled(directorLabel(d), directorOrUnknown(d))
	if d.HasPoster() {
		printLabeled("Poster", formatLink(d.PosterURL))
	} else {
		printLabeled("Poster", formatMuted("No Poster"))
	}
	if url := d.IMDbURL(); url != "" {
		printLabeled("IMDb", formatLink(url))
	}

	if plot := d.Plot; plot != "" && plot != "N/A" {
		fmt.Printf("\n%s\n", formatHeader("Plot"))
		printWrapped(plot, termWidth()-2)
	}

	if len(d.Ratings) > 0 {
		fmt.Printf("\n%s\n", formatHeader("Ratings"))
		for _, r := range d.Ratings {
			fmt.Printf("  %-28s %s\n", r.Source, formatRating(r.Value))
		}
	}
}

func directorLabel(d *movie.Detail) string {
	if len(d.Directors) > 1 {
		return "Directors"
	}
	return "Director"
}

func directorOrUnknown(d *movie.Detail) string {
	if s := d.Director(); s != "" {
		return s
	}
	return formatMuted("Unknown")
}
