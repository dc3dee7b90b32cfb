package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dorantes98/movie-info-search/internal/omdb"
)

func (a *App) searchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <title>",
		Short: "Search movies by title",
		Long: `Search the movie catalog by title and print the matches.

Example:
  movie-info-search search batman`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := a.newSource()
			if err != nil {
				return err
			}

			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New("a non-empty title is required")
			}

			results, err := source.Search(cmd.Context(), query)
			if err != nil {
				var apiErr *omdb.APIError
				if errors.As(err, &apiErr) {
					fmt.Println(formatMuted("No results - try another search?"))
					fmt.Println(formatMuted("(" + apiErr.Message + ")"))
					return nil
				}
				return fmt.Errorf("searching %q: %w", query, err)
			}
			if len(results) == 0 {
				fmt.Println(formatMuted("No results - try another search?"))
				return nil
			}

			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			fmt.Printf("%s\n\n", formatHeader(fmt.Sprintf("Results for %q", query)))
			for i, r := range results {
				printSearchRow(i+1, r)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of results to print (0 = all)")
	return cmd
}
