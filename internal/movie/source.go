package movie

import "context"

// Source defines the lookup interface for movie data.
type Source interface {
	// Search returns the results matching a title query, in service order.
	// No matches yields an empty slice, not an error.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// Get retrieves the full record for a movie by its identifier.
	Get(ctx context.Context, id string) (*Detail, error)
}
