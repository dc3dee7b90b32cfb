// Package movie defines the core domain types for movie-info-search.
package movie

import "strings"

// SearchResult is one entry returned by a title search.
// ID may be empty when the service omits the identifier.
type SearchResult struct {
	ID        string
	Title     string
	Year      string
	PosterURL string // "" means no poster available
}

// Rating is one review score as reported by a single source,
// e.g. {"Internet Movie Database", "8.2/10"}.
type Rating struct {
	Source string
	Value  string
}

// Detail holds the full record for a single movie.
type Detail struct {
	ID        string
	Title     string
	Year      string
	Rated     string
	Runtime   string
	Genre     string
	Plot      string
	Directors []string
	Ratings   []Rating // ordered as reported by the service
	PosterURL string   // "" means no poster available
}

// HasPoster returns true if the result carries a usable poster URL.
func (r SearchResult) HasPoster() bool {
	return r.PosterURL != ""
}

// HasPoster returns true if the detail carries a usable poster URL.
func (d *Detail) HasPoster() bool {
	return d.PosterURL != ""
}

// Director returns the directors joined for display, or "" when unknown.
func (d *Detail) Director() string {
	return strings.Join(d.Directors, ", ")
}

// IMDbURL returns the public IMDb page for the movie, or "" when the
// identifier is unknown.
func (d *Detail) IMDbURL() string {
	if d.ID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + d.ID + "/"
}
