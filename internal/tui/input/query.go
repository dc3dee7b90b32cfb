// Package input provides helpers for the search form input.
package input

import "strings"

// CleanQuery normalizes the submitted query text and reports whether
// anything searchable remains: surrounding whitespace is trimmed and
// interior runs collapse to a single space. An empty query must never
// reach the API client.
func CleanQuery(raw string) (string, bool) {
	query := strings.Join(strings.Fields(raw), " ")
	return query, query != ""
}
