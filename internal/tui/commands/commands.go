// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dorantes98/movie-info-search/internal/movie"
)

// SearchResultsMsg is sent when a title search completes. Seq
// identifies the request so responses from superseded searches can be
// discarded.
type SearchResultsMsg struct {
	Seq     int
	Query   string
	Results []movie.SearchResult
}

// SearchFailedMsg is sent when a title search fails.
type SearchFailedMsg struct {
	Seq   int
	Query string
	Err   error
}

// DetailLoadedMsg is sent when a detail lookup completes.
type DetailLoadedMsg struct {
	Seq    int
	ID     string
	Detail *movie.Detail
}

// DetailFailedMsg is sent when a detail lookup fails.
type DetailFailedMsg struct {
	Seq int
	ID  string
	Err error
}

// ErrMsg is sent when an error occurs outside the search and detail
// paths.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Search runs a title search against the source.
func Search(source movie.Source, seq int, query string) tea.Cmd {
	return func() tea.Msg {
		results, err := source.Search(context.Background(), query)
		if err != nil {
			return SearchFailedMsg{Seq: seq, Query: query, Err: err}
		}
		return SearchResultsMsg{Seq: seq, Query: query, Results: results}
	}
}

// LoadDetail fetches the full record for one movie.
func LoadDetail(source movie.Source, seq int, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := source.Get(context.Background(), id)
		if err != nil {
			return DetailFailedMsg{Seq: seq, ID: id, Err: err}
		}
		return DetailLoadedMsg{Seq: seq, ID: id, Detail: detail}
	}
}
