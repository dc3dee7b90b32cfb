// Package tui provides the terminal user interface for movie-info-search.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dorantes98/movie-info-search/internal/config"
	"github.com/Dorantes98/movie-info-search/internal/movie"
	"github.com/Dorantes98/movie-info-search/internal/tui/commands"
)

// fakeSource is a scripted movie.Source that counts calls.
type fakeSource struct {
	results   []movie.SearchResult
	searchErr error
	detail    *movie.Detail
	getErr    error

	searchCalls int
	getCalls    int
	lastQuery   string
	lastID      string
}

func (f *fakeSource) Search(_ context.Context, query string) ([]movie.SearchResult, error) {
	f.searchCalls++
	f.lastQuery = query
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.results, nil
}

func (f *fakeSource) Get(_ context.Context, id string) (*movie.Detail, error) {
	f.getCalls++
	f.lastID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.detail, nil
}

var errFake = errors.New("fake source failure")

func sampleResults() []movie.SearchResult {
	return []movie.SearchResult{
		{ID: "tt0372784", Title: "Batman Begins", Year: "2005", PosterURL: "https://img.example.com/bb.jpg"},
		{ID: "tt0096895", Title: "Batman", Year: "1989"},
	}
}

func sampleDetail() *movie.Detail {
	return &movie.Detail{
		ID:        "tt0372784",
		Title:     "Batman Begins",
		Year:      "2005",
		Rated:     "PG-13",
		Runtime:   "140 min",
		Genre:     "Action, Crime, Drama",
		Plot:      "After witnessing his parents' death, Bruce learns the art of fighting to confront injustice.",
		Directors: []string{"Christopher Nolan"},
		Ratings: []movie.Rating{
			{Source: "Internet Movie Database", Value: "8.2/10"},
			{Source: "Rotten Tomatoes", Value: "85%"},
		},
		PosterURL: "https://img.example.com/bb.jpg",
	}
}

// testConfig returns a default config for model construction.
func testConfig() *config.Config {
	return config.Default()
}

// detailLoaded wraps a detail into the message the model expects for
// the current fetch.
func detailLoaded(m Model, d *movie.Detail) tea.Msg {
	return commands.DetailLoadedMsg{Seq: m.detailSeq, ID: d.ID, Detail: d}
}

// statusOf unwraps a status message produced by a command.
func statusOf(msg tea.Msg) (string, bool) {
	status, ok := msg.(commands.StatusMsgCmd)
	return status.Msg, ok
}

func windowSize(w, h int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: w, Height: h}
}

// newTestModel builds a sized model over the fake source.
func newTestModel(src movie.Source) Model {
	m := New(src, config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

// typeString feeds runes into the model one key at a time.
func typeString(m Model, s string) Model {
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(Model)
	}
	return m
}

// pressKey sends a single named key.
func pressKey(m Model, key string) (Model, tea.Cmd) {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// modelWithResults returns a model already showing the sample cards.
func modelWithResults(src *fakeSource) Model {
	m := newTestModel(src)
	m.searchSeq = 1
	updated, _ := m.Update(commands.SearchResultsMsg{Seq: 1, Query: "batman", Results: src.results})
	return updated.(Model)
}
