package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dorantes98/movie-info-search/internal/tui/commands"
	"github.com/Dorantes98/movie-info-search/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModeModal:
		return m.handleModalKeys(msg)
	case ModeResults:
		return m.handleResultsKeys(msg)
	default:
		return m.handleSearchKeys(msg)
	}
}

// handleSearchKeys handles keys while the search form is focused.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submitSearch()

	case "esc", "tab", "down":
		if len(m.results) > 0 {
			return m.enterResults(), nil
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
}

// submitSearch validates the query and dispatches the title search.
// Empty input never issues a request.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	query, ok := input.CleanQuery(m.searchInput.Value())
	if !ok {
		m.notice = noticeEmptyQuery
		m.noticeErr = false
		m.results = nil
		m.grid = m.rebuildGrid()
		return m, nil
	}

	m.query = query
	m.searchSeq++
	m.searching = true
	m.searchStartedAt = time.Now()
	m.notice = fmt.Sprintf("Searching for %q...", query)
	m.noticeErr = false
	LogRequestStart("search", m.searchSeq, query)

	return m, tea.Batch(
		commands.Search(m.source, m.searchSeq, query),
		m.spinner.Tick,
	)
}

// handleResultsKeys handles keys while browsing the card grid.
func (m Model) handleResultsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "/", "s", "esc":
		return m.focusSearch(), nil

	case "h", "left":
		m.selected = m.grid.Clamp(m.selected - 1)
		m.grid = m.grid.EnsureVisible(m.selected)

	case "l", "right":
		m.selected = m.grid.Clamp(m.selected + 1)
		m.grid = m.grid.EnsureVisible(m.selected)

	case "j", "down":
		m.selected = m.grid.Clamp(m.selected + m.grid.Cols)
		m.grid = m.grid.EnsureVisible(m.selected)

	case "k", "up":
		if m.selected-m.grid.Cols < 0 {
			// Moving up from the first row returns to the search form.
			return m.focusSearch(), nil
		}
		m.selected -= m.grid.Cols
		m.grid = m.grid.EnsureVisible(m.selected)

	case "enter":
		return m.openDetail()
	}

	return m, nil
}

// focusSearch moves focus back to the search form.
func (m Model) focusSearch() Model {
	LogModeChange(m.mode, ModeSearch, "focus search")
	m.mode = ModeSearch
	m.searchInput.Focus()
	return m
}

// openDetail opens the overlay in its loading state and dispatches the
// detail fetch for the selected card. A card with an empty identifier
// still dispatches; the service's error surfaces in the message panel.
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	if len(m.results) == 0 {
		return m, nil
	}
	item := m.results[m.grid.Clamp(m.selected)]

	LogModeChange(m.mode, ModeModal, "open detail")
	m.mode = ModeModal
	m.modalType = ModalMessage
	m.modalMessage = modalLoadingMessage
	m.modalErr = false
	m.detail = nil
	m.detailSeq++
	m.fetching = true
	m.detailStartedAt = time.Now()
	LogRequestStart("detail", m.detailSeq, item.ID)

	return m, tea.Batch(
		commands.LoadDetail(m.source, m.detailSeq, item.ID),
		m.spinner.Tick,
	)
}

// closeModal dismisses the overlay and returns input routing to the
// mode beneath it. Clearing the modal slot here is what guarantees a
// closed overlay never keeps stale content or input handling.
func (m Model) closeModal() (Model, tea.Cmd) {
	to := ModeSearch
	if len(m.results) > 0 {
		to = ModeResults
	}
	LogModeChange(m.mode, to, "close modal")

	m.mode = to
	m.modalType = ModalNone
	m.modalMessage = ""
	m.modalErr = false
	m.detail = nil
	m.fetching = false
	if to == ModeSearch {
		m.searchInput.Focus()
	}
	return m, nil
}

// handleModalKeys handles keys while the overlay is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modalType == ModalSetup {
		return m.handleSetupKeys(msg)
	}

	switch msg.String() {
	case "esc":
		return m.closeModal()

	case "q":
		// The explicit close control is only offered on loaded details.
		if m.modalType == ModalDetail {
			return m.closeModal()
		}
		return m, nil

	case "y":
		if m.modalType == ModalDetail && m.detail != nil {
			return m, m.copyIMDbLink()
		}
		return m, nil

	case "j", "k", "up", "down", "pgup", "pgdown":
		if m.modalType == ModalDetail {
			var cmd tea.Cmd
			m.plotView, cmd = m.plotView.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// copyIMDbLink copies the movie's IMDb page to the system clipboard.
func (m Model) copyIMDbLink() tea.Cmd {
	url := m.detail.IMDbURL()
	if url == "" {
		return func() tea.Msg {
			return commands.StatusMsgCmd{Msg: "No IMDb link for this movie"}
		}
	}
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			LogError("clipboard", err)
			return commands.StatusMsgCmd{Msg: "Could not copy to clipboard"}
		}
		return commands.StatusMsgCmd{Msg: "IMDb link copied!"}
	}
}

// handleSetupKeys handles keys in the first-run API key modal.
func (m Model) handleSetupKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// No key, nothing to search with.
		return m, tea.Quit

	case "enter":
		key := strings.TrimSpace(m.setupInput.Value())
		if key == "" {
			m.setupErr = "An API key is required"
			return m, nil
		}
		updated, err := m.saveAPIKey(key)
		if err != nil {
			LogError("setup", err)
			updated.setupErr = err.Error()
			return updated, nil
		}
		updated.setupErr = ""
		updated.modalType = ModalNone
		updated.mode = ModeSearch
		updated.searchInput.Focus()
		return updated, func() tea.Msg {
			return commands.StatusMsgCmd{Msg: "API key saved to " + updated.setupState.ConfigPath}
		}

	default:
		var cmd tea.Cmd
		m.setupInput, cmd = m.setupInput.Update(msg)
		return m, cmd
	}
}
