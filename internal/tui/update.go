package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dorantes98/movie-info-search/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.buildLayout()
		m.searchInput.Width = max(10, m.layout.InnerW-6)
		m.grid = m.rebuildGrid()
		m.sizePlotView()
		return m, nil

	case commands.SearchResultsMsg:
		if msg.Seq != m.searchSeq {
			LogStaleDrop("search", msg.Seq, m.searchSeq)
			return m, nil
		}
		LogRequestDone("search", msg.Seq, time.Since(m.searchStartedAt), nil)
		m.searching = false
		m.results = msg.Results
		m.selected = 0
		m.grid = m.rebuildGrid()
		if len(msg.Results) == 0 {
			m.notice = noticeNoResults
			m.noticeErr = false
			return m, nil
		}
		m.notice = ""
		m.noticeErr = false
		m = m.enterResults()
		return m, nil

	case commands.SearchFailedMsg:
		if msg.Seq != m.searchSeq {
			LogStaleDrop("search", msg.Seq, m.searchSeq)
			return m, nil
		}
		LogRequestDone("search", msg.Seq, time.Since(m.searchStartedAt), msg.Err)
		LogError("search", msg.Err)
		m.searching = false
		m.err = msg.Err
		m.results = nil
		m.grid = m.rebuildGrid()
		m.notice = noticeSearchFail
		m.noticeErr = true
		return m, nil

	case commands.DetailLoadedMsg:
		if msg.Seq != m.detailSeq {
			LogStaleDrop("detail", msg.Seq, m.detailSeq)
			return m, nil
		}
		LogRequestDone("detail", msg.Seq, time.Since(m.detailStartedAt), nil)
		m.fetching = false
		if m.mode != ModeModal || m.modalType != ModalMessage {
			// The overlay was dismissed while the fetch was in flight.
			return m, nil
		}
		m.detail = msg.Detail
		m.modalType = ModalDetail
		m.modalMessage = ""
		m.modalErr = false
		m.sizePlotView()
		m.plotView.SetContent(m.plotContent())
		m.plotView.GotoTop()
		return m, nil

	case commands.DetailFailedMsg:
		if msg.Seq != m.detailSeq {
			LogStaleDrop("detail", msg.Seq, m.detailSeq)
			return m, nil
		}
		LogRequestDone("detail", msg.Seq, time.Since(m.detailStartedAt), msg.Err)
		LogError("detail", msg.Err)
		m.fetching = false
		m.err = msg.Err
		if m.mode != ModeModal || m.modalType != ModalMessage {
			return m, nil
		}
		// The panel stays open showing the error; the user closes it.
		m.modalMessage = detailErrorMessage(msg.Err)
		m.modalErr = true
		return m, nil

	case spinner.TickMsg:
		if !m.searching && !m.fetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("tui", msg.Err)
		m.statusMsg = "Something went wrong"
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward remaining messages (cursor blinks) to the focused input.
	switch {
	case m.mode == ModeSearch:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		cmds = append(cmds, cmd)
	case m.mode == ModeModal && m.modalType == ModalSetup:
		var cmd tea.Cmd
		m.setupInput, cmd = m.setupInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// rebuildGrid recomputes the card grid for the current results and
// layout, keeping the selected card visible.
func (m *Model) rebuildGrid() CardGrid {
	grid := NewCardGrid(len(m.results), m.layout.InnerW, m.layout.ResultsH, m.layout.ResultsLeft, m.layout.ResultsTop)
	grid.ScrollRow = m.grid.ScrollRow
	return grid.EnsureVisible(m.selected)
}

// enterResults moves focus from the search form to the card grid.
func (m Model) enterResults() Model {
	LogModeChange(m.mode, ModeResults, "results available")
	m.mode = ModeResults
	m.searchInput.Blur()
	m.selected = m.grid.Clamp(m.selected)
	m.grid = m.grid.EnsureVisible(m.selected)
	return m
}
