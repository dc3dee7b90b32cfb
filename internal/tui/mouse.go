package tui

import tea "github.com/charmbracelet/bubbletea"

// closeControlSpan is how many columns from the frame's right edge
// count as the close control. The glyph itself is one cell; the span
// gives a small slop around it.
const closeControlSpan = 4

// handleMouseMsg handles mouse input: card activation, the modal close
// control, and backdrop-click dismissal.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.mode == ModeModal {
		return m.handleModalClick(msg.X, msg.Y)
	}

	if idx, ok := m.grid.IndexAt(msg.X, msg.Y); ok && idx < len(m.results) {
		m.selected = idx
		m.grid = m.grid.EnsureVisible(idx)
		if m.mode == ModeSearch {
			m = m.enterResults()
		}
		return m.openDetail()
	}

	return m, nil
}

// handleModalClick resolves a click while the overlay is open: the
// close control dismisses a loaded detail, clicks inside the panel are
// ignored, and clicks on the backdrop dismiss the overlay.
func (m Model) handleModalClick(x, y int) (tea.Model, tea.Cmd) {
	overlay := m.overlay
	overlay.active = true
	box, ok := overlay.BoxRect(m.width, m.height, m.renderModal())
	if ok && box.Contains(x, y) {
		if m.modalType == ModalDetail && m.isCloseControl(x, y, box) {
			return m.closeModal()
		}
		return m, nil
	}

	if m.modalType == ModalSetup {
		// Setup cannot be click-dismissed; the tool is unusable
		// without a key.
		return m, nil
	}
	return m.closeModal()
}

// isCloseControl reports whether the click falls on the frame's close
// mark: the top corner area on the panel's right edge.
func (m Model) isCloseControl(x, y int, box Rect) bool {
	if y > box.Top+1 {
		return false
	}
	return x >= box.Left+box.Width-closeControlSpan
}
