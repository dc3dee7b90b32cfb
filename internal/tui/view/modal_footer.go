// Package view provides rendering helpers for the TUI.
package view

// MovieDetailFooter renders the footer for the movie detail modal.
// Only a loaded detail offers the copy shortcut.
func MovieDetailFooter(loaded bool, styles ModalStyles) string {
	if loaded {
		return RenderModalButtonsCompact(styles, "[y] Copy IMDb link", "[j/k] Scroll", "[q/Esc] Close")
	}
	return RenderModalButtons(styles, "[Esc] Close")
}

// SetupFooter renders the footer for the first-run setup modal.
func SetupFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, "[Enter] Save", "[Esc] Quit")
}
