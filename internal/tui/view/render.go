// Package view provides rendering helpers for the TUI.
package view

// OverlayRenderer composites a modal box over already-rendered base
// content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState is one frame of the interface: the base regions rendered
// to a string, plus the modal overlay when one is open.
type ViewState struct {
	Width       int
	Height      int
	BaseContent string

	ModalContent string
	ShowModal    bool
	Overlay      OverlayRenderer

	// EmptyPlaceholder is shown before the first window-size message,
	// while the terminal dimensions are still unknown.
	EmptyPlaceholder string
}

// Render produces the final frame: the placeholder until the window
// size is known, the overlay composite while a modal is open, the base
// content otherwise.
func Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return state.EmptyPlaceholder
	}
	if state.ShowModal && state.Overlay != nil {
		return state.Overlay.Render(state.BaseContent, state.Width, state.Height, state.ModalContent)
	}
	return state.BaseContent
}
