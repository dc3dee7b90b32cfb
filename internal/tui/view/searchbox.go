package view

import "github.com/charmbracelet/lipgloss"

// RenderSearchBox renders the bordered search box with the provided
// input line. The style's frame is subtracted from width so the box
// spans exactly width cells.
func RenderSearchBox(width int, style lipgloss.Style, inputView string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	return style.Width(contentWidth).Render(inputView)
}
