// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CloseControl is the glyph rendered in the top-right corner of
// closable modal frames. Mouse handling treats its cells as a close
// button.
const CloseControl = "✕"

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalCloseStyle        lipgloss.Style
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	header := styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))
	return renderFrame(header, body, footer, styles)
}

// RenderModalFrameClosable renders a modal frame with the close control
// in the top-right corner of the header line.
func RenderModalFrameClosable(title, body, footer string, styles ModalStyles) string {
	header := styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title))
	closeTag := styles.ModalCloseStyle.Render(CloseControl)

	contentWidth := ModalContentWidth(styles.ModalStyle, lipgloss.Width(header)+4)
	gap := contentWidth - lipgloss.Width(header) - lipgloss.Width(closeTag)
	if gap < 1 {
		gap = 1
	}
	header += styles.ModalBodyStyle.Render(strings.Repeat(" ", gap)) + closeTag

	return renderFrame(header, body, footer, styles)
}

func renderFrame(header, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	b.WriteString(header)
	if body != "" {
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	if footer != "" {
		b.WriteString("\n\n")
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// ModalContentWidth returns the content width for a modal body.
func ModalContentWidth(style lipgloss.Style, fallback int) int {
	width := style.GetWidth()
	if width <= 0 {
		return fallback
	}
	contentWidth := width - 4
	if contentWidth < 10 {
		return 10
	}
	return contentWidth
}

// RenderModalButtons renders a row of modal buttons with the first one active.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := styles.ModalButtonStyle
		if i == 0 {
			style = styles.ModalButtonActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	sep := styles.ModalBodyStyle.Render(" ")
	return strings.Join(parts, sep)
}

// RenderModalButtonsCompact renders a compact row of modal buttons.
func RenderModalButtonsCompact(styles ModalStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	buttonStyle := styles.ModalButtonStyle.Padding(0, 1)
	activeStyle := styles.ModalButtonActiveStyle.Padding(0, 1)
	for i, label := range labels {
		style := buttonStyle
		if i == 0 {
			style = activeStyle
		}
		parts = append(parts, style.Render(label))
	}
	sep := styles.ModalBodyStyle.Render(" ")
	return strings.Join(parts, sep)
}
