// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SetupModel contains the fields needed to render the first-run setup body.
type SetupModel struct {
	ConfigPath   string
	KeyURL       string
	InputView    string // pre-rendered text input
	ErrorMessage string
}

// SetupStyles groups styles for the setup body.
type SetupStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
	LinkStyle  lipgloss.Style
	ErrorStyle lipgloss.Style
}

// RenderSetupBody renders the modal body for the first-run API key setup.
func RenderSetupBody(model SetupModel, styles SetupStyles) string {
	var body strings.Builder

	body.WriteString(" " + styles.BodyStyle.Render("An OMDb API key is required to search for movies.") + "\n")
	body.WriteString(" " + styles.BodyStyle.Render("Free keys are issued at ") + styles.LinkStyle.Render(model.KeyURL) + "\n\n")
	body.WriteString(styles.LabelStyle.Render(" API key:") + "\n")
	body.WriteString(" " + model.InputView + "\n\n")
	body.WriteString(styles.HintStyle.Render(" The key is saved to " + model.ConfigPath))
	if model.ErrorMessage != "" {
		body.WriteString("\n\n" + styles.ErrorStyle.Render(" "+model.ErrorMessage))
	}

	return body.String()
}
