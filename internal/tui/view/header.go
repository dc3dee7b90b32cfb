package view

import "github.com/charmbracelet/lipgloss"

// HeaderModel contains the fields needed to render the app header line.
type HeaderModel struct {
	Title        string
	Tagline      string
	TitleStyle   lipgloss.Style
	TaglineStyle lipgloss.Style
	GapStyle     lipgloss.Style
}

// RenderHeader renders the title line with an optional tagline.
func RenderHeader(model HeaderModel) string {
	line := model.TitleStyle.Render(model.Title)
	if model.Tagline != "" {
		line += model.GapStyle.Render("  ") + model.TaglineStyle.Render(model.Tagline)
	}
	return line
}
