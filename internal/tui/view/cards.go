// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// NoPosterLabel is shown in place of the poster when a movie carries
// no poster URL.
const NoPosterLabel = "No Poster"

// DetailsLabel is the caption of the button on each result card.
const DetailsLabel = "Details"

// CardContentLines is the number of text lines inside a card.
const CardContentLines = 4

// CardModel contains the fields needed to render one result card.
type CardModel struct {
	Title     string
	Year      string
	PosterURL string
	HasPoster bool
}

// CardStyles groups the styles needed to render result cards. The
// card and text styles must already match the selection state.
type CardStyles struct {
	CardStyle     lipgloss.Style
	TitleStyle    lipgloss.Style
	YearStyle     lipgloss.Style
	PosterStyle   lipgloss.Style
	NoPosterStyle lipgloss.Style
	ButtonStyle   lipgloss.Style
}

// RenderCard renders a single result card. contentWidth is the width
// inside the card border.
func RenderCard(model CardModel, styles CardStyles, contentWidth int) string {
	inner := contentWidth - 2 // card padding
	if inner < 1 {
		inner = 1
	}

	poster := styles.NoPosterStyle.Width(inner).Align(lipgloss.Center).Render(NoPosterLabel)
	if model.HasPoster {
		poster = styles.PosterStyle.Width(inner).Render(Ellipsis(model.PosterURL, inner))
	}

	lines := []string{
		styles.TitleStyle.Render(Ellipsis(model.Title, inner)),
		styles.YearStyle.Render(Ellipsis(model.Year, inner)),
		poster,
		styles.ButtonStyle.Render(DetailsLabel),
	}

	return styles.CardStyle.Width(contentWidth).Render(strings.Join(lines, "\n"))
}

// RenderCardRow joins rendered cards horizontally, separated by gap
// strips. All cards in a row must share the same height.
func RenderCardRow(cards []string, gap string) string {
	if len(cards) == 0 {
		return ""
	}
	if len(cards) == 1 || gap == "" {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	parts := make([]string, 0, len(cards)*2-1)
	for i, card := range cards {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, card)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// CardGap renders a one-column gap strip matching the card height, so
// row joins keep the base background instead of unstyled padding.
func CardGap(height int, bg lipgloss.Color) string {
	cell := lipgloss.NewStyle().Background(bg).Render(" ")
	lines := make([]string, height)
	for i := range lines {
		lines[i] = cell
	}
	return strings.Join(lines, "\n")
}
