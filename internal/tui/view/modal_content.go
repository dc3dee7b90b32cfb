// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RatingLine is one review score row in the detail body.
type RatingLine struct {
	Source string
	Value  string
}

// MovieDetailModel contains the fields needed to render the movie detail body.
type MovieDetailModel struct {
	MetaLine      string
	Genres        []string
	PosterURL     string
	HasPoster     bool
	Plot          string // pre-wrapped, scrollable plot view
	DirectorLabel string
	Directors     string
	Ratings       []RatingLine
	IMDbURL       string
}

// MovieDetailStyles groups styles for the movie detail body.
type MovieDetailStyles struct {
	BodyStyle         lipgloss.Style
	MetaStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	TagStyle          lipgloss.Style
	LabelStyle        lipgloss.Style
	LinkStyle         lipgloss.Style
	MutedStyle        lipgloss.Style
}

// RenderMovieDetailBody renders the modal body for movie details.
func RenderMovieDetailBody(model MovieDetailModel, styles MovieDetailStyles) string {
	var body strings.Builder

	body.WriteString(" " + styles.MetaStyle.Render(model.MetaLine) + "\n")
	if len(model.Genres) > 0 {
		tags := make([]string, 0, len(model.Genres))
		for _, genre := range model.Genres {
			tags = append(tags, styles.TagStyle.Render(genre))
		}
		body.WriteString(" " + strings.Join(tags, styles.BodyStyle.Render(" ")) + "\n")
	}
	body.WriteString("\n")

	if model.HasPoster {
		body.WriteString(styles.LabelStyle.Render(" Poster:") + styles.LinkStyle.Render(model.PosterURL) + "\n")
	} else {
		body.WriteString(styles.LabelStyle.Render(" Poster:") + styles.MutedStyle.Render(NoPosterLabel) + "\n")
	}
	body.WriteString("\n")

	body.WriteString(model.Plot + "\n\n")

	body.WriteString(styles.LabelStyle.Render(" "+model.DirectorLabel) + styles.BodyStyle.Render(model.Directors))

	if len(model.Ratings) > 0 {
		body.WriteString("\n\n" + styles.SectionTitleStyle.Render("Ratings") + "\n ")
		pills := make([]string, 0, len(model.Ratings))
		for _, rating := range model.Ratings {
			pills = append(pills, styles.TagStyle.Render(fmt.Sprintf("%s %s", rating.Source, rating.Value)))
		}
		body.WriteString(strings.Join(pills, styles.BodyStyle.Render(" ")))
	}

	if model.IMDbURL != "" {
		body.WriteString("\n\n" + styles.LabelStyle.Render(" IMDb:") + styles.LinkStyle.Render(model.IMDbURL))
	}

	return body.String()
}

// ModalMessageStyles groups styles for single-message modal bodies.
type ModalMessageStyles struct {
	BodyStyle lipgloss.Style
}

// RenderModalMessageBody renders a modal body holding one message,
// used for the loading and error states of the detail panel.
func RenderModalMessageBody(message string, styles ModalMessageStyles) string {
	return " " + styles.BodyStyle.Render(message)
}
