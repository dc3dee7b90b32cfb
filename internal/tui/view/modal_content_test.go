// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderMovieDetailBody_UsesLinkStyleForPosterURL(t *testing.T) {
	styles := MovieDetailStyles{
		BodyStyle: lipgloss.NewStyle(),
		LinkStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true),
	}
	model := MovieDetailModel{
		MetaLine:      "2005 | PG-13 | 140 min",
		PosterURL:     "https://img.example.com/poster.jpg",
		HasPoster:     true,
		Plot:          "A hero rises.",
		DirectorLabel: "Director:",
		Directors:     "Christopher Nolan",
	}

	body := RenderMovieDetailBody(model, styles)
	expected := styles.LinkStyle.Render(model.PosterURL)
	if !strings.Contains(body, expected) {
		t.Fatalf("expected poster URL to use link style")
	}
}

func TestRenderMovieDetailBody_ShowsNoPosterLabelForMissingPoster(t *testing.T) {
	styles := MovieDetailStyles{
		MutedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	model := MovieDetailModel{
		MetaLine:      "1999 | R | 113 min",
		HasPoster:     false,
		Plot:          "Plot text.",
		DirectorLabel: "Director:",
		Directors:     "Unknown",
	}

	body := RenderMovieDetailBody(model, styles)
	if !strings.Contains(body, NoPosterLabel) {
		t.Fatalf("expected %q for a missing poster, got %q", NoPosterLabel, body)
	}
}

func TestRenderMovieDetailBody_OnePillPerRatingSource(t *testing.T) {
	styles := MovieDetailStyles{
		TagStyle: lipgloss.NewStyle().Background(lipgloss.Color("5")).Padding(0, 1),
	}
	model := MovieDetailModel{
		MetaLine:      "2005 | PG-13 | 140 min",
		Plot:          "Plot text.",
		DirectorLabel: "Director:",
		Directors:     "Christopher Nolan",
		Ratings: []RatingLine{
			{Source: "Internet Movie Database", Value: "8.2/10"},
			{Source: "Rotten Tomatoes", Value: "85%"},
			{Source: "Metacritic", Value: "70/100"},
		},
	}

	body := RenderMovieDetailBody(model, styles)
	for _, rating := range model.Ratings {
		pill := styles.TagStyle.Render(rating.Source + " " + rating.Value)
		if !strings.Contains(body, pill) {
			t.Fatalf("expected a pill for %q, got %q", rating.Source, body)
		}
	}
}

func TestRenderMovieDetailBody_OmitsRatingsSectionWhenEmpty(t *testing.T) {
	model := MovieDetailModel{
		MetaLine:      "2005 | PG-13 | 140 min",
		Plot:          "Plot text.",
		DirectorLabel: "Director:",
		Directors:     "Christopher Nolan",
	}

	body := RenderMovieDetailBody(model, MovieDetailStyles{})
	if strings.Contains(body, "Ratings") {
		t.Fatalf("expected no ratings section without ratings, got %q", body)
	}
}

func TestRenderMovieDetailBody_PluralDirectorLabel(t *testing.T) {
	model := MovieDetailModel{
		MetaLine:      "1999 | R | 136 min",
		Plot:          "Plot text.",
		DirectorLabel: "Directors:",
		Directors:     "Lana Wachowski, Lilly Wachowski",
	}

	body := RenderMovieDetailBody(model, MovieDetailStyles{})
	if !strings.Contains(body, "Directors:") {
		t.Fatalf("expected plural director label, got %q", body)
	}
}

func TestRenderModalMessageBody_UsesBodyStyle(t *testing.T) {
	styles := ModalMessageStyles{
		BodyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}

	body := RenderModalMessageBody("Movie not found!", styles)
	expected := styles.BodyStyle.Render("Movie not found!")
	if !strings.Contains(body, expected) {
		t.Fatalf("expected message to use body style")
	}
}
