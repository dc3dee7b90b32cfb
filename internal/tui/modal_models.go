// Package tui provides the terminal user interface for movie-info-search.
package tui

import (
	"strings"

	"github.com/Dorantes98/movie-info-search/internal/tui/view"
)

const (
	plotViewHeight    = 6
	modalContentGuess = 64
)

type movieDetailModalViewModel struct {
	Title  string
	Model  view.MovieDetailModel
	Styles view.MovieDetailStyles
}

func (m Model) movieDetailModalViewModel() (movieDetailModalViewModel, bool) {
	if m.detail == nil {
		return movieDetailModalViewModel{}, false
	}
	d := m.detail

	directorLabel := "Director:"
	if len(d.Directors) > 1 {
		directorLabel = "Directors:"
	}
	directors := d.Director()
	if directors == "" {
		directors = "Unknown"
	}

	ratings := make([]view.RatingLine, 0, len(d.Ratings))
	for _, r := range d.Ratings {
		ratings = append(ratings, view.RatingLine{Source: r.Source, Value: r.Value})
	}

	return movieDetailModalViewModel{
		Title: d.Title,
		Model: view.MovieDetailModel{
			MetaLine:      view.JoinMeta(d.Year, d.Rated, d.Runtime),
			Genres:        splitGenres(d.Genre),
			PosterURL:     d.PosterURL,
			HasPoster:     d.HasPoster(),
			Plot:          m.plotView.View(),
			DirectorLabel: directorLabel,
			Directors:     directors,
			Ratings:       ratings,
			IMDbURL:       d.IMDbURL(),
		},
		Styles: view.MovieDetailStyles{
			BodyStyle:         m.styles.ModalBodyStyle,
			MetaStyle:         m.styles.ModalMetaStyle,
			SectionTitleStyle: m.styles.ModalSectionTitleStyle,
			TagStyle:          m.styles.ModalTagStyle,
			LabelStyle:        m.styles.ModalLabelStyle,
			LinkStyle:         m.styles.ModalLinkStyle,
			MutedStyle:        m.styles.ModalHintStyle,
		},
	}, true
}

// plotWidth is the column budget for the wrapped plot text.
func (m Model) plotWidth() int {
	return view.ModalContentWidth(m.styles.ModalStyle, modalContentGuess) - 2
}

// sizePlotView fits the plot viewport to the modal content area.
func (m *Model) sizePlotView() {
	width := m.plotWidth()
	if width < 10 {
		width = 10
	}
	height := plotViewHeight
	if m.height > 0 && m.height/3 < height {
		height = max(2, m.height/3)
	}
	m.plotView.Width = width
	m.plotView.Height = height
}

// plotContent wraps and styles the plot for the scrollable viewport.
func (m Model) plotContent() string {
	if m.detail == nil {
		return ""
	}
	plot := m.detail.Plot
	if plot == "" || plot == "N/A" {
		return " " + m.styles.ModalHintStyle.Render("No plot available.")
	}

	width := m.plotWidth()
	wrapped := view.WrapTextToWidths(plot, width, width)
	lines := make([]string, 0, len(wrapped))
	for _, line := range wrapped {
		lines = append(lines, " "+m.styles.ModalBodyStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}

type modalMessageViewModel struct {
	Message string
	Styles  view.ModalMessageStyles
}

// modalMessageViewModel builds the single-message panel: a spinner
// beside the text while a fetch is in flight, error styling after a
// failed one.
func (m Model) modalMessageViewModel() modalMessageViewModel {
	message := m.modalMessage
	style := m.styles.ModalBodyStyle
	if m.modalErr {
		style = m.styles.ModalErrorStyle
	} else if m.fetching {
		message = m.spinner.View() + " " + message
	}
	return modalMessageViewModel{
		Message: message,
		Styles:  view.ModalMessageStyles{BodyStyle: style},
	}
}

type setupModalViewModel struct {
	Model  view.SetupModel
	Styles view.SetupStyles
}

func (m Model) setupModalViewModel() setupModalViewModel {
	return setupModalViewModel{
		Model: view.SetupModel{
			ConfigPath:   m.setupState.ConfigPath,
			KeyURL:       KeySignupURL,
			InputView:    m.styles.ModalInputFocusedStyle.Render(m.setupInput.View()),
			ErrorMessage: m.setupErr,
		},
		Styles: view.SetupStyles{
			BodyStyle:  m.styles.ModalBodyStyle,
			LabelStyle: m.styles.ModalLabelStyle,
			HintStyle:  m.styles.ModalHintStyle,
			LinkStyle:  m.styles.ModalLinkStyle,
			ErrorStyle: m.styles.ModalErrorStyle,
		},
	}
}
