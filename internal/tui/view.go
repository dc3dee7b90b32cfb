package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dorantes98/movie-info-search/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
		m.overlay.active = true
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
	} else {
		m.overlay.active = false
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layout
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	header := view.RenderHeader(view.HeaderModel{
		Title:        "Movie Info Search",
		Tagline:      "powered by OMDb",
		TitleStyle:   m.styles.TitleStyle,
		TaglineStyle: m.styles.TaglineStyle,
		GapStyle:     m.styles.TaglineStyle,
	})
	headerBox := m.placeBox(layout.InnerW, headerLines, lipgloss.Top, header)

	searchStyle := m.styles.PromptStyle
	if m.mode == ModeSearch {
		searchStyle = m.styles.PromptFocusedStyle
	}
	searchBox := view.RenderSearchBox(layout.InnerW, searchStyle, m.searchInput.View())
	searchArea := m.placeBox(layout.InnerW, searchLines, lipgloss.Top, searchBox)

	resultsBox := m.placeBox(layout.InnerW, layout.ResultsH, lipgloss.Top, m.renderResults())

	footerBox := view.RenderFooter(view.FooterModel{
		InnerW:      layout.InnerW,
		FooterH:     footerLines,
		StatusText:  m.statusMsgOrDefault(),
		HelpText:    m.renderHelp(),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	})

	content := lipgloss.JoinVertical(lipgloss.Left, headerBox, searchArea, resultsBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// renderResults renders the region between the search box and the
// footer: a spinner line while a search is in flight, a notice when
// there is nothing to show, the card grid otherwise.
func (m Model) renderResults() string {
	if m.searching {
		return m.styles.LoadingStyle.Render(m.spinner.View() + " " + m.notice)
	}
	if m.notice != "" {
		style := m.styles.NoticeStyle
		if m.noticeErr {
			style = m.styles.NoticeErrorStyle
		}
		return style.Render(m.notice)
	}
	if len(m.results) == 0 {
		return ""
	}
	return m.renderCardGrid()
}

func (m Model) renderCardGrid() string {
	grid := m.grid
	from, to := grid.VisibleRange()
	if from >= to {
		return ""
	}

	gap := view.CardGap(cardOuterHeight, m.styles.colorBg)
	rows := make([]string, 0, grid.VisibleRows)
	for start := from; start < to; start += grid.Cols {
		end := start + grid.Cols
		if end > to {
			end = to
		}
		cards := make([]string, 0, grid.Cols)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i))
		}
		rows = append(rows, view.RenderCardRow(cards, gap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(i int) string {
	item := m.results[i]
	selected := i == m.selected

	styles := view.CardStyles{
		CardStyle:     m.styles.CardStyleWidth(m.grid.CardWidth),
		TitleStyle:    m.styles.CardTitleStyle,
		YearStyle:     m.styles.CardYearStyle,
		PosterStyle:   m.styles.CardPosterStyle,
		NoPosterStyle: m.styles.CardNoPosterStyle,
		ButtonStyle:   m.styles.ButtonStyle,
	}
	if selected {
		styles.CardStyle = m.styles.CardSelectedStyleWidth(m.grid.CardWidth)
		styles.TitleStyle = m.styles.CardTitleSelectedStyle
		styles.YearStyle = m.styles.CardYearSelectedStyle
		styles.ButtonStyle = m.styles.ButtonSelectedStyle
	}

	return view.RenderCard(view.CardModel{
		Title:     item.Title,
		Year:      item.Year,
		PosterURL: item.PosterURL,
		HasPoster: item.HasPoster(),
	}, styles, m.grid.CardWidth)
}

// placeBox is a helper to render content in an explicit lipgloss box.
func (m Model) placeBox(w, h int, vAlign lipgloss.Position, content string) string {
	return view.PlaceBox(w, h, vAlign, content, m.styles.colorBg)
}
