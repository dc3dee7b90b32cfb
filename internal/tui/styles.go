// Package tui provides the terminal user interface for movie-info-search.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Dorantes98/movie-info-search/internal/tui/theme"
)

// Default card width - shrinks on narrow terminals.
const defaultCardWidth = 28

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorLink        lipgloss.Color
	colorWarning     lipgloss.Color
	colorError       lipgloss.Color

	colorTextOnAccent    lipgloss.Color
	colorTextOnSelection lipgloss.Color

	// Derived card backgrounds
	colorCardBg         lipgloss.Color
	colorCardSelectedBg lipgloss.Color
	colorPosterBg       lipgloss.Color
	colorNoPosterBg     lipgloss.Color

	// Title style
	TitleStyle   lipgloss.Style
	TaglineStyle lipgloss.Style

	// Result card styles
	CardStyle              lipgloss.Style
	CardSelectedStyle      lipgloss.Style
	CardTitleStyle         lipgloss.Style
	CardTitleSelectedStyle lipgloss.Style
	CardYearStyle          lipgloss.Style
	CardYearSelectedStyle  lipgloss.Style
	CardPosterStyle        lipgloss.Style
	CardNoPosterStyle      lipgloss.Style

	// Details button on each card
	ButtonStyle         lipgloss.Style
	ButtonSelectedStyle lipgloss.Style

	// Results region messages
	NoticeStyle      lipgloss.Style
	NoticeErrorStyle lipgloss.Style
	LoadingStyle     lipgloss.Style
	SpinnerStyle     lipgloss.Style

	// Search box
	PromptStyle        lipgloss.Style
	PromptFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalLinkStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalCloseStyle        lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Viewport background
	ViewportStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	// Convert theme colors to lipgloss colors
	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorLink = palette.Link
	s.colorWarning = palette.Warning
	s.colorError = palette.Error

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnSelection = palette.TextOnSelection

	s.colorCardBg = palette.CardBg
	s.colorCardSelectedBg = palette.CardSelectedBg
	s.colorPosterBg = palette.PosterBg
	s.colorNoPosterBg = palette.NoPosterBg

	// Build styles from colors

	// Title style
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.TaglineStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Result cards: subtle highlight block, accent border when selected
	s.CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorCardBg).
		Foreground(s.colorFg).
		Padding(0, 1).
		Width(defaultCardWidth)

	s.CardSelectedStyle = s.CardStyle.
		BorderForeground(s.colorAccent).
		Background(s.colorCardSelectedBg)

	s.CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorCardBg)

	s.CardTitleSelectedStyle = s.CardTitleStyle.
		Foreground(s.colorAccent).
		Background(s.colorCardSelectedBg)

	s.CardYearStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorCardBg)

	s.CardYearSelectedStyle = s.CardYearStyle.
		Background(s.colorCardSelectedBg)

	// Poster strip: link-tinted when a poster URL exists, faded otherwise
	s.CardPosterStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorPosterBg)

	s.CardNoPosterStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorNoPosterBg).
		Italic(true)

	s.ButtonStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorTextOnSelection).
		Padding(0, 1)

	s.ButtonSelectedStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorTextOnAccent).
		Bold(true).
		Padding(0, 1)

	// Results region messages
	s.NoticeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.NoticeErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorError).
		Background(s.colorBg)

	s.LoadingStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Bold(true)

	s.SpinnerStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// Search box
	s.PromptStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorFgMuted).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1)

	s.PromptFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		BorderBackground(s.colorBg).
		Background(s.colorBgSelection).
		Foreground(s.colorFg).
		Bold(true).
		Padding(0, 1)

	// Status message
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	// Help text
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	modalBorder := modal.Border
	modalText := modal.Text
	modalMuted := modal.Muted
	modalHighlight := modal.Highlight
	modalPanel := modal.Panel
	modalReverseText := modal.ReverseText
	placeholderColor := modalMuted
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(1, 1).
		Width(72).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		PaddingLeft(1).
		Background(modalBg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalPanel).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		Width(12).
		Background(modalBg)

	s.ModalLinkStyle = lipgloss.NewStyle().
		Foreground(s.colorLink).
		Background(modalBg).
		Underline(true)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorError).
		Background(modalBg).
		Bold(true)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(0, 1).
		Width(54)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modalHighlight).
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 1).
		Width(54)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(placeholderColor).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Padding(0, 3).
		MarginRight(0).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalCloseStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalMuted).
		Background(modalBg)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	// Viewport background - fill entire terminal with base background.
	s.ViewportStyle = lipgloss.NewStyle().
		Background(s.colorBg)

	// Separator style
	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	return s
}

// CardStyleWidth returns the card style with the specified content width.
func (s *Styles) CardStyleWidth(width int) lipgloss.Style {
	return s.CardStyle.Width(width)
}

// CardSelectedStyleWidth returns the selected card style with the specified
// content width.
func (s *Styles) CardSelectedStyleWidth(width int) lipgloss.Style {
	return s.CardSelectedStyle.Width(width)
}

// PromptStyleWidth returns the search box style with the specified width.
func (s *Styles) PromptStyleWidth(width int) lipgloss.Style {
	return s.PromptStyle.Width(width)
}

// PromptFocusedStyleWidth returns the focused search box style with the
// specified width.
func (s *Styles) PromptFocusedStyleWidth(width int) lipgloss.Style {
	return s.PromptFocusedStyle.Width(width)
}
