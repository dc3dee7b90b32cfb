// Package tui provides the terminal user interface for movie-info-search.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dorantes98/movie-info-search/internal/config"
	"github.com/Dorantes98/movie-info-search/internal/movie"
	"github.com/Dorantes98/movie-info-search/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeSearch  Mode = iota // typing in the search form
	ModeResults             // browsing result cards
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone    ModalType = iota
	ModalMessage           // single-message panel: loading and fetch errors
	ModalDetail            // loaded movie details
	ModalSetup             // first-run API key setup
)

// User-facing notices for the results region. The wording is part of
// the UI contract and is asserted on by tests.
const (
	noticeEmptyQuery = "Type a movie title to search!"
	noticeNoResults  = "No results - try another search?"
	noticeSearchFail = "Something went wrong - please try again!"
)

// modalLoadingMessage is shown in the overlay while details load.
const modalLoadingMessage = "Loading details..."

// Model is the main TUI model.
type Model struct {
	// Dependencies
	source movie.Source
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode      Mode
	modalType ModalType

	// Search form and results
	searchInput textinput.Model
	query       string // last submitted query
	results     []movie.SearchResult
	selected    int
	notice      string // results-region notice, "" when cards are shown
	noticeErr   bool

	// Modal state
	modalMessage string
	modalErr     bool
	detail       *movie.Detail
	plotView     viewport.Model

	// First-run setup state
	setupState SetupState
	setupInput textinput.Model
	setupErr   string

	// In-flight request bookkeeping. Each dispatched command carries
	// its sequence number; completions with a stale sequence are
	// dropped, so the UI always reflects the latest trigger.
	searchSeq       int
	detailSeq       int
	searching       bool
	fetching        bool
	searchStartedAt time.Time
	detailStartedAt time.Time

	spinner spinner.Model

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions and layout
	width  int
	height int
	layout Layout
	grid   CardGrid

	// Messages
	statusMsg  string    // Temporary status message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithSetupState sets the first-run setup state. When an API key is
// missing the TUI opens on the setup modal instead of the search form.
func WithSetupState(state SetupState) ModelOption {
	return func(m *Model) {
		m.setupState = state
		if state.NeedsKey {
			m.mode = ModeModal
			m.modalType = ModalSetup
			m.setupInput.Focus()
		}
	}
}

// New creates a new TUI model.
func New(source movie.Source, cfg *config.Config, opts ...ModelOption) *Model {
	ti := textinput.New()
	ti.Placeholder = "Search for a movie..."
	ti.CharLimit = 200
	ti.Focus()

	// API key input for the setup modal
	keyInput := textinput.New()
	keyInput.Placeholder = "OMDb API key"
	keyInput.CharLimit = 64
	keyInput.Width = 40

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	// Create styles from theme
	styles := NewStyles(t)

	ti.PlaceholderStyle = styles.ModalPlaceholderStyle.Background(styles.PromptStyle.GetBackground())
	ti.TextStyle = styles.NoticeStyle.Bold(false)

	keyInput.PlaceholderStyle = styles.ModalPlaceholderStyle
	keyInput.TextStyle = styles.ModalInputTextStyle
	keyInput.PromptStyle = styles.ModalInputTextStyle
	keyInput.Cursor.Style = styles.ModalInputCursorStyle
	keyInput.Cursor.TextStyle = styles.ModalInputTextStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.SpinnerStyle

	m := &Model{
		source:      source,
		config:      cfg,
		theme:       t,
		styles:      styles,
		mode:        ModeSearch,
		searchInput: ti,
		setupInput:  keyInput,
		spinner:     sp,
		overlay:     NewOverlayModel(),
	}
	m.layout = m.buildLayout()

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	state := DetectSetupState(cfg)

	var source movie.Source
	if !state.NeedsKey {
		var err error
		source, err = openSource(cfg)
		if err != nil {
			return err
		}
	}

	model := New(source, cfg, WithSetupState(state))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
