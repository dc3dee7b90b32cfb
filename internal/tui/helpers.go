package tui

import (
	"errors"
	"strings"

	"github.com/Dorantes98/movie-info-search/internal/omdb"
)

// Fallback shown when a failed detail fetch carries no usable message.
const detailFailedFallback = "Could not load movie details"

// detailErrorMessage extracts the user-facing text for a failed detail
// fetch: the service's own message when it sent one, the generic
// fallback otherwise. Transport errors never leak their detail to the
// user; the full error goes to the debug log.
func detailErrorMessage(err error) string {
	var apiErr *omdb.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return detailFailedFallback
}

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// renderHelp renders the help bar for the current mode.
func (m Model) renderHelp() string {
	var help string
	switch m.mode {
	case ModeResults:
		help = "h/j/k/l: select | Enter: details | /: search | q: quit"
	case ModeModal:
		switch m.modalType {
		case ModalDetail:
			help = "j/k: scroll plot | y: copy IMDb link | q/Esc: close"
		case ModalSetup:
			help = "Enter: save | Esc: quit"
		default:
			help = "Esc: close"
		}
	default:
		help = "Enter: search | Tab: results | Ctrl+C: quit"
	}
	return m.styles.HelpStyle.Render(help)
}

// splitGenres breaks the service's comma-separated genre list into
// pill labels, dropping the sentinel.
func splitGenres(raw string) []string {
	if raw == "" || raw == "N/A" {
		return nil
	}
	parts := strings.Split(raw, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			genres = append(genres, p)
		}
	}
	return genres
}
