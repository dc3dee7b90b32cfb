// Package tui provides the terminal user interface for movie-info-search.
package tui

import "github.com/Dorantes98/movie-info-search/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalMessage:
		return m.renderMessageModal()
	case ModalDetail:
		return m.renderDetailModal()
	case ModalSetup:
		return m.renderSetupModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
		ModalCloseStyle:        m.styles.ModalCloseStyle,
	}
}

// renderMessageModal renders the single-message panel shown while a
// detail fetch is loading or after it failed.
func (m Model) renderMessageModal() string {
	vm := m.modalMessageViewModel()
	body := view.RenderModalMessageBody(vm.Message, vm.Styles)
	footer := view.MovieDetailFooter(false, m.modalStyles())
	return view.RenderModalFrame("Movie Details", body, footer, m.modalStyles())
}

// renderDetailModal renders the loaded movie detail panel.
func (m Model) renderDetailModal() string {
	vm, ok := m.movieDetailModalViewModel()
	if !ok {
		return ""
	}
	body := view.RenderMovieDetailBody(vm.Model, vm.Styles)
	footer := view.MovieDetailFooter(true, m.modalStyles())
	return view.RenderModalFrameClosable(vm.Title, body, footer, m.modalStyles())
}

// renderSetupModal renders the first-run API key setup.
func (m Model) renderSetupModal() string {
	vm := m.setupModalViewModel()
	body := view.RenderSetupBody(vm.Model, vm.Styles)
	footer := view.SetupFooter(m.modalStyles())
	return view.RenderModalFrame("Welcome", body, footer, m.modalStyles())
}
