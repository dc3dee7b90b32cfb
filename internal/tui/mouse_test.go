package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dorantes98/movie-info-search/internal/config"
)

func leftClick(m Model, x, y int) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return updated.(Model), cmd
}

func TestMouse_ClickOnCardOpensDetail(t *testing.T) {
	src := &fakeSource{results: sampleResults()}
	m := modelWithResults(src)

	// First card starts at the results region origin.
	model, cmd := leftClick(m, m.grid.OriginX+1, m.grid.OriginY+1)

	if model.selected != 0 {
		t.Fatalf("selected = %d, want 0", model.selected)
	}
	if model.mode != ModeModal || model.modalType != ModalMessage {
		t.Fatalf("mode = %v modalType = %v, want loading modal", model.mode, model.modalType)
	}
	if cmd == nil {
		t.Fatalf("expected a dispatched detail command")
	}
}

func TestMouse_ClickOnSecondCardSelectsIt(t *testing.T) {
	src := &fakeSource{results: sampleResults()}
	m := modelWithResults(src)

	outerW := m.grid.CardWidth + cardBorderLines
	model, _ := leftClick(m, m.grid.OriginX+outerW+cardGapCols+1, m.grid.OriginY+1)

	if model.selected != 1 {
		t.Fatalf("selected = %d, want 1", model.selected)
	}
}

func TestMouse_ClickOutsideGridIgnored(t *testing.T) {
	src := &fakeSource{results: sampleResults()}
	m := modelWithResults(src)

	model, cmd := leftClick(m, 0, 0)

	if model.mode != ModeResults || cmd != nil {
		t.Fatalf("click outside the grid must be inert")
	}
}

func TestMouse_NonLeftPressIgnored(t *testing.T) {
	src := &fakeSource{results: sampleResults()}
	m := modelWithResults(src)

	updated, cmd := m.Update(tea.MouseMsg{
		X:      m.grid.OriginX + 1,
		Y:      m.grid.OriginY + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonRight,
	})
	model := updated.(Model)

	if model.mode != ModeResults || cmd != nil {
		t.Fatalf("non-left press must be inert")
	}
}

func TestMouse_BackdropClickClosesModal(t *testing.T) {
	m := modelWithResults(&fakeSource{results: sampleResults()})
	updated, _ := m.openDetail()
	m = updated.(Model)

	model, _ := leftClick(m, 0, 0)

	if model.modalType != ModalNone {
		t.Fatalf("backdrop click must close the modal, got %v", model.modalType)
	}
	if model.mode != ModeResults {
		t.Fatalf("mode = %v, want ModeResults", model.mode)
	}
}

func TestMouse_ClickInsidePanelKeepsItOpen(t *testing.T) {
	m := modelWithResults(&fakeSource{results: sampleResults()})
	updated, _ := m.openDetail()
	m = updated.(Model)

	// The overlay box is centered.
	model, _ := leftClick(m, m.width/2, m.height/2)

	if model.modalType != ModalMessage {
		t.Fatalf("click inside the panel must not dismiss it, got %v", model.modalType)
	}
}

func TestMouse_CloseControlDismissesLoadedDetail(t *testing.T) {
	m := modelWithResults(&fakeSource{results: sampleResults()})
	updated, _ := m.openDetail()
	m = updated.(Model)
	m.modalType = ModalDetail
	m.detail = sampleDetail()
	m.fetching = false

	overlay := m.overlay
	overlay.active = true
	box, ok := overlay.BoxRect(m.width, m.height, m.renderModal())
	if !ok {
		t.Fatalf("no overlay box for the detail modal")
	}

	model, _ := leftClick(m, box.Left+box.Width-1, box.Top)

	if model.modalType != ModalNone {
		t.Fatalf("close control must dismiss the detail, got %v", model.modalType)
	}
}

func TestMouse_SetupModalNotClickDismissed(t *testing.T) {
	m := New(&fakeSource{}, config.Default(),
		WithSetupState(SetupState{NeedsKey: true, ConfigPath: "unused"}))
	updated, _ := m.Update(windowSize(100, 40))
	model := updated.(Model)

	model, _ = leftClick(model, 0, 0)

	if model.modalType != ModalSetup {
		t.Fatalf("setup modal must not be click-dismissed, got %v", model.modalType)
	}
}
