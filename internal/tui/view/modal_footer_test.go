package view

import (
	"strings"
	"testing"
)

func TestMovieDetailFooterTogglesOnLoaded(t *testing.T) {
	styles := ModalStyles{}

	loaded := MovieDetailFooter(true, styles)
	if !strings.Contains(loaded, "[y] Copy IMDb link") || !strings.Contains(loaded, "[q/Esc] Close") {
		t.Fatalf("expected copy and close controls on loaded footer, got %q", loaded)
	}

	loading := MovieDetailFooter(false, styles)
	if strings.Contains(loading, "[y] Copy IMDb link") {
		t.Fatalf("expected no copy control while loading, got %q", loading)
	}
	if !strings.Contains(loading, "[Esc] Close") {
		t.Fatalf("expected close control while loading, got %q", loading)
	}
}

func TestSetupFooterOffersSaveAndQuit(t *testing.T) {
	footer := SetupFooter(ModalStyles{})
	if !strings.Contains(footer, "[Enter] Save") || !strings.Contains(footer, "[Esc] Quit") {
		t.Fatalf("expected save and quit controls, got %q", footer)
	}
}
