package tui

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/Dorantes98/movie-info-search/internal/omdb"
)

func TestDetailErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"service message", &omdb.APIError{Message: "Incorrect IMDb ID."}, "Incorrect IMDb ID."},
		{"wrapped service message", fmt.Errorf("detail: %w", &omdb.APIError{Message: "Movie not found!"}), "Movie not found!"},
		{"empty service message", &omdb.APIError{}, detailFailedFallback},
		{"transport error", errFake, detailFailedFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detailErrorMessage(tt.err); got != tt.want {
				t.Fatalf("detailErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitGenres(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"several", "Action, Crime, Drama", []string{"Action", "Crime", "Drama"}},
		{"single", "Documentary", []string{"Documentary"}},
		{"sentinel", "N/A", nil},
		{"empty", "", nil},
		{"stray commas", "Action,, Drama", []string{"Action", "Drama"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitGenres(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("splitGenres(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStatusMsgOrDefault(t *testing.T) {
	m := Model{}
	if got := m.statusMsgOrDefault(); got != " " {
		t.Fatalf("empty status = %q, want single space", got)
	}

	m.statusMsg = "IMDb link copied!"
	if got := m.statusMsgOrDefault(); got != "IMDb link copied!" {
		t.Fatalf("status = %q", got)
	}
}
