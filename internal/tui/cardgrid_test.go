package tui

import "testing"

func TestNewCardGrid_ColumnCount(t *testing.T) {
	tests := []struct {
		name     string
		innerW   int
		wantCols int
	}{
		{"wide", 96, 3},
		{"two columns", 64, 2},
		{"one column", 40, 1},
		{"narrow shrinks card", 20, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewCardGrid(10, tt.innerW, 30, 0, 0)
			if g.Cols != tt.wantCols {
				t.Fatalf("Cols = %d, want %d", g.Cols, tt.wantCols)
			}
		})
	}
}

func TestNewCardGrid_NarrowTerminalKeepsMinimumWidth(t *testing.T) {
	g := NewCardGrid(3, 10, 30, 0, 0)
	if g.CardWidth < minCardWidth {
		t.Fatalf("CardWidth = %d, want >= %d", g.CardWidth, minCardWidth)
	}
}

func TestCardGrid_RowsAndClamp(t *testing.T) {
	g := NewCardGrid(7, 96, 30, 0, 0) // 3 cols -> 3 rows

	if got := g.Rows(); got != 3 {
		t.Fatalf("Rows = %d, want 3", got)
	}
	if got := g.Clamp(-1); got != 0 {
		t.Fatalf("Clamp(-1) = %d", got)
	}
	if got := g.Clamp(99); got != 6 {
		t.Fatalf("Clamp(99) = %d", got)
	}
}

func TestCardGrid_EnsureVisibleScrolls(t *testing.T) {
	// 3 cols, results region fits 2 rows of 6-line cards.
	g := NewCardGrid(12, 96, 12, 0, 0)
	if g.VisibleRows != 2 {
		t.Fatalf("VisibleRows = %d, want 2", g.VisibleRows)
	}

	g = g.EnsureVisible(11) // last row
	if g.ScrollRow != 2 {
		t.Fatalf("ScrollRow = %d after scrolling to the end, want 2", g.ScrollRow)
	}

	g = g.EnsureVisible(0)
	if g.ScrollRow != 0 {
		t.Fatalf("ScrollRow = %d after scrolling back, want 0", g.ScrollRow)
	}
}

func TestCardGrid_VisibleRange(t *testing.T) {
	g := NewCardGrid(8, 96, 12, 0, 0) // 3 cols, 2 visible rows
	g = g.EnsureVisible(7)

	from, to := g.VisibleRange()
	if from != 3 || to != 8 {
		t.Fatalf("VisibleRange = [%d, %d), want [3, 8)", from, to)
	}
}

func TestCardGrid_IndexAt(t *testing.T) {
	g := NewCardGrid(6, 96, 30, 2, 5) // 3 cols, card outer 30x6, gap 1

	tests := []struct {
		name   string
		x, y   int
		want   int
		wantOK bool
	}{
		{"first card corner", 2, 5, 0, true},
		{"inside first card", 10, 8, 0, true},
		{"second card", 33, 5, 1, true},
		{"gap between cards", 32, 5, 0, false},
		{"second row", 2, 11, 3, true},
		{"left of grid", 1, 5, 0, false},
		{"above grid", 2, 4, 0, false},
		{"past last column", 95, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.IndexAt(tt.x, tt.y)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Fatalf("IndexAt(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
