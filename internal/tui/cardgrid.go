package tui

import "github.com/Dorantes98/movie-info-search/internal/tui/view"

// Card geometry. The border adds one line/column on each side, and
// rows are separated by a one-column gap strip.
const (
	cardBorderLines = 2
	cardGapCols     = 1
	minCardWidth    = 14
)

// cardOuterHeight is the full height of a rendered card in lines.
const cardOuterHeight = view.CardContentLines + cardBorderLines

// CardGrid lays result cards out in rows and maps between card
// indexes, grid cells, and screen coordinates. It is rebuilt on every
// resize and result change, so all fields describe the current render.
type CardGrid struct {
	Count     int // number of cards
	Cols      int // cards per row
	CardWidth int // lipgloss content width per card

	// Screen-space origin of the first card's top-left cell, used for
	// mouse hit-testing.
	OriginX int
	OriginY int

	ScrollRow   int // first visible row
	VisibleRows int
}

// NewCardGrid computes a grid for count cards inside a results region
// of innerW columns and resultsH lines, whose top-left cell sits at
// (originX, originY) in screen space.
func NewCardGrid(count, innerW, resultsH, originX, originY int) CardGrid {
	cardWidth := defaultCardWidth
	outerW := cardWidth + cardBorderLines

	cols := (innerW + cardGapCols) / (outerW + cardGapCols)
	if cols < 1 {
		// Narrow terminal: a single shrunken column.
		cols = 1
		cardWidth = innerW - cardBorderLines
		if cardWidth < minCardWidth {
			cardWidth = minCardWidth
		}
	}

	visible := resultsH / cardOuterHeight
	if visible < 1 {
		visible = 1
	}

	return CardGrid{
		Count:       count,
		Cols:        cols,
		CardWidth:   cardWidth,
		OriginX:     originX,
		OriginY:     originY,
		VisibleRows: visible,
	}
}

// Rows returns the number of card rows.
func (g CardGrid) Rows() int {
	if g.Count <= 0 || g.Cols <= 0 {
		return 0
	}
	return (g.Count + g.Cols - 1) / g.Cols
}

// RowCol returns the grid cell of card i.
func (g CardGrid) RowCol(i int) (row, col int) {
	if g.Cols <= 0 {
		return 0, 0
	}
	return i / g.Cols, i % g.Cols
}

// Clamp bounds a card index to the valid range.
func (g CardGrid) Clamp(i int) int {
	if i < 0 || g.Count == 0 {
		return 0
	}
	if i >= g.Count {
		return g.Count - 1
	}
	return i
}

// EnsureVisible scrolls the grid so the row holding card i is shown,
// returning the updated grid.
func (g CardGrid) EnsureVisible(i int) CardGrid {
	row, _ := g.RowCol(g.Clamp(i))
	if row < g.ScrollRow {
		g.ScrollRow = row
	}
	if row >= g.ScrollRow+g.VisibleRows {
		g.ScrollRow = row - g.VisibleRows + 1
	}
	maxScroll := g.Rows() - g.VisibleRows
	if maxScroll < 0 {
		maxScroll = 0
	}
	if g.ScrollRow > maxScroll {
		g.ScrollRow = maxScroll
	}
	if g.ScrollRow < 0 {
		g.ScrollRow = 0
	}
	return g
}

// VisibleRange returns the half-open card index range currently shown.
func (g CardGrid) VisibleRange() (from, to int) {
	if g.Count == 0 || g.Cols <= 0 {
		return 0, 0
	}
	from = g.ScrollRow * g.Cols
	to = from + g.VisibleRows*g.Cols
	if to > g.Count {
		to = g.Count
	}
	if from > g.Count {
		from = g.Count
	}
	return from, to
}

// IndexAt maps a screen cell to the card drawn there. The second
// return is false for clicks on gaps or outside the grid.
func (g CardGrid) IndexAt(x, y int) (int, bool) {
	if g.Count == 0 || g.Cols <= 0 {
		return 0, false
	}

	relX := x - g.OriginX
	relY := y - g.OriginY
	if relX < 0 || relY < 0 {
		return 0, false
	}

	outerW := g.CardWidth + cardBorderLines
	col := relX / (outerW + cardGapCols)
	if col >= g.Cols {
		return 0, false
	}
	if relX-col*(outerW+cardGapCols) >= outerW {
		return 0, false // gap strip between cards
	}

	row := g.ScrollRow + relY/cardOuterHeight
	if row-g.ScrollRow >= g.VisibleRows {
		return 0, false
	}

	idx := row*g.Cols + col
	if idx >= g.Count {
		return 0, false
	}
	return idx, true
}
