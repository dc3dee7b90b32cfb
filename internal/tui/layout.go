package tui

// Fixed line budgets for the chrome around the results region.
const (
	headerLines = 1
	searchLines = 3 // rounded border + one input line
	footerLines = 2 // status + help
)

// Layout holds the line/column budget computed from the terminal size.
type Layout struct {
	InnerW   int
	InnerH   int
	ResultsH int

	// Screen-space origin of the results region, for mouse hit-testing.
	ResultsLeft int
	ResultsTop  int
}

// buildLayout derives the layout from the current terminal size and
// the app frame padding.
func (m *Model) buildLayout() Layout {
	frameW, frameH := m.styles.AppStyle.GetFrameSize()
	innerW := m.width - frameW
	innerH := m.height - frameH
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	resultsH := innerH - headerLines - searchLines - footerLines
	if resultsH < 0 {
		resultsH = 0
	}

	padLeft := m.styles.AppStyle.GetPaddingLeft()
	padTop := m.styles.AppStyle.GetPaddingTop()

	return Layout{
		InnerW:      innerW,
		InnerH:      innerH,
		ResultsH:    resultsH,
		ResultsLeft: padLeft,
		ResultsTop:  padTop + headerLines + searchLines,
	}
}
