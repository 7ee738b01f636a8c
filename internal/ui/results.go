package ui

import (
	"strings"

	"github.com/five82/eventscout/internal/events"
	"github.com/five82/eventscout/internal/search"
)

const (
	colDateWidth  = 19
	colIconWidth  = 1
	colGenreWidth = 14
	iconGlyph     = "◆"
)

type resultColumns struct {
	date, icon, event, genre, venue int
}

func resultLayout(width int) resultColumns {
	c := resultColumns{date: colDateWidth, icon: colIconWidth}
	gaps := 3
	if width >= LayoutWideWidth {
		c.genre = colGenreWidth
		gaps = 4
	}
	rest := maxInt(width-c.date-c.icon-c.genre-gaps, 2)
	c.event = rest * 60 / 100
	c.venue = rest - c.event
	return c
}

func (c resultColumns) row(date, icon, event, genre, venue string) string {
	cells := []string{fit(date, c.date), fit(icon, c.icon), fit(event, c.event)}
	if c.genre > 0 {
		cells = append(cells, fit(genre, c.genre))
	}
	cells = append(cells, fit(venue, c.venue))
	return strings.Join(cells, " ")
}

// renderResults draws the results table, or the placeholder that stands in
// for it.
func (m Model) renderResults(width, height int, focused bool) string {
	styles, bg := m.panelStyles(focused)
	r := m.panels.results
	if r == nil || !r.visible {
		switch {
		case m.phase == search.PhaseResolving:
			return placeholder("Resolving location…", width, styles, bg)
		case m.phase == search.PhaseQuerying:
			return placeholder("Searching…", width, styles, bg)
		case m.phase == search.PhaseAborted:
			return placeholder("Fix the highlighted field and press enter to search.", width, styles, bg)
		default:
			return placeholder("Type a keyword and press enter to search.", width, styles, bg)
		}
	}
	if r.message != "" {
		if r.isError {
			return dangerBlock(r.message, width, styles, bg)
		}
		return placeholder(r.message, width, styles, bg)
	}

	cols := resultLayout(width)
	var b strings.Builder
	b.WriteString(bg.FillLine(bg.Render(cols.row("Date", "", "Event", "Genre", "Venue"), styles.MutedText.Bold(true)), width))

	visible := maxInt(height-1, 1)
	start := 0
	if r.cursor >= visible {
		start = r.cursor - visible + 1
	}
	end := start + visible
	if end > len(r.rows) {
		end = len(r.rows)
	}
	for i := start; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.resultRow(r.rows[i], cols, width, i == r.cursor, focused, styles, bg))
	}
	return b.String()
}

func (m Model) resultRow(s events.Summary, cols resultColumns, width int, current, focused bool, styles Styles, bg BgStyle) string {
	icon := ""
	if s.HasIcon() {
		icon = iconGlyph
	}
	text := cols.row(s.When(), icon, s.Name, s.Genre, s.Venue)
	switch {
	case current && focused:
		return styles.Selected.Width(width).Render(text)
	case current:
		return bg.FillLine(bg.Render(text, styles.AccentText), width)
	default:
		return bg.FillLine(bg.Render(text, styles.Text), width)
	}
}
