package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/eventscout/internal/events"
)

// link renders text as an OSC 8 hyperlink to url. With hyperlinks turned off
// the url is printed after the text instead.
func (m Model) link(text, url string, style lipgloss.Style) string {
	if url == "" {
		return style.Render(text)
	}
	if !m.cfg.Hyperlinks {
		return style.Render(text) + " " + style.Faint(true).Render(url)
	}
	return termenv.Hyperlink(url, style.Underline(true).Render(text))
}

// artistLine joins the artist links, or the plain names when hyperlinks are
// off.
func (m Model) artistLine(d events.Detail, style, sep lipgloss.Style) string {
	if !m.cfg.Hyperlinks {
		return style.Render(d.ArtistsText())
	}
	out := ""
	for i, a := range d.Artists {
		if i > 0 {
			out += sep.Render(events.LinkSeparator)
		}
		out += m.link(a.Name, a.URL, style)
	}
	return out
}
