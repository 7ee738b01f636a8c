package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	labelWidth       = 13
	disclosureShow   = "▸ Show venue details: "
	disclosureHide   = "▾ Hide venue details: "
	venueDividerRune = "│"
)

// syncDetailViewport sizes the detail viewport to the current layout and
// re-renders its content.
func (m *Model) syncDetailViewport() {
	if !m.ready || m.panels.detail == nil || !m.panels.detail.visible {
		return
	}
	d := m.layout()
	m.detailViewport.Width = maxInt(d.detailW-2, 1)
	m.detailViewport.Height = maxInt(d.detailH-2, 1)
	m.detailViewport.SetContent(m.renderDetail(m.detailViewport.Width, m.focus == focusDetail))
}

// renderDetail draws the detail panel body: loading line, error line, or the
// event fields followed by the venue disclosure and section.
func (m Model) renderDetail(width int, focused bool) string {
	styles, bg := m.panelStyles(focused)
	p := m.panels.detail
	switch {
	case p == nil:
		return ""
	case p.loading:
		return bg.FillLine(m.spinner.View()+bg.Render(" Loading…", styles.MutedText), width)
	case p.err != "":
		return dangerBlock(p.err, width, styles, bg)
	case p.detail == nil:
		return ""
	}
	d := *p.detail

	var lines []string
	for _, l := range wrapWords(d.Title, width) {
		lines = append(lines, bg.Render(l, styles.AccentText.Bold(true)))
	}
	lines = append(lines, "")

	field := func(label, value string) {
		if value == "" {
			return
		}
		lines = append(lines, bg.Render(padRight(label, labelWidth), styles.MutedText)+value)
	}
	field("Date", styles.Text.Render(d.When()))
	if len(d.Artists) > 0 {
		field("Artist/Team", m.artistLine(d, styles.Text, styles.FaintText))
	}
	field("Genres", styles.Text.Render(d.GenreLabel()))
	if d.Status.Label != "" {
		field("Status", styles.BadgeStyle(d.Status.Color).Render(d.Status.Label))
	}
	if d.BuyURL != "" {
		field("Buy tickets", m.link("Ticketmaster", d.BuyURL, styles.InfoText))
	}
	if d.SeatMapURL != "" {
		field("Seat map", m.link("View seat map", d.SeatMapURL, styles.InfoText))
	}
	if d.ImageURL != "" {
		field("Image", m.link("View image", d.ImageURL, styles.InfoText))
	}

	if dc := m.panels.disclosure; dc != nil {
		lines = append(lines, "")
		prompt := disclosureShow
		if dc.expanded {
			prompt = disclosureHide
		}
		style := styles.AccentText
		if focused {
			style = styles.Selected
		}
		lines = append(lines, style.Render(prompt+dc.venueName))
		if venue := m.renderVenue(width, styles, bg); venue != "" {
			lines = append(lines, "", venue)
		}
	}

	for i, l := range lines {
		lines[i] = bg.FillLine(l, width)
	}
	return strings.Join(lines, "\n")
}

// renderVenue draws the expanded venue section.
func (m Model) renderVenue(width int, styles Styles, bg BgStyle) string {
	p := m.panels.venue
	switch {
	case p == nil || !p.visible:
		return ""
	case p.loading:
		return m.spinner.View() + bg.Render(" Loading venue…", styles.MutedText)
	case p.err != "":
		return dangerBlock(p.err, width, styles, bg)
	case p.venue == nil:
		return ""
	}
	v := *p.venue

	var header []string
	header = append(header, lipgloss.PlaceHorizontal(width, lipgloss.Center, styles.Text.Bold(true).Render(v.Name)))
	if v.LogoURL != "" {
		header = append(header, lipgloss.PlaceHorizontal(width, lipgloss.Center, m.link("Venue logo", v.LogoURL, styles.InfoText)))
	}

	colW := maxInt((width-3)/2, 1)
	var left []string
	left = append(left, styles.MutedText.Render("Address"))
	for _, l := range []string{v.AddressLine, v.Locality()} {
		if l != "" {
			left = append(left, styles.Text.Render(truncate(l, colW)))
		}
	}
	left = append(left, m.link("Open in Google Maps", v.MapsURL, styles.InfoText))

	right := []string{
		styles.MutedText.Render("Upcoming"),
		m.link("More events at this venue", v.MoreEventsURL, styles.InfoText),
	}

	rows := maxInt(len(left), len(right))
	divider := make([]string, rows)
	for i := range divider {
		divider[i] = bg.Render(" "+venueDividerRune+" ", styles.FaintText)
	}
	columns := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(colW).Render(strings.Join(left, "\n")),
		strings.Join(divider, "\n"),
		lipgloss.NewStyle().Width(colW).Render(strings.Join(right, "\n")),
	)

	out := append(header, "", columns)
	if v.HasLocation && m.hasSearchLocation {
		km := m.searchLocation.DistanceKm(v.Location)
		out = append(out, "", styles.FaintText.Render(fmt.Sprintf("%.1f km from your search location", km)))
	}
	return strings.Join(out, "\n")
}

func dangerBlock(text string, width int, styles Styles, bg BgStyle) string {
	lines := wrapWords(text, width)
	for i, l := range lines {
		lines[i] = bg.FillLine(bg.Render(l, styles.DangerText), width)
	}
	return strings.Join(lines, "\n")
}
