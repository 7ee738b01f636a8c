package ui

import (
	"github.com/five82/eventscout/internal/events"
)

const noResultsText = "No Results"

// resultsPanel holds the rendered result list, or a single message line in
// place of the table.
type resultsPanel struct {
	visible bool
	rows    []events.Summary
	cursor  int
	message string
	isError bool
}

// render shows one row per summary, or the "No Results" placeholder.
func (p *resultsPanel) render(list []events.Summary) {
	*p = resultsPanel{visible: true}
	if len(list) == 0 {
		p.message = noResultsText
		return
	}
	p.rows = list
}

// showError replaces the table with an inline error line.
func (p *resultsPanel) showError(text string) {
	*p = resultsPanel{visible: true, message: text, isError: true}
}

func (p *resultsPanel) selected() (events.Summary, bool) {
	if p == nil || p.cursor < 0 || p.cursor >= len(p.rows) {
		return events.Summary{}, false
	}
	return p.rows[p.cursor], true
}

func (p *resultsPanel) move(delta int) {
	if len(p.rows) == 0 {
		return
	}
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.rows) {
		p.cursor = len(p.rows) - 1
	}
}

type detailPanel struct {
	visible bool
	loading bool
	err     string
	detail  *events.Detail
}

type venuePanel struct {
	visible bool
	loading bool
	err     string
	venue   *events.Venue
}

// disclosure is the expandable venue control under an event detail. It
// carries the venue name it will fetch when expanded.
type disclosure struct {
	venueName string
	expanded  bool
}

// panels is every render surface of the pipeline. Any of them may be nil.
type panels struct {
	results    *resultsPanel
	detail     *detailPanel
	venue      *venuePanel
	disclosure *disclosure
}

func newPanels() panels {
	return panels{
		results: &resultsPanel{},
		detail:  &detailPanel{},
		venue:   &venuePanel{},
	}
}

// reset clears and hides every surface and drops the disclosure control.
// Missing surfaces are skipped.
func (p *panels) reset() {
	if p == nil {
		return
	}
	if p.results != nil {
		*p.results = resultsPanel{}
	}
	p.resetDetail()
}

// resetDetail clears the detail and venue surfaces only.
func (p *panels) resetDetail() {
	if p == nil {
		return
	}
	if p.detail != nil {
		*p.detail = detailPanel{}
	}
	p.collapseVenue()
	p.disclosure = nil
}

func (p *panels) collapseVenue() {
	if p.venue != nil {
		*p.venue = venuePanel{}
	}
	if p.disclosure != nil {
		p.disclosure.expanded = false
	}
}

// showResults renders a list. A new list always supersedes an open detail.
func (p *panels) showResults(list []events.Summary) {
	if p.results == nil {
		p.results = &resultsPanel{}
	}
	p.results.render(list)
	p.resetDetail()
}

func (p *panels) detailLoaded() (events.Detail, bool) {
	if p.detail == nil || p.detail.detail == nil {
		return events.Detail{}, false
	}
	return *p.detail.detail, true
}
