package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/events"
	"github.com/five82/eventscout/internal/search"
)

// submitSearch starts a new search cycle. Prior panels are cleared before
// anything else, and every generation moves on so late results from earlier
// requests are dropped. The returned command resolves the location.
func (m *Model) submitSearch() tea.Cmd {
	m.panels.reset()
	m.gens.search++
	m.gens.detail++
	m.gens.venue++
	m.flash = flashMsg{}
	m.form.violation = ""
	m.hasSearchLocation = false

	if m.orch == nil {
		m.phase = search.PhaseFailed
		m.panels.results.showError("Search failed: no backend configured")
		return nil
	}

	s, err := m.orch.Begin(m.form.criteria(m.cfg.DefaultDistance))
	m.phase = s.Phase
	if err != nil {
		var verr *search.ValidationError
		if errors.As(err, &verr) {
			m.focus = focusForm
			return m.form.showViolation(verr)
		}
		m.form.violation = err.Error()
		return nil
	}

	m.prefs = m.form.prefs(m.prefs)
	m.savePrefs()
	return resolveLocationCmd(m.ctx, m.orch, m.gens.search, s)
}

func (m *Model) handleLocationResolved(msg locationResolvedMsg) tea.Cmd {
	if msg.gen != m.gens.search {
		return nil
	}
	m.phase = msg.search.Phase
	m.searchLocation = msg.search.Location
	m.hasSearchLocation = msg.search.HasLocation
	return querySearchCmd(m.ctx, m.orch, msg.gen, msg.search)
}

func (m *Model) handleSearchDone(msg searchDoneMsg) {
	if msg.gen != m.gens.search {
		return
	}
	out := msg.outcome
	m.phase = out.Phase
	if out.Phase == search.PhaseFailed {
		m.panels.results.showError(out.ErrorText())
		m.dropDetail()
		return
	}
	m.applyResults(out.Events)
}

// applyResults shows a new list and drops whatever detail was open.
func (m *Model) applyResults(list []events.Summary) {
	m.panels.showResults(list)
	m.gens.detail++
	m.gens.venue++
	switch {
	case len(list) > 0:
		m.form.blur()
		m.focus = focusResults
	case m.focus == focusDetail:
		m.focus = focusResults
	}
}

func (m *Model) dropDetail() {
	m.panels.resetDetail()
	m.gens.detail++
	m.gens.venue++
	if m.focus == focusDetail {
		m.focus = focusResults
	}
}

// showDetail clears the detail and venue panels, shows the loading
// placeholder and fetches the event.
func (m *Model) showDetail(id string) tea.Cmd {
	m.panels.resetDetail()
	m.gens.detail++
	m.gens.venue++
	if m.panels.detail == nil {
		m.panels.detail = &detailPanel{}
	}
	m.panels.detail.visible = true
	m.panels.detail.loading = true
	if m.api == nil {
		m.panels.detail.loading = false
		m.panels.detail.err = "Error loading event details: no backend configured"
		return nil
	}
	return fetchDetailCmd(m.ctx, m.api, m.gens.detail, id)
}

func (m *Model) handleDetailLoaded(msg detailLoadedMsg) {
	if msg.gen != m.gens.detail || m.panels.detail == nil {
		return
	}
	m.panels.detail.loading = false
	if msg.err != nil {
		m.logger.Warn("event details failed", zap.String("event_id", msg.id), zap.Error(msg.err))
		m.panels.detail.err = "Error loading event details: " + errorText(msg.err)
		return
	}
	d := events.NewDetail(msg.event)
	m.panels.detail.detail = &d
	m.panels.disclosure = nil
	if d.VenueName != "" {
		m.panels.disclosure = &disclosure{venueName: d.VenueName}
	}
	m.form.blur()
	m.focus = focusDetail
	m.detailViewport.GotoTop()
}

// toggleVenue expands or collapses the venue disclosure. Every expansion
// fetches again; collapsing discards any request still in flight.
func (m *Model) toggleVenue() tea.Cmd {
	d := m.panels.disclosure
	if d == nil {
		return nil
	}
	if d.expanded {
		m.panels.collapseVenue()
		m.gens.venue++
		return nil
	}
	d.expanded = true
	return m.showVenue(d.venueName)
}

func (m *Model) showVenue(name string) tea.Cmd {
	m.gens.venue++
	if m.panels.venue == nil {
		m.panels.venue = &venuePanel{}
	}
	*m.panels.venue = venuePanel{visible: true, loading: true}
	if m.api == nil {
		m.panels.venue.loading = false
		m.panels.venue.err = "Error loading venue details: no backend configured"
		return nil
	}
	return fetchVenueCmd(m.ctx, m.api, m.gens.venue, name)
}

func (m *Model) handleVenueLoaded(msg venueLoadedMsg) {
	if msg.gen != m.gens.venue || m.panels.venue == nil {
		return
	}
	m.panels.venue.loading = false
	if msg.err != nil {
		m.logger.Warn("venue details failed", zap.String("venue", msg.name), zap.Error(msg.err))
		m.panels.venue.err = "Error loading venue details: " + errorText(msg.err)
		return
	}
	v := events.NewVenue(msg.venue)
	m.panels.venue.venue = &v
}

// errorText prefers the status line and body of a backend HTTP error.
func errorText(err error) string {
	var httpErr *backend.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Summary()
	}
	return err.Error()
}
