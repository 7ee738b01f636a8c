package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/events"
	"github.com/five82/eventscout/internal/search"
)

func TestSearchBuildsQueryAndRendersRows(t *testing.T) {
	api := &fakeAPI{result: backend.SearchResult{
		Events: []backend.Event{jazzEvent("e1", "Jazz Night", "onsale")},
		Shape:  backend.ShapeProviderWrapped,
	}}
	m := newTestModel(t, api)

	m.form.keyword.SetValue("jazz")
	m.form.distance.SetValue("25")
	for i, c := range m.form.categories {
		if c == "Music" {
			m.form.category = i
		}
	}

	cmd := m.submitSearch()
	require.Equal(t, search.PhaseResolving, m.phase)

	m, cmd = step(t, m, cmd)
	require.Equal(t, search.PhaseQuerying, m.phase)
	assert.False(t, m.hasSearchLocation)

	m, _ = step(t, m, cmd)
	require.Equal(t, search.PhaseRendered, m.phase)
	require.Len(t, api.queries, 1)
	assert.Equal(t, "distance=25&keyword=jazz&segmentId=KZFzniwnSyZfZ7v7nJ", api.queries[0].Encode())

	r := m.panels.results
	require.True(t, r.visible)
	require.Len(t, r.rows, 1)
	assert.Equal(t, "Jazz Night", r.rows[0].Name)
	assert.Equal(t, "2026-11-02 19:30:00", r.rows[0].When())
	assert.Equal(t, "Music", r.rows[0].Genre)
	assert.Equal(t, "Blue Note", r.rows[0].Venue)
	assert.Equal(t, focusResults, m.focus)
	assert.Contains(t, m.View(), "Jazz Night")
}

func TestValidationAbortsBeforeAnyRequest(t *testing.T) {
	api := &fakeAPI{}
	m := newTestModel(t, api)
	m.focus = focusResults

	m.submitSearch()

	assert.Equal(t, search.PhaseAborted, m.phase)
	assert.Equal(t, "Please fill out this field.", m.form.violation)
	assert.Equal(t, focusForm, m.focus)
	assert.Equal(t, fieldKeyword, m.form.field)
	assert.Empty(t, api.queries)
	assert.False(t, m.panels.results.visible)
}

func TestZeroCountPageShowsNoResultsAndClearsDetail(t *testing.T) {
	api := &fakeAPI{
		result: backend.SearchResult{Events: []backend.Event{jazzEvent("e1", "Jazz Night", "onsale")}},
		events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "onsale")},
	}
	m := newTestModel(t, api)
	m = searchFor(t, m, "jazz")
	m, _ = step(t, m, m.showDetail("e1"))
	require.True(t, m.panels.detail.visible)

	api.result = backend.SearchResult{Events: []backend.Event{}, Shape: backend.ShapeEmptyPage}
	m = searchFor(t, m, "nothing")

	assert.Equal(t, search.PhaseRendered, m.phase)
	assert.True(t, m.panels.results.visible)
	assert.Equal(t, noResultsText, m.panels.results.message)
	assert.Empty(t, m.panels.results.rows)
	assert.False(t, m.panels.detail.visible)
	assert.Nil(t, m.panels.detail.detail)
	assert.Nil(t, m.panels.disclosure)
	assert.Contains(t, m.View(), noResultsText)
}

func TestRenderEmptyListHidesOpenDetail(t *testing.T) {
	api := &fakeAPI{
		events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "onsale")},
		venue:  backend.Venue{Name: "Blue Note"},
	}
	m := newTestModel(t, api)
	m, _ = step(t, m, m.showDetail("e1"))
	m, _ = step(t, m, m.toggleVenue())
	require.True(t, m.panels.venue.visible)

	m.panels.reset()
	m.applyResults(nil)

	assert.False(t, m.panels.detail.visible)
	assert.Nil(t, m.panels.detail.detail)
	assert.False(t, m.panels.venue.visible)
	assert.Nil(t, m.panels.venue.venue)
	assert.Nil(t, m.panels.disclosure)
}

func TestSearchFailureShowsInlineError(t *testing.T) {
	api := &fakeAPI{searchErr: &backend.HTTPError{
		Endpoint: "/api/eventSearch", StatusCode: 502, Status: "Bad Gateway", Body: "upstream down",
	}}
	m := newTestModel(t, api)
	m = searchFor(t, m, "jazz")

	assert.Equal(t, search.PhaseFailed, m.phase)
	assert.True(t, m.panels.results.isError)
	assert.Equal(t, "Search failed: 502 Bad Gateway: upstream down", m.panels.results.message)
}

func TestMalformedSearchBodyShowsInlineError(t *testing.T) {
	api := &fakeAPI{searchErr: backend.ErrMalformedPayload}
	m := newTestModel(t, api)
	m = searchFor(t, m, "jazz")

	assert.Equal(t, search.PhaseFailed, m.phase)
	assert.True(t, m.panels.results.isError)
	assert.Equal(t, "Search failed: backend: response is not a JSON object", m.panels.results.message)
	assert.NotContains(t, m.View(), noResultsText)
}

func TestDetailShowsSeatMapAndImageLinks(t *testing.T) {
	ev := jazzEvent("e1", "Jazz Night", "onsale")
	ev.Seatmap.StaticURL = "https://maps.example/seat.png"
	ev.Images = []backend.Image{{URL: "https://img.example/e1.jpg"}}
	api := &fakeAPI{events: map[string]backend.Event{"e1": ev}}
	m := newTestModel(t, api)
	m.cfg.Hyperlinks = false

	m, _ = step(t, m, m.showDetail("e1"))
	require.NotNil(t, m.panels.detail.detail)

	out := m.renderDetail(100, true)
	assert.Contains(t, out, "View seat map")
	assert.Contains(t, out, "https://maps.example/seat.png")
	assert.Contains(t, out, "View image")
	assert.Contains(t, out, "https://img.example/e1.jpg")
}

func TestDetailShowsStatusBadgeAndLazyDisclosure(t *testing.T) {
	api := &fakeAPI{events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "offsale")}}
	m := newTestModel(t, api)

	cmd := m.showDetail("e1")
	assert.True(t, m.panels.detail.visible)
	assert.True(t, m.panels.detail.loading)

	m, _ = step(t, m, cmd)
	d, ok := m.panels.detailLoaded()
	require.True(t, ok)
	assert.Equal(t, "Off Sale", d.Status.Label)
	assert.Equal(t, events.ColorRed, d.Status.Color)
	assert.Equal(t, focusDetail, m.focus)

	require.NotNil(t, m.panels.disclosure)
	assert.Equal(t, "Blue Note", m.panels.disclosure.venueName)
	assert.False(t, m.panels.disclosure.expanded)
	assert.Empty(t, api.venueCalls, "venue must not load before the disclosure is expanded")
	assert.Contains(t, m.detailViewport.View(), disclosureShow+"Blue Note")
}

func TestDetailErrorIsInline(t *testing.T) {
	api := &fakeAPI{detailErr: &backend.HTTPError{StatusCode: 404, Status: "Not Found"}}
	m := newTestModel(t, api)

	m, _ = step(t, m, m.showDetail("missing"))

	assert.False(t, m.panels.detail.loading)
	assert.Equal(t, "Error loading event details: 404 Not Found", m.panels.detail.err)
	assert.Nil(t, m.panels.disclosure)
}

func TestVenueFailureStaysExpandedWithInlineError(t *testing.T) {
	api := &fakeAPI{
		events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "onsale")},
		venueErr: &backend.HTTPError{
			Endpoint: "/api/venueDetails", StatusCode: 500, Status: "Internal Server Error", Body: "boom",
		},
	}
	m := newTestModel(t, api)
	m, _ = step(t, m, m.showDetail("e1"))
	m, _ = step(t, m, m.toggleVenue())

	assert.Equal(t, []string{"Blue Note"}, api.venueCalls)
	assert.True(t, m.panels.disclosure.expanded)
	assert.True(t, m.panels.venue.visible)
	assert.Contains(t, m.panels.venue.err, "500")
	assert.Contains(t, m.detailViewport.View(), "500")
}

func TestVenueRefetchesOnEveryExpansion(t *testing.T) {
	api := &fakeAPI{
		events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "onsale")},
		venue: backend.Venue{
			Name:       "Blue Note",
			City:       backend.City{Name: "New York"},
			State:      backend.State{Name: "New York", StateCode: "NY"},
			PostalCode: "10012",
		},
	}
	m := newTestModel(t, api)
	m, _ = step(t, m, m.showDetail("e1"))

	m, _ = step(t, m, m.toggleVenue())
	require.NotNil(t, m.panels.venue.venue)
	assert.Equal(t, "New York, NY 10012", m.panels.venue.venue.Locality())

	assert.Nil(t, m.toggleVenue(), "collapsing issues no request")
	assert.False(t, m.panels.venue.visible)
	assert.False(t, m.panels.disclosure.expanded)

	m, _ = step(t, m, m.toggleVenue())
	assert.Len(t, api.venueCalls, 2)
	assert.True(t, m.panels.venue.visible)
}

func TestStaleSearchResultIsDropped(t *testing.T) {
	api := &fakeAPI{result: backend.SearchResult{Events: []backend.Event{jazzEvent("e1", "Jazz Night", "onsale")}}}
	m := newTestModel(t, api)

	m.form.keyword.SetValue("first")
	first := m.submitSearch()
	m.form.keyword.SetValue("second")
	second := m.submitSearch()

	next, cmd := m.Update(first())
	m = next.(Model)
	assert.Nil(t, cmd, "superseded location result must not start a query")
	assert.Empty(t, api.queries)
	assert.Equal(t, search.PhaseResolving, m.phase)

	m, cmd = step(t, m, second)
	m, _ = step(t, m, cmd)
	require.Len(t, api.queries, 1)
	assert.Equal(t, "second", api.queries[0].Get("keyword"))
}

func TestStaleDetailIsDropped(t *testing.T) {
	api := &fakeAPI{events: map[string]backend.Event{
		"e1": jazzEvent("e1", "Jazz Night", "onsale"),
		"e2": jazzEvent("e2", "Late Set", "onsale"),
	}}
	m := newTestModel(t, api)

	older := m.showDetail("e1")
	newer := m.showDetail("e2")
	m, _ = step(t, m, newer)
	m, _ = step(t, m, older)

	d, ok := m.panels.detailLoaded()
	require.True(t, ok)
	assert.Equal(t, "Late Set", d.Title)
}

func TestCollapseDiscardsInFlightVenue(t *testing.T) {
	api := &fakeAPI{
		events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "onsale")},
		venue:  backend.Venue{Name: "Blue Note"},
	}
	m := newTestModel(t, api)
	m, _ = step(t, m, m.showDetail("e1"))

	pending := m.toggleVenue()
	m.toggleVenue()
	m, _ = step(t, m, pending)

	assert.False(t, m.panels.venue.visible)
	assert.Nil(t, m.panels.venue.venue)
}

func TestNewSearchDropsLateDetail(t *testing.T) {
	api := &fakeAPI{
		result: backend.SearchResult{Events: []backend.Event{}},
		events: map[string]backend.Event{"e1": jazzEvent("e1", "Jazz Night", "onsale")},
	}
	m := newTestModel(t, api)

	late := m.showDetail("e1")
	m = searchFor(t, m, "jazz")
	m, _ = step(t, m, late)

	assert.False(t, m.panels.detail.visible)
	assert.Nil(t, m.panels.detail.detail)
}
