package ui

import (
	"testing"

	"github.com/five82/eventscout/internal/events"
)

func TestPanelsResetIsSafeWithMissingSurfaces(t *testing.T) {
	var nilPanels *panels
	nilPanels.reset()

	var empty panels
	empty.reset()

	partial := panels{results: &resultsPanel{visible: true}}
	partial.reset()
	if partial.results.visible {
		t.Fatal("results should be hidden after reset")
	}
}

func TestPanelsResetClearsEverything(t *testing.T) {
	p := newPanels()
	p.results.render([]events.Summary{{ID: "e1", Name: "Jazz Night"}})
	p.detail.visible = true
	p.detail.detail = &events.Detail{Title: "Jazz Night"}
	p.venue.visible = true
	p.venue.venue = &events.Venue{Name: "Blue Note"}
	p.disclosure = &disclosure{venueName: "Blue Note", expanded: true}

	p.reset()

	if p.results.visible || len(p.results.rows) != 0 {
		t.Fatalf("results not cleared: %+v", *p.results)
	}
	if p.detail.visible || p.detail.detail != nil {
		t.Fatalf("detail not cleared: %+v", *p.detail)
	}
	if p.venue.visible || p.venue.venue != nil {
		t.Fatalf("venue not cleared: %+v", *p.venue)
	}
	if p.disclosure != nil {
		t.Fatal("disclosure should be removed, not just collapsed")
	}
}

func TestShowResultsEmptyListPlaceholder(t *testing.T) {
	p := newPanels()
	p.detail.visible = true
	p.disclosure = &disclosure{venueName: "Blue Note"}

	p.showResults(nil)

	if !p.results.visible || p.results.message != noResultsText {
		t.Fatalf("results = %+v, want visible No Results", *p.results)
	}
	if p.detail.visible || p.disclosure != nil {
		t.Fatal("rendering a list must clear the open detail")
	}
}

func TestResultsCursor(t *testing.T) {
	var r resultsPanel
	r.render([]events.Summary{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	r.move(1)
	r.move(5)
	if got, _ := r.selected(); got.ID != "c" {
		t.Fatalf("cursor at %q, want c", got.ID)
	}
	r.move(-10)
	if got, _ := r.selected(); got.ID != "a" {
		t.Fatalf("cursor at %q, want a", got.ID)
	}

	r.showError("Search failed: boom")
	if _, ok := r.selected(); ok {
		t.Fatal("error state has no selectable row")
	}
}
