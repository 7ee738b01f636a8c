package ui

import (
	"context"
	"net/url"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/config"
	"github.com/five82/eventscout/internal/geo"
	"github.com/five82/eventscout/internal/search"
)

// fakeAPI is an in-memory backend.
type fakeAPI struct {
	mu sync.Mutex

	result    backend.SearchResult
	searchErr error
	queries   []url.Values

	events    map[string]backend.Event
	detailErr error

	venue      backend.Venue
	venueErr   error
	venueCalls []string
}

var _ backend.API = (*fakeAPI)(nil)

func (f *fakeAPI) SearchEvents(_ context.Context, q url.Values) (backend.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	return f.result, f.searchErr
}

func (f *fakeAPI) EventDetails(_ context.Context, id string) (backend.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.detailErr != nil {
		return backend.Event{}, f.detailErr
	}
	ev, ok := f.events[id]
	if !ok {
		return backend.Event{}, backend.ErrNotFound
	}
	return ev, nil
}

func (f *fakeAPI) VenueDetails(_ context.Context, keyword string) (backend.Venue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.venueCalls = append(f.venueCalls, keyword)
	return f.venue, f.venueErr
}

func (f *fakeAPI) Health(context.Context) (backend.Health, error) {
	return backend.Health{Status: "ok"}, nil
}

func jazzEvent(id, name, status string) backend.Event {
	ev := backend.Event{
		ID:   id,
		Name: name,
		URL:  "https://www.ticketmaster.com/event/" + id,
		Dates: backend.Dates{
			Start:  backend.EventDate{LocalDate: "2026-11-02", LocalTime: "19:30:00"},
			Status: backend.Status{Code: status},
		},
		Classifications: []backend.Classification{{
			Segment: backend.NamedRef{Name: "Music"},
			Genre:   backend.NamedRef{Name: "Jazz"},
		}},
	}
	ev.Embedded.Venues = []backend.Venue{{Name: "Blue Note"}}
	ev.Embedded.Attractions = []backend.Attraction{{Name: "Kamasi Washington"}}
	return ev
}

// newTestModel returns a sized model wired to api with no location
// collaborators and saving disabled.
func newTestModel(t *testing.T, api *fakeAPI) Model {
	t.Helper()
	cfg := config.Default()
	cfg.LogPath = ""
	logger := zaptest.NewLogger(t)
	orch := search.NewOrchestrator(
		geo.NewResolver(nil, nil, logger),
		search.NewBuilder(cfg.Segments),
		api,
		logger,
	)
	m := New(Options{Backend: api, Orchestrator: orch, Config: &cfg, Logger: logger})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

// step runs cmd synchronously and feeds its message back into the model.
func step(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	next, out := m.Update(cmd())
	return next.(Model), out
}

// searchFor fills the form and runs the whole search pipeline.
func searchFor(t *testing.T, m Model, keyword string) Model {
	t.Helper()
	m.form.keyword.SetValue(keyword)
	cmd := m.submitSearch()
	m, cmd = step(t, m, cmd)
	m, _ = step(t, m, cmd)
	return m
}
