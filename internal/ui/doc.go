// Package ui is the eventscout terminal interface, built on Bubble Tea.
//
// # Layout
//
// The screen stacks a header (phase, backend health, theme), the search form,
// and a body holding the results table and the event detail panel. On wide
// terminals results and detail sit side by side; below LayoutCompactWidth
// they stack. The log view (L) and the help overlay (?) replace the body.
//
// # Pipeline
//
// A submit runs through search.Orchestrator one step per message:
//
//  1. submitSearch clears every panel, validates, and issues the location
//     command. A constraint violation focuses the field and stops there.
//  2. locationResolvedMsg issues the backend query.
//  3. searchDoneMsg renders the list, the "No Results" placeholder, or an
//     inline error.
//
// Enter on a row calls showDetail, which fetches the event and builds the
// venue disclosure. Expanding the disclosure fetches the venue every time.
//
// # Stale responses
//
// Model keeps one generation counter each for searches, details and venues.
// Every command captures the counter when issued and the matching handler
// ignores a message whose generation is no longer current. Starting a search
// moves all three; opening a detail or rendering a list moves detail and
// venue; collapsing the disclosure moves venue.
//
// # Files
//
//   - app.go: Model, Options, Update loop and Run
//   - pipeline.go: search, detail and venue flows
//   - panels.go: render surfaces and their reset
//   - form.go: criteria form
//   - input.go: key handling and focus ring
//   - results.go, detail.go, view.go, layout.go: rendering
//   - logs.go, help.go: overlays
//   - theme.go, style_helpers.go, strings.go, links.go: presentation helpers
package ui
