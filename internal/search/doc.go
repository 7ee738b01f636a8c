// Package search holds the search pipeline that sits between the form and
// the results table.
//
// Criteria is validated with the form's constraints, the location is resolved,
// Builder turns both into backend query parameters, and the backend is
// queried. Orchestrator exposes these as separate steps (Begin, Resolve,
// Query) and tracks the Phase of each search:
//
//	Idle → Validating → Resolving → Querying → Rendered
//	Idle → Validating → Aborted
//	Idle → Validating → Resolving → Querying → Failed
//
// The category to segment id table is injected into Builder, never read from
// package state.
package search
