// Package state holds the backend health snapshot shared between the
// background poller and the UI.
//
// The poller goroutine writes through Store.Update; the UI reads through
// Store.Snapshot on every tick. Snapshot returns a copy, so the UI never
// observes a half-written update. A failed poll keeps the last known health
// and increments ConsecutiveFailures; IsOffline flips after two in a row.
package state
