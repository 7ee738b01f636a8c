// Package events projects raw backend payloads into the display records the
// UI renders: one Summary per result row, a Detail for the selected event,
// and a Venue for the lazily loaded venue section. Missing nested fields turn
// into empty strings; nothing here returns an error.
package events

import (
	"strings"

	"github.com/five82/eventscout/internal/backend"
)

// Summary is one row of the results table.
type Summary struct {
	ID       string
	Name     string
	Date     string
	Time     string
	ImageURL string
	Genre    string
	Venue    string
}

// Summarize projects a search hit.
func Summarize(e backend.Event) Summary {
	s := Summary{
		ID:   e.ID,
		Name: e.Name,
		Date: e.Dates.Start.LocalDate,
		Time: e.Dates.Start.LocalTime,
	}
	if len(e.Images) > 0 {
		s.ImageURL = e.Images[0].URL
	}
	if len(e.Classifications) > 0 {
		s.Genre = e.Classifications[0].Segment.Name
	}
	if len(e.Embedded.Venues) > 0 {
		s.Venue = e.Embedded.Venues[0].Name
	}
	return s
}

// Summaries projects a whole result list, preserving order.
func Summaries(list []backend.Event) []Summary {
	out := make([]Summary, 0, len(list))
	for _, e := range list {
		out = append(out, Summarize(e))
	}
	return out
}

// When joins date and time with a space.
func (s Summary) When() string {
	return joinWhen(s.Date, s.Time)
}

func (s Summary) HasIcon() bool {
	return s.ImageURL != ""
}

func joinWhen(date, time string) string {
	return strings.TrimSpace(date + " " + time)
}
