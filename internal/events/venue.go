package events

import (
	"net/url"
	"strings"

	"github.com/five82/eventscout/internal/backend"
	"github.com/five82/eventscout/internal/geo"
)

const (
	mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="
	textSearchURL = "https://www.ticketmaster.com/search?q="
)

// Venue is the venue section shown under an event detail.
type Venue struct {
	Name          string
	AddressLine   string
	City          string
	State         string
	PostalCode    string
	LogoURL       string
	MapsURL       string
	MoreEventsURL string
	Location      geo.Location
	HasLocation   bool
}

// NewVenue derives the display fields of a venue payload.
func NewVenue(v backend.Venue) Venue {
	out := Venue{
		Name:        strings.TrimSpace(v.Name),
		AddressLine: joinNonEmpty(", ", v.Address.Line1, v.Address.Line2),
		City:        strings.TrimSpace(v.City.Name),
		State:       strings.TrimSpace(v.State.StateCode),
		PostalCode:  strings.TrimSpace(v.PostalCode),
	}
	if out.State == "" {
		out.State = strings.TrimSpace(v.State.Name)
	}
	if len(v.Images) > 0 {
		out.LogoURL = v.Images[0].URL
	}
	out.Location, out.HasLocation = geo.ParseCoords(v.Location.Latitude, v.Location.Longitude)

	out.MapsURL = mapsSearchURL + url.QueryEscape(joinNonEmpty(", ", out.Name, out.FullAddress()))

	switch {
	case v.URL != "":
		out.MoreEventsURL = v.URL
	case v.Links.Self.Href != "":
		out.MoreEventsURL = v.Links.Self.Href
	default:
		out.MoreEventsURL = textSearchURL + url.QueryEscape(out.Name)
	}
	return out
}

// Locality renders "City, ST 12345", skipping absent parts.
func (v Venue) Locality() string {
	return joinNonEmpty(" ", joinNonEmpty(", ", v.City, v.State), v.PostalCode)
}

// FullAddress is the street line followed by the locality.
func (v Venue) FullAddress() string {
	return joinNonEmpty(", ", v.AddressLine, v.Locality())
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
