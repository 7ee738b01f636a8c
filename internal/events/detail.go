package events

import (
	"net/url"
	"strings"

	"github.com/five82/eventscout/internal/backend"
)

const (
	searchEngineURL = "https://www.google.com/search?q="
	// LinkSeparator joins artist and genre entries.
	LinkSeparator = " | "
)

// Link is a named, possibly empty, URL.
type Link struct {
	Name string
	URL  string
}

// Detail is the drill-down view of a single event.
type Detail struct {
	ID         string
	Title      string
	Date       string
	Time       string
	Artists    []Link
	Genres     []string
	Status     Badge
	BuyURL     string
	SeatMapURL string
	ImageURL   string
	VenueName  string
}

// NewDetail derives the display fields of an event detail payload.
func NewDetail(e backend.Event) Detail {
	d := Detail{
		ID:         e.ID,
		Title:      e.Name,
		Date:       e.Dates.Start.LocalDate,
		Time:       e.Dates.Start.LocalTime,
		Status:     StatusBadge(e.Dates.Status.Code),
		BuyURL:     e.URL,
		SeatMapURL: e.Seatmap.StaticURL,
		Artists:    artistLinks(e.Embedded.Attractions),
	}
	if len(e.Classifications) > 0 {
		d.Genres = genreParts(e.Classifications[0])
	}
	if len(e.Images) > 0 {
		d.ImageURL = e.Images[0].URL
	}
	if len(e.Embedded.Venues) > 0 {
		d.VenueName = e.Embedded.Venues[0].Name
	}
	return d
}

func (d Detail) When() string {
	return joinWhen(d.Date, d.Time)
}

// GenreLabel joins the genre levels for display.
func (d Detail) GenreLabel() string {
	return strings.Join(d.Genres, LinkSeparator)
}

// ArtistsText is the plain-text artist line used when links cannot be shown.
func (d Detail) ArtistsText() string {
	names := make([]string, 0, len(d.Artists))
	for _, a := range d.Artists {
		names = append(names, a.Name)
	}
	return strings.Join(names, LinkSeparator)
}

// artistLinks prefers the attraction's own URL, then its self link, then a
// web search for its name.
func artistLinks(attractions []backend.Attraction) []Link {
	out := make([]Link, 0, len(attractions))
	for _, a := range attractions {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			continue
		}
		link := Link{Name: name}
		switch {
		case a.URL != "":
			link.URL = a.URL
		case a.Links.Self.Href != "":
			link.URL = a.Links.Self.Href
		default:
			link.URL = searchEngineURL + url.QueryEscape(name)
		}
		out = append(out, link)
	}
	return out
}

// genreParts orders levels subGenre, genre, segment, subType, type and skips
// the ones that are absent.
func genreParts(c backend.Classification) []string {
	levels := []string{c.SubGenre.Name, c.Genre.Name, c.Segment.Name, c.SubType.Name, c.Type.Name}
	out := make([]string, 0, len(levels))
	for _, name := range levels {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
