package search

import (
	"net/url"
	"strings"

	"github.com/five82/eventscout/internal/config"
	"github.com/five82/eventscout/internal/geo"
)

// Builder turns criteria and an optional location into backend query
// parameters. The segment table is fixed at construction.
type Builder struct {
	segments map[string]string
}

func NewBuilder(segments map[string]string) *Builder {
	copied := make(map[string]string, len(segments))
	for label, id := range segments {
		copied[label] = id
	}
	return &Builder{segments: copied}
}

// SegmentID looks a category label up. The empty label, the "Default"
// sentinel and unknown labels have no segment.
func (b *Builder) SegmentID(category string) (string, bool) {
	category = strings.TrimSpace(category)
	if category == "" || category == config.DefaultCategory {
		return "", false
	}
	id, ok := b.segments[category]
	return id, ok && id != ""
}

// Build returns the query. Coordinates appear only when loc is non-nil;
// distance and keyword are always present.
func (b *Builder) Build(c Criteria, loc *geo.Location) url.Values {
	values := url.Values{}
	if loc != nil {
		values.Set("latitude", geo.FormatCoord(loc.Latitude))
		values.Set("longitude", geo.FormatCoord(loc.Longitude))
	}
	values.Set("distance", c.Distance.String())
	values.Set("keyword", c.Keyword)
	if id, ok := b.SegmentID(c.Category); ok {
		values.Set("segmentId", id)
	}
	return values
}
