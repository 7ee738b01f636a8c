package geo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0088

// Location is a resolved latitude/longitude pair in degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

func (l Location) String() string {
	return fmt.Sprintf("%s,%s", FormatCoord(l.Latitude), FormatCoord(l.Longitude))
}

// DistanceKm returns the great-circle distance to o.
func (l Location) DistanceKm(o Location) float64 {
	a := s2.LatLngFromDegrees(l.Latitude, l.Longitude)
	b := s2.LatLngFromDegrees(o.Latitude, o.Longitude)
	return a.Distance(b).Radians() * earthRadiusKm
}

// Valid reports whether both coordinates are finite and in range.
func (l Location) Valid() bool {
	return finite(l.Latitude) && finite(l.Longitude) &&
		s2.LatLngFromDegrees(l.Latitude, l.Longitude).IsValid()
}

var errMalformedLoc = errors.New("malformed lat,lng pair")

// ParseLatLng parses "lat,lng", tolerating whitespace around the comma.
func ParseLatLng(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Location{}, fmt.Errorf("%w: %q", errMalformedLoc, s)
	}
	lat, err := parseFinite(parts[0])
	if err != nil {
		return Location{}, fmt.Errorf("latitude: %w", err)
	}
	lng, err := parseFinite(parts[1])
	if err != nil {
		return Location{}, fmt.Errorf("longitude: %w", err)
	}
	return Location{Latitude: lat, Longitude: lng}, nil
}

// ParseCoords parses a pair of decimal strings as the provider encodes venue
// positions.
func ParseCoords(lat, lng string) (Location, bool) {
	la, err := parseFinite(lat)
	if err != nil {
		return Location{}, false
	}
	ln, err := parseFinite(lng)
	if err != nil {
		return Location{}, false
	}
	loc := Location{Latitude: la, Longitude: ln}
	return loc, loc.Valid()
}

// FormatCoord renders a coordinate with the shortest exact decimal form.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if !finite(v) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
