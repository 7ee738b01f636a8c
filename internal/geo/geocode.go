package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrNoGeocodeMatch means the geocoder answered but gave no usable position.
var ErrNoGeocodeMatch = errors.New("geocode: no usable result")

// Geocoder resolves free-text addresses through a Google-style geocoding API.
type Geocoder struct {
	endpoint *url.URL
	key      string
	http     *http.Client
}

func NewGeocoder(endpoint, key string, opts ...Option) (*Geocoder, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &Geocoder{endpoint: u, key: key, http: newHTTPClient(opts)}, nil
}

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat any `json:"lat"`
				Lng any `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the first result's position. Only an "OK" status with a
// numeric latitude and longitude in the first result counts as a match.
func (g *Geocoder) Geocode(ctx context.Context, address string) (Location, error) {
	u := *g.endpoint
	values := u.Query()
	values.Set("address", address)
	values.Set("key", g.key)
	u.RawQuery = values.Encode()

	body, err := getJSONBody(ctx, g.http, "geocoder", &u)
	if err != nil {
		return Location{}, err
	}
	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Location{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.Status != "OK" {
		if payload.ErrorMessage != "" {
			return Location{}, fmt.Errorf("%w: status %s: %s", ErrNoGeocodeMatch, payload.Status, payload.ErrorMessage)
		}
		return Location{}, fmt.Errorf("%w: status %s", ErrNoGeocodeMatch, payload.Status)
	}
	if len(payload.Results) == 0 {
		return Location{}, fmt.Errorf("%w: empty results", ErrNoGeocodeMatch)
	}
	loc := payload.Results[0].Geometry.Location
	lat, latOK := loc.Lat.(float64)
	lng, lngOK := loc.Lng.(float64)
	if !latOK || !lngOK {
		return Location{}, fmt.Errorf("%w: non-numeric coordinates", ErrNoGeocodeMatch)
	}
	return Location{Latitude: lat, Longitude: lng}, nil
}
