package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrNoIPLocation means the IP lookup answered without a "loc" field.
var ErrNoIPLocation = errors.New("ip lookup: missing loc field")

// IPLocator finds the caller's approximate position from its public address
// through an ipinfo-style service.
type IPLocator struct {
	endpoint *url.URL
	token    string
	http     *http.Client
}

func NewIPLocator(endpoint, token string, opts ...Option) (*IPLocator, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	return &IPLocator{endpoint: u, token: token, http: newHTTPClient(opts)}, nil
}

// Locate returns the position parsed from the service's "lat,lng" loc field.
func (l *IPLocator) Locate(ctx context.Context) (Location, error) {
	u := *l.endpoint
	if l.token != "" {
		values := u.Query()
		values.Set("token", l.token)
		u.RawQuery = values.Encode()
	}

	body, err := getJSONBody(ctx, l.http, "ip lookup", &u)
	if err != nil {
		return Location{}, err
	}
	var payload struct {
		Loc *string `json:"loc"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Location{}, fmt.Errorf("decode response: %w", err)
	}
	if payload.Loc == nil {
		return Location{}, ErrNoIPLocation
	}
	return ParseLatLng(*payload.Loc)
}
