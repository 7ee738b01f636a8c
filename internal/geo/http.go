package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Option customizes the HTTP behaviour of a collaborator client.
type Option func(*http.Client)

// WithHTTPClient copies transport settings from hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *http.Client) {
		if hc != nil {
			*c = *hc
		}
	}
}

// WithTimeout bounds each call. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *http.Client) {
		c.Timeout = d
	}
}

func newHTTPClient(opts []Option) *http.Client {
	hc := &http.Client{}
	for _, opt := range opts {
		opt(hc)
	}
	return hc
}

// StatusError is a non-2xx reply from a collaborator.
type StatusError struct {
	Service    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.StatusCode)
}

func getJSONBody(ctx context.Context, hc *http.Client, service string, u *url.URL) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Service: service, StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: scheme and host required", raw)
	}
	return u, nil
}
