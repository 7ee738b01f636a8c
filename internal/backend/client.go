package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/five82/eventscout/internal/logging"
)

// API is the backend surface used by the search pipeline and the UI.
type API interface {
	SearchEvents(ctx context.Context, query url.Values) (SearchResult, error)
	EventDetails(ctx context.Context, id string) (Event, error)
	VenueDetails(ctx context.Context, keyword string) (Venue, error)
	Health(ctx context.Context) (Health, error)
}

var _ API = (*Client)(nil)

const (
	defaultAPIBase   = "127.0.0.1:5000"
	defaultUserAgent = "eventscout/0.1"

	pathSearch  = "/api/eventSearch"
	pathDetails = "/api/eventDetails"
	pathVenue   = "/api/venueDetails"
	pathHealth  = "/health"
)

// Client talks to the event aggregation backend.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every request. Zero leaves requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logging.OrNop(l)
	}
}

// NewClient builds a Client for the given API base (scheme optional).
func NewClient(apiBase string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   base,
		http:      &http.Client{},
		userAgent: defaultUserAgent,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SearchEvents runs an event search with the given query parameters.
func (c *Client) SearchEvents(ctx context.Context, query url.Values) (SearchResult, error) {
	if c == nil {
		return SearchResult{}, fmt.Errorf("client is nil")
	}
	body, err := c.get(ctx, &url.URL{Path: pathSearch, RawQuery: query.Encode()})
	if err != nil {
		return SearchResult{}, err
	}
	result, err := DecodeSearch(body)
	if err != nil {
		return SearchResult{}, err
	}
	if result.Degraded {
		c.logger.Warn("search payload had mistyped fields", zap.String("shape", result.Shape.String()))
	}
	return result, nil
}

// EventDetails fetches a single event by id.
func (c *Client) EventDetails(ctx context.Context, id string) (Event, error) {
	if c == nil {
		return Event{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("id", id)
	body, err := c.get(ctx, &url.URL{Path: pathDetails, RawQuery: values.Encode()})
	if err != nil {
		return Event{}, err
	}
	return DecodeEvent(body)
}

// VenueDetails looks a venue up by its display name.
func (c *Client) VenueDetails(ctx context.Context, keyword string) (Venue, error) {
	if c == nil {
		return Venue{}, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("keyword", keyword)
	body, err := c.get(ctx, &url.URL{Path: pathVenue, RawQuery: values.Encode()})
	if err != nil {
		return Venue{}, err
	}
	return DecodeVenue(body)
}

// Health reports backend liveness.
func (c *Client) Health(ctx context.Context) (Health, error) {
	if c == nil {
		return Health{}, fmt.Errorf("client is nil")
	}
	body, err := c.get(ctx, &url.URL{Path: pathHealth})
	if err != nil {
		return Health{}, err
	}
	var h Health
	if err := json.Unmarshal(body, &h); err != nil {
		return Health{}, fmt.Errorf("decode response: %w", err)
	}
	return h, nil
}

func (c *Client) get(ctx context.Context, rel *url.URL) ([]byte, error) {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		httpErr := newHTTPError(rel.Path, resp, body)
		c.logger.Debug("backend request failed",
			zap.String("path", rel.Path),
			zap.Int("status", resp.StatusCode))
		return nil, httpErr
	}
	return body, nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
