package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrUnrecognizedPayload marks a response body that matches none of the
	// accepted payload shapes.
	ErrUnrecognizedPayload = errors.New("backend: unrecognized payload shape")
	// ErrMalformedPayload marks a response body that is not a JSON object at
	// all, such as a proxy error page or a truncated body.
	ErrMalformedPayload = errors.New("backend: response is not a JSON object")
	// ErrNotFound marks a well-formed response that holds no matching record.
	ErrNotFound = errors.New("backend: no matching record")
)

// HTTPError is returned for any non-2xx response. It keeps the raw body so the
// UI can show what the backend said.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Status     string
	Body       string
}

func newHTTPError(endpoint string, resp *http.Response, body []byte) *HTTPError {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return &HTTPError{
		Endpoint:   endpoint,
		StatusCode: resp.StatusCode,
		Status:     text,
		Body:       strings.TrimSpace(string(body)),
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api %s returned status %d %s", e.Endpoint, e.StatusCode, e.Status)
}

// Summary renders the error the way inline panels show it: code, reason and
// the start of the body.
func (e *HTTPError) Summary() string {
	msg := fmt.Sprintf("%d %s", e.StatusCode, e.Status)
	if body := e.Body; body != "" {
		const limit = 200
		if runes := []rune(body); len(runes) > limit {
			body = string(runes[:limit]) + "..."
		}
		msg += ": " + body
	}
	return msg
}
