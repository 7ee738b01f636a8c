// Package backend is the HTTP client for the event aggregation API.
//
// The backend exposes three read endpoints and a liveness probe:
//
//	GET /api/eventSearch?latitude&longitude&distance&keyword&segmentId
//	GET /api/eventDetails?id=<id>
//	GET /api/venueDetails?keyword=<venue name>
//	GET /health
//
// Responses come in several layouts. The search list may sit under the
// provider key, sit at the top level, or be replaced by a zero-count page
// marker. Detail and venue bodies may or may not be wrapped under the
// provider key. DecodeSearch, DecodeEvent and DecodeVenue fold all of them
// into one canonical type before anything renders them.
//
// Any non-2xx status is returned as *HTTPError carrying the status code,
// reason text and raw body. Transport failures are wrapped with the stage
// that failed. Requests carry no timeout unless WithTimeout is given.
package backend
