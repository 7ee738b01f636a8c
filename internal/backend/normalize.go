package backend

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Shape names which accepted search payload layout a response used.
type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeProviderWrapped is {"ticketmaster":{"_embedded":{"events":[...]}}}.
	ShapeProviderWrapped
	// ShapeFlat is {"_embedded":{"events":[...]}}.
	ShapeFlat
	// ShapeEmptyPage is {"ticketmaster":{"page":{"totalElements":0}}}.
	ShapeEmptyPage
)

func (s Shape) String() string {
	switch s {
	case ShapeProviderWrapped:
		return "provider"
	case ShapeFlat:
		return "flat"
	case ShapeEmptyPage:
		return "empty-page"
	default:
		return "unknown"
	}
}

// SearchResult is the canonical form of every accepted search payload.
type SearchResult struct {
	Events []Event
	Shape  Shape
	// Degraded is set when some fields had unexpected types and were left empty.
	Degraded bool
}

// DecodeSearch normalizes a search response body. The provider-wrapped list
// wins over a flat list, and a zero-count page marker yields an empty list.
// A JSON object in none of those shapes is ErrUnrecognizedPayload; a body
// that is not a JSON object is ErrMalformedPayload.
func DecodeSearch(data []byte) (SearchResult, error) {
	top, err := decodeObject(data)
	if err != nil {
		return SearchResult{}, err
	}
	provider, _ := decodeObject(top[ProviderKey])

	if raw, ok := embeddedList(provider, "events"); ok {
		events, degraded, err := decodeEvents(raw)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Events: events, Shape: ShapeProviderWrapped, Degraded: degraded}, nil
	}
	if raw, ok := embeddedList(top, "events"); ok {
		events, degraded, err := decodeEvents(raw)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Events: events, Shape: ShapeFlat, Degraded: degraded}, nil
	}
	if pageIsEmpty(provider) {
		return SearchResult{Events: []Event{}, Shape: ShapeEmptyPage}, nil
	}
	return SearchResult{}, ErrUnrecognizedPayload
}

// DecodeEvent normalizes an event detail body, which is either wrapped under
// the provider key or flat.
func DecodeEvent(data []byte) (Event, error) {
	top, err := decodeObject(data)
	if err != nil {
		return Event{}, err
	}
	target := data
	if raw, ok := top[ProviderKey]; ok && isObject(raw) {
		target = raw
	}
	var event Event
	if err := tolerantUnmarshal(target, &event); err != nil {
		return Event{}, err
	}
	return event, nil
}

// DecodeVenue normalizes a venue detail body. Besides the provider wrapping it
// accepts a venue search page and takes the first venue from it.
func DecodeVenue(data []byte) (Venue, error) {
	top, err := decodeObject(data)
	if err != nil {
		return Venue{}, err
	}
	target, obj := data, top
	if raw, ok := top[ProviderKey]; ok && isObject(raw) {
		target = raw
		obj, _ = decodeObject(raw)
	}
	if raw, ok := embeddedList(obj, "venues"); ok {
		var venues []Venue
		if err := tolerantUnmarshal(raw, &venues); err != nil {
			return Venue{}, err
		}
		if len(venues) == 0 {
			return Venue{}, ErrNotFound
		}
		return venues[0], nil
	}
	if pageIsEmpty(obj) {
		return Venue{}, ErrNotFound
	}
	var venue Venue
	if err := tolerantUnmarshal(target, &venue); err != nil {
		return Venue{}, err
	}
	return venue, nil
}

func decodeEvents(raw json.RawMessage) ([]Event, bool, error) {
	events := []Event{}
	err := json.Unmarshal(raw, &events)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return events, true, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("decode events: %w", err)
	}
	return events, false, nil
}

// tolerantUnmarshal keeps whatever decoded cleanly when individual fields have
// the wrong JSON type.
func tolerantUnmarshal(raw []byte, dest any) error {
	err := json.Unmarshal(raw, dest)
	var typeErr *json.UnmarshalTypeError
	if err == nil || errors.As(err, &typeErr) {
		return nil
	}
	return fmt.Errorf("decode response: %w", err)
}

func embeddedList(obj map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if obj == nil {
		return nil, false
	}
	embedded, err := decodeObject(obj["_embedded"])
	if err != nil {
		return nil, false
	}
	raw, ok := embedded[key]
	if !ok || !isArray(raw) {
		return nil, false
	}
	return raw, true
}

func pageIsEmpty(obj map[string]json.RawMessage) bool {
	if obj == nil {
		return false
	}
	raw, ok := obj["page"]
	if !ok || !isObject(raw) {
		return false
	}
	var page Page
	if err := tolerantUnmarshal(raw, &page); err != nil || page.TotalElements == nil {
		return false
	}
	return *page.TotalElements == 0
}

// decodeObject parses a JSON object into its raw members. Anything else,
// including invalid JSON, is ErrMalformedPayload.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	if !isObject(data) {
		return nil, ErrMalformedPayload
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	return obj, nil
}

func isObject(raw []byte) bool {
	return firstByte(raw) == '{'
}

func isArray(raw []byte) bool {
	return firstByte(raw) == '['
}

func firstByte(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
