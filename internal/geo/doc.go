// Package geo resolves search locations.
//
// A Resolver picks one of two collaborators. With auto-detect on it asks an
// IP-geolocation service (IPLocator) for the caller's position; otherwise a
// non-empty address is sent to a geocoding service (Geocoder). Neither path
// can fail a search: every transport, status or parse problem is logged at
// warn level and reported as "no location", and the search proceeds without
// coordinates.
//
// Location also carries distance math (via s2) used to show how far a venue
// is from the searched position.
package geo
