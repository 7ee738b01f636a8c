// Package config loads eventscout's TOML configuration.
//
// # Overview
//
// Config is built once at startup and passed explicitly to each component.
// It holds the backend API base, the geocoding and IP-geolocation endpoints,
// their credentials, the category to segment id table used by the query
// builder, and logging settings. No package-level mutable state exists.
//
// # Resolution Order
//
//  1. Built-in defaults (see Default)
//  2. The TOML file at the given path, or ~/.config/eventscout/config.toml
//  3. Environment overrides: EVENTSCOUT_API_BASE, EVENTSCOUT_GEOCODE_KEY,
//     EVENTSCOUT_IPINFO_TOKEN
//
// LoadDotenv can populate the environment from a .env file first, so API
// credentials never need to be written into the config file itself.
//
// # TOML Format
//
//	api_base = "http://127.0.0.1:5000"
//	geocode_url = "https://maps.googleapis.com/maps/api/geocode/json"
//	ipinfo_url = "https://ipinfo.io/json"
//	default_distance = 10.0
//	request_timeout = "0s"
//	health_interval = "15s"
//	log_path = "~/.local/state/eventscout/eventscout.log"
//	log_level = "info"
//	log_format = "console"
//	hyperlinks = true
//
//	[segments]
//	Music = "KZFzniwnSyZfZ7v7nJ"
//
// Entries under [segments] are merged into the built-in table.
//
// # Error Handling
//
// A missing file is not an error. Open, read and parse failures are wrapped
// with the stage that failed. Validate rejects values no component can use.
package config
