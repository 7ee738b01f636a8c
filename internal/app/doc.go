// Package app is the composition root of eventscout.
//
// Run loads credentials from a dotenv file, reads the TOML config, opens the
// log file and the saved preferences, then builds the backend client, the
// geocoding and IP-lookup collaborators, the location resolver and the search
// orchestrator. A background poller keeps a state.Store updated with the
// backend's /health result for the header indicator. ui.Run then owns the
// terminal until the user quits.
//
// Startup failures (bad config, unusable endpoints, log directory) are
// returned. Anything after the UI starts is reported inside the UI and in the
// log; nothing in the search pipeline stops the program.
package app
