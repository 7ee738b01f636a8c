// Package logtail reads the tail of the session log for the in-app log view.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays bounded
// by the requested window rather than the file size. A missing file returns
// nil, nil; the log may not exist until the first entry is written.
//
// ParseLine recognises both zap encoders used by the logging package: the
// console encoder (tab separated, level in the second column) and the JSON
// encoder (a "level" key). Lines it cannot parse keep LevelUnknown and are
// shown uncoloured.
package logtail
