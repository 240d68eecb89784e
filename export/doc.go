// Package export turns fetched Plex library documents into CSV files.
//
// Each library kind (movie, show, album) has a fixed column schema. An
// Exporter drives one library end to end: it writes the header, fetches
// the collection through the plex client, walks the record elements in
// document order, normalizes every field, and appends one always-quoted
// row per record. The Dispatcher resolves a library's kind, enforces
// the overwrite policy and routes to the right exporter.
package export
