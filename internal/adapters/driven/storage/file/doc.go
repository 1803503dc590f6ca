// Package file provides JSON-document implementations of the driven
// storage ports. Each logical store is one document under the data
// directory: index.json, profile.json, chat.json and artifacts.json.
// Writes go through a temp file and rename so a crash mid-write never
// corrupts the previous document; an unreadable document is treated
// as empty rather than fatal.
package file
