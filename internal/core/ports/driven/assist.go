package driven

import "context"

// The interfaces below describe the optional collaborator surface the
// engine calls on its environment. All of them are best-effort: a nil
// collaborator or a failing call degrades to "feature unavailable",
// never to a hard error.

// FieldExtractor pulls structured fields out of an uploaded document
// (plain-text exports, scanned-form transcriptions).
type FieldExtractor interface {
	// ExtractFields returns key-value pairs found in the document.
	ExtractFields(ctx context.Context, content []byte, mimeType string) (map[string]string, error)
}

// Locator resolves the user's approximate location, used to suggest
// the nearest embassy or consulate.
type Locator interface {
	// CurrentCountry returns the country the device appears to be in.
	CurrentCountry(ctx context.Context) (string, error)
}

// Exporter writes a rendered artifact to a user-chosen destination.
type Exporter interface {
	// Export saves the content under the suggested file name.
	Export(ctx context.Context, name string, content []byte) error
}
