// Package docscan extracts structured fields from plain-text document
// exports (downloaded passport summaries, application forms saved as
// text). It is the offline stand-in for a document-scanning service:
// anything it cannot read is reported as unsupported rather than
// guessed at.
package docscan

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// ErrUnsupportedDocument is returned for MIME types the extractor
// cannot parse.
var ErrUnsupportedDocument = errors.New("unsupported document type")

// Ensure TextExtractor implements the interface.
var _ driven.FieldExtractor = (*TextExtractor)(nil)

// TextExtractor parses "key: value" lines out of plain-text documents.
type TextExtractor struct{}

// NewTextExtractor creates a plain-text field extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractFields scans the document line by line for "key: value"
// pairs. Lines without a colon are ignored; later duplicates of a key
// overwrite earlier ones.
func (e *TextExtractor) ExtractFields(_ context.Context, content []byte, mimeType string) (map[string]string, error) {
	if !supportedMIME(mimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocument, mimeType)
	}

	fields := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		fields[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return fields, nil
}

func supportedMIME(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if base, _, ok := strings.Cut(mimeType, ";"); ok {
		mimeType = strings.TrimSpace(base)
	}
	return mimeType == "" || strings.HasPrefix(mimeType, "text/")
}
