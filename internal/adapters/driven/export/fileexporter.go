// Package export writes rendered artifacts to the local filesystem so
// users can share roadmaps and checklists outside the assistant.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure FileExporter implements the interface.
var _ driven.Exporter = (*FileExporter)(nil)

// FileExporter writes exported artifacts into a single directory.
type FileExporter struct {
	dir string
}

// NewFileExporter creates a file exporter writing into dir. An empty
// dir means the current working directory.
func NewFileExporter(dir string) *FileExporter {
	if dir == "" {
		dir = "."
	}
	return &FileExporter{dir: dir}
}

// Export writes the content under the suggested name. The name must be
// a bare file name; path separators are rejected so an artifact can
// never escape the export directory.
func (e *FileExporter) Export(_ context.Context, name string, content []byte) error {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: export name %q", domain.ErrInvalidInput, name)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
