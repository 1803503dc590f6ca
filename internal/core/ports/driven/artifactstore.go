package driven

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// ArtifactStore persists saved tool results (roadmaps, checklists, ...)
// as one JSON document per collection. Optional - when nil, saving is
// disabled but generation still works.
type ArtifactStore interface {
	// Save stores an artifact.
	Save(ctx context.Context, artifact domain.Artifact) error

	// List returns all saved artifacts, newest first.
	List(ctx context.Context) ([]domain.Artifact, error)

	// Delete removes an artifact by ID.
	// Returns domain.ErrNotFound for unknown IDs.
	Delete(ctx context.Context, id string) error
}
