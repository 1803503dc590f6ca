package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is an in-memory implementation of driven.ArtifactStore.
type ArtifactStore struct {
	mu        sync.RWMutex
	artifacts []domain.Artifact
}

// NewArtifactStore creates a new in-memory artifact store.
func NewArtifactStore() *ArtifactStore {
	return &ArtifactStore{}
}

// Save stores an artifact.
func (s *ArtifactStore) Save(_ context.Context, artifact domain.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Newest first.
	s.artifacts = append([]domain.Artifact{artifact}, s.artifacts...)
	return nil
}

// List returns all saved artifacts, newest first.
func (s *ArtifactStore) List(_ context.Context) ([]domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out, nil
}

// Delete removes an artifact by ID.
func (s *ArtifactStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artifacts {
		if s.artifacts[i].ID == id {
			s.artifacts = append(s.artifacts[:i], s.artifacts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
