package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure ArtifactStore implements the interface.
var _ driven.ArtifactStore = (*ArtifactStore)(nil)

const artifactsFileName = "artifacts.json"

// artifactDocument holds every saved artifact in one JSON document,
// newest first.
type artifactDocument struct {
	Artifacts []domain.Artifact `json:"artifacts"`
}

// ArtifactStore persists saved tool results as one JSON document.
type ArtifactStore struct {
	mu        sync.RWMutex
	path      string
	artifacts []domain.Artifact
}

// NewArtifactStore opens (or initialises) the artifact document under
// dataDir. An unreadable document starts empty.
func NewArtifactStore(dataDir string) *ArtifactStore {
	s := &ArtifactStore{path: filepath.Join(dataDir, artifactsFileName)}

	var doc artifactDocument
	if err := readDocument(s.path, &doc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Artifacts unreadable, starting empty: %v", err)
		}
		return s
	}
	s.artifacts = doc.Artifacts
	return s
}

// Save stores an artifact at the head of the list and flushes.
func (s *ArtifactStore) Save(_ context.Context, artifact domain.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts = append([]domain.Artifact{artifact}, s.artifacts...)
	return writeDocument(s.path, artifactDocument{Artifacts: s.artifacts})
}

// List returns all saved artifacts, newest first.
func (s *ArtifactStore) List(_ context.Context) ([]domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Artifact, len(s.artifacts))
	copy(out, s.artifacts)
	return out, nil
}

// Delete removes an artifact by ID and flushes.
func (s *ArtifactStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.artifacts {
		if s.artifacts[i].ID == id {
			s.artifacts = append(s.artifacts[:i], s.artifacts[i+1:]...)
			return writeDocument(s.path, artifactDocument{Artifacts: s.artifacts})
		}
	}
	return domain.ErrNotFound
}
