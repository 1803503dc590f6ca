package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

const profileFileName = "profile.json"

// ProfileStore persists the single user profile as one JSON document.
type ProfileStore struct {
	mu   sync.Mutex
	path string
}

// NewProfileStore creates a profile store under dataDir.
func NewProfileStore(dataDir string) *ProfileStore {
	return &ProfileStore{path: filepath.Join(dataDir, profileFileName)}
}

// Load reads the stored profile. A missing or unreadable document
// yields domain.ErrNotFound.
func (s *ProfileStore) Load(_ context.Context) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var profile domain.UserProfile
	if err := readDocument(s.path, &profile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrNotFound, err)
	}
	return &profile, nil
}

// Save writes the profile, replacing any previous document.
func (s *ProfileStore) Save(_ context.Context, profile *domain.UserProfile) error {
	if profile == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeDocument(s.path, profile)
}

// Reset deletes the stored profile. Resetting a never-saved profile
// is not an error.
func (s *ProfileStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove profile: %w", err)
	}
	return nil
}
