package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu      sync.RWMutex
	profile *domain.UserProfile
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{}
}

// Load reads the stored profile.
func (s *ProfileStore) Load(_ context.Context) (*domain.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.profile == nil {
		return nil, domain.ErrNotFound
	}
	copied := *s.profile
	return &copied, nil
}

// Save writes the profile, replacing any previous one.
func (s *ProfileStore) Save(_ context.Context, profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *profile
	s.profile = &copied
	return nil
}

// Reset deletes the stored profile.
func (s *ProfileStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = nil
	return nil
}
