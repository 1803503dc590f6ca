package driven

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// ProfileStore persists the single local user profile as one JSON
// document. A failed read yields domain.ErrNotFound (treated upstream
// as "no profile yet"); a failed write must leave the previous
// on-disk document intact.
type ProfileStore interface {
	// Load reads the stored profile.
	// Returns domain.ErrNotFound when no profile has been saved.
	Load(ctx context.Context) (*domain.UserProfile, error)

	// Save writes the profile, replacing any previous document.
	Save(ctx context.Context, profile *domain.UserProfile) error

	// Reset deletes the stored profile.
	Reset(ctx context.Context) error
}
