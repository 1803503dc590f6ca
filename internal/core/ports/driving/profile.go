package driving

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// ProfileService manages the single local user profile.
type ProfileService interface {
	// GetOrCreate returns the stored profile, creating an empty one on
	// first access.
	GetOrCreate(ctx context.Context) (*domain.UserProfile, error)

	// Apply merges a partial update onto the profile and persists it.
	Apply(ctx context.Context, update domain.ProfileUpdate) (*domain.UserProfile, error)

	// AutoFillFromChat extracts profile signals from the message
	// history, merges them, and returns the merged profile together
	// with at most one outstanding missing-information question for
	// the given context. neededFor is an Intent tool name or empty
	// for an untargeted pass.
	AutoFillFromChat(ctx context.Context, history []domain.ChatTurn, destinationHint, neededFor string) (*domain.UserProfile, string, error)

	// ImportDocument runs the field-extraction collaborator over a
	// document and merges any recognised profile fields. Returns
	// domain.ErrFeatureUnavailable when no extractor is configured.
	ImportDocument(ctx context.Context, content []byte, mimeType string) (*domain.UserProfile, error)

	// Reset deletes the stored profile.
	Reset(ctx context.Context) error
}
