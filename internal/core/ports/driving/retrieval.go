package driving

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// RetrievalService exposes fact retrieval to external actors.
type RetrievalService interface {
	// Retrieve returns the top-k facts for a free-text query,
	// deduplicated by source. An absent embedding service yields an
	// empty result, not an error.
	Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedFact, error)

	// EnsurePersisted indexes the fact catalogue if the index is
	// empty. Idempotent: a non-empty index makes this a no-op.
	EnsurePersisted(ctx context.Context) error

	// Stats reports the index record count and configured cap.
	Stats(ctx context.Context) (count, cap int, err error)

	// Rebuild clears the index and re-runs EnsurePersisted.
	Rebuild(ctx context.Context) error
}
