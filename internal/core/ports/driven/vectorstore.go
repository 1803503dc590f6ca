package driven

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// VectorStore persists embedding records and performs similarity
// search. Stores are bounded: once the record count exceeds the
// configured cap, the oldest records by CreatedAt are evicted first,
// regardless of insertion order or access recency.
//
// Search degrades instead of failing: zero-magnitude vectors and
// dimension mismatches score 0, they never surface as errors.
type VectorStore interface {
	// Upsert replaces the record with the same ID or appends a new one,
	// then enforces the cap.
	Upsert(ctx context.Context, rec domain.EmbeddingRecord) error

	// Get retrieves a record by ID. Returns domain.ErrNotFound when
	// the record does not exist.
	Get(ctx context.Context, id string) (*domain.EmbeddingRecord, error)

	// List returns records ordered newest-first by CreatedAt.
	// A limit <= 0 returns all records.
	List(ctx context.Context, limit int) ([]domain.EmbeddingRecord, error)

	// Search returns the topK records ranked by cosine similarity to
	// the query vector. Ties are broken by stable stored order.
	Search(ctx context.Context, query []float32, topK int) ([]domain.ScoredRecord, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Clear removes all records.
	Clear(ctx context.Context) error

	// Close releases resources.
	Close() error
}
