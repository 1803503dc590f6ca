package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure Retriever implements the interface.
var _ driving.RetrievalService = (*Retriever)(nil)

// Retriever wraps vector search with domain post-processing:
// deduplication by official source (keeping the highest-scoring hit)
// and reconstruction of the originating fact from record tags.
//
// The embedding service is optional; without it retrieval returns no
// facts rather than erroring.
type Retriever struct {
	vectors   driven.VectorStore
	embedder  driven.EmbeddingService
	catalogue driven.FactCatalogue
	indexCap  int
	now       func() time.Time
}

// NewRetriever creates a new retriever. embedder may be nil.
func NewRetriever(vectors driven.VectorStore, embedder driven.EmbeddingService, catalogue driven.FactCatalogue, indexCap int) *Retriever {
	if indexCap <= 0 {
		indexCap = domain.DefaultIndexCap
	}
	return &Retriever{
		vectors:   vectors,
		embedder:  embedder,
		catalogue: catalogue,
		indexCap:  indexCap,
		now:       time.Now,
	}
}

// Retrieve returns the top-k facts for a free-text query. An absent or
// failing embedding service yields an empty result, not an error.
func (r *Retriever) Retrieve(ctx context.Context, query string, k int) ([]domain.RetrievedFact, error) {
	if r.embedder == nil {
		logger.Debug("Retrieval skipped: no embedding service")
		return nil, nil
	}

	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		logger.Warn("Query embedding failed, treating as no facts: %v", err)
		return nil, nil
	}
	return r.RetrieveVector(ctx, vector, k)
}

// RetrieveVector returns the top-k facts for a precomputed vector.
func (r *Retriever) RetrieveVector(ctx context.Context, vector []float32, k int) ([]domain.RetrievedFact, error) {
	if r.vectors == nil {
		return nil, nil
	}
	if k <= 0 {
		k = domain.DefaultRetrieveK
	}

	// Over-fetch so source-level deduplication still fills k slots.
	hits, err := r.vectors.Search(ctx, vector, k*3)
	if err != nil {
		logger.Warn("Vector search failed, treating as no facts: %v", err)
		return nil, nil
	}

	facts := dedupeBySource(hits)
	if len(facts) > k {
		facts = facts[:k]
	}
	logger.Debug("Retrieved %d facts (from %d hits)", len(facts), len(hits))
	return facts, nil
}

// EnsurePersisted indexes every atomic statement of every catalogue
// entry. Idempotent: a non-empty index makes this a no-op, so calling
// it twice leaves the index unchanged.
func (r *Retriever) EnsurePersisted(ctx context.Context) error {
	count, err := r.vectors.Count(ctx)
	if err != nil {
		return fmt.Errorf("count index: %w", err)
	}
	if count > 0 {
		logger.Debug("Index already holds %d records, skipping seed", count)
		return nil
	}
	if r.embedder == nil {
		return domain.ErrEmbeddingUnavailable
	}

	logger.Section("Index Seeding")
	for _, entry := range r.catalogue.All() {
		if !entry.HasStatements() {
			continue
		}

		vectors, err := r.embedder.EmbedBatch(ctx, entry.Statements)
		if err != nil {
			return fmt.Errorf("embed statements for %s: %w", entry.Code, err)
		}

		for i, statement := range entry.Statements {
			rec := domain.EmbeddingRecord{
				// Deterministic IDs keep re-seeding idempotent.
				ID:         fmt.Sprintf("%s-%d", entry.Code, i),
				SourceText: statement,
				Vector:     vectors[i],
				Tags: map[string]string{
					domain.TagCountryCode: entry.Code,
					domain.TagCountryName: entry.CountryName,
					domain.TagSourceURL:   entry.OfficialSiteURL,
				},
				CreatedAt: r.now(),
			}
			if err := r.vectors.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("upsert %s: %w", rec.ID, err)
			}
		}
		logger.Debug("Indexed %d statements for %s", len(entry.Statements), entry.CountryName)
	}
	return nil
}

// Stats reports the index record count and configured cap.
func (r *Retriever) Stats(ctx context.Context) (int, int, error) {
	count, err := r.vectors.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count index: %w", err)
	}
	return count, r.indexCap, nil
}

// Rebuild clears the index and re-runs EnsurePersisted.
func (r *Retriever) Rebuild(ctx context.Context) error {
	if err := r.vectors.Clear(ctx); err != nil {
		return fmt.Errorf("clear index: %w", err)
	}
	return r.EnsurePersisted(ctx)
}

// dedupeBySource keeps the highest-scoring hit per official source URL
// and returns facts sorted by score descending. Records without a
// source tag are deduplicated by their own ID instead.
func dedupeBySource(hits []domain.ScoredRecord) []domain.RetrievedFact {
	best := make(map[string]domain.RetrievedFact)
	order := make([]string, 0, len(hits))

	for _, hit := range hits {
		key := hit.Record.Tags[domain.TagSourceURL]
		if key == "" {
			key = hit.Record.ID
		}

		fact := domain.RetrievedFact{
			Statement:   hit.Record.SourceText,
			CountryCode: hit.Record.Tags[domain.TagCountryCode],
			CountryName: hit.Record.Tags[domain.TagCountryName],
			SourceURL:   hit.Record.Tags[domain.TagSourceURL],
			Score:       hit.Score,
		}

		existing, seen := best[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || fact.Score > existing.Score {
			best[key] = fact
		}
	}

	facts := make([]domain.RetrievedFact, 0, len(order))
	for _, key := range order {
		facts = append(facts, best[key])
	}
	sort.SliceStable(facts, func(i, j int) bool { return facts[i].Score > facts[j].Score })
	return facts
}
