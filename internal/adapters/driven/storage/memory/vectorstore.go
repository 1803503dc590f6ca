package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

// VectorStore is an in-memory implementation of driven.VectorStore.
// Records are kept ordered newest-first by CreatedAt; once the count
// exceeds the cap, the oldest-by-creation records are evicted.
type VectorStore struct {
	mu      sync.RWMutex
	records []domain.EmbeddingRecord
	cap     int
}

// NewVectorStore creates a new in-memory vector store. A cap <= 0
// uses the default.
func NewVectorStore(cap int) *VectorStore {
	if cap <= 0 {
		cap = domain.DefaultIndexCap
	}
	return &VectorStore{cap: cap}
}

// Upsert replaces the record with the same ID or appends, then
// enforces the cap by evicting the oldest records by CreatedAt.
func (s *VectorStore) Upsert(_ context.Context, rec domain.EmbeddingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		s.records = append(s.records, rec)
	}

	// Newest first; stable so equal timestamps keep insertion order.
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].CreatedAt.After(s.records[j].CreatedAt)
	})
	if len(s.records) > s.cap {
		s.records = s.records[:s.cap]
	}
	return nil
}

// Get retrieves a record by ID.
func (s *VectorStore) Get(_ context.Context, id string) (*domain.EmbeddingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns records ordered newest-first. A limit <= 0 returns all.
func (s *VectorStore) List(_ context.Context, limit int) ([]domain.EmbeddingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.EmbeddingRecord, n)
	copy(out, s.records[:n])
	return out, nil
}

// Search ranks records by cosine similarity to the query. Search never
// mutates state; it works on an immutable snapshot taken under the
// read lock, so it runs concurrently with other reads.
func (s *VectorStore) Search(_ context.Context, query []float32, topK int) ([]domain.ScoredRecord, error) {
	s.mu.RLock()
	snapshot := make([]domain.EmbeddingRecord, len(s.records))
	copy(snapshot, s.records)
	s.mu.RUnlock()

	return RankBySimilarity(snapshot, query, topK), nil
}

// Count returns the number of stored records.
func (s *VectorStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Clear removes all records.
func (s *VectorStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return nil
}

// Close releases resources.
func (s *VectorStore) Close() error {
	return nil
}

// RankBySimilarity scores every record against the query and returns
// the topK, highest first. Ties keep the input order (stable sort), and
// degenerate vectors score 0 rather than erroring. Shared with the
// file-backed store, which searches an immutable snapshot the same way.
func RankBySimilarity(records []domain.EmbeddingRecord, query []float32, topK int) []domain.ScoredRecord {
	scored := make([]domain.ScoredRecord, 0, len(records))
	for _, rec := range records {
		scored = append(scored, domain.ScoredRecord{
			Record: rec,
			Score:  domain.CosineSimilarity(query, rec.Vector),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if topK > 0 && topK < len(scored) {
		scored = scored[:topK]
	}
	return scored
}
