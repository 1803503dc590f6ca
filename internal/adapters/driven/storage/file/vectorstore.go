package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/wayfarer-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure VectorStore implements the interface.
var _ driven.VectorStore = (*VectorStore)(nil)

const indexFileName = "index.json"

// storedRecord is the on-disk shape of an embedding record. The
// vector is serialised as little-endian float32 bytes (base64 in the
// JSON document), which keeps the document compact and the round trip
// bit-exact.
type storedRecord struct {
	ID         string            `json:"id"`
	SourceText string            `json:"sourceText"`
	Vector     []byte            `json:"vector"`
	Tags       map[string]string `json:"tags,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// indexDocument is the single JSON document holding the whole index.
type indexDocument struct {
	Records []storedRecord `json:"records"`
}

// VectorStore persists embedding records in one JSON document.
// The full index is held in memory and flushed on every mutation;
// ranking reuses the same snapshot-based search as the in-memory
// store.
type VectorStore struct {
	mu      sync.RWMutex
	path    string
	records []domain.EmbeddingRecord
	cap     int
}

// NewVectorStore opens (or initialises) the index document under
// dataDir. An unreadable or corrupt document starts an empty index;
// it is overwritten on the next write. A cap <= 0 uses the default.
func NewVectorStore(dataDir string, cap int) *VectorStore {
	if cap <= 0 {
		cap = domain.DefaultIndexCap
	}
	s := &VectorStore{path: filepath.Join(dataDir, indexFileName), cap: cap}
	s.load()
	return s
}

func (s *VectorStore) load() {
	var doc indexDocument
	if err := readDocument(s.path, &doc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Index unreadable, starting empty: %v", err)
		}
		return
	}

	s.records = make([]domain.EmbeddingRecord, 0, len(doc.Records))
	for _, rec := range doc.Records {
		s.records = append(s.records, domain.EmbeddingRecord{
			ID:         rec.ID,
			SourceText: rec.SourceText,
			Vector:     domain.DecodeVector(rec.Vector),
			Tags:       rec.Tags,
			CreatedAt:  rec.CreatedAt,
		})
	}
	s.sortAndTrim()
	logger.Debug("Loaded %d index records from %s", len(s.records), s.path)
}

// flush writes the current records to disk. Callers hold the write
// lock.
func (s *VectorStore) flush() error {
	doc := indexDocument{Records: make([]storedRecord, 0, len(s.records))}
	for _, rec := range s.records {
		doc.Records = append(doc.Records, storedRecord{
			ID:         rec.ID,
			SourceText: rec.SourceText,
			Vector:     domain.EncodeVector(rec.Vector),
			Tags:       rec.Tags,
			CreatedAt:  rec.CreatedAt,
		})
	}
	return writeDocument(s.path, doc)
}

// sortAndTrim orders newest-first by CreatedAt and enforces the cap.
// Callers hold the write lock (or own the store exclusively).
func (s *VectorStore) sortAndTrim() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].CreatedAt.After(s.records[j].CreatedAt)
	})
	if len(s.records) > s.cap {
		s.records = s.records[:s.cap]
	}
}

// Upsert replaces the record with the same ID or appends, enforces
// the cap, and flushes the document.
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

	s.sortAndTrim()
	return s.flush()
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

// Search ranks records by cosine similarity to the query.
func (s *VectorStore) Search(_ context.Context, query []float32, topK int) ([]domain.ScoredRecord, error) {
	s.mu.RLock()
	snapshot := make([]domain.EmbeddingRecord, len(s.records))
	copy(snapshot, s.records)
	s.mu.RUnlock()

	return memory.RankBySimilarity(snapshot, query, topK), nil
}

// Count returns the number of stored records.
func (s *VectorStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Clear removes all records and flushes the empty document.
func (s *VectorStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	return s.flush()
}

// Close releases resources. The document is already durable after
// every mutation, so there is nothing to flush here.
func (s *VectorStore) Close() error {
	return nil
}
