package domain

import "time"

// EmbeddingRecord is one persisted text + vector pair in the embedding
// index. Records are owned exclusively by the vector store; all records
// in one index are expected to share a vector dimension, but the store
// must tolerate mismatches (they score 0, they never error).
type EmbeddingRecord struct {
	// ID is the unique identifier for the record.
	ID string `json:"id"`

	// SourceText is the original text that was embedded.
	SourceText string `json:"sourceText"`

	// Vector is the embedding. Persistence encodes this as a
	// little-endian float32 byte array, not a JSON number array.
	Vector []float32 `json:"-"`

	// Tags is an opaque key-value blob carried alongside the vector.
	// The retriever uses it to reconstruct the originating fact.
	Tags map[string]string `json:"tags,omitempty"`

	// CreatedAt orders records for cap eviction (oldest evicted first).
	CreatedAt time.Time `json:"createdAt"`
}

// Well-known tag keys written by the retriever when indexing the fact
// catalogue. Opaque to the store itself.
const (
	TagCountryCode = "countryCode"
	TagCountryName = "countryName"
	TagSourceURL   = "sourceURL"
)

// ScoredRecord pairs a record with its similarity to a query vector.
type ScoredRecord struct {
	// Record is the matched embedding record.
	Record EmbeddingRecord

	// Score is the cosine similarity in [-1, 1]; degenerate inputs
	// (zero vectors, dimension mismatches) score exactly 0.
	Score float64
}
