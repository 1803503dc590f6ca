package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Semantic retrieval degrades to "no facts available".
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrCompletionUnavailable indicates the completion service is not
	// configured. Tools degrade to their heuristic generators.
	ErrCompletionUnavailable = errors.New("completion service unavailable")

	// ErrMalformedModelOutput indicates the completion result could not
	// be parsed as the tool's JSON schema, even after stripping fences.
	ErrMalformedModelOutput = errors.New("malformed model output")

	// ErrFeatureUnavailable indicates an optional collaborator
	// (extraction, speech, export, location) is not wired in.
	ErrFeatureUnavailable = errors.New("feature unavailable")

	// ErrVectorStoreUnavailable indicates the embedding index is not
	// configured. Retrieval returns empty results.
	ErrVectorStoreUnavailable = errors.New("vector store unavailable")
)
