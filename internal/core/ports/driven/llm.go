package driven

import "context"

// CompletionService provides language model completions.
// This is an optional service - when nil, every tool falls back to its
// deterministic heuristic generator and generic replies are templated
// from retrieved facts.
//
// Structured tools expect (but are not guaranteed) JSON matching their
// documented schema, possibly wrapped in a markdown code fence; the
// caller is responsible for parsing and for falling back on failure.
//
// Implementations may include:
//   - Ollama (local models)
//   - Any on-device model integration exposing
//     complete(system, user) -> string
type CompletionService interface {
	// Complete produces a completion for the given system and user
	// prompts. A model download or cold start may block for an extended
	// period; callers surface that as a "downloading" state rather than
	// timing it out here.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
