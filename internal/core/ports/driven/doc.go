// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - FactCatalogue: The bundled, read-only country fact base
//   - VectorStore: Embedding record persistence + similarity search
//   - ProfileStore: The single user profile document
//   - ChatStore: Append-only conversation history
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EmbeddingService: Generates vectors. Without it, retrieval returns
//     no facts and tools fall back to catalogue lookups.
//   - CompletionService: Language model completions. Without it, every
//     tool uses its deterministic heuristic generator.
//   - ArtifactStore: Saved tool results. Without it, saving is disabled.
//   - FieldExtractor, Speech, Locator, Exporter: Best-effort
//     collaborators; absence means "feature unavailable", never an error.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
