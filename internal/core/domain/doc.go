// Package domain defines the core business entities for Wayfarer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - FactEntry: A curated, citable set of statements about a country
//   - EmbeddingRecord: A persisted text + vector pair used for retrieval
//   - UserProfile: The single local user profile
//   - ChatTurn: One message in a conversation thread
//   - AgentReply: The engine's sole per-turn output contract
//   - Intent: The closed set of recognised message purposes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
