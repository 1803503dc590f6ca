// Package services implements the core business logic for Wayfarer.
//
// Services implement the driving port interfaces and depend only on
// the driven port interfaces, never on concrete adapters:
//
//   - Retriever: embedding-backed fact retrieval over the catalogue
//   - ProfileService: profile persistence + chat-derived merge
//   - IntentRouter: ordered keyword classification of user messages
//   - Dispatch: one gated generator per intent
//   - Assistant: the per-turn orchestration state machine
//   - SettingsService: typed view over the config store
//
// Optional collaborators (embedding, completion) are nil-checked
// everywhere; a missing or failing collaborator degrades to the
// deterministic heuristic path, never to a user-visible error.
package services
