package driven

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// ChatStore persists conversation history, one JSON document per
// thread. Turns are append-only and ordered by timestamp.
type ChatStore interface {
	// Append adds a turn to its thread.
	Append(ctx context.Context, turn domain.ChatTurn) error

	// List returns all turns of a thread, oldest first.
	// An unknown thread returns an empty slice, not an error.
	List(ctx context.Context, threadID string) ([]domain.ChatTurn, error)

	// Clear removes a thread's history.
	Clear(ctx context.Context, threadID string) error
}
