package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
)

// Ensure ChatStore implements the interface.
var _ driven.ChatStore = (*ChatStore)(nil)

// ChatStore is an in-memory implementation of driven.ChatStore.
type ChatStore struct {
	mu      sync.RWMutex
	threads map[string][]domain.ChatTurn
}

// NewChatStore creates a new in-memory chat store.
func NewChatStore() *ChatStore {
	return &ChatStore{threads: make(map[string][]domain.ChatTurn)}
}

// Append adds a turn to its thread.
func (s *ChatStore) Append(_ context.Context, turn domain.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.threads[turn.ThreadID], turn)
	// Keep thread ordering monotonic by timestamp.
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Timestamp.Before(turns[j].Timestamp)
	})
	s.threads[turn.ThreadID] = turns
	return nil
}

// List returns all turns of a thread, oldest first.
func (s *ChatStore) List(_ context.Context, threadID string) ([]domain.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.threads[threadID]
	out := make([]domain.ChatTurn, len(turns))
	copy(out, turns)
	return out, nil
}

// Clear removes a thread's history.
func (s *ChatStore) Clear(_ context.Context, threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.threads, threadID)
	return nil
}
