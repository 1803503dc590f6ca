package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure ChatStore implements the interface.
var _ driven.ChatStore = (*ChatStore)(nil)

const chatFileName = "chat.json"

// chatDocument holds every thread in one JSON document.
type chatDocument struct {
	Threads map[string][]domain.ChatTurn `json:"threads"`
}

// ChatStore persists conversation history as one JSON document.
type ChatStore struct {
	mu      sync.RWMutex
	path    string
	threads map[string][]domain.ChatTurn
}

// NewChatStore opens (or initialises) the chat document under
// dataDir. An unreadable document starts empty.
func NewChatStore(dataDir string) *ChatStore {
	s := &ChatStore{
		path:    filepath.Join(dataDir, chatFileName),
		threads: make(map[string][]domain.ChatTurn),
	}

	var doc chatDocument
	if err := readDocument(s.path, &doc); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Warn("Chat history unreadable, starting empty: %v", err)
		}
		return s
	}
	if doc.Threads != nil {
		s.threads = doc.Threads
	}
	return s
}

// Append adds a turn to its thread and flushes the document.
func (s *ChatStore) Append(_ context.Context, turn domain.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.threads[turn.ThreadID], turn)
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].Timestamp.Before(turns[j].Timestamp)
	})
	s.threads[turn.ThreadID] = turns

	return writeDocument(s.path, chatDocument{Threads: s.threads})
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

// Clear removes a thread's history and flushes the document.
func (s *ChatStore) Clear(_ context.Context, threadID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.threads, threadID)
	return writeDocument(s.path, chatDocument{Threads: s.threads})
}
