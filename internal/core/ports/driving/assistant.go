package driving

import (
	"context"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// AssistantService drives one conversational turn end to end:
// persist the inbound message, update the profile from chat, route the
// intent, gate on missing information, run the matching tool (or fall
// back to retrieval + synthesis), persist the outbound message.
type AssistantService interface {
	// Converse produces the reply for one user message in a thread.
	// Persistence failures are swallowed; Converse only errors on
	// invalid input (empty text).
	Converse(ctx context.Context, threadID, text string) (*domain.AgentReply, error)

	// History returns the stored turns of a thread, oldest first.
	History(ctx context.Context, threadID string) ([]domain.ChatTurn, error)

	// SaveReply stores a reply's structured payload as an artifact and
	// returns the artifact ID. Returns domain.ErrFeatureUnavailable
	// when no artifact store is configured.
	SaveReply(ctx context.Context, reply *domain.AgentReply) (string, error)

	// ExportReply writes a reply's structured payload through the
	// exporter collaborator and returns the suggested file name.
	// Returns domain.ErrFeatureUnavailable when no exporter is
	// configured.
	ExportReply(ctx context.Context, reply *domain.AgentReply) (string, error)
}
