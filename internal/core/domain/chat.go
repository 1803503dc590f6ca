package domain

import "time"

// Role identifies who authored a chat turn.
type Role string

// Chat roles.
const (
	// RoleUser is a message typed by the user.
	RoleUser Role = "user"

	// RoleAssistant is a message produced by the engine.
	RoleAssistant Role = "assistant"
)

// IsValid returns true if the role is recognised.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAssistant
}

// ChatTurn is one message in a conversation thread. Turns are
// append-only and ordered by Timestamp within a thread.
type ChatTurn struct {
	// ID is the unique identifier for the turn.
	ID string `json:"id"`

	// ThreadID groups turns into a conversation.
	ThreadID string `json:"threadId"`

	// Role is who authored the turn.
	Role Role `json:"role"`

	// Content is the message text.
	Content string `json:"content"`

	// Timestamp is when the turn was recorded.
	Timestamp time.Time `json:"timestamp"`
}

// AgentReply is the orchestrator's sole output contract for a turn.
//
// Invariant: Prompt is set only when the underlying tool could not
// proceed for lack of required inputs; a reply never carries both a
// full structured result and a missing-info prompt for the same intent.
type AgentReply struct {
	// ReplyText is the human-readable reply.
	ReplyText string `json:"replyText"`

	// Prompt, when non-empty, is the single follow-up question asking
	// for the information the tool still needs.
	Prompt string `json:"prompt,omitempty"`

	// ToolUsed names the tool that produced the reply (e.g., "roadmap",
	// "chat"). Empty when no tool ran.
	ToolUsed string `json:"toolUsed,omitempty"`

	// StructuredPayload is the typed tool result rendered into
	// ReplyText, when one was produced.
	StructuredPayload any `json:"structuredPayload,omitempty"`

	// Citations lists the official source URLs backing the reply.
	Citations []string `json:"citations,omitempty"`

	// Warnings lists non-fatal degradations (model unavailable, etc).
	Warnings []string `json:"warnings,omitempty"`
}

// Gated reports whether the reply is a missing-information prompt
// rather than a result.
func (r *AgentReply) Gated() bool {
	return r.Prompt != ""
}
