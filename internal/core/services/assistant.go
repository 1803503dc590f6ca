package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driving"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// greetings are the exact (lower-cased, trimmed) inputs that take the
// fast path: a canned reply with no profile extraction, no routing and
// no tool dispatch.
var greetings = map[string]bool{
	"hi": true, "hello": true, "hey": true, "hiya": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"hola": true, "yo": true,
}

const greetingReply = "Hi! I'm Wayfarer, your visa and immigration assistant. " +
	"Ask me for a roadmap, a document checklist, costs, visa types, or anything about moving abroad."

const disclaimer = "Note: this is general guidance, not legal advice. Always confirm details with the official source."

// Assistant drives one conversational turn end to end. Persistence
// failures are side effects: they are logged and swallowed, never
// allowed to abort reply generation.
type Assistant struct {
	chat      driven.ChatStore
	artifacts driven.ArtifactStore
	exporter  driven.Exporter
	profiles  *ProfileService
	router    *IntentRouter
	dispatch  *Dispatch
	retriever *Retriever
	llm       driven.CompletionService
	extract   *extractor

	addDisclaimer bool
	now           func() time.Time
	newID         func() string
}

// AssistantConfig bundles the orchestrator's dependencies.
// CompletionService, ArtifactStore and Exporter may be nil.
type AssistantConfig struct {
	Chat       driven.ChatStore
	Artifacts  driven.ArtifactStore
	Exporter   driven.Exporter
	Profiles   *ProfileService
	Router     *IntentRouter
	Dispatch   *Dispatch
	Retriever  *Retriever
	Completion driven.CompletionService
	Catalogue  driven.FactCatalogue
	Disclaimer bool
}

// NewAssistant creates the per-turn orchestrator.
func NewAssistant(cfg AssistantConfig) *Assistant {
	return &Assistant{
		chat:          cfg.Chat,
		artifacts:     cfg.Artifacts,
		exporter:      cfg.Exporter,
		profiles:      cfg.Profiles,
		router:        cfg.Router,
		dispatch:      cfg.Dispatch,
		retriever:     cfg.Retriever,
		llm:           cfg.Completion,
		extract:       newExtractor(cfg.Catalogue),
		addDisclaimer: cfg.Disclaimer,
		now:           time.Now,
		newID:         func() string { return uuid.NewString() },
	}
}

// Converse produces the reply for one user message in a thread.
//
// The turn walks a fixed state machine: Received -> Greeted, or
// Received -> ProfileUpdated -> Routed -> Gated | Executed.
func (a *Assistant) Converse(ctx context.Context, threadID, text string) (*domain.AgentReply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrInvalidInput
	}

	logger.Section("Conversation Turn")
	a.persistTurn(ctx, threadID, domain.RoleUser, text)

	// Greeted: cheap fast path, no side effects beyond persistence.
	if isGreeting(text) {
		logger.Debug("Greeting fast path")
		reply := &domain.AgentReply{ReplyText: greetingReply, ToolUsed: "chat"}
		a.persistTurn(ctx, threadID, domain.RoleAssistant, reply.ReplyText)
		return reply, nil
	}

	history, err := a.chat.List(ctx, threadID)
	if err != nil {
		logger.Warn("History read failed, continuing with this turn only: %v", err)
		history = []domain.ChatTurn{{Role: domain.RoleUser, Content: text, Timestamp: a.now()}}
	}

	// ProfileUpdated: untargeted pass first to merge whatever the
	// conversation holds.
	if _, _, err := a.profiles.AutoFillFromChat(ctx, history, "", ""); err != nil {
		return nil, fmt.Errorf("profile auto-fill: %w", err)
	}

	// Routed.
	turnCtx := a.extract.turnContext(text)
	intent := a.router.Classify(text)
	logger.Info("Intent: %s, destination: %q, goal: %q", intent, turnCtx.Destination, turnCtx.Goal)

	// Second, context-targeted pass surfaces the missing-info question
	// for this intent early.
	profile, prompt, err := a.profiles.AutoFillFromChat(ctx, history, turnCtx.Destination, intent.ToolName())
	if err != nil {
		return nil, fmt.Errorf("profile auto-fill: %w", err)
	}

	// Gated: missing information is a first-class reply, not an error.
	if prompt != "" {
		reply := &domain.AgentReply{Prompt: prompt, ToolUsed: intent.ToolName()}
		a.persistTurn(ctx, threadID, domain.RoleAssistant, prompt)
		return reply, nil
	}

	// Executed.
	in := toolInput{profile: profile, turn: turnCtx, text: text}

	var reply *domain.AgentReply
	if intent == domain.IntentGeneric {
		reply = a.genericReply(ctx, in)
	} else {
		reply = a.dispatch.Run(ctx, intent, in)
	}

	if a.addDisclaimer && !reply.Gated() {
		reply.ReplyText = reply.ReplyText + "\n\n" + disclaimer
	}

	outbound := reply.ReplyText
	if reply.Gated() {
		outbound = reply.Prompt
	}
	a.persistTurn(ctx, threadID, domain.RoleAssistant, outbound)
	return reply, nil
}

// History returns the stored turns of a thread, oldest first.
func (a *Assistant) History(ctx context.Context, threadID string) ([]domain.ChatTurn, error) {
	return a.chat.List(ctx, threadID)
}

// SaveReply stores a reply's structured payload as an artifact and
// returns its ID. Requires an artifact store and a payload.
func (a *Assistant) SaveReply(ctx context.Context, reply *domain.AgentReply) (string, error) {
	if a.artifacts == nil {
		return "", domain.ErrFeatureUnavailable
	}
	if reply == nil || reply.StructuredPayload == nil {
		return "", domain.ErrInvalidInput
	}

	payload, err := json.Marshal(reply.StructuredPayload)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	artifact := domain.Artifact{
		ID:        a.newID(),
		Kind:      reply.ToolUsed,
		Title:     firstLine(reply.ReplyText),
		Payload:   payload,
		CreatedAt: a.now().Format(time.RFC3339),
	}
	if err := a.artifacts.Save(ctx, artifact); err != nil {
		return "", fmt.Errorf("save artifact: %w", err)
	}

	// Link the artifact to the profile so it survives resets of chat
	// history alone.
	_, err = a.profiles.Apply(ctx, domain.ProfileUpdate{SavedDocumentIDs: []string{artifact.ID}})
	if err != nil {
		logger.Warn("Artifact saved but profile link failed: %v", err)
	}
	return artifact.ID, nil
}

// ExportReply writes a reply's structured payload through the exporter
// collaborator and returns the suggested file name. Returns
// domain.ErrFeatureUnavailable when no exporter is configured.
func (a *Assistant) ExportReply(ctx context.Context, reply *domain.AgentReply) (string, error) {
	if a.exporter == nil {
		return "", domain.ErrFeatureUnavailable
	}
	if reply == nil || reply.StructuredPayload == nil {
		return "", domain.ErrInvalidInput
	}

	payload, err := json.MarshalIndent(reply.StructuredPayload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}

	kind := reply.ToolUsed
	if kind == "" {
		kind = "reply"
	}
	name := fmt.Sprintf("wayfarer-%s-%s.json", kind, a.now().Format("20060102-150405"))

	if err := a.exporter.Export(ctx, name, payload); err != nil {
		return "", fmt.Errorf("export %s: %w", name, err)
	}
	return name, nil
}

// genericReply answers unclassified input: retrieve facts, ground a
// completion on them, and fall back to a templated summary when the
// model is unavailable, fails, or returns nothing.
func (a *Assistant) genericReply(ctx context.Context, in toolInput) *domain.AgentReply {
	facts, _ := a.retriever.Retrieve(ctx, in.text, domain.DefaultRetrieveK)

	reply := &domain.AgentReply{ToolUsed: domain.IntentGeneric.ToolName()}
	for _, f := range facts {
		reply.Citations = append(reply.Citations, f.SourceURL)
	}
	reply.Citations = dedupeStrings(reply.Citations)

	if a.llm != nil {
		system := groundedSystemPrompt(facts)
		answer, err := a.llm.Complete(ctx, system, in.text)
		if err == nil && strings.TrimSpace(answer) != "" {
			reply.ReplyText = strings.TrimSpace(answer)
			return reply
		}
		if err != nil {
			logger.Warn("Generic completion failed, falling back to template: %v", err)
		}
		reply.Warnings = append(reply.Warnings, heuristicWarning)
	}

	if len(facts) == 0 {
		reply.ReplyText = "I couldn't retrieve enough information to answer that. " +
			"Try asking about a specific country, or ask for a roadmap, checklist or cost estimate."
		return reply
	}

	var b strings.Builder
	b.WriteString("Here's what I found:\n")
	for _, f := range facts {
		fmt.Fprintf(&b, "  - %s (%s)\n", f.Statement, f.CountryName)
	}
	reply.ReplyText = strings.TrimRight(b.String(), "\n")
	return reply
}

// groundedSystemPrompt builds the retrieval-grounded instruction for
// generic synthesis.
func groundedSystemPrompt(facts []domain.RetrievedFact) string {
	var b strings.Builder
	b.WriteString("You are Wayfarer, an offline visa and immigration assistant. ")
	b.WriteString("Answer briefly and only from the facts below; if they do not cover the question, say so.\n")
	for _, f := range facts {
		fmt.Fprintf(&b, "- [%s] %s\n", f.CountryName, f.Statement)
	}
	return b.String()
}

// persistTurn appends a turn, swallowing store failures: persistence
// is a side effect, not part of producing a reply.
func (a *Assistant) persistTurn(ctx context.Context, threadID string, role domain.Role, content string) {
	turn := domain.ChatTurn{
		ID:        a.newID(),
		ThreadID:  threadID,
		Role:      role,
		Content:   content,
		Timestamp: a.now(),
	}
	if err := a.chat.Append(ctx, turn); err != nil {
		logger.Warn("Chat persistence failed (%s turn dropped): %v", role, err)
	}
}

// isGreeting matches short, exact greetings after normalising case and
// trailing punctuation.
func isGreeting(text string) bool {
	normalised := strings.ToLower(strings.TrimSpace(text))
	normalised = strings.TrimRight(normalised, "!.?, ")
	return greetings[normalised]
}

// firstLine returns the first non-empty line of s, for artifact titles.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return s
}
