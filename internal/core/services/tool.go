package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
	"github.com/custodia-labs/wayfarer-cli/internal/core/ports/driven"
	"github.com/custodia-labs/wayfarer-cli/internal/logger"
)

// toolInput is everything a generator may draw on for one invocation.
type toolInput struct {
	profile *domain.UserProfile
	turn    domain.TurnContext
	text    string
}

// destination returns the effective destination country for the turn.
func (in toolInput) destination() string {
	return in.turn.Destination
}

// goal returns the effective visa goal: the turn's explicit goal, or
// the first goal on file.
func (in toolInput) goal() string {
	if in.turn.Goal != "" {
		return in.turn.Goal
	}
	if len(in.profile.SelectedGoals) > 0 {
		return in.profile.SelectedGoals[0]
	}
	return ""
}

// toolOutput is a generator's result: a typed payload, its rendering,
// and the citations backing it.
type toolOutput struct {
	payload   any
	rendered  string
	citations []string
	warnings  []string
}

// toolRunner is the two-phase contract every generator follows:
// gate reports still-missing required inputs; generate runs only once
// the gate is clear. A runner never returns both a prompt and a
// result - Dispatch enforces that structurally.
type toolRunner interface {
	intent() domain.Intent
	gate(in toolInput) []string
	generate(ctx context.Context, in toolInput) (*toolOutput, error)
}

// Dispatch routes a classified intent to its generator.
type Dispatch struct {
	tools map[domain.Intent]toolRunner
}

// NewDispatch wires one generator per intent. llm may be nil; every
// generator then uses its heuristic path.
func NewDispatch(catalogue driven.FactCatalogue, retriever *Retriever, llm driven.CompletionService, locator driven.Locator) *Dispatch {
	deps := toolDeps{catalogue: catalogue, retriever: retriever, llm: llm}

	runners := []toolRunner{
		&roadmapTool{deps},
		&checklistTool{deps},
		&costTool{deps},
		&eligibilityTool{deps},
		&compareTool{deps},
		&visaTypeTool{deps},
		&embassyTool{deps, locator},
		&factsTool{deps},
	}

	tools := make(map[domain.Intent]toolRunner, len(runners))
	for _, r := range runners {
		tools[r.intent()] = r
	}
	return &Dispatch{tools: tools}
}

// Supports reports whether a structured generator exists for the
// intent. Generic has none; it is handled by the orchestrator's
// retrieval + synthesis path.
func (d *Dispatch) Supports(intent domain.Intent) bool {
	_, ok := d.tools[intent]
	return ok
}

// Run executes the generator for the intent. A non-empty gate yields a
// single missing-information prompt and no result; otherwise the
// generator's output is wrapped into the reply. Generator failures
// degrade to an apology rather than an error.
func (d *Dispatch) Run(ctx context.Context, intent domain.Intent, in toolInput) *domain.AgentReply {
	tool, ok := d.tools[intent]
	if !ok {
		return &domain.AgentReply{
			ReplyText: "I couldn't retrieve enough information to help with that.",
			ToolUsed:  intent.ToolName(),
			Warnings:  []string{"no generator for intent"},
		}
	}

	if missing := tool.gate(in); len(missing) > 0 {
		logger.Debug("Tool %s gated on %v", intent, missing)
		return &domain.AgentReply{
			Prompt:   fmt.Sprintf("Before I can help with that, could you tell me your %s?", joinNatural(missing)),
			ToolUsed: intent.ToolName(),
		}
	}

	out, err := tool.generate(ctx, in)
	if err != nil {
		logger.Warn("Tool %s failed: %v", intent, err)
		return &domain.AgentReply{
			ReplyText: "I couldn't retrieve enough information to help with that. Could you rephrase?",
			ToolUsed:  intent.ToolName(),
			Warnings:  []string{err.Error()},
		}
	}

	return &domain.AgentReply{
		ReplyText:         out.rendered,
		ToolUsed:          intent.ToolName(),
		StructuredPayload: out.payload,
		Citations:         out.citations,
		Warnings:          out.warnings,
	}
}

// toolDeps is the dependency bundle shared by all generators.
type toolDeps struct {
	catalogue driven.FactCatalogue
	retriever *Retriever
	llm       driven.CompletionService
}

// entryFor resolves the destination's catalogue entry, or nil when the
// country is not catalogued.
func (d toolDeps) entryFor(in toolInput) *domain.FactEntry {
	if in.turn.DestinationCode != "" {
		if entry, err := d.catalogue.Get(in.turn.DestinationCode); err == nil {
			return entry
		}
	}
	if in.destination() != "" {
		if entry, err := d.catalogue.FindByName(in.destination()); err == nil {
			return entry
		}
	}
	return nil
}

// citationsFor retrieves facts for the query and returns their source
// URLs plus the entry's official site, deduplicated, order preserved.
func (d toolDeps) citationsFor(ctx context.Context, entry *domain.FactEntry, query string) []string {
	var urls []string
	if entry != nil && entry.OfficialSiteURL != "" {
		urls = append(urls, entry.OfficialSiteURL)
	}

	facts, err := d.retriever.Retrieve(ctx, query, 4)
	if err == nil {
		for _, f := range facts {
			if f.SourceURL != "" {
				urls = append(urls, f.SourceURL)
			}
		}
	}
	return dedupeStrings(urls)
}

// heuristicWarning is attached whenever the deterministic generator
// produced the result instead of the model.
const heuristicWarning = "generated without model assistance"

// dedupeStrings removes duplicates preserving first-seen order.
func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
