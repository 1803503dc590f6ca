package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/wayfarer-cli/internal/core/domain"
)

// factsTool answers factual questions from retrieval, falling back to
// the destination's catalogue statements when retrieval is empty.
type factsTool struct {
	deps toolDeps
}

func (t *factsTool) intent() domain.Intent { return domain.IntentFacts }

func (t *factsTool) gate(in toolInput) []string {
	if in.destination() == "" {
		return []string{"destination country"}
	}
	return nil
}

func (t *factsTool) generate(ctx context.Context, in toolInput) (*toolOutput, error) {
	entry := t.deps.entryFor(in)

	result := domain.FactsAnswer{Destination: in.destination()}
	var warnings []string

	facts, err := t.deps.retriever.Retrieve(ctx, in.text, domain.DefaultRetrieveK)
	if err == nil && len(facts) > 0 {
		for _, f := range facts {
			result.Statements = append(result.Statements, f.Statement)
			result.Sources = append(result.Sources, f.SourceURL)
		}
	} else if entry != nil {
		// Retrieval empty (no embedder, cold index): serve the
		// catalogue entry directly.
		result.Statements = entry.Statements
		result.Sources = []string{entry.OfficialSiteURL}
		warnings = append(warnings, "answered from the catalogue without semantic retrieval")
	}
	result.Sources = dedupeStrings(result.Sources)

	if len(result.Statements) == 0 {
		return &toolOutput{
			payload:  result,
			rendered: "I couldn't retrieve enough information about " + in.destination() + ".",
			warnings: append(warnings, "no facts available"),
		}, nil
	}

	return &toolOutput{
		payload:   result,
		rendered:  renderFacts(result),
		citations: result.Sources,
		warnings:  warnings,
	}, nil
}

func renderFacts(f domain.FactsAnswer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "What I have on %s:\n", f.Destination)
	for _, s := range f.Statements {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	return strings.TrimRight(b.String(), "\n")
}
